/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package client

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/nscaledev/petfriends/pkg/openapi"
)

// Response is the status code and body of a single call.
type Response struct {
	// StatusCode is the HTTP status returned by the service.
	StatusCode int
	// Header is the response header.
	Header http.Header
	// Raw is the undecoded body.
	Raw []byte
	// Body is the JSON decoded body, or the raw text as a string when
	// the body is not JSON.
	Body any
}

// NewResponse decodes a raw body into a Response.
func NewResponse(statusCode int, header http.Header, raw []byte) *Response {
	r := &Response{
		StatusCode: statusCode,
		Header:     header,
		Raw:        raw,
	}

	var body any

	if err := json.Unmarshal(raw, &body); err != nil {
		r.Body = string(raw)
	} else {
		r.Body = body
	}

	return r
}

// IsJSON tells whether the body decoded as JSON.
func (r *Response) IsJSON() bool {
	return json.Valid(r.Raw)
}

// Object returns the body as a JSON object.
func (r *Response) Object() (map[string]any, bool) {
	m, ok := r.Body.(map[string]any)

	return m, ok
}

// Has tells whether the body is a JSON object carrying field.
func (r *Response) Has(field string) bool {
	m, ok := r.Object()
	if !ok {
		return false
	}

	_, ok = m[field]

	return ok
}

// String returns a string field of a JSON object body, or the empty
// string if the body is not an object or the field is not a string.
func (r *Response) String(field string) string {
	m, ok := r.Object()
	if !ok {
		return ""
	}

	s, _ := m[field].(string)

	return s
}

// Decode unmarshals the raw body into out.
func (r *Response) Decode(out any) error {
	if err := json.Unmarshal(r.Raw, out); err != nil {
		return fmt.Errorf("%w: status %d: %w", ErrUnexpectedBody, r.StatusCode, err)
	}

	return nil
}

// Key returns the API key carried by the body.
func (r *Response) Key() (string, error) {
	var key openapi.APIKey

	if err := r.Decode(&key); err != nil {
		return "", err
	}

	if key.Key == "" {
		return "", fmt.Errorf("%w: status %d: no key in body", ErrUnexpectedBody, r.StatusCode)
	}

	return key.Key, nil
}

// Pets returns the pet list carried by the body.
func (r *Response) Pets() (*openapi.PetList, error) {
	if !r.Has("pets") {
		return nil, fmt.Errorf("%w: status %d: no pets in body", ErrUnexpectedBody, r.StatusCode)
	}

	var list openapi.PetList

	if err := r.Decode(&list); err != nil {
		return nil, err
	}

	return &list, nil
}

// Pet returns the single pet carried by the body.
func (r *Response) Pet() (*openapi.Pet, error) {
	if !r.Has("id") {
		return nil, fmt.Errorf("%w: status %d: no pet in body", ErrUnexpectedBody, r.StatusCode)
	}

	var pet openapi.Pet

	if err := r.Decode(&pet); err != nil {
		return nil, err
	}

	return &pet, nil
}
