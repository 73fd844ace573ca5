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

package openapi

import (
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var ErrInvalidAge = errors.New("invalid age: must be a whole number")

var ageValidationRegex = regexp.MustCompile(`^-?[0-9]{1,9}$`)

// Age is a pet's age.  The service stores whatever it was given and
// returns it as a string, so decoding keeps the raw text and only
// populates Value when the text is a whole number.
type Age struct {
	Value int
	Raw   string
	Valid bool
}

// NewAge returns a valid age.
func NewAge(v int) Age {
	return Age{
		Value: v,
		Raw:   strconv.Itoa(v),
		Valid: true,
	}
}

// ParseAge parses a user supplied age.  The empty string is accepted as
// an unset age.
func ParseAge(s string) (Age, error) {
	var a Age

	if err := a.UnmarshalText([]byte(s)); err != nil {
		return Age{}, err
	}

	return a, nil
}

func (a *Age) UnmarshalText(text []byte) error {
	raw := strings.TrimSpace(string(text))

	if raw == "" {
		*a = Age{}
		return nil
	}

	if !ageValidationRegex.MatchString(raw) {
		return ErrInvalidAge
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return ErrInvalidAge
	}

	*a = Age{
		Value: v,
		Raw:   raw,
		Valid: true,
	}

	return nil
}

// UnmarshalJSON accepts a JSON string or number and never fails on
// content; records created with garbage ages must not break listing.
func (a *Age) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = Age{}
		return nil
	}

	raw := string(data)

	if strings.HasPrefix(raw, `"`) {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	}

	if err := a.UnmarshalText([]byte(raw)); err != nil {
		*a = Age{Raw: raw}
	}

	return nil
}

func (a Age) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a Age) String() string {
	if a.Raw != "" {
		return a.Raw
	}

	if a.Valid {
		return strconv.Itoa(a.Value)
	}

	return ""
}
