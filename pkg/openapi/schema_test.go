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

package openapi_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nscaledev/petfriends/pkg/openapi"
)

const serverURL = "https://petfriends.example.com"

func jsonHeader() http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")

	return h
}

func TestSchemaLoads(t *testing.T) {
	t.Parallel()

	doc, err := openapi.Schema()
	require.NoError(t, err)
	require.NotNil(t, doc.Paths.Find("/api/pets/{pet_id}"))
}

func TestValidateResponse(t *testing.T) {
	t.Parallel()

	v, err := openapi.NewValidator(serverURL)
	require.NoError(t, err)

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, serverURL+"/api/key", nil)
	require.NoError(t, err)

	require.NoError(t, v.ValidateResponse(t.Context(), req, http.StatusOK, jsonHeader(), []byte(`{"key":"abc"}`)))
	require.Error(t, v.ValidateResponse(t.Context(), req, http.StatusOK, jsonHeader(), []byte(`{"token":"abc"}`)))
	require.NoError(t, v.ValidateResponse(t.Context(), req, http.StatusForbidden, http.Header{}, []byte("<html>Forbidden</html>")))
}

func TestValidatePetResponse(t *testing.T) {
	t.Parallel()

	v, err := openapi.NewValidator(serverURL)
	require.NoError(t, err)

	req, err := http.NewRequestWithContext(t.Context(), http.MethodPut, serverURL+"/api/pets/1234", nil)
	require.NoError(t, err)

	body := []byte(`{"id":"1234","name":"Billy","animal_type":"cat","age":"1","pet_photo":""}`)
	require.NoError(t, v.ValidateResponse(t.Context(), req, http.StatusOK, jsonHeader(), body))

	require.Error(t, v.ValidateResponse(t.Context(), req, http.StatusOK, jsonHeader(), []byte(`{"id":"1234"}`)))
}

func TestValidateUnknownRoute(t *testing.T) {
	t.Parallel()

	v, err := openapi.NewValidator(serverURL)
	require.NoError(t, err)

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, serverURL+"/api/unknown", nil)
	require.NoError(t, err)

	require.Error(t, v.ValidateResponse(t.Context(), req, http.StatusOK, jsonHeader(), []byte(`{}`)))
}
