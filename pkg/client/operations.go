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
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"

	"github.com/go-resty/resty/v2"
)

const (
	emailHeader    = "email"
	passwordHeader = "password"
	authKeyHeader  = "auth_key"

	photoField = "pet_photo"
)

// withAuthKey adds the API key header, an empty token sends no header so
// the service decides how to treat an unauthenticated call.
func withAuthKey(req *resty.Request, token string) {
	if token != "" {
		req.SetHeader(authKeyHeader, token)
	}
}

func petFields(name, animalType, age string) map[string]string {
	return map[string]string{
		"name":        name,
		"animal_type": animalType,
		"age":         age,
	}
}

// checkPhoto makes a missing photo a local error rather than a request
// with an empty file part.
func checkPhoto(photoPath string) error {
	info, err := os.Stat(photoPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrPhotoNotFound, photoPath)
		}

		return fmt.Errorf("reading photo %s: %w", photoPath, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrPhotoNotFound, photoPath)
	}

	return nil
}

// GetAPIKey requests an API key for the given credentials.
func (c *APIClient) GetAPIKey(ctx context.Context, email, password string) (*Response, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, c.endpoints.APIKey(), func(req *resty.Request) {
		req.SetHeader(emailHeader, email)
		req.SetHeader(passwordHeader, password)
	})
	if err != nil {
		return nil, fmt.Errorf("getting api key: %w", err)
	}

	return resp, nil
}

// GetListOfPets lists pets.  Filter is normally FilterAll or FilterMyPets,
// anything else is passed through untouched.
func (c *APIClient) GetListOfPets(ctx context.Context, token, filter string) (*Response, error) {
	path, err := c.endpoints.ListPets(filter)
	if err != nil {
		return nil, fmt.Errorf("listing pets: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path, func(req *resty.Request) {
		withAuthKey(req, token)
	})
	if err != nil {
		return nil, fmt.Errorf("listing pets: %w", err)
	}

	return resp, nil
}

// PostMyPet creates a pet with a photo as a multipart submission.
func (c *APIClient) PostMyPet(ctx context.Context, token, name, animalType, age, photoPath string) (*Response, error) {
	if err := checkPhoto(photoPath); err != nil {
		return nil, fmt.Errorf("creating pet: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, c.endpoints.CreatePet(), func(req *resty.Request) {
		withAuthKey(req, token)
		req.SetMultipartFormData(petFields(name, animalType, age))
		req.SetFile(photoField, photoPath)
	})
	if err != nil {
		return nil, fmt.Errorf("creating pet: %w", err)
	}

	return resp, nil
}

// AddNewPetWithoutPhoto creates a pet with no photo attached.
func (c *APIClient) AddNewPetWithoutPhoto(ctx context.Context, token, name, animalType, age string) (*Response, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, c.endpoints.CreatePetSimple(), func(req *resty.Request) {
		withAuthKey(req, token)
		req.SetFormData(petFields(name, animalType, age))
	})
	if err != nil {
		return nil, fmt.Errorf("creating pet without photo: %w", err)
	}

	return resp, nil
}

// AddPhotoForMyPet attaches a photo to an existing pet.
func (c *APIClient) AddPhotoForMyPet(ctx context.Context, token, petID, photoPath string) (*Response, error) {
	if petID == "" {
		return nil, fmt.Errorf("adding photo: %w", ErrMissingPetID)
	}

	if err := checkPhoto(photoPath); err != nil {
		return nil, fmt.Errorf("adding photo: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, c.endpoints.SetPetPhoto(petID), func(req *resty.Request) {
		withAuthKey(req, token)
		req.SetFile(photoField, photoPath)
	})
	if err != nil {
		return nil, fmt.Errorf("adding photo: %w", err)
	}

	return resp, nil
}

// ChangeMyPet updates a pet's name, type and age.
func (c *APIClient) ChangeMyPet(ctx context.Context, token, petID, name, animalType, age string) (*Response, error) {
	if petID == "" {
		return nil, fmt.Errorf("updating pet: %w", ErrMissingPetID)
	}

	resp, err := c.doRequest(ctx, http.MethodPut, c.endpoints.UpdatePet(petID), func(req *resty.Request) {
		withAuthKey(req, token)
		req.SetFormData(petFields(name, animalType, age))
	})
	if err != nil {
		return nil, fmt.Errorf("updating pet: %w", err)
	}

	return resp, nil
}

// DeleteMyPet deletes a pet.
func (c *APIClient) DeleteMyPet(ctx context.Context, token, petID string) (*Response, error) {
	if petID == "" {
		return nil, fmt.Errorf("deleting pet: %w", ErrMissingPetID)
	}

	resp, err := c.doRequest(ctx, http.MethodDelete, c.endpoints.DeletePet(petID), func(req *resty.Request) {
		withAuthKey(req, token)
	})
	if err != nil {
		return nil, fmt.Errorf("deleting pet: %w", err)
	}

	return resp, nil
}
