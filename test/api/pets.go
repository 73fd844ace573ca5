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

package api

import (
	"context"
	"fmt"
	"net/http"
	"slices"

	"github.com/spjmurray/go-util/pkg/set"

	"github.com/nscaledev/petfriends/pkg/client"
	"github.com/nscaledev/petfriends/pkg/openapi"
)

// OwnedPet is a record owned by the test identity.
type OwnedPet struct {
	openapi.Pet

	// Created is set when the record did not exist and was created to
	// satisfy the precondition.
	Created bool
}

// CreatePet creates a record from the payload, through the multipart
// endpoint when it carries a photo and the form endpoint otherwise.
func CreatePet(ctx context.Context, svc PetService, token string, payload PetPayload) (*client.Response, error) {
	if payload.Photo == "" {
		return svc.AddNewPetWithoutPhoto(ctx, token, payload.Name, payload.AnimalType, payload.Age)
	}

	photo, err := PhotoPath(payload.Photo)
	if err != nil {
		return nil, err
	}

	return svc.PostMyPet(ctx, token, payload.Name, payload.AnimalType, payload.Age, photo)
}

func listOwnedPets(ctx context.Context, svc PetService, token string) ([]openapi.Pet, error) {
	response, err := svc.GetListOfPets(ctx, token, openapi.FilterMyPets)
	if err != nil {
		return nil, err
	}

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: listing owned pets returned status %d", ErrNoOwnedPets, response.StatusCode)
	}

	list, err := response.Pets()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoOwnedPets, err)
	}

	return list.Pets, nil
}

// EnsureOwnedPet returns the first record the token owns.  When there is
// none, one is created from seed and the listing repeated.  Failure to
// establish an owned record is reported as ErrNoOwnedPets with the reason.
func EnsureOwnedPet(ctx context.Context, svc PetService, token string, seed PetPayload) (*OwnedPet, error) {
	pets, err := listOwnedPets(ctx, svc, token)
	if err != nil {
		return nil, err
	}

	if len(pets) > 0 {
		return &OwnedPet{Pet: pets[0]}, nil
	}

	response, err := CreatePet(ctx, svc, token, seed)
	if err != nil {
		return nil, err
	}

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: creating a pet returned status %d", ErrNoOwnedPets, response.StatusCode)
	}

	pets, err = listOwnedPets(ctx, svc, token)
	if err != nil {
		return nil, err
	}

	if len(pets) == 0 {
		return nil, fmt.Errorf("%w: none listed after creating one", ErrNoOwnedPets)
	}

	return &OwnedPet{Pet: pets[0], Created: true}, nil
}

// RemovedIDs returns the identifiers present before but not after, sorted.
func RemovedIDs(before, after []string) []string {
	beforeIDs := set.New[string](before...)
	afterIDs := set.New[string](after...)

	removed := beforeIDs.Difference(afterIDs)

	return slices.Sorted(removed.All())
}
