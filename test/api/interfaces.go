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

//go:generate mockgen -source=interfaces.go -destination=mock/interfaces.go -package=mock

package api

import (
	"context"

	"github.com/nscaledev/petfriends/pkg/client"
)

// PetService is the subset of the client used by fixtures.
type PetService interface {
	GetListOfPets(ctx context.Context, token, filter string) (*client.Response, error)
	PostMyPet(ctx context.Context, token, name, animalType, age, photoPath string) (*client.Response, error)
	AddNewPetWithoutPhoto(ctx context.Context, token, name, animalType, age string) (*client.Response, error)
	DeleteMyPet(ctx context.Context, token, petID string) (*client.Response, error)
}

var _ PetService = (*client.APIClient)(nil)
