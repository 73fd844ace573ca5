/*
Copyright 2024-2025 the Unikorn Authors.
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
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// NamePrefix starts the name of every record the suites create, so the
// janitor can find leftovers.
const NamePrefix = "autotest"

func generateRandomName(prefix string) string {
	bytes := make([]byte, 4) // 8 hex characters
	_, _ = rand.Read(bytes)

	return fmt.Sprintf("%s-%s", prefix, hex.EncodeToString(bytes))
}

// GeneratePetName returns a unique record name.
func GeneratePetName() string {
	return generateRandomName(NamePrefix)
}

// PetPayload is the input to a create or change call.  Age is text so
// blank and negative values can be submitted verbatim.
type PetPayload struct {
	Name       string
	AnimalType string
	Age        string
	// Photo is a file name under test/images, empty means no photo.
	Photo string
}

// PetPayloadBuilder builds pet payloads for testing.
type PetPayloadBuilder struct {
	payload PetPayload
}

// NewPetPayload creates a new pet payload builder with valid defaults.
func NewPetPayload() *PetPayloadBuilder {
	return &PetPayloadBuilder{
		payload: PetPayload{
			Name:       GeneratePetName(),
			AnimalType: "cat",
			Age:        "3",
			Photo:      PhotoCat,
		},
	}
}

// WithName sets the pet name.
func (b *PetPayloadBuilder) WithName(name string) *PetPayloadBuilder {
	b.payload.Name = name

	return b
}

// WithAnimalType sets the animal type.
func (b *PetPayloadBuilder) WithAnimalType(animalType string) *PetPayloadBuilder {
	b.payload.AnimalType = animalType

	return b
}

// WithAge sets the age text.
func (b *PetPayloadBuilder) WithAge(age string) *PetPayloadBuilder {
	b.payload.Age = age

	return b
}

// WithPhoto sets the photo fixture name.
func (b *PetPayloadBuilder) WithPhoto(name string) *PetPayloadBuilder {
	b.payload.Photo = name

	return b
}

// WithoutPhoto creates the record through the photo-less endpoint.
func (b *PetPayloadBuilder) WithoutPhoto() *PetPayloadBuilder {
	b.payload.Photo = ""

	return b
}

// Blank clears the name, type and age.
func (b *PetPayloadBuilder) Blank() *PetPayloadBuilder {
	b.payload.Name = ""
	b.payload.AnimalType = ""
	b.payload.Age = ""

	return b
}

// Build returns the completed pet payload.
func (b *PetPayloadBuilder) Build() PetPayload {
	return b.payload
}
