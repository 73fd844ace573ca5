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
)

// Filter values understood by the pet listing endpoint.
const (
	FilterAll    = ""
	FilterMyPets = "my_pets"
)

// APIKey is returned by the key endpoint.
type APIKey struct {
	Key string `json:"key"`
}

// Pet is a single pet record.
type Pet struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	AnimalType string `json:"animal_type"`
	Age        Age    `json:"age"`
	// PetPhoto is a data URI, or empty when no photo is attached.
	PetPhoto  string          `json:"pet_photo"`
	UserID    string          `json:"user_id,omitempty"`
	CreatedAt json.RawMessage `json:"created_at,omitempty"`
}

// HasPhoto tells whether a photo is attached.
func (p *Pet) HasPhoto() bool {
	return p.PetPhoto != ""
}

// PetList is returned by the listing endpoint.
type PetList struct {
	Pets []Pet `json:"pets"`
}

// IDs returns the record identifiers in listing order.
func (l *PetList) IDs() []string {
	ids := make([]string, len(l.Pets))

	for i := range l.Pets {
		ids[i] = l.Pets[i].ID
	}

	return ids
}
