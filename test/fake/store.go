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

package fake

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"k8s.io/utils/ptr"

	"github.com/nscaledev/petfriends/pkg/openapi"
)

var (
	ErrNotFound  = errors.New("pet not found")
	ErrForbidden = errors.New("pet belongs to another user")
)

// record is a stored pet.
type record struct {
	id         string
	owner      string
	name       string
	animalType string
	age        string
	// photo is a data URI, nil when no photo was attached.
	photo   *string
	created time.Time
}

func (r *record) toAPI() openapi.Pet {
	// Ages are stored verbatim, as the service does.
	age := openapi.Age{Raw: r.age}
	if parsed, err := openapi.ParseAge(r.age); err == nil {
		age = parsed
	}

	return openapi.Pet{
		ID:         r.id,
		Name:       r.name,
		AnimalType: r.animalType,
		Age:        age,
		PetPhoto:   ptr.Deref(r.photo, ""),
		UserID:     r.owner,
		CreatedAt:  []byte(fmt.Sprintf(`"%d.%06d"`, r.created.Unix(), r.created.Nanosecond()/1000)),
	}
}

// Store holds pets in memory, newest first.
type Store struct {
	mu      sync.RWMutex
	byID    map[string]*record
	ordered []string
}

func NewStore() *Store {
	return &Store{
		byID: make(map[string]*record),
	}
}

// Create stores a new pet and returns it.
func (s *Store) Create(owner, name, animalType, age string, photo *string) openapi.Pet {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := &record{
		id:         uuid.NewString(),
		owner:      owner,
		name:       name,
		animalType: animalType,
		age:        age,
		photo:      photo,
		created:    time.Now(),
	}

	s.byID[r.id] = r
	s.ordered = slices.Insert(s.ordered, 0, r.id)

	return r.toAPI()
}

// List returns all pets, or only those of owner when owner is not empty.
func (s *Store) List(owner string) []openapi.Pet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]openapi.Pet, 0, len(s.ordered))

	for _, id := range s.ordered {
		r := s.byID[id]

		if owner != "" && r.owner != owner {
			continue
		}

		out = append(out, r.toAPI())
	}

	return out
}

// owned returns the record if it exists and belongs to owner.
// Callers must hold the lock.
func (s *Store) owned(owner, id string) (*record, error) {
	r, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}

	if r.owner != owner {
		return nil, ErrForbidden
	}

	return r, nil
}

// Update replaces the mutable fields of a pet.  Blank values leave the
// existing value in place.
func (s *Store) Update(owner, id, name, animalType, age string) (openapi.Pet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.owned(owner, id)
	if err != nil {
		return openapi.Pet{}, err
	}

	if name != "" {
		r.name = name
	}

	if animalType != "" {
		r.animalType = animalType
	}

	if age != "" {
		r.age = age
	}

	return r.toAPI(), nil
}

// SetPhoto attaches a photo to a pet.
func (s *Store) SetPhoto(owner, id, photo string) (openapi.Pet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.owned(owner, id)
	if err != nil {
		return openapi.Pet{}, err
	}

	r.photo = ptr.To(photo)

	return r.toAPI(), nil
}

// Delete removes a pet.  Unknown IDs are not an error.
func (s *Store) Delete(owner, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.owned(owner, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}

		return err
	}

	delete(s.byID, id)
	s.ordered = slices.DeleteFunc(s.ordered, func(x string) bool { return x == id })

	return nil
}
