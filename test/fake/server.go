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

// Package fake is an in-memory PetFriends service.  It answers the same
// routes with the same shapes as the live service, including accepting
// blank and negative values, so client code can be tested offline.
// Options.Strict switches those cases to the rejections the live service
// ought to make.
package fake

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/nscaledev/petfriends/pkg/openapi"
)

const (
	maxPhotoSize = 8 << 20

	forbiddenPage = "<!DOCTYPE html>\n<html><head><title>403 Forbidden</title></head>" +
		"<body><h1>Forbidden</h1><p>This user wasn't found in database</p></body></html>\n"
)

type contextKey int

const ownerKey contextKey = iota

// Options configure the service.
type Options struct {
	// Accounts maps email to password.
	Accounts map[string]string
	// Strict rejects blank names and types, and negative or malformed ages.
	Strict bool
}

// Server is the fake service.
type Server struct {
	options Options
	store   *Store

	mu     sync.Mutex
	tokens map[string]string
	keys   map[string]string
}

func New(options Options) *Server {
	return &Server{
		options: options,
		store:   NewStore(),
		tokens:  map[string]string{},
		keys:    map[string]string{},
	}
}

// Store gives direct access to the records.
func (s *Server) Store() *Store {
	return s.store
}

// Start serves on a loopback listener, the caller must Close it.
func (s *Server) Start() *httptest.Server {
	return httptest.NewServer(s.Handler())
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)

	r.Get("/api/key", s.getAPIKey)

	r.Group(func(r chi.Router) {
		r.Use(s.authenticate)

		r.Get("/api/pets", s.listPets)
		r.Post("/api/pets", s.createPet)
		r.Post("/api/create_pet_simple", s.createPetSimple)
		r.Post("/api/pets/set_photo/{petID}", s.setPhoto)
		r.Put("/api/pets/{petID}", s.updatePet)
		r.Delete("/api/pets/{petID}", s.deletePet)
	})

	return r
}

func writeJSONResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(v)
}

func writeTextResponse(w http.ResponseWriter, status int, contentType, body string) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)

	_, _ = io.WriteString(w, body)
}

func forbidden(w http.ResponseWriter) {
	writeTextResponse(w, http.StatusForbidden, "text/html; charset=utf-8", forbiddenPage)
}

func badRequest(w http.ResponseWriter, reason string) {
	writeTextResponse(w, http.StatusBadRequest, "text/html; charset=utf-8", "<p>Bad Request: "+reason+"</p>\n")
}

func storeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		badRequest(w, err.Error())
	case errors.Is(err, ErrForbidden):
		forbidden(w)
	default:
		writeTextResponse(w, http.StatusInternalServerError, "text/plain", err.Error())
	}
}

func (s *Server) getAPIKey(w http.ResponseWriter, r *http.Request) {
	email := r.Header.Get("email")
	password := r.Header.Get("password")

	expected, ok := s.options.Accounts[email]
	if !ok || email == "" || password == "" || password != expected {
		forbidden(w)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Keys are stable per user.
	key, ok := s.keys[email]
	if !ok {
		key = strings.ReplaceAll(uuid.NewString(), "-", "")
		s.keys[email] = key
		s.tokens[key] = email
	}

	writeJSONResponse(w, http.StatusOK, openapi.APIKey{Key: key})
}

func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		owner, ok := s.tokens[r.Header.Get("auth_key")]
		s.mu.Unlock()

		if !ok {
			forbidden(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ownerKey, owner)))
	})
}

func owner(r *http.Request) string {
	o, _ := r.Context().Value(ownerKey).(string)

	return o
}

// validate returns a reason when strict mode rejects the fields.
func (s *Server) validate(name, animalType, age string) string {
	if !s.options.Strict {
		return ""
	}

	if strings.TrimSpace(name) == "" {
		return "name is required"
	}

	if strings.TrimSpace(animalType) == "" {
		return "animal_type is required"
	}

	a, err := openapi.ParseAge(age)
	if err != nil || !a.Valid {
		return "age must be a whole number"
	}

	if a.Value < 0 {
		return "age must not be negative"
	}

	return ""
}

// readPhoto returns the uploaded photo as a data URI.
func readPhoto(r *http.Request) (string, error) {
	file, _, err := r.FormFile("pet_photo")
	if err != nil {
		return "", err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxPhotoSize))
	if err != nil {
		return "", err
	}

	return "data:" + http.DetectContentType(data) + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func (s *Server) listPets(w http.ResponseWriter, r *http.Request) {
	var pets []openapi.Pet

	switch filter := r.URL.Query().Get("filter"); filter {
	case openapi.FilterAll:
		pets = s.store.List("")
	case openapi.FilterMyPets:
		pets = s.store.List(owner(r))
	default:
		writeTextResponse(w, http.StatusInternalServerError, "text/plain", "Filter value is incorrect")
		return
	}

	writeJSONResponse(w, http.StatusOK, openapi.PetList{Pets: pets})
}

func (s *Server) createPet(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		badRequest(w, err.Error())
		return
	}

	name, animalType, age := r.FormValue("name"), r.FormValue("animal_type"), r.FormValue("age")

	if reason := s.validate(name, animalType, age); reason != "" {
		badRequest(w, reason)
		return
	}

	var photo *string

	if p, err := readPhoto(r); err == nil {
		photo = &p
	} else if s.options.Strict {
		badRequest(w, "pet_photo is required")
		return
	}

	writeJSONResponse(w, http.StatusOK, s.store.Create(owner(r), name, animalType, age, photo))
}

func (s *Server) createPetSimple(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		badRequest(w, err.Error())
		return
	}

	name, animalType, age := r.PostFormValue("name"), r.PostFormValue("animal_type"), r.PostFormValue("age")

	if reason := s.validate(name, animalType, age); reason != "" {
		badRequest(w, reason)
		return
	}

	writeJSONResponse(w, http.StatusOK, s.store.Create(owner(r), name, animalType, age, nil))
}

func (s *Server) setPhoto(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		badRequest(w, err.Error())
		return
	}

	photo, err := readPhoto(r)
	if err != nil {
		badRequest(w, "pet_photo is required")
		return
	}

	pet, err := s.store.SetPhoto(owner(r), chi.URLParam(r, "petID"), photo)
	if err != nil {
		storeError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, pet)
}

func (s *Server) updatePet(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		badRequest(w, err.Error())
		return
	}

	name, animalType, age := r.PostFormValue("name"), r.PostFormValue("animal_type"), r.PostFormValue("age")

	if reason := s.validate(name, animalType, age); reason != "" {
		badRequest(w, reason)
		return
	}

	pet, err := s.store.Update(owner(r), chi.URLParam(r, "petID"), name, animalType, age)
	if err != nil {
		storeError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, pet)
}

func (s *Server) deletePet(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(owner(r), chi.URLParam(r, "petID")); err != nil {
		storeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
