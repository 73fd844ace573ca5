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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nscaledev/petfriends/pkg/client"
	"github.com/nscaledev/petfriends/pkg/openapi"
)

const (
	// InvalidPassword is never accepted for the configured account.
	InvalidPassword = "not-the-password-8f3a"
	// InvalidEmail is an address no account is registered with.
	InvalidEmail = "nobody@petfriends.invalid"
)

// Credentials are an email and password pair.
type Credentials struct {
	Email    string
	Password string
}

// ValidCredentials returns the configured account.
func ValidCredentials(config *TestConfig) Credentials {
	return Credentials{Email: config.Email, Password: config.Password}
}

// CredentialsFunc derives credentials from the configuration.  Table
// entries are built before the configuration is loaded, so they carry
// one of these rather than values.
type CredentialsFunc func(config *TestConfig) Credentials

// WrongPassword pairs the configured email with an invalid password.
func WrongPassword(config *TestConfig) Credentials {
	return Credentials{Email: config.Email, Password: InvalidPassword}
}

// WrongEmail pairs an unknown email with the configured password.
func WrongEmail(config *TestConfig) Credentials {
	return Credentials{Email: InvalidEmail, Password: config.Password}
}

// BlankEmail omits the email.
func BlankEmail(config *TestConfig) Credentials {
	return Credentials{Password: config.Password}
}

// BlankPassword omits the password.
func BlankPassword(config *TestConfig) Credentials {
	return Credentials{Email: config.Email}
}

// MustGetAPIKey acquires a token for the credentials, failing the test if
// the service does not issue one.
func MustGetAPIKey(apiClient *client.APIClient, ctx context.Context, credentials Credentials) string {
	response, err := apiClient.GetAPIKey(ctx, credentials.Email, credentials.Password)
	Expect(err).NotTo(HaveOccurred())
	Expect(response.StatusCode).To(Equal(http.StatusOK), "GET /api/key: %v", response.Body)

	key, err := response.Key()
	Expect(err).NotTo(HaveOccurred())

	return key
}

// DeleteOnCleanup schedules deletion of a record when the test finishes,
// whether it passed or not.
func DeleteOnCleanup(svc PetService, ctx context.Context, token, petID string) {
	DeferCleanup(func() {
		GinkgoWriter.Printf("Cleaning up pet: %s\n", petID)

		response, err := svc.DeleteMyPet(ctx, token, petID)
		if err != nil {
			GinkgoWriter.Printf("Warning: Failed to delete pet %s: %v\n", petID, err)
			return
		}

		if response.StatusCode != http.StatusOK {
			GinkgoWriter.Printf("Warning: Failed to delete pet %s: status %d\n", petID, response.StatusCode)
			return
		}

		GinkgoWriter.Printf("Successfully deleted pet: %s\n", petID)
	})
}

// CreatePetWithCleanup creates a record and, if the service accepted it,
// schedules its deletion.  The status is left for the caller to assert.
func CreatePetWithCleanup(svc PetService, ctx context.Context, token string, payload PetPayload) *client.Response {
	response, err := CreatePet(ctx, svc, token, payload)
	Expect(err).NotTo(HaveOccurred())

	if pet, err := response.Pet(); err == nil && pet.ID != "" {
		GinkgoWriter.Printf("Created pet with ID: %s\n", pet.ID)
		DeleteOnCleanup(svc, ctx, token, pet.ID)
	}

	return response
}

// MustEnsureOwnedPet establishes an owned record, failing the test with
// the reason if it cannot.  A record created for the purpose is deleted
// on cleanup unless keep is set.
func MustEnsureOwnedPet(svc PetService, ctx context.Context, token string, keep bool) *OwnedPet {
	seed := NewPetPayload().WithPhoto(PhotoSeed).Build()

	owned, err := EnsureOwnedPet(ctx, svc, token, seed)
	if err != nil {
		Fail(err.Error())
	}

	if owned.Created && !keep {
		DeleteOnCleanup(svc, ctx, token, owned.ID)
	}

	return owned
}

// MustListPets lists records, failing the test unless the service
// answers with a pet list.
func MustListPets(svc PetService, ctx context.Context, token, filter string) *openapi.PetList {
	response, err := svc.GetListOfPets(ctx, token, filter)
	Expect(err).NotTo(HaveOccurred())
	Expect(response.StatusCode).To(Equal(http.StatusOK), "GET /api/pets: %v", response.Body)

	list, err := response.Pets()
	Expect(err).NotTo(HaveOccurred())

	return list
}
