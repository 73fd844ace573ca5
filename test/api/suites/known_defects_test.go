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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nscaledev/petfriends/pkg/openapi"
	"github.com/nscaledev/petfriends/test/api"
)

// The live service accepts all of these with 200.  The assertions are
// what it should do, run with --label-filter='!known-defect' to skip.
var _ = Describe("Input Validation", Label("known-defect"), func() {
	var token string

	BeforeEach(func() {
		token = api.MustGetAPIKey(petClient, ctx, api.ValidCredentials(config))
	})

	Context("When creating a pet without a photo", func() {
		Describe("Given a negative age", func() {
			It("should be rejected", func() {
				payload := api.NewPetPayload().WithoutPhoto().WithAge("-3").Build()

				response := api.CreatePetWithCleanup(petClient, ctx, token, payload)
				Expect(response.StatusCode).To(Equal(http.StatusBadRequest))
				Expect(response.String("name")).NotTo(Equal(payload.Name))
			})
		})

		Describe("Given a blank name and animal type", func() {
			It("should be rejected", func() {
				payload := api.NewPetPayload().WithoutPhoto().WithName("").WithAnimalType("").Build()

				response := api.CreatePetWithCleanup(petClient, ctx, token, payload)
				Expect(response.StatusCode).To(Equal(http.StatusBadRequest))
				Expect(response.Has("id")).To(BeFalse())
			})
		})
	})

	Context("When creating a pet with a photo", func() {
		Describe("Given a blank name, animal type and age", func() {
			It("should be rejected", func() {
				payload := api.NewPetPayload().Blank().WithPhoto(api.PhotoCat).Build()

				response := api.CreatePetWithCleanup(petClient, ctx, token, payload)
				Expect(response.StatusCode).To(Equal(http.StatusBadRequest))
				Expect(response.Has("id")).To(BeFalse())
			})
		})
	})

	Context("When changing my pet", func() {
		Describe("Given blank values", func() {
			It("should be rejected", func() {
				owned := api.MustEnsureOwnedPet(petClient, ctx, token, false)

				response, err := petClient.ChangeMyPet(ctx, token, owned.ID, "", "", "")
				Expect(err).NotTo(HaveOccurred())
				Expect(response.StatusCode).To(Equal(http.StatusBadRequest))

				mine := api.MustListPets(petClient, ctx, token, openapi.FilterMyPets)
				for _, pet := range mine.Pets {
					if pet.ID == owned.ID {
						Expect(pet.Name).NotTo(BeEmpty())
					}
				}
			})
		})
	})
})
