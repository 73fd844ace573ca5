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

var _ = Describe("Pet Management", func() {
	var token string

	BeforeEach(func() {
		token = api.MustGetAPIKey(petClient, ctx, api.ValidCredentials(config))
	})

	Context("When creating a pet", func() {
		Describe("Given valid data and a photo", func() {
			It("should create the pet", func() {
				payload := api.NewPetPayload().WithPhoto(api.PhotoCat).Build()

				response := api.CreatePetWithCleanup(petClient, ctx, token, payload)
				Expect(response.StatusCode).To(Equal(http.StatusOK))
				Expect(response.String("name")).To(Equal(payload.Name))

				pet, err := response.Pet()
				Expect(err).NotTo(HaveOccurred())
				Expect(pet.AnimalType).To(Equal(payload.AnimalType))
				Expect(pet.Age.Raw).To(Equal(payload.Age))
				Expect(pet.HasPhoto()).To(BeTrue())
			})
		})

		Describe("Given valid data and no photo", func() {
			It("should create the pet", func() {
				payload := api.NewPetPayload().WithoutPhoto().Build()

				response := api.CreatePetWithCleanup(petClient, ctx, token, payload)
				Expect(response.StatusCode).To(Equal(http.StatusOK))
				Expect(response.String("name")).To(Equal(payload.Name))

				pet, err := response.Pet()
				Expect(err).NotTo(HaveOccurred())
				Expect(pet.HasPhoto()).To(BeFalse())
			})
		})
	})

	Context("When adding a photo to my pet", func() {
		Describe("Given I own a pet", func() {
			It("should attach the photo", func() {
				owned := api.MustEnsureOwnedPet(petClient, ctx, token, false)

				photo, err := api.PhotoPath(api.PhotoUpdate)
				Expect(err).NotTo(HaveOccurred())

				response, err := petClient.AddPhotoForMyPet(ctx, token, owned.ID, photo)
				Expect(err).NotTo(HaveOccurred())
				Expect(response.StatusCode).To(Equal(http.StatusOK))
				Expect(response.String("pet_photo")).NotTo(BeEmpty())
				Expect(response.String("pet_photo")).NotTo(Equal(photo))
			})
		})
	})

	Context("When changing my pet", func() {
		Describe("Given I own a pet", func() {
			It("should update the pet", func() {
				owned := api.MustEnsureOwnedPet(petClient, ctx, token, false)

				name := api.GeneratePetName()

				response, err := petClient.ChangeMyPet(ctx, token, owned.ID, name, "cat", "1")
				Expect(err).NotTo(HaveOccurred())
				Expect(response.StatusCode).To(Equal(http.StatusOK))
				Expect(response.String("name")).To(Equal(name))
			})
		})
	})

	Context("When deleting my pet", func() {
		Describe("Given I own a pet", func() {
			It("should remove it from my pets", func() {
				owned := api.MustEnsureOwnedPet(petClient, ctx, token, true)

				before := api.MustListPets(petClient, ctx, token, openapi.FilterMyPets)

				response, err := petClient.DeleteMyPet(ctx, token, owned.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(response.StatusCode).To(Equal(http.StatusOK))

				after := api.MustListPets(petClient, ctx, token, openapi.FilterMyPets)
				Expect(after.IDs()).NotTo(ContainElement(owned.ID))
				Expect(api.RemovedIDs(before.IDs(), after.IDs())).To(ContainElement(owned.ID))
			})
		})
	})
})
