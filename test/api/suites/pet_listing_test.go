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

var _ = Describe("Pet Listing", func() {
	var token string

	BeforeEach(func() {
		token = api.MustGetAPIKey(petClient, ctx, api.ValidCredentials(config))
	})

	Context("When listing all pets", func() {
		Describe("Given a valid key", func() {
			It("should return a non-empty list", func() {
				response, err := petClient.GetListOfPets(ctx, token, openapi.FilterAll)
				Expect(err).NotTo(HaveOccurred())
				Expect(response.StatusCode).To(Equal(http.StatusOK))

				list, err := response.Pets()
				Expect(err).NotTo(HaveOccurred())
				Expect(list.Pets).NotTo(BeEmpty())
			})
		})
	})

	Context("When listing my pets", func() {
		Describe("Given I have created a pet", func() {
			It("should include only pets I own", func() {
				created := api.CreatePetWithCleanup(petClient, ctx, token, api.NewPetPayload().WithoutPhoto().Build())
				Expect(created.StatusCode).To(Equal(http.StatusOK))

				pet, err := created.Pet()
				Expect(err).NotTo(HaveOccurred())

				mine := api.MustListPets(petClient, ctx, token, openapi.FilterMyPets)
				Expect(mine.IDs()).To(ContainElement(pet.ID))

				for _, p := range mine.Pets {
					if p.UserID != "" {
						Expect(p.UserID).To(Equal(mine.Pets[0].UserID))
					}
				}
			})
		})
	})
})
