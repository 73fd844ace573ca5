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

	"github.com/nscaledev/petfriends/test/api"
)

var _ = Describe("Authentication", func() {
	Context("When requesting an API key", func() {
		Describe("Given valid credentials", func() {
			It("should return a key", func() {
				credentials := api.ValidCredentials(config)

				response, err := petClient.GetAPIKey(ctx, credentials.Email, credentials.Password)
				Expect(err).NotTo(HaveOccurred())
				Expect(response.StatusCode).To(Equal(http.StatusOK))
				Expect(response.Has("key")).To(BeTrue(), "body: %v", response.Body)
				Expect(response.String("key")).NotTo(BeEmpty())
			})
		})

		Describe("Given invalid credentials", func() {
			DescribeTable("should be rejected without a key",
				func(credentials api.CredentialsFunc) {
					c := credentials(config)

					response, err := petClient.GetAPIKey(ctx, c.Email, c.Password)
					Expect(err).NotTo(HaveOccurred())
					Expect(response.StatusCode).To(Equal(http.StatusForbidden))
					Expect(response.Has("key")).To(BeFalse(), "body: %v", response.Body)
				},
				Entry("with an invalid password", api.CredentialsFunc(api.WrongPassword)),
				Entry("with an invalid email", api.CredentialsFunc(api.WrongEmail)),
				Entry("with a blank email", api.CredentialsFunc(api.BlankEmail)),
				Entry("with a blank password", api.CredentialsFunc(api.BlankPassword)),
			)
		})
	})
})
