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
	"errors"

	"github.com/onsi/ginkgo/v2"
	"go.uber.org/zap"

	"github.com/nscaledev/petfriends/pkg/client"
	"github.com/nscaledev/petfriends/pkg/log"
)

var (
	// ErrMissingConfiguration is raised when required settings are absent.
	ErrMissingConfiguration = errors.New("missing required configuration")

	// ErrNoOwnedPets is raised when the test identity owns no records and
	// one could not be created.
	ErrNoOwnedPets = errors.New("no owned pets")
)

// NewTestLogger returns a logger that writes to the Ginkgo output stream,
// so it is only shown for failing tests or in verbose mode.
func NewTestLogger(config *TestConfig) *zap.Logger {
	level := config.LogLevel

	if config.LogRequests && level != "debug" {
		level = "debug"
	}

	return log.New(log.Options{
		Level:  level,
		Output: ginkgo.GinkgoWriter,
	})
}

// NewAPIClient returns a client for the configured service.
func NewAPIClient(baseURL string) (*client.APIClient, error) {
	config, err := LoadTestConfig()
	if err != nil {
		return nil, err
	}

	if baseURL == "" {
		baseURL = config.BaseURL
	}

	return newAPIClientWithConfig(config, baseURL, NewTestLogger(config))
}

func NewAPIClientWithConfig(config *TestConfig, logger *zap.Logger) (*client.APIClient, error) {
	return newAPIClientWithConfig(config, config.BaseURL, logger)
}

// common constructor logic.
func newAPIClientWithConfig(config *TestConfig, baseURL string, logger *zap.Logger) (*client.APIClient, error) {
	return client.New(baseURL,
		client.WithTimeout(config.RequestTimeout),
		client.WithLogger(logger),
		client.WithResponseLogging(config.LogResponses),
		client.WithSchemaValidation(config.ValidateSchema),
	)
}
