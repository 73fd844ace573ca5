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

// Package janitor removes records the acceptance suites leave behind,
// for example when a run is interrupted before its cleanup executes.
package janitor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spjmurray/go-util/pkg/set"
	"go.uber.org/zap"

	"github.com/nscaledev/petfriends/pkg/client"
	"github.com/nscaledev/petfriends/pkg/constants"
	"github.com/nscaledev/petfriends/pkg/openapi"
)

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrMissingPrefix      = errors.New("name prefix must not be empty")
	ErrAuthentication     = errors.New("authentication failed")
	ErrUnexpectedStatus   = errors.New("unexpected status")
	ErrIncomplete         = errors.New("some pets were not deleted")
)

type Options struct {
	BaseURL    string
	Email      string
	Password   string
	NamePrefix string
	DryRun     bool
	Timeout    time.Duration
	LogLevel   string
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.BaseURL, "base-url", constants.DefaultBaseURL, "PetFriends service to clean")
	f.StringVar(&o.Email, "email", os.Getenv("PETFRIENDS_EMAIL"), "Account email, defaults to $PETFRIENDS_EMAIL")
	f.StringVar(&o.Password, "password", os.Getenv("PETFRIENDS_PASSWORD"), "Account password, defaults to $PETFRIENDS_PASSWORD")
	f.StringVar(&o.NamePrefix, "name-prefix", "autotest-", "Only delete pets whose name starts with this")
	f.BoolVar(&o.DryRun, "dry-run", false, "Report what would be deleted without deleting it")
	f.DurationVar(&o.Timeout, "timeout", 30*time.Second, "Per request timeout")
	f.StringVar(&o.LogLevel, "log-level", "info", "Log level")
}

// Validate checks the options are usable.
func (o *Options) Validate() error {
	if o.Email == "" || o.Password == "" {
		return ErrMissingCredentials
	}

	if o.NamePrefix == "" {
		return ErrMissingPrefix
	}

	return nil
}

// Result records what a run did.
type Result struct {
	// Matched are the pets whose name has the prefix.
	Matched []string
	// Deleted are the pets confirmed gone.
	Deleted []string
	// Failed are the pets that could not be deleted.
	Failed []string
}

// Janitor deletes pets owned by an account.
type Janitor struct {
	client  *client.APIClient
	options *Options
	logger  *zap.Logger
}

// New returns a new janitor with required parameters.
func New(client *client.APIClient, options *Options, logger *zap.Logger) *Janitor {
	return &Janitor{
		client:  client,
		options: options,
		logger:  logger,
	}
}

func (j *Janitor) listOwned(ctx context.Context, token string) (*openapi.PetList, error) {
	response, err := j.client.GetListOfPets(ctx, token, openapi.FilterMyPets)
	if err != nil {
		return nil, err
	}

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: listing pets returned %d", ErrUnexpectedStatus, response.StatusCode)
	}

	return response.Pets()
}

// Run deletes every owned pet whose name has the configured prefix.
func (j *Janitor) Run(ctx context.Context) (*Result, error) {
	if err := j.options.Validate(); err != nil {
		return nil, err
	}

	response, err := j.client.GetAPIKey(ctx, j.options.Email, j.options.Password)
	if err != nil {
		return nil, err
	}

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrAuthentication, response.StatusCode)
	}

	token, err := response.Key()
	if err != nil {
		return nil, err
	}

	list, err := j.listOwned(ctx, token)
	if err != nil {
		return nil, err
	}

	result := &Result{}

	var requested []string

	for _, pet := range list.Pets {
		if !strings.HasPrefix(pet.Name, j.options.NamePrefix) {
			continue
		}

		result.Matched = append(result.Matched, pet.ID)

		if j.options.DryRun {
			j.logger.Info("would delete pet", zap.String("id", pet.ID), zap.String("name", pet.Name))
			continue
		}

		response, err := j.client.DeleteMyPet(ctx, token, pet.ID)
		if err != nil {
			return nil, err
		}

		if response.StatusCode != http.StatusOK {
			j.logger.Warn("delete rejected", zap.String("id", pet.ID), zap.Int("status", response.StatusCode))

			result.Failed = append(result.Failed, pet.ID)

			continue
		}

		j.logger.Info("deleted pet", zap.String("id", pet.ID), zap.String("name", pet.Name))

		requested = append(requested, pet.ID)
	}

	if len(requested) == 0 {
		return result, nil
	}

	// The service answers 200 for deletes it ignores, so check the listing.
	after, err := j.listOwned(ctx, token)
	if err != nil {
		return nil, err
	}

	requestedIDs := set.New[string](requested...)
	remainingIDs := set.New[string](after.IDs()...)

	intersection := requestedIDs.Intersection(remainingIDs)

	lingering := slices.Collect(intersection.All())

	for _, id := range requested {
		if slices.Contains(lingering, id) {
			j.logger.Warn("pet still listed after delete", zap.String("id", id))

			result.Failed = append(result.Failed, id)

			continue
		}

		result.Deleted = append(result.Deleted, id)
	}

	if len(result.Failed) > 0 {
		return result, fmt.Errorf("%w: %d of %d", ErrIncomplete, len(result.Failed), len(result.Matched))
	}

	return result, nil
}
