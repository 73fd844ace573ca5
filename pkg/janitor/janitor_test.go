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

package janitor_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/nscaledev/petfriends/pkg/client"
	"github.com/nscaledev/petfriends/pkg/janitor"
	"github.com/nscaledev/petfriends/test/fake"
)

const (
	email    = "janitor@example.com"
	password = "sweep"
	other    = "bystander@example.com"
)

func seed(t *testing.T, f *fake.Server) (string, string, string) {
	t.Helper()

	store := f.Store()

	stale := store.Create(email, "autotest-1a2b3c4d", "cat", "3", nil)
	kept := store.Create(email, "Barsik", "cat", "5", nil)
	foreign := store.Create(other, "autotest-deadbeef", "dog", "2", nil)

	return stale.ID, kept.ID, foreign.ID
}

func newJanitor(t *testing.T, handler http.Handler, dryRun bool) (*janitor.Janitor, *observer.ObservedLogs) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := client.New(server.URL)
	require.NoError(t, err)

	core, logs := observer.New(zap.InfoLevel)

	options := &janitor.Options{
		Email:      email,
		Password:   password,
		NamePrefix: "autotest-",
		DryRun:     dryRun,
	}

	return janitor.New(c, options, zap.New(core)), logs
}

func newFake() *fake.Server {
	return fake.New(fake.Options{
		Accounts: map[string]string{
			email: password,
			other: "other",
		},
	})
}

func TestRunDeletesPrefixedPets(t *testing.T) {
	t.Parallel()

	f := newFake()
	stale, kept, foreign := seed(t, f)

	j, _ := newJanitor(t, f.Handler(), false)

	result, err := j.Run(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []string{stale}, result.Matched)
	assert.Equal(t, []string{stale}, result.Deleted)
	assert.Empty(t, result.Failed)

	assert.Equal(t, []string{kept}, idsOf(f, email))
	assert.Equal(t, []string{foreign}, idsOf(f, other))
}

func TestRunDryRun(t *testing.T) {
	t.Parallel()

	f := newFake()
	stale, kept, _ := seed(t, f)

	j, logs := newJanitor(t, f.Handler(), true)

	result, err := j.Run(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []string{stale}, result.Matched)
	assert.Empty(t, result.Deleted)

	assert.ElementsMatch(t, []string{stale, kept}, idsOf(f, email))
	assert.Equal(t, 1, logs.FilterMessage("would delete pet").Len())
}

func TestRunDetectsIgnoredDeletes(t *testing.T) {
	t.Parallel()

	f := newFake()
	stale, _, _ := seed(t, f)

	handler := f.Handler()

	ignoreDeletes := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusOK)
			return
		}

		handler.ServeHTTP(w, r)
	})

	j, logs := newJanitor(t, ignoreDeletes, false)

	result, err := j.Run(t.Context())
	require.ErrorIs(t, err, janitor.ErrIncomplete)
	assert.Equal(t, []string{stale}, result.Failed)
	assert.Empty(t, result.Deleted)
	assert.Equal(t, 1, logs.FilterMessage("pet still listed after delete").Len())
}

func TestRunBadCredentials(t *testing.T) {
	t.Parallel()

	f := fake.New(fake.Options{Accounts: map[string]string{email: "different"}})

	j, _ := newJanitor(t, f.Handler(), false)

	_, err := j.Run(t.Context())
	require.ErrorIs(t, err, janitor.ErrAuthentication)
}

func TestOptions(t *testing.T) {
	t.Parallel()

	var options janitor.Options

	flags := pflag.NewFlagSet("janitor", pflag.ContinueOnError)
	options.AddFlags(flags)

	require.NoError(t, flags.Parse([]string{"--email=a@b.c", "--password=x", "--dry-run", "--timeout=5s"}))
	assert.Equal(t, "a@b.c", options.Email)
	assert.True(t, options.DryRun)
	assert.Equal(t, "autotest-", options.NamePrefix)
	assert.Equal(t, "https://petfriends.skillfactory.ru", options.BaseURL)
	require.NoError(t, options.Validate())

	options.NamePrefix = ""
	require.ErrorIs(t, options.Validate(), janitor.ErrMissingPrefix)

	options.NamePrefix = "autotest-"
	options.Password = ""
	require.ErrorIs(t, options.Validate(), janitor.ErrMissingCredentials)
}

func idsOf(f *fake.Server, owner string) []string {
	pets := f.Store().List(owner)

	ids := make([]string, len(pets))

	for i := range pets {
		ids[i] = pets[i].ID
	}

	return ids
}
