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
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/nscaledev/petfriends/pkg/constants"
)

type TestConfig struct {
	BaseURL         string
	Email           string
	Password        string
	RequestTimeout  time.Duration
	LogLevel        string
	SkipIntegration bool
	LogRequests     bool
	LogResponses    bool
	ValidateSchema  bool
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if required configuration values are missing.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	v := viper.New()

	v.SetDefault("PETFRIENDS_BASE_URL", constants.DefaultBaseURL)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SKIP_INTEGRATION", false)
	v.SetDefault("LOG_REQUESTS", false)
	v.SetDefault("LOG_RESPONSES", false)
	v.SetDefault("VALIDATE_SCHEMA", false)

	v.AutomaticEnv()

	config := &TestConfig{
		BaseURL:         strings.TrimSpace(v.GetString("PETFRIENDS_BASE_URL")),
		Email:           v.GetString("PETFRIENDS_EMAIL"),
		Password:        v.GetString("PETFRIENDS_PASSWORD"),
		RequestTimeout:  getDurationWithDefault(v, "REQUEST_TIMEOUT", 30*time.Second),
		LogLevel:        v.GetString("LOG_LEVEL"),
		SkipIntegration: v.GetBool("SKIP_INTEGRATION"),
		LogRequests:     v.GetBool("LOG_REQUESTS"),
		LogResponses:    v.GetBool("LOG_RESPONSES"),
		ValidateSchema:  v.GetBool("VALIDATE_SCHEMA"),
	}

	// Validate required fields
	if err := validateRequiredFields(config); err != nil {
		return nil, err
	}

	return config, nil
}

// getDurationWithDefault gets a duration from the environment or returns default.
func getDurationWithDefault(v *viper.Viper, key string, defaultValue time.Duration) time.Duration {
	value := v.GetString(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

func loadEnvFile() {
	envPaths := []string{
		os.Getenv("PETFRIENDS_ENV_FILE"),
		"../../.env", // From test/api/suites directory
		"../.env",    // From test/api directory
		"test/.env",  // From the repository root
	}

	var envPath string

	for _, path := range envPaths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	// Existing environment variables take precedence.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// validateRequiredFields checks that all required configuration values are set.
func validateRequiredFields(config *TestConfig) error {
	var missing []string

	required := map[string]string{
		"PETFRIENDS_BASE_URL": config.BaseURL,
		"PETFRIENDS_EMAIL":    config.Email,
		"PETFRIENDS_PASSWORD": config.Password,
	}

	for envVar, value := range required {
		if value == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		sort.Strings(missing)

		return fmt.Errorf("%w: %s. Please set these environment variables or add them to test/.env", ErrMissingConfiguration, strings.Join(missing, ", "))
	}

	return nil
}
