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

// Package api provides acceptance test utilities for the PetFriends service.
//
// # Independent Client
//
// The suites drive the service through pkg/client, a hand written client
// rather than one generated from the API description.  A change in the
// service's behaviour therefore shows up as a failing scenario instead of
// being absorbed by regenerated code.  The embedded API description is
// only used to flag response shape drift in the logs.
//
// # Known Defects
//
// Some scenarios assert the behaviour the service should have, and are
// expected to fail against the live service until it is fixed.  They are
// labelled "known-defect" so they can be excluded:
//
//	ginkgo --label-filter='!known-defect' ./test/api/suites
//
// # Side Effects
//
// Scenarios create records as the configured user.  Records a scenario
// creates are deleted when it finishes; cmd/petfriends-janitor removes
// anything left behind by an interrupted run.
package api
