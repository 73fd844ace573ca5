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

package client

import (
	"errors"
)

var (
	// ErrPhotoNotFound is returned when a photo to upload does not exist.
	ErrPhotoNotFound = errors.New("photo not found")

	// ErrUnexpectedBody is returned by typed accessors when the body
	// does not have the expected shape.
	ErrUnexpectedBody = errors.New("unexpected response body")

	// ErrMissingPetID is returned when an operation needs a pet ID and
	// none was given.
	ErrMissingPetID = errors.New("pet ID must be specified")
)
