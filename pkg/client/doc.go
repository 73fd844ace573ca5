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

// Package client is a thin HTTP client for the PetFriends service.
//
// Every operation issues exactly one request and returns the status code
// together with the decoded body, whatever the status was.  An error is
// only returned for local failures: a request that could not be built, a
// photo that could not be read, or a transport failure.  Judging the
// outcome is left to the caller.
//
// Bodies are decoded as JSON.  When that fails (the service answers
// rejected credentials with an HTML page) the raw text is kept instead,
// see Response.
//
// There is deliberately no retry, pooling or rate limiting; the suite
// wants to observe the service exactly as a single caller would.
package client
