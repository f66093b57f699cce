// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidRequestBody is returned when a request body cannot be decoded
	// as JSON.
	ErrInvalidRequestBody = errors.New("invalid request body")
)
