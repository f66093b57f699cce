// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// mcp-manager HTTP handlers and middleware.
//
// All Msg* constants are human-readable strings written into the "error"
// field of JSON error bodies when the underlying error must not leak to the
// client.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded as JSON.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgNotFound is returned for API paths that are not registered.
	MsgNotFound = "not found"

	// MsgMethodNotAllowed is returned when a registered path is called with
	// a method it does not handle.
	MsgMethodNotAllowed = "method not allowed"
)
