// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// task tracker handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. Keeping them
// in one place ensures consistent wording throughout the API; existing
// clients match on several of them verbatim.
package app

// Success messages, written as {"message": ...}.
const (
	// MsgUserRegistered is returned after a successful signup.
	MsgUserRegistered = "User registered successfully"

	// MsgLoginSuccessful accompanies the bearer token issued by login.
	MsgLoginSuccessful = "Login successfully"

	// MsgValidJWT is returned by the token validation endpoint.
	MsgValidJWT = "Valid JWT"

	// MsgTaskAdded is returned after a task is created.
	MsgTaskAdded = "Task added successfully"

	// MsgTaskUpdated is returned after a task is updated.
	MsgTaskUpdated = "Task updated successfully"

	// MsgTaskDeleted is returned after a task is deleted.
	MsgTaskDeleted = "Task delete successfully"

	// MsgHealthy is returned by the health endpoint when the database answers.
	MsgHealthy = "OK"
)

// Failure messages, written as {"error": ...}.
const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidDataProvided is returned when a required field is missing.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgEmailAlreadyRegistered is returned when signup uses a taken email.
	MsgEmailAlreadyRegistered = "Email already registered"

	// MsgInvalidEmailOrPassword is returned for an unknown email and for a
	// wrong password alike.
	MsgInvalidEmailOrPassword = "Invalid email or password"

	// MsgAccessDenied is returned when no bearer token is presented.
	MsgAccessDenied = "Access Denied"

	// MsgTokenExpired is returned when a bearer token verifies but has expired.
	MsgTokenExpired = "Token expired"

	// MsgInvalidToken is returned for any other token verification failure.
	MsgInvalidToken = "Invalid Token"

	// MsgTaskNotFound is returned when the task does not exist or belongs to
	// another user.
	MsgTaskNotFound = "Task not found"

	// MsgTooManyRequests is returned by the credential rate limiter.
	MsgTooManyRequests = "Too many requests"

	// MsgDatabaseUnavailable is returned by the health endpoint.
	MsgDatabaseUnavailable = "database unavailable"
)
