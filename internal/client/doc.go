// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the task tracker.
//
// Each invocation runs one command (signup, login, list, create, ...) against
// the server through an [adapter.ServerAdapter] and prints the result.
package client
