// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the command loop, client services, and background session
// watching into a single process lifecycle.
package client
