// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the application's HTTP listener.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown once SIGTERM, SIGINT or SIGQUIT is received.
package server
