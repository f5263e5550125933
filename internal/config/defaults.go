// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults returns the configuration used for every field no other source sets.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "travel-agency",
			TokenDuration: time.Hour,
			Version:       "dev",
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverPostgres,
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
			AllowedOrigins: []string{"http://localhost:5173"},
		},
		Log: Log{
			Level: "info",
		},
	}
}
