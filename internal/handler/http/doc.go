// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the JSON REST API of the travel agency.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as cookie sessions, request tracing, access logging, CORS
// and compression are handled in this package before requests are delegated
// to the service layer. Every error returned by a service is converted into
// a JSON body of the form {"error": "..."} by a single status mapper.
package http
