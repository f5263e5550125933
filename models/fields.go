// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "sort"

func presentFields(flags map[string]bool) []string {
	fields := make([]string, 0, len(flags))
	for name, present := range flags {
		if present {
			fields = append(fields, name)
		}
	}
	sort.Strings(fields)
	return fields
}

// NoFilter is the filter of listings that take no criteria.
type NoFilter struct{}
