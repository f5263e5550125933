// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "sort"

// Changes is the storage-side field set of a sparse patch: column name to new
// value. Columns missing from the map are left untouched.
type Changes map[string]any

// Columns returns the changed columns in a stable order.
func (c Changes) Columns() []string {
	columns := make([]string, 0, len(c))
	for column := range c {
		columns = append(columns, column)
	}
	sort.Strings(columns)
	return columns
}
