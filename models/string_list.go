// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// StringList is an ordered list of strings stored as a single comma-joined
// column. An empty stored value decodes to an empty, non-nil list.
type StringList []string

// SplitList splits a comma-joined value, trimming items and dropping empties.
func SplitList(s string) StringList {
	list := make(StringList, 0)
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			list = append(list, item)
		}
	}
	return list
}

// Join renders the list in its storage form.
func (l StringList) Join() string {
	return strings.Join(l, ",")
}

// Normalize trims every item and drops the empty ones so that the list
// survives a join/split round trip unchanged.
func (l StringList) Normalize() StringList {
	return SplitList(strings.Join(l, ","))
}

func (l StringList) Value() (driver.Value, error) {
	return l.Join(), nil
}

func (l *StringList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = make(StringList, 0)
	case string:
		*l = SplitList(v)
	case []byte:
		*l = SplitList(string(v))
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
	return nil
}

// MarshalJSON never produces null.
func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// UnmarshalJSON accepts either a JSON array of strings or a single
// comma-separated string, which is what the admin forms submit.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = StringList(items).Normalize()
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return fmt.Errorf("expected a list of strings or a comma-separated string: %w", err)
	}
	*l = SplitList(joined)
	return nil
}
