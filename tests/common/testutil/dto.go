//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"
)

// DtoMap marshals a DTO to a mutable map so tests can drop or corrupt
// individual fields before sending the payload.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()
	b, _ := json.Marshal(v)
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	for _, f := range muts {
		f(m)
	}
	return m
}

// Field sets key to value, or removes the key when value is nil.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}
