//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"shutterbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursorRoundTrip(t *testing.T) {
	id := uuid.New()
	created := time.Date(2026, 9, 1, 12, 30, 45, 123456000, time.UTC)

	cursor := queries.EncodeAfterCursor(created, id)

	gotTime, gotID, err := queries.DecodeAfterCursor(cursor)
	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.True(t, created.Equal(gotTime), "want %s got %s", created, gotTime)
}

func TestDecodeAfterCursorRejectsGarbage(t *testing.T) {
	cases := []struct {
		name   string
		cursor string
	}{
		{name: "empty", cursor: ""},
		{name: "not base64", cursor: "%%%"},
		{name: "missing version prefix", cursor: base64.URLEncoding.EncodeToString([]byte("123-" + uuid.New().String()))},
		{name: "unknown version", cursor: base64.URLEncoding.EncodeToString([]byte("v2:123-" + uuid.New().String()))},
		{name: "no separator", cursor: base64.URLEncoding.EncodeToString([]byte("v1:123456"))},
		{name: "bad timestamp", cursor: base64.URLEncoding.EncodeToString([]byte("v1:abc-" + uuid.New().String()))},
		{name: "bad uuid", cursor: base64.URLEncoding.EncodeToString([]byte("v1:123-not-a-uuid"))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(tc.cursor)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, 20, queries.ValidateLimit(0))
	assert.Equal(t, 20, queries.ValidateLimit(-5))
	assert.Equal(t, 1, queries.ValidateLimit(1))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit+1))
}
