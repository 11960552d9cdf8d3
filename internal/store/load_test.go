package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-search/internal/schemas"
)

func TestLoadFile(t *testing.T) {
	snapshot, err := LoadFile(filepath.Join("testdata", "candidates.json"))
	require.NoError(t, err)
	require.Equal(t, 2, snapshot.Len())

	elif, ok := snapshot.Get(uuid.MustParse("3f2c9d14-6a1b-4e2f-9c3d-8b7a6f5e4d3c"))
	require.True(t, ok)
	assert.Equal(t, "Elif Yilmaz", elif.Name)
	assert.Equal(t, []string{"go", "postgresql", "kubernetes"}, elif.Skills)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), elif.RegisteredAt)
	require.Len(t, elif.Experiences, 2)

	current := elif.Experiences[0]
	assert.True(t, current.IsCurrent)
	assert.Nil(t, current.EndDate)

	past := elif.Experiences[1]
	assert.False(t, past.IsCurrent)
	require.NotNil(t, past.EndDate)
	assert.Equal(t, time.Date(2021, 12, 31, 0, 0, 0, 0, time.UTC), *past.EndDate)

	// Sparse record with an RFC 3339 timestamp.
	mert, ok := snapshot.Get(uuid.MustParse("a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d"))
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 11, 2, 10, 30, 0, 0, time.UTC), mert.RegisteredAt)
	assert.Empty(t, mert.Skills)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join("testdata", "nope.json"))
	assert.Error(t, err)
}

func TestLoadBytes_SchemaViolation(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "missing required email",
			data: `[{"id": "3f2c9d14-6a1b-4e2f-9c3d-8b7a6f5e4d3c", "name": "No Email"}]`,
		},
		{
			name: "malformed id",
			data: `[{"id": "not-a-uuid", "name": "Bad ID", "email": "bad@example.com"}]`,
		},
		{
			name: "unknown field",
			data: `[{"id": "3f2c9d14-6a1b-4e2f-9c3d-8b7a6f5e4d3c", "name": "Extra", "email": "e@example.com", "salary": 100}]`,
		},
		{
			name: "bad education level",
			data: `[{"id": "3f2c9d14-6a1b-4e2f-9c3d-8b7a6f5e4d3c", "name": "Edu", "email": "e@example.com", "education_level": "bootcamp"}]`,
		},
		{
			name: "not an array",
			data: `{"id": "3f2c9d14-6a1b-4e2f-9c3d-8b7a6f5e4d3c"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadBytes([]byte(tt.data))
			var verr *schemas.ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestLoadBytes_BadDate(t *testing.T) {
	data := `[{
		"id": "3f2c9d14-6a1b-4e2f-9c3d-8b7a6f5e4d3c",
		"name": "Bad Date",
		"email": "bd@example.com",
		"work_experiences": [
			{"company_name": "Acme", "position": "Dev", "start_date": "last tuesday"}
		]
	}]`

	_, err := LoadBytes([]byte(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start_date")
}

func TestLoadBytes_Empty(t *testing.T) {
	snapshot, err := LoadBytes([]byte(`[]`))
	require.NoError(t, err)
	assert.Equal(t, 0, snapshot.Len())
}

func TestSnapshot_GetUnknown(t *testing.T) {
	snapshot := NewSnapshot(nil)
	_, ok := snapshot.Get(uuid.New())
	assert.False(t, ok)
}
