package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIDFormat(t *testing.T) {
	id := GenerateID(EntityCompany)

	parts := strings.SplitN(id, "_", 2)
	require.Len(t, parts, 2)
	assert.Equal(t, "co", parts[0])
	assert.Len(t, parts[1], idTokenLength)
	for _, r := range parts[1] {
		assert.Contains(t, idAlphabet, string(r))
	}
}

func TestGenerateIDPrefixes(t *testing.T) {
	cases := map[EntityType]string{
		EntityCompany:   "co",
		EntityProject:   "pj",
		EntityTool:      "tl",
		EntityBlueprint: "bp",
		EntityIndustry:  "in",
		EntityNiche:     "ni",
	}
	for entity, prefix := range cases {
		assert.True(t, strings.HasPrefix(GenerateID(entity), prefix+"_"))
	}
}

func TestGenerateIDUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := GenerateID(EntityProject)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestGenerateIDUnknownEntityPanics(t *testing.T) {
	assert.Panics(t, func() { GenerateID("widget") })
}
