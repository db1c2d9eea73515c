package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguageToggle(t *testing.T) {
	assert.Equal(t, LangEN, LangZH.Toggle())
	assert.Equal(t, LangZH, LangEN.Toggle())
}

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, LangZH, ParseLanguage("zh"))
	assert.Equal(t, LangEN, ParseLanguage("en"))
	assert.Equal(t, LangEN, ParseLanguage("de"))
	assert.Equal(t, LangEN, ParseLanguage(""))
}

func TestPresentSentinel(t *testing.T) {
	assert.Equal(t, "Present", PresentSentinel(LangEN))
	assert.Equal(t, "至今", PresentSentinel(LangZH))

	for _, s := range []string{"Present", "Ongoing", "至今", "进行中"} {
		assert.True(t, IsPresentSentinel(s), s)
	}
	assert.False(t, IsPresentSentinel("2023-01"))
	assert.False(t, IsPresentSentinel(""))
}

func TestNormalizeReplacesNilLists(t *testing.T) {
	var r ResumeData
	r.Normalize()

	raw, err := json.Marshal(r)
	require.NoError(t, err)
	// arrays, never null
	assert.NotContains(t, string(raw), `"experience":null`)
	assert.Contains(t, string(raw), `"experience":[]`)
	assert.Contains(t, string(raw), `"skills":[]`)
}

func TestCloneDetachesLists(t *testing.T) {
	r := SampleResume(UUIDGen{})
	c := r.Clone()
	c.Skills[0].Name = "changed"
	c.Experience[0].Title = "changed"
	c.Education[0].School = "changed"
	c.Projects[0].Name = "changed"

	assert.NotEqual(t, "changed", r.Skills[0].Name)
	assert.NotEqual(t, "changed", r.Experience[0].Title)
	assert.NotEqual(t, "changed", r.Education[0].School)
	assert.NotEqual(t, "changed", r.Projects[0].Name)

	// cloned lists stay arrays through JSON even when empty
	var empty ResumeData
	empty.Normalize()
	c2 := empty.Clone()
	assert.NotNil(t, c2.Skills)
	assert.NotNil(t, c2.Experience)
}

func TestSampleResumeIDsAreUnique(t *testing.T) {
	r := SampleResume(UUIDGen{})
	seen := map[string]bool{}
	for _, e := range r.Experience {
		assert.False(t, seen[e.ID])
		seen[e.ID] = true
	}
	for _, s := range r.Skills {
		assert.False(t, seen[s.ID])
		seen[s.ID] = true
	}
	assert.Equal(t, "Present", r.Experience[0].EndDate)
	assert.Equal(t, 90, r.Skills[0].Level)
}
