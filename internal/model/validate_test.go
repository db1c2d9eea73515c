package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const schemaPath = "../../templates/resume.schema.json"

func TestValidatePayloadAccepts(t *testing.T) {
	payload := []byte(`{
		"personalInfo": {"fullName": "Li Ming"},
		"summary": "Engineer.",
		"experience": [{"title": "Dev", "company": "Acme", "startDate": "2021-01", "endDate": "Present", "description": "Work."}],
		"projects": [],
		"education": [{"degree": "B.S.", "major": "CS", "school": "U", "startDate": "2017-09", "endDate": "2021-06"}],
		"skills": ["Go"]
	}`)
	require.NoError(t, ValidatePayload(schemaPath, payload))
}

func TestValidatePayloadRejects(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"skills as objects", `{"personalInfo":{},"experience":[],"education":[],"skills":[{"name":"Go"}]}`},
		{"personalInfo as string", `{"personalInfo":"Li Ming","experience":[],"education":[],"skills":[]}`},
		{"experience as object", `{"personalInfo":{},"experience":{},"education":[],"skills":[]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, ValidatePayload(schemaPath, []byte(tc.payload)))
		})
	}
}
