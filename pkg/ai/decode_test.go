package ai

import (
	"fmt"
	"testing"

	"resume-architect/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seqGen struct{ n int }

func (g *seqGen) NewID() string {
	g.n++
	return fmt.Sprintf("gen-%d", g.n)
}

const extractionReply = `{
	"personalInfo": {"fullName": "Li Ming", "phone": "13800000000"},
	"summary": "Backend engineer.",
	"experience": [
		{"title": "Engineer", "company": "Acme", "startDate": "2021-03", "endDate": "Present", "description": "Built things."}
	],
	"projects": [],
	"education": [
		{"degree": "B.S.", "major": "CS", "school": "Tsinghua", "startDate": "2017-09", "endDate": "2021-06"}
	],
	"skills": ["Go", "PostgreSQL"]
}`

func TestDecodeExtraction(t *testing.T) {
	gen := &seqGen{}
	got, err := DecodeExtraction(extractionReply, gen)
	require.NoError(t, err)

	assert.Equal(t, "Li Ming", got.PersonalInfo.FullName)
	// missing fields coerce to empty strings, never panic
	assert.Empty(t, got.PersonalInfo.Email)
	assert.Empty(t, got.PersonalInfo.Avatar)

	require.Len(t, got.Experience, 1)
	assert.Equal(t, "gen-1", got.Experience[0].ID)

	require.Len(t, got.Skills, 2)
	assert.Equal(t, "Go", got.Skills[0].Name)
	assert.Equal(t, model.DefaultSkillLevel, got.Skills[0].Level)
	assert.Equal(t, model.DefaultSkillLevel, got.Skills[1].Level)
	assert.NotEqual(t, got.Skills[0].ID, got.Skills[1].ID)

	// normalized lists round-trip as arrays
	assert.NotNil(t, got.Projects)
}

func TestDecodeExtractionSalvagesWrappedJSON(t *testing.T) {
	gen := &seqGen{}
	wrapped := "Here is the resume data:\n```json\n" + extractionReply + "\n```"
	got, err := DecodeExtraction(wrapped, gen)
	require.NoError(t, err)
	assert.Equal(t, "Li Ming", got.PersonalInfo.FullName)
}

func TestDecodeExtractionRejectsGarbage(t *testing.T) {
	gen := &seqGen{}
	_, err := DecodeExtraction("no json here", gen)
	assert.Error(t, err)
}

func TestTranslationPayloadStripsPrivateFields(t *testing.T) {
	data := model.SampleResume(&seqGen{})
	data.PersonalInfo.Avatar = "data:image/png;base64,AAAA"

	w := translationPayload(data)
	assert.Equal(t, data.PersonalInfo.FullName, w.PersonalInfo.FullName)
	require.Len(t, w.Skills, len(data.Skills))
	assert.Equal(t, data.Skills[0].Name, w.Skills[0])
	// wire types carry no id or avatar fields at all; spot-check the lists
	require.Len(t, w.Experience, len(data.Experience))
	assert.Equal(t, data.Experience[0].Title, w.Experience[0].Title)
}

func TestMergeTranslationReattachesByPosition(t *testing.T) {
	orig := model.SampleResume(&seqGen{})
	orig.PersonalInfo.Avatar = "data:image/png;base64,AAAA"
	orig.Skills = orig.Skills[:2] // React 90, TypeScript 85

	reply := `{
		"personalInfo": {"fullName": "艾利克斯·多伊"},
		"summary": "注重结果的软件工程师。",
		"experience": [
			{"title": "高级软件工程师", "company": "科技方案公司", "startDate": "2021-03", "endDate": "至今", "description": "带领团队。"},
			{"title": "软件开发工程师", "company": "创意初创", "startDate": "2018-06", "endDate": "2021-02", "description": "前端开发。"}
		],
		"projects": [
			{"name": "电商分析仪表盘", "role": "前端负责人", "startDate": "2020-01", "endDate": "2020-06", "description": "实时分析。"}
		],
		"education": [
			{"degree": "学士", "major": "计算机科学", "school": "理工大学", "startDate": "2018-09", "endDate": "2022-06"}
		],
		"skills": ["React", "TypeScript", "Kubernetes"]
	}`

	gen := &seqGen{n: 100}
	got, err := MergeTranslation(orig, reply, gen)
	require.NoError(t, err)

	// ids come back positionally
	assert.Equal(t, orig.Experience[0].ID, got.Experience[0].ID)
	assert.Equal(t, orig.Experience[1].ID, got.Experience[1].ID)
	assert.Equal(t, orig.Projects[0].ID, got.Projects[0].ID)
	assert.Equal(t, orig.Education[0].ID, got.Education[0].ID)

	// the avatar never crossed the boundary and is restored verbatim
	assert.Equal(t, orig.PersonalInfo.Avatar, got.PersonalInfo.Avatar)

	// age and gender fall back to pre-translation values when omitted
	assert.Equal(t, orig.PersonalInfo.Age, got.PersonalInfo.Age)
	assert.Equal(t, orig.PersonalInfo.Gender, got.PersonalInfo.Gender)

	// skill levels preserved by index; the surplus entry gets defaults
	require.Len(t, got.Skills, 3)
	assert.Equal(t, orig.Skills[0].ID, got.Skills[0].ID)
	assert.Equal(t, 90, got.Skills[0].Level)
	assert.Equal(t, 85, got.Skills[1].Level)
	assert.Equal(t, model.DefaultSkillLevel, got.Skills[2].Level)
	assert.NotContains(t, []string{orig.Skills[0].ID, orig.Skills[1].ID}, got.Skills[2].ID)
}

func TestMergeTranslationRejectsGarbage(t *testing.T) {
	orig := model.SampleResume(&seqGen{})
	_, err := MergeTranslation(orig, "not json", &seqGen{})
	assert.Error(t, err)
}
