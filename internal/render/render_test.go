package render

import (
	"strings"
	"testing"

	"resume-architect/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New("../../templates")
	require.NoError(t, err)
	return r
}

func TestRenderAllVariants(t *testing.T) {
	r := newTestRenderer(t)
	data := model.SampleResume(model.UUIDGen{})

	for _, v := range Variants {
		t.Run(string(v), func(t *testing.T) {
			html, err := r.Render(data, v, model.LangEN)
			require.NoError(t, err)
			assert.Contains(t, html, "Alex Doe")
			assert.Contains(t, html, "Tech Solutions Inc.")
			assert.Contains(t, html, "University of Technology")
		})
	}
}

func TestRenderFormatsDates(t *testing.T) {
	r := newTestRenderer(t)
	data := model.SampleResume(model.UUIDGen{})

	html, err := r.Render(data, VariantModern, model.LangEN)
	require.NoError(t, err)
	assert.Contains(t, html, "2021.03")
	assert.NotContains(t, html, "2021-03")
	// the ongoing sentinel survives untouched
	assert.Contains(t, html, "Present")
}

func TestRenderOmitsEmptyProjects(t *testing.T) {
	r := newTestRenderer(t)
	data := model.SampleResume(model.UUIDGen{})
	data.Projects = nil

	for _, v := range Variants {
		t.Run(string(v), func(t *testing.T) {
			html, err := r.Render(data, v, model.LangEN)
			require.NoError(t, err)
			assert.NotContains(t, html, Headers(model.LangEN)["projects"])
			assert.NotContains(t, html, Headers(model.LangEN)["campus"])
		})
	}
}

func TestRenderOmitsEmptySummaryAndAvatar(t *testing.T) {
	r := newTestRenderer(t)
	data := model.SampleResume(model.UUIDGen{})
	data.Summary = ""
	data.PersonalInfo.Avatar = ""

	html, err := r.Render(data, VariantModern, model.LangEN)
	require.NoError(t, err)
	assert.NotContains(t, html, Headers(model.LangEN)["summary"])
	assert.NotContains(t, html, "<img")
}

func TestRenderAvatarDataURI(t *testing.T) {
	r := newTestRenderer(t)
	data := model.SampleResume(model.UUIDGen{})
	data.PersonalInfo.Avatar = "data:image/png;base64,iVBORw0KGgo="

	html, err := r.Render(data, VariantModern, model.LangEN)
	require.NoError(t, err)
	assert.Contains(t, html, `src="data:image/png;base64,iVBORw0KGgo="`)
	assert.NotContains(t, html, "ZgotmplZ")
}

func TestRenderChineseHeaders(t *testing.T) {
	r := newTestRenderer(t)
	data := model.SampleResume(model.UUIDGen{})

	html, err := r.Render(data, VariantClassic, model.LangZH)
	require.NoError(t, err)
	assert.Contains(t, html, "工作经历")
	assert.Contains(t, html, "教育经历")
}

func TestRenderSidebarSkillBars(t *testing.T) {
	r := newTestRenderer(t)
	data := model.SampleResume(model.UUIDGen{})
	data.Skills = []model.SkillItem{{ID: "s1", Name: "Go", Level: 85}}

	html, err := r.Render(data, VariantSidebar, model.LangEN)
	require.NoError(t, err)
	assert.Contains(t, html, "width: 85%")
}

func TestRenderFreshGradSplitsBullets(t *testing.T) {
	r := newTestRenderer(t)
	data := model.SampleResume(model.UUIDGen{})
	data.Experience = []model.Experience{{
		ID: "e1", Title: "Intern", Company: "Acme",
		StartDate: "2023-07", EndDate: "2023-09",
		Description: "• First thing\n• Second thing",
	}}

	html, err := r.Render(data, VariantFreshGrad, model.LangEN)
	require.NoError(t, err)
	assert.Contains(t, html, "<li>First thing</li>")
	assert.Contains(t, html, "<li>Second thing</li>")
	// the bullet glyph itself is stripped
	assert.Equal(t, 0, strings.Count(html, "<li>•"))
}

func TestParseVariantDefaultsToModern(t *testing.T) {
	assert.Equal(t, VariantModern, ParseVariant("bogus"))
	assert.Equal(t, VariantSidebar, ParseVariant("sidebar"))
}

func TestVariantNames(t *testing.T) {
	assert.Equal(t, "Fresh Grad", VariantFreshGrad.Name(model.LangEN))
	assert.Equal(t, "应届生", VariantFreshGrad.Name(model.LangZH))
	assert.Equal(t, "Modern", VariantModern.Name(model.Language("fr")))
}
