package knowledge

import (
	"os"
	"path/filepath"
	"testing"

	"resume-architect/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinContent(t *testing.T) {
	b, err := New("")
	require.NoError(t, err)

	en := b.Categories(model.LangEN)
	require.NotEmpty(t, en)
	assert.Equal(t, "resume", en[0].ID)
	assert.NotEmpty(t, en[0].Articles)

	zh := b.Categories(model.LangZH)
	require.NotEmpty(t, zh)
	assert.Equal(t, "简历撰写技巧", zh[0].Name)
}

func TestUnknownLanguageFallsBackToEnglish(t *testing.T) {
	b, err := New("")
	require.NoError(t, err)
	got := b.Categories(model.Language("fr"))
	assert.Equal(t, b.Categories(model.LangEN), got)
}

func TestYAMLOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "knowledge.yaml")
	content := `en:
  - id: custom
    name: Custom Tips
    articles:
      - title: One Tip
        content: Keep it short.
zh:
  - id: custom
    name: 自定义
    articles:
      - title: 一条建议
        content: 保持简洁。
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	b, err := New(path)
	require.NoError(t, err)

	en := b.Categories(model.LangEN)
	require.Len(t, en, 1)
	assert.Equal(t, "Custom Tips", en[0].Name)
	assert.Equal(t, "Keep it short.", en[0].Articles[0].Content)

	zh := b.Categories(model.LangZH)
	assert.Equal(t, "自定义", zh[0].Name)
}

func TestYAMLOverrideErrors(t *testing.T) {
	_, err := New("/nonexistent/knowledge.yaml")
	assert.Error(t, err)

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("{not: [valid"), 0o644))
	_, err = New(bad)
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("{}"), 0o644))
	_, err = New(empty)
	assert.Error(t, err)
}
