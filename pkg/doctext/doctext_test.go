package doctext

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestNeedsLocalText(t *testing.T) {
	assert.True(t, NeedsLocalText(MimeDOCX))
	assert.True(t, NeedsLocalText(MimeDOC))
	assert.False(t, NeedsLocalText(MimePDF))
	assert.False(t, NeedsLocalText(MimePNG))
}

func TestExtractDocx(t *testing.T) {
	docx := buildDocx(t, `<w:document><w:body>`+
		`<w:p><w:r><w:t>Li Ming</w:t></w:r></w:p>`+
		`<w:p><w:r><w:t>Backend</w:t><w:tab/><w:t>Engineer</w:t></w:r></w:p>`+
		`</w:body></w:document>`)

	text, err := Extract(MimeDOCX, docx)
	require.NoError(t, err)
	assert.Contains(t, text, "Li Ming")
	assert.Contains(t, text, "Backend")
	assert.Contains(t, text, "Engineer")
	// paragraphs became separate lines
	assert.NotContains(t, text, "Li Ming Backend")
}

func TestExtractDocxRejectsNonZip(t *testing.T) {
	_, err := Extract(MimeDOCX, []byte("this is not a zip archive"))
	assert.Error(t, err)
}

func TestExtractDocxWithoutDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<styles/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = Extract(MimeDOCX, buf.Bytes())
	assert.Error(t, err)
}

func TestExtractUnsupportedType(t *testing.T) {
	_, err := Extract(MimePNG, []byte{0x89, 0x50})
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "a b \n c", collapseWhitespace("  a \t b \n\n\n c  "))
	assert.Equal(t, "one\ntwo", collapseWhitespace("one\n\n\ntwo"))
}
