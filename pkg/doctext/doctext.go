package doctext

// Local plain-text extraction for uploads that cannot (or should not) go to
// the multimodal endpoint as raw bytes. Word documents always come through
// here; PDFs only when the service runs in text-only mode.

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeDOC  = "application/msword"
	MimePNG  = "image/png"
	MimeJPEG = "image/jpeg"
)

// ErrUnsupported is returned when no local extractor exists for the type.
// Callers must surface this instead of silently producing empty output.
var ErrUnsupported = errors.New("no local text extraction available for this file type")

// NeedsLocalText reports whether the MIME type is a word-processor format
// that must be reduced to plain text before the AI call.
func NeedsLocalText(mimeType string) bool {
	return mimeType == MimeDOCX || mimeType == MimeDOC
}

// Extract returns the plain text of a supported document.
func Extract(mimeType string, data []byte) (string, error) {
	switch mimeType {
	case MimePDF:
		return fromPDF(data)
	case MimeDOCX, MimeDOC:
		return fromDocx(data)
	default:
		return "", ErrUnsupported
	}
}

func fromPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return collapseWhitespace(buf.String()), nil
}

// fromDocx pulls word/document.xml out of the OOXML container and strips the
// markup. Legacy .doc binaries are not zip archives, so they fail here with
// an explicit error rather than yielding empty text.
func fromDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errors.New("document is not a readable Word file")
	}
	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", err
			}
			docXML, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return "", err
			}
			break
		}
	}
	if len(docXML) == 0 {
		return "", errors.New("no document.xml found in docx")
	}
	s := string(docXML)
	// Paragraph and tab boundaries carry structure the tag stripper would lose.
	s = strings.ReplaceAll(s, "</w:p>", "\n")
	s = strings.ReplaceAll(s, "<w:tab/>", "\t")
	s = tagRe.ReplaceAllString(s, " ")
	return collapseWhitespace(s), nil
}

var (
	tagRe     = regexp.MustCompile(`<[^>]+>`)
	spaceRe   = regexp.MustCompile(`[ \t\r\f\v]+`)
	newlineRe = regexp.MustCompile(`\n+`)
)

func collapseWhitespace(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = spaceRe.ReplaceAllString(s, " ")
	s = newlineRe.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
