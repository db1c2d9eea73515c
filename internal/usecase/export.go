package usecase

import "regexp"

// Filename characters outside ASCII alphanumerics and CJK ideographs are
// replaced so the name survives every download dialog.
var filenameRe = regexp.MustCompile(`[^a-zA-Z0-9\x{4e00}-\x{9fa5}]`)

// ExportFilename builds the download name from the candidate's full name,
// e.g. "张伟_Resume.pdf" or "John_Doe_Resume.pdf".
func ExportFilename(fullName string, pdf bool) string {
	base := filenameRe.ReplaceAllString(fullName, "_")
	if base == "" {
		base = "resume"
	}
	ext := ".html"
	if pdf {
		ext = ".pdf"
	}
	return base + "_Resume" + ext
}
