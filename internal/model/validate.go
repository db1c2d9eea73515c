package model

import (
	"fmt"
	"path/filepath"

	"github.com/xeipuuv/gojsonschema"
)

// ValidatePayload validates a raw AI response body against the resume JSON
// schema shipped in the templates directory. The payload shape is the wire
// shape (skills as bare strings, no ids), not ResumeData itself.
func ValidatePayload(schemaPath string, raw []byte) error {
	// The reference loader wants a URI, and the schema path from config is
	// usually relative to the working directory.
	abs, err := filepath.Abs(schemaPath)
	if err != nil {
		return err
	}
	schemaLoader := gojsonschema.NewReferenceLoader("file://" + filepath.ToSlash(abs))
	docLoader := gojsonschema.NewBytesLoader(raw)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := ""
	for _, e := range res.Errors() {
		msgs += fmt.Sprintf("%s; ", e.String())
	}
	return fmt.Errorf("schema validation failed: %s", msgs)
}
