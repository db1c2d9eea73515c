package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"resume-architect/internal/model"
	"resume-architect/pkg/doctext"
)

// Extract runs the structured extraction call for an uploaded file and
// returns a fully populated ResumeData. A nil, nil return is the no-result
// signal: the caller shows a "could not extract" message and keeps the
// previous document. Callers must pre-validate size; this adapter does not.
func (c *Client) Extract(ctx context.Context, data []byte, mimeType string, lang model.Language) (*model.ResumeData, error) {
	if c.APIKey == "" {
		log.Printf("ai: extraction skipped, no API key configured")
		return nil, nil
	}

	prompt := extractionPrompt(lang)
	var parts []part
	switch {
	case doctext.NeedsLocalText(mimeType):
		// Word documents cannot go to the multimodal endpoint as bytes; the
		// text must be pulled out locally first. Extraction failure is an
		// explicit error, never silently empty output.
		text, err := doctext.Extract(mimeType, data)
		if err != nil {
			return nil, fmt.Errorf("word text extraction: %w", err)
		}
		parts = []part{textPart("Resume Text Content:\n" + text), textPart(prompt)}
	case c.TextOnly && mimeType == doctext.MimePDF:
		text, err := doctext.Extract(mimeType, data)
		if err != nil {
			return nil, fmt.Errorf("pdf text extraction: %w", err)
		}
		parts = []part{textPart("Resume Text Content:\n" + text), textPart(prompt)}
	default:
		parts = []part{filePart(mimeType, data), textPart(prompt)}
	}

	raw, err := c.generateJSON(ctx, parts, extractionSchema())
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	if c.SchemaPath != "" {
		if err := model.ValidatePayload(c.SchemaPath, []byte(raw)); err != nil {
			log.Printf("ai: extraction response rejected: %v", err)
			return nil, nil
		}
	}
	parsed, err := DecodeExtraction(raw, c.IDs)
	if err != nil {
		log.Printf("ai: extraction response is not valid JSON: %v", err)
		return nil, nil
	}
	return parsed, nil
}

// Translate returns a new document with textual fields in the target
// language. Ids and the avatar are stripped before the call and re-attached
// afterwards. Any failure aborts the whole operation; there is no partial
// merge.
func (c *Client) Translate(ctx context.Context, data model.ResumeData, target model.Language) (model.ResumeData, error) {
	payload, err := json.Marshal(translationPayload(data))
	if err != nil {
		return model.ResumeData{}, err
	}
	raw, err := c.generateJSON(ctx, []part{textPart(translationPrompt(target, string(payload)))}, translationSchema())
	if err != nil {
		return model.ResumeData{}, err
	}
	if raw == "" {
		return model.ResumeData{}, fmt.Errorf("no response from translation")
	}
	if c.SchemaPath != "" {
		if err := model.ValidatePayload(c.SchemaPath, []byte(raw)); err != nil {
			return model.ResumeData{}, err
		}
	}
	return MergeTranslation(data, raw, c.IDs)
}
