package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"resume-architect/internal/model"
)

// Client is a minimal Gemini generateContent client restricted to the two
// structured-output calls this service needs: resume extraction and resume
// translation.
type Client struct {
	APIKey  string
	BaseURL string
	Model   string
	// TextOnly forces PDFs through local text extraction instead of sending
	// the raw bytes as multimodal input (for models without vision support).
	TextOnly bool
	// SchemaPath points at the resume wire schema used to reject malformed
	// responses before they reach the document state. Empty disables it.
	SchemaPath string

	IDs    model.IDGen
	httpDo *http.Client
}

func New(apiKey, baseURL, geminiModel string, ids model.IDGen) *Client {
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	if geminiModel == "" {
		geminiModel = "gemini-2.5-flash"
	}
	if ids == nil {
		ids = model.UUIDGen{}
	}
	return &Client{
		APIKey:  apiKey,
		BaseURL: baseURL,
		Model:   geminiModel,
		IDs:     ids,
		httpDo: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generationConfig struct {
	ResponseMimeType string         `json:"responseMimeType"`
	ResponseSchema   map[string]any `json:"responseSchema"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func textPart(s string) part { return part{Text: s} }

func filePart(mimeType string, data []byte) part {
	return part{InlineData: &inlineData{
		MimeType: mimeType,
		Data:     base64.StdEncoding.EncodeToString(data),
	}}
}

// generateJSON runs one structured-output call and returns the raw JSON text
// of the first candidate. An empty candidate list or empty text comes back
// as ("", nil): the caller decides whether no-result is an error.
func (c *Client) generateJSON(ctx context.Context, parts []part, schema map[string]any) (string, error) {
	if c.APIKey == "" {
		return "", errors.New("gemini api key is empty")
	}
	reqBody := generateRequest{
		Contents: []content{{Parts: parts}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   schema,
		},
	}
	data, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.BaseURL, c.Model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.APIKey)

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errMap map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&errMap)
		return "", fmt.Errorf("gemini http %d: %v", resp.StatusCode, errMap)
	}
	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
