package domain

import (
	"time"

	"resume-architect/internal/model"
	"resume-architect/internal/render"
)

// Session is one editing workspace: a resume document plus the UI state that
// travels with it. Sessions live in memory only and expire with their TTL.
type Session struct {
	ID       string           `json:"id"`
	Resume   model.ResumeData `json:"resume"`
	Language model.Language   `json:"language"`
	Template render.Variant   `json:"template"`

	// Busy flags guard the three long-running operations. A second request
	// while the flag is set is ignored, mirroring a disabled button.
	Extracting  bool `json:"extracting"`
	Translating bool `json:"translating"`
	Exporting   bool `json:"exporting"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewSession seeds a workspace with the sample document so the preview is
// never empty. The default language is Chinese, matching the sample content's
// primary audience, and the default layout is modern.
func NewSession(id string, gen model.IDGen) *Session {
	now := time.Now()
	return &Session{
		ID:        id,
		Resume:    model.SampleResume(gen),
		Language:  model.LangZH,
		Template:  render.VariantModern,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch bumps the modification timestamp.
func (s *Session) Touch() {
	s.UpdatedAt = time.Now()
}

// Snapshot returns a detached copy safe to serialize or render while the
// live session keeps being edited.
func (s *Session) Snapshot() *Session {
	out := *s
	out.Resume = s.Resume.Clone()
	return &out
}
