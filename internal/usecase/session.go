package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"resume-architect/internal/domain"
	"resume-architect/internal/model"
	"resume-architect/internal/render"
	"resume-architect/pkg/doctext"
)

// ResumeAI is the language-model boundary. Extract may return nil, nil as a
// no-result signal; Translate either fully succeeds or fails.
type ResumeAI interface {
	Extract(ctx context.Context, data []byte, mimeType string, lang model.Language) (*model.ResumeData, error)
	Translate(ctx context.Context, data model.ResumeData, target model.Language) (model.ResumeData, error)
}

// PDFRenderer turns a standalone HTML document into PDF bytes.
type PDFRenderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// SessionRepo is the session persistence boundary.
type SessionRepo interface {
	Save(sess *domain.Session)
	Get(id string) (*domain.Session, error)
	Delete(id string)
}

// DefaultMaxUpload caps uploaded resume files at 5MB, checked before any
// bytes reach the AI boundary.
const DefaultMaxUpload = 5 * 1024 * 1024

var (
	ErrBusy        = fmt.Errorf("operation already in progress")
	ErrTooLarge    = fmt.Errorf("file exceeds the size limit")
	ErrUnsupported = fmt.Errorf("unsupported file type")
)

var allowedUploadTypes = map[string]bool{
	doctext.MimePDF:  true,
	doctext.MimePNG:  true,
	doctext.MimeJPEG: true,
	doctext.MimeDOCX: true,
	doctext.MimeDOC:  true,
}

// Manager owns session lifecycle and the long-running operations on a
// session's document. Every touch of a live session, reads included, happens
// under the manager lock; callers only ever receive detached snapshots, so
// serializing or rendering a result cannot race a concurrent edit.
type Manager struct {
	mu        sync.Mutex
	repo      SessionRepo
	ai        ResumeAI
	html      *render.Renderer
	pdf       PDFRenderer
	ids       model.IDGen
	maxUpload int64
}

func NewManager(repo SessionRepo, ai ResumeAI, html *render.Renderer, pdf PDFRenderer, ids model.IDGen, maxUpload int64) *Manager {
	if maxUpload <= 0 {
		maxUpload = DefaultMaxUpload
	}
	return &Manager{repo: repo, ai: ai, html: html, pdf: pdf, ids: ids, maxUpload: maxUpload}
}

// IDs exposes the id generator for item-level editor operations.
func (m *Manager) IDs() model.IDGen { return m.ids }

// Create starts a new session seeded with the sample document.
func (m *Manager) Create() *domain.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess := domain.NewSession(m.ids.NewID(), m.ids)
	m.repo.Save(sess)
	return sess.Snapshot()
}

// Get returns a detached snapshot. The live session is only ever touched
// under the manager lock; callers get copies they can serialize freely.
func (m *Manager) Get(id string) (*domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, err := m.repo.Get(id)
	if err != nil {
		return nil, err
	}
	return sess.Snapshot(), nil
}

func (m *Manager) Delete(id string) {
	m.repo.Delete(id)
}

// ReplaceResume swaps in a full document from the client. Items arriving
// without ids (e.g. rows pasted from elsewhere) get fresh ones.
func (m *Manager) ReplaceResume(id string, body []byte) (*domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, err := m.repo.Get(id)
	if err != nil {
		return nil, err
	}
	var data model.ResumeData
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("invalid resume payload: %w", err)
	}
	data.Normalize()
	for i := range data.Experience {
		if data.Experience[i].ID == "" {
			data.Experience[i].ID = m.ids.NewID()
		}
	}
	for i := range data.Projects {
		if data.Projects[i].ID == "" {
			data.Projects[i].ID = m.ids.NewID()
		}
	}
	for i := range data.Education {
		if data.Education[i].ID == "" {
			data.Education[i].ID = m.ids.NewID()
		}
	}
	for i := range data.Skills {
		if data.Skills[i].ID == "" {
			data.Skills[i].ID = m.ids.NewID()
		}
	}
	sess.Resume = data
	sess.Touch()
	m.repo.Save(sess)
	return sess.Snapshot(), nil
}

// Mutate runs fn against the session's document under the manager lock and
// persists the result. Handlers use it for the fine-grained editor ops.
func (m *Manager) Mutate(id string, fn func(r *model.ResumeData) error) (*domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, err := m.repo.Get(id)
	if err != nil {
		return nil, err
	}
	if err := fn(&sess.Resume); err != nil {
		return nil, err
	}
	sess.Touch()
	m.repo.Save(sess)
	return sess.Snapshot(), nil
}

// SetTemplate records the variant used for preview and export.
func (m *Manager) SetTemplate(id string, v render.Variant) (*domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, err := m.repo.Get(id)
	if err != nil {
		return nil, err
	}
	sess.Template = v
	sess.Touch()
	m.repo.Save(sess)
	return sess.Snapshot(), nil
}

// UploadAndExtract validates an uploaded file and runs AI extraction. The
// extracted document replaces the session's resume only on success; any
// failure or empty result keeps the previous document intact. The second
// return value reports whether a document was extracted.
func (m *Manager) UploadAndExtract(ctx context.Context, id string, mimeType string, data []byte) (*domain.Session, bool, error) {
	if int64(len(data)) > m.maxUpload {
		return nil, false, ErrTooLarge
	}
	if !allowedUploadTypes[mimeType] {
		return nil, false, ErrUnsupported
	}

	m.mu.Lock()
	sess, err := m.repo.Get(id)
	if err != nil {
		m.mu.Unlock()
		return nil, false, err
	}
	if sess.Extracting {
		m.mu.Unlock()
		return nil, false, ErrBusy
	}
	sess.Extracting = true
	lang := sess.Language
	m.repo.Save(sess)
	m.mu.Unlock()

	parsed, err := m.ai.Extract(ctx, data, mimeType, lang)

	m.mu.Lock()
	defer m.mu.Unlock()
	sess, getErr := m.repo.Get(id)
	if getErr != nil {
		return nil, false, getErr
	}
	sess.Extracting = false
	defer m.repo.Save(sess)
	if err != nil {
		return sess.Snapshot(), false, err
	}
	if parsed == nil {
		log.Printf("usecase: extraction produced no document for session %s", id)
		return sess.Snapshot(), false, nil
	}
	sess.Resume = *parsed
	sess.Touch()
	return sess.Snapshot(), true, nil
}

// Translate flips the session language and rewrites the document's textual
// fields in the new language. The language flip is kept even when the AI
// call fails, so the UI strings follow the user's intent and a retry
// translates the still-untranslated document.
func (m *Manager) Translate(ctx context.Context, id string) (*domain.Session, error) {
	m.mu.Lock()
	sess, err := m.repo.Get(id)
	if err != nil {
		m.mu.Unlock()
		return nil, err
	}
	if sess.Translating {
		m.mu.Unlock()
		return nil, ErrBusy
	}
	target := sess.Language.Toggle()
	sess.Translating = true
	sess.Language = target
	snapshot := sess.Resume.Clone()
	m.repo.Save(sess)
	m.mu.Unlock()

	translated, err := m.ai.Translate(ctx, snapshot, target)

	m.mu.Lock()
	defer m.mu.Unlock()
	sess, getErr := m.repo.Get(id)
	if getErr != nil {
		return nil, getErr
	}
	sess.Translating = false
	defer m.repo.Save(sess)
	if err != nil {
		return sess.Snapshot(), err
	}
	sess.Resume = translated
	sess.Touch()
	return sess.Snapshot(), nil
}

// Preview renders the session's document to HTML with the given variant, or
// the session's stored variant when the override is empty. Rendering runs on
// a detached copy so concurrent edits cannot race it.
func (m *Manager) Preview(id string, variant string) (string, error) {
	m.mu.Lock()
	sess, err := m.repo.Get(id)
	if err != nil {
		m.mu.Unlock()
		return "", err
	}
	v := sess.Template
	if variant != "" {
		v = render.ParseVariant(variant)
	}
	data := sess.Resume.Clone()
	lang := sess.Language
	m.mu.Unlock()

	return m.html.Render(data, v, lang)
}

// ExportResult carries the produced file. PDF is true when Chrome rendering
// succeeded; otherwise Content holds the standalone HTML document so the
// user still walks away with something printable.
type ExportResult struct {
	Filename string
	Content  []byte
	PDF      bool
}

// Export renders the document and prints it to PDF. A PDF failure degrades
// to the HTML document rather than erroring out.
func (m *Manager) Export(ctx context.Context, id string, variant string) (*ExportResult, error) {
	m.mu.Lock()
	sess, err := m.repo.Get(id)
	if err != nil {
		m.mu.Unlock()
		return nil, err
	}
	if sess.Exporting {
		m.mu.Unlock()
		return nil, ErrBusy
	}
	sess.Exporting = true
	v := sess.Template
	if variant != "" {
		v = render.ParseVariant(variant)
	}
	data := sess.Resume.Clone()
	lang := sess.Language
	m.repo.Save(sess)
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		if sess, err := m.repo.Get(id); err == nil {
			sess.Exporting = false
			m.repo.Save(sess)
		}
		m.mu.Unlock()
	}()

	html, err := m.html.Render(data, v, lang)
	if err != nil {
		return nil, err
	}

	pdfBytes, err := m.pdf.RenderHTMLToPDF(ctx, html)
	if err != nil || len(pdfBytes) == 0 {
		log.Printf("usecase: pdf rendering failed for session %s, falling back to html: %v", id, err)
		return &ExportResult{
			Filename: ExportFilename(data.PersonalInfo.FullName, false),
			Content:  []byte(html),
			PDF:      false,
		}, nil
	}
	return &ExportResult{
		Filename: ExportFilename(data.PersonalInfo.FullName, true),
		Content:  pdfBytes,
		PDF:      true,
	}, nil
}
