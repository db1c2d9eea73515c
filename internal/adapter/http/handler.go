package http

import (
	"errors"
	"io"
	"time"

	"resume-architect/internal/adapter/repository"
	"resume-architect/internal/knowledge"
	"resume-architect/internal/model"
	"resume-architect/internal/render"
	"resume-architect/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	manager   *usecase.Manager
	knowledge *knowledge.Base
	sessions  interface{ Count() int }
	started   time.Time
}

func NewHandler(m *usecase.Manager, kb *knowledge.Base, counter interface{ Count() int }) *Handler {
	return &Handler{manager: m, knowledge: kb, sessions: counter, started: time.Now()}
}

// Register mounts all routes under /api/v1.
func (h *Handler) Register(app *fiber.App) {
	v1 := app.Group("/api/v1")

	v1.Get("/health", h.Health)
	v1.Get("/templates", h.Templates)
	v1.Get("/knowledge", h.Knowledge)

	v1.Post("/sessions", h.CreateSession)
	v1.Get("/sessions/:id", h.GetSession)
	v1.Put("/sessions/:id/resume", h.ReplaceResume)
	v1.Put("/sessions/:id/template", h.SetTemplate)
	v1.Post("/sessions/:id/resume/:section/items", h.AddItem)
	v1.Patch("/sessions/:id/resume/:section/items/:itemID", h.UpdateItem)
	v1.Delete("/sessions/:id/resume/:section/items/:itemID", h.RemoveItem)
	v1.Put("/sessions/:id/avatar", h.SetAvatar)
	v1.Delete("/sessions/:id/avatar", h.ClearAvatar)
	v1.Post("/sessions/:id/extract", h.Extract)
	v1.Post("/sessions/:id/translate", h.Translate)
	v1.Get("/sessions/:id/preview", h.Preview)
	v1.Post("/sessions/:id/export", h.Export)
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":   "ok",
		"sessions": h.sessions.Count(),
		"uptime":   time.Since(h.started).Round(time.Second).String(),
	})
}

func (h *Handler) Templates(c *fiber.Ctx) error {
	lang := model.ParseLanguage(c.Query("lang", "en"))
	out := make([]fiber.Map, 0, len(render.Variants))
	for _, v := range render.Variants {
		out = append(out, fiber.Map{"id": string(v), "name": v.Name(lang)})
	}
	return c.JSON(fiber.Map{"templates": out})
}

func (h *Handler) Knowledge(c *fiber.Ctx) error {
	lang := model.ParseLanguage(c.Query("lang", "en"))
	return c.JSON(fiber.Map{"categories": h.knowledge.Categories(lang)})
}

func (h *Handler) CreateSession(c *fiber.Ctx) error {
	sess := h.manager.Create()
	return c.Status(fiber.StatusCreated).JSON(sess)
}

func (h *Handler) GetSession(c *fiber.Ctx) error {
	sess, err := h.manager.Get(c.Params("id"))
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(sess)
}

func (h *Handler) ReplaceResume(c *fiber.Ctx) error {
	sess, err := h.manager.ReplaceResume(c.Params("id"), c.Body())
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(sess)
}

type templateReq struct {
	Template string `json:"template"`
}

func (h *Handler) SetTemplate(c *fiber.Ctx) error {
	var req templateReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	sess, err := h.manager.SetTemplate(c.Params("id"), render.ParseVariant(req.Template))
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(sess)
}

func (h *Handler) AddItem(c *fiber.Ctx) error {
	sec, err := usecase.ParseSection(c.Params("section"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	var itemID string
	body := c.Body()
	sess, err := h.manager.Mutate(c.Params("id"), func(r *model.ResumeData) error {
		var addErr error
		itemID, addErr = usecase.AddItem(r, sec, body, h.manager.IDs())
		return addErr
	})
	if err != nil {
		return sessionError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": itemID, "resume": sess.Resume})
}

func (h *Handler) UpdateItem(c *fiber.Ctx) error {
	sec, err := usecase.ParseSection(c.Params("section"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	itemID := c.Params("itemID")
	body := c.Body()
	found := false
	sess, err := h.manager.Mutate(c.Params("id"), func(r *model.ResumeData) error {
		var upErr error
		found, upErr = usecase.UpdateItem(r, sec, itemID, body)
		return upErr
	})
	if err != nil {
		return sessionError(c, err)
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "item not found"})
	}
	return c.JSON(sess)
}

func (h *Handler) RemoveItem(c *fiber.Ctx) error {
	sec, err := usecase.ParseSection(c.Params("section"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	itemID := c.Params("itemID")
	// removing an unknown id is a no-op, the list is returned either way
	sess, err := h.manager.Mutate(c.Params("id"), func(r *model.ResumeData) error {
		usecase.RemoveItem(r, sec, itemID)
		return nil
	})
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(sess)
}

type avatarReq struct {
	Avatar string `json:"avatar"`
}

func (h *Handler) SetAvatar(c *fiber.Ctx) error {
	var req avatarReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	sess, err := h.manager.Mutate(c.Params("id"), func(r *model.ResumeData) error {
		return usecase.SetAvatar(r, req.Avatar)
	})
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(sess)
}

func (h *Handler) ClearAvatar(c *fiber.Ctx) error {
	sess, err := h.manager.Mutate(c.Params("id"), func(r *model.ResumeData) error {
		usecase.ClearAvatar(r)
		return nil
	})
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(sess)
}

func (h *Handler) Extract(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing file field"})
	}
	f, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unreadable file"})
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unreadable file"})
	}
	mimeType := file.Header.Get("Content-Type")

	sess, extracted, err := h.manager.UploadAndExtract(c.Context(), c.Params("id"), mimeType, data)
	if err != nil {
		return sessionError(c, err)
	}
	if !extracted {
		return c.JSON(fiber.Map{"extracted": false, "message": "could not extract resume information", "session": sess})
	}
	return c.JSON(fiber.Map{"extracted": true, "session": sess})
}

func (h *Handler) Translate(c *fiber.Ctx) error {
	sess, err := h.manager.Translate(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrBusy) || errors.Is(err, repository.ErrNotFound) {
			return sessionError(c, err)
		}
		// the language was already flipped, report it with the failure
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":   "translation failed",
			"session": sess,
		})
	}
	return c.JSON(sess)
}

func (h *Handler) Preview(c *fiber.Ctx) error {
	html, err := h.manager.Preview(c.Params("id"), c.Query("template"))
	if err != nil {
		return sessionError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

func (h *Handler) Export(c *fiber.Ctx) error {
	res, err := h.manager.Export(c.Context(), c.Params("id"), c.Query("template"))
	if err != nil {
		return sessionError(c, err)
	}
	if res.PDF {
		c.Set(fiber.HeaderContentType, "application/pdf")
	} else {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		c.Set("X-Export-Fallback", "html")
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+res.Filename+`"`)
	return c.Send(res.Content)
}

func sessionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "session not found"})
	case errors.Is(err, usecase.ErrBusy):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, usecase.ErrTooLarge):
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, usecase.ErrUnsupported):
		return c.Status(fiber.StatusUnsupportedMediaType).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
}
