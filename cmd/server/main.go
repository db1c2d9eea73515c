package main

import (
	"log"

	httpadapter "resume-architect/internal/adapter/http"
	repo "resume-architect/internal/adapter/repository"
	"resume-architect/internal/knowledge"
	"resume-architect/internal/model"
	"resume-architect/internal/render"
	"resume-architect/internal/usecase"
	"resume-architect/pkg/ai"
	"resume-architect/pkg/config"
	infra "resume-architect/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
)

func main() {
	cfg := config.Load()

	htmlRenderer, err := render.New(cfg.TemplatesDir)
	if err != nil {
		log.Fatalf("templates: %v", err)
	}

	kb, err := knowledge.New(cfg.KnowledgePath)
	if err != nil {
		log.Fatalf("knowledge base: %v", err)
	}

	ids := model.UUIDGen{}

	aiClient := ai.New(cfg.GeminiAPIKey, cfg.GeminiBaseURL, cfg.GeminiModel, ids)
	aiClient.TextOnly = cfg.GeminiTextOnly
	aiClient.SchemaPath = cfg.SchemaPath
	if cfg.GeminiAPIKey == "" {
		log.Printf("warning: GEMINI_API_KEY not set, extraction and translation disabled")
	}

	store := repo.NewSessionStore(cfg.SessionTTL)
	pdfRenderer := infra.NewChromedpRenderer(cfg.ChromePath)
	manager := usecase.NewManager(store, aiClient, htmlRenderer, pdfRenderer, ids, cfg.MaxUploadBytes)

	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.MaxUploadBytes) + 1024*1024,
	})

	h := httpadapter.NewHandler(manager, kb, store)
	h.Register(app)

	log.Printf("listening on :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
