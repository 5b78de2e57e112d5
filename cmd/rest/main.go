package main

import (
	"context"
	"log"

	"memory-vault-be/internal/bootstrap"
	"memory-vault-be/internal/config"
	"memory-vault-be/internal/server"
	"memory-vault-be/internal/tracer"

	"github.com/fatih/color"
)

func main() {
	// 0. Tracing (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)

	// 3. Start Background Services
	go func() {
		log.Println("Background: Starting Activity Consumer...")
		container.StartConsumers(context.Background())
	}()

	// 4. Startup banner
	color.Cyan("Memory Vault Server starting on http://localhost:%s", cfg.App.Port)
	color.Green("Storage mode: %s", container.StorageMode)
	if cfg.Ai.Provider == "openai" && cfg.Ai.OpenAIKey == "" {
		color.Yellow("OpenAI API Key: Missing (fallback answers only)")
	} else {
		color.Green("Responder: %s", cfg.Ai.Provider)
	}
	color.Cyan("Debug endpoint: http://localhost:%s/api/debug/config", cfg.App.Port)

	// 5. Run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
