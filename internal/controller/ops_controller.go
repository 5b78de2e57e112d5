package controller

import (
	"memory-vault-be/internal/config"
	"memory-vault-be/internal/dto"
	"memory-vault-be/internal/pkg/serverutils"
	"memory-vault-be/internal/service"
	"memory-vault-be/pkg/assistant/knowledge"

	"github.com/gofiber/fiber/v2"
)

type IOpsController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
	DebugConfig(ctx *fiber.Ctx) error
}

type opsController struct {
	cfg           *config.Config
	knowledgeBase *knowledge.Base
	adminService  service.IAdminService
	storageMode   string
}

func NewOpsController(cfg *config.Config, knowledgeBase *knowledge.Base, adminService service.IAdminService, storageMode string) IOpsController {
	return &opsController{
		cfg:           cfg,
		knowledgeBase: knowledgeBase,
		adminService:  adminService,
		storageMode:   storageMode,
	}
}

func (c *opsController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Health)
	r.Get("/debug/config", c.DebugConfig)
}

func (c *opsController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse[any]("Server is running", nil))
}

func (c *opsController) DebugConfig(ctx *fiber.Ctx) error {
	configured := c.cfg.Ai.OpenAIKey != ""
	model := c.cfg.Ai.OpenAIModel
	if c.cfg.Ai.Provider == "ollama" {
		configured = c.cfg.Ai.OllamaBaseURL != ""
		model = c.cfg.Ai.OllamaModel
	}

	keyConfigured, ownerConfigured := c.adminService.IsConfigured()

	res := dto.DebugConfigResponse{
		Server:      "Running",
		Environment: c.cfg.App.Environment,
		Responder: dto.DebugResponderConfig{
			Provider:   c.cfg.Ai.Provider,
			Configured: configured,
			Model:      model,
		},
		Knowledge: dto.DebugKnowledgeConfig{
			Entries:   len(c.knowledgeBase.Entries),
			UpdatedAt: c.knowledgeBase.UpdatedAt,
		},
		Admin: dto.DebugAdminConfig{
			Configured:      keyConfigured,
			OwnerConfigured: ownerConfigured,
			StorageMode:     c.storageMode,
		},
		Endpoints: map[string]interface{}{
			"health":   "/api/health",
			"auth":     []string{"/api/auth/signup", "/api/auth/signin"},
			"memories": "/api/memories",
			"ai":       "/api/ai/chat",
			"personal": []string{"/api/personal/pin/status", "/api/personal/pin/setup", "/api/personal/pin/verify"},
			"admin":    []string{"/api/admin/activities", "/api/admin/stats"},
		},
	}

	return ctx.JSON(serverutils.SuccessResponse("Runtime configuration", res))
}
