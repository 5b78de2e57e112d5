package bootstrap

import (
	"context"
	"log"

	"memory-vault-be/internal/config"
	"memory-vault-be/internal/controller"
	"memory-vault-be/internal/model"
	"memory-vault-be/internal/pkg/logger"
	"memory-vault-be/internal/repository/contract"
	"memory-vault-be/internal/repository/docstore"
	"memory-vault-be/internal/repository/ffile"
	"memory-vault-be/internal/repository/implementation"
	"memory-vault-be/internal/repository/memory"
	"memory-vault-be/internal/service"
	"memory-vault-be/pkg/assistant/knowledge"
	"memory-vault-be/pkg/database"
	"memory-vault-be/pkg/llm"
	"memory-vault-be/pkg/llm/factory"
	pkgNats "memory-vault-be/pkg/nats"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	MemoryController    controller.IMemoryController
	PinController       controller.IPinController
	AssistantController controller.IAssistantController
	AdminController     controller.IAdminController
	OpsController       controller.IOpsController

	// Background services (run from main)
	ConsumerService service.IConsumerService

	// Diagnostics
	StorageMode string
	Logger      logger.ILogger
}

type repositories struct {
	users      contract.UserRepository
	memories   contract.MemoryRepository
	activities contract.ActivityRepository
}

// newRepositories walks the storage fallback chain: redis when
// configured and reachable, then postgres, then the flat-file store.
func newRepositories(cfg *config.Config, sysLogger logger.ILogger) (repositories, string) {
	if cfg.App.RedisURL != "" {
		rdb, err := database.NewRedisClient(cfg.App.RedisURL)
		if err == nil {
			return repositories{
				users:      docstore.NewUserRepository(rdb),
				memories:   docstore.NewMemoryRepository(rdb),
				activities: docstore.NewActivityRepository(rdb),
			}, "redis"
		}
		sysLogger.Warn("bootstrap", "Redis unavailable, falling back", map[string]interface{}{
			"error": err.Error(),
		})
	}

	if cfg.Database.Connection != "" {
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
		if err == nil {
			if err := db.AutoMigrate(&model.User{}, &model.Memory{}, &model.AdminActivity{}); err != nil {
				sysLogger.Warn("bootstrap", "Auto-migration failed", map[string]interface{}{
					"error": err.Error(),
				})
			}
			return repositories{
				users:      implementation.NewUserRepository(db),
				memories:   implementation.NewMemoryRepository(db),
				activities: implementation.NewActivityRepository(db),
			}, "postgres"
		}
		sysLogger.Warn("bootstrap", "Postgres unavailable, falling back", map[string]interface{}{
			"error": err.Error(),
		})
	}

	store, err := ffile.NewStore(cfg.App.DataDir)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize file storage: %v", err)
	}
	return repositories{
		users:      ffile.NewUserRepository(store),
		memories:   ffile.NewMemoryRepository(store),
		activities: ffile.NewActivityRepository(store),
	}, "file"
}

func NewContainer(cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	repos, storageMode := newRepositories(cfg, sysLogger)
	log.Printf("[INFO] Storage mode: %s", storageMode)

	// In-memory state: vault unlock sessions and the login limiter.
	unlockRepo := memory.NewUnlockRepository()
	loginLimiter := memory.NewLoginLimiter()

	// Knowledge base
	knowledgeBase := knowledge.Load(cfg.App.KnowledgeFilePath)

	// External responder. An openai provider without a key would fail
	// every call, so leave it unset and let the local fallback answer.
	var llmProvider llm.LLMProvider
	if cfg.Ai.Provider != "openai" || cfg.Ai.OpenAIKey != "" {
		var err error
		llmProvider, err = factory.NewLLMProvider(factory.ProviderConfig{
			Provider:      cfg.Ai.Provider,
			OpenAIKey:     cfg.Ai.OpenAIKey,
			OpenAIModel:   cfg.Ai.OpenAIModel,
			OllamaBaseURL: cfg.Ai.OllamaBaseURL,
			OllamaModel:   cfg.Ai.OllamaModel,
		})
		if err != nil {
			sysLogger.Warn("bootstrap", "Responder unavailable, fallback answers only", map[string]interface{}{
				"error": err.Error(),
			})
			llmProvider = nil
		}
	}
	modelName := cfg.Ai.OpenAIModel
	if cfg.Ai.Provider == "ollama" {
		modelName = cfg.Ai.OllamaModel
	}

	// Activity pipeline: gochannel bus, async persistence, optional
	// NATS export.
	pubSub := service.NewActivityPubSub()

	var natsPub *pkgNats.Publisher
	if cfg.App.NatsURL != "" {
		var err error
		natsPub, err = pkgNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			sysLogger.Warn("bootstrap", "NATS unavailable, activity export disabled", map[string]interface{}{
				"error": err.Error(),
			})
			natsPub = nil
		}
	}

	activityService := service.NewActivityService(pubSub, sysLogger)
	consumerService := service.NewConsumerService(pubSub, service.ActivityTopicName, repos.activities, natsPub, sysLogger)

	// Domain services
	authService := service.NewAuthService(repos.users, loginLimiter, cfg.Auth.JwtSecret, sysLogger)
	pinService := service.NewPinService(repos.users, unlockRepo, sysLogger)
	memoryService := service.NewMemoryService(repos.memories)
	assistantService := service.NewAssistantService(
		repos.users, repos.memories, knowledgeBase,
		llmProvider, cfg.Ai.Provider, modelName, sysLogger,
	)
	adminService := service.NewAdminService(repos.users, repos.memories, repos.activities, cfg.Admin.ApiKey, cfg.Admin.OwnerEmail)

	return &Container{
		AuthController:      controller.NewAuthController(authService, activityService),
		MemoryController:    controller.NewMemoryController(memoryService, pinService, activityService),
		PinController:       controller.NewPinController(pinService, activityService),
		AssistantController: controller.NewAssistantController(assistantService, activityService),
		AdminController:     controller.NewAdminController(adminService, activityService),
		OpsController:       controller.NewOpsController(cfg, knowledgeBase, adminService, storageMode),
		ConsumerService:     consumerService,
		StorageMode:         storageMode,
		Logger:              sysLogger,
	}
}

// StartConsumers launches the background activity consumer.
func (c *Container) StartConsumers(ctx context.Context) {
	if err := c.ConsumerService.Consume(ctx); err != nil {
		log.Printf("[ERROR] Failed to start activity consumer: %v", err)
	}
}
