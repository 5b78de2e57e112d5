package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"memory-vault-be/internal/constant"
	"memory-vault-be/internal/dto"
	"memory-vault-be/internal/pkg/logger"
	"memory-vault-be/internal/repository/contract"
	"memory-vault-be/pkg/assistant/contextbuilder"
	"memory-vault-be/pkg/assistant/fallback"
	"memory-vault-be/pkg/assistant/gate"
	"memory-vault-be/pkg/assistant/knowledge"
	"memory-vault-be/pkg/llm"

	"github.com/gofiber/fiber/v2"
)

type IAssistantService interface {
	Chat(ctx context.Context, email string, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

type assistantService struct {
	userRepo      contract.UserRepository
	memoryRepo    contract.MemoryRepository
	knowledgeBase *knowledge.Base
	provider      llm.LLMProvider
	providerName  string
	model         string
	logger        logger.ILogger
}

func NewAssistantService(
	userRepo contract.UserRepository,
	memoryRepo contract.MemoryRepository,
	knowledgeBase *knowledge.Base,
	provider llm.LLMProvider,
	providerName string,
	model string,
	log logger.ILogger,
) IAssistantService {
	return &assistantService{
		userRepo:      userRepo,
		memoryRepo:    memoryRepo,
		knowledgeBase: knowledgeBase,
		provider:      provider,
		providerName:  providerName,
		model:         model,
		logger:        log,
	}
}

func (s *assistantService) Chat(ctx context.Context, email string, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	message := req.Message
	if strings.TrimSpace(message) == "" {
		return nil, NewServiceError(fiber.StatusBadRequest, "Message is required")
	}

	// Out-of-scope questions are refused before any ranking work.
	if !gate.InScope(message) {
		return &dto.ChatResponse{
			Response: gate.OutOfScopeResponse,
			Source:   "policy",
			Policy:   gate.PolicyTag,
		}, nil
	}

	memories, err := s.memoryRepo.FindAllByUserEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	userName := "Friend"
	if user, err := s.userRepo.FindByEmail(ctx, email); err == nil && user != nil && user.Name != "" {
		userName = user.Name
	}

	now := time.Now()
	memoryCtx := contextbuilder.BuildMemoryContext(message, memories, now)
	knowledgeCtx := contextbuilder.BuildKnowledgeContext(message, s.knowledgeBase)

	answer, respondErr := s.respond(ctx, message, userName, memoryCtx.Text, knowledgeCtx.Text)
	if respondErr == nil {
		return &dto.ChatResponse{
			Response: answer,
			Source:   s.providerName,
			Model:    s.model,
		}, nil
	}

	s.logger.Warn("assistant", "External responder failed, using local fallback", map[string]interface{}{
		"error": respondErr.Error(),
	})

	hits := len(knowledgeCtx.Relevant)
	return &dto.ChatResponse{
		Response:      fallback.Generate(message, memories, userName, memoryCtx.Relevant, knowledgeCtx.Relevant),
		Source:        "fallback",
		Note:          fmt.Sprintf("Using local AI (%s)", respondErr.Error()),
		KnowledgeHits: &hits,
	}, nil
}

func (s *assistantService) respond(ctx context.Context, message, userName, memoryContext, knowledgeContext string) (string, error) {
	if s.provider == nil {
		return "", fmt.Errorf("responder is not configured")
	}

	history := []llm.Message{
		{Role: constant.ChatMessageRoleSystem, Content: fmt.Sprintf(constant.AssistantSystemPrompt, userName)},
		{Role: constant.ChatMessageRoleSystem, Content: "Memory context:\n" + memoryContext},
		{Role: constant.ChatMessageRoleSystem, Content: knowledgeContext},
		{Role: constant.ChatMessageRoleUser, Content: message},
	}

	answer, err := s.provider.Chat(ctx, history, llm.WithMaxTokens(constant.AssistantMaxOutputTokens))
	if err != nil {
		return "", err
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", fmt.Errorf("responder returned an empty response")
	}
	return answer, nil
}
