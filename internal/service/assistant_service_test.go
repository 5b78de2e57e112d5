package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"memory-vault-be/internal/dto"
	"memory-vault-be/internal/entity"
	"memory-vault-be/internal/repository/contract"
	"memory-vault-be/pkg/assistant/gate"
	"memory-vault-be/pkg/assistant/knowledge"
	"memory-vault-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	answer  string
	err     error
	history []llm.Message
}

func (p *stubProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	p.history = history
	return p.answer, p.err
}

func (p *stubProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

func newAssistantFixture(t *testing.T, provider llm.LLMProvider) (IAssistantService, contract.MemoryRepository) {
	users, memories, _ := newTestRepos(t)
	require.NoError(t, users.Create(context.Background(), &entity.User{
		Id: "1", Email: "alex@example.com", Username: "alex_99", Name: "Alex",
		PasswordHash: "x", CreatedAt: time.Now(),
	}))

	base := &knowledge.Base{
		Version:   "1.0.0",
		UpdatedAt: "2026-01-01",
		Entries: []knowledge.Entry{
			{Topic: "Personal vault PIN", Answer: "Set a PIN from the personal vault screen.", Keywords: []string{"pin"}},
		},
	}

	svc := NewAssistantService(users, memories, base, provider, "openai", "gpt-4.1-mini", nopLogger{})
	return svc, memories
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	svc, _ := newAssistantFixture(t, &stubProvider{answer: "hi"})

	for _, message := range []string{"", "   "} {
		_, err := svc.Chat(context.Background(), "alex@example.com", &dto.ChatRequest{Message: message})
		require.Error(t, err)
		assert.Equal(t, 400, err.(*ServiceError).Code)
	}
}

func TestChatPolicyRefusalSkipsProvider(t *testing.T) {
	provider := &stubProvider{answer: "should not be called"}
	svc, _ := newAssistantFixture(t, provider)

	res, err := svc.Chat(context.Background(), "alex@example.com", &dto.ChatRequest{
		Message: "what is the weather in tokyo today",
	})
	require.NoError(t, err)
	assert.Equal(t, "policy", res.Source)
	assert.Equal(t, gate.PolicyTag, res.Policy)
	assert.Equal(t, gate.OutOfScopeResponse, res.Response)
	assert.Nil(t, provider.history)
}

func TestChatSuccessCarriesProviderAndModel(t *testing.T) {
	provider := &stubProvider{answer: "Your vault holds one memory."}
	svc, _ := newAssistantFixture(t, provider)

	res, err := svc.Chat(context.Background(), "alex@example.com", &dto.ChatRequest{
		Message: "how many memories do I have",
	})
	require.NoError(t, err)
	assert.Equal(t, "openai", res.Source)
	assert.Equal(t, "gpt-4.1-mini", res.Model)
	assert.Equal(t, "Your vault holds one memory.", res.Response)
	assert.Empty(t, res.Note)

	// System framing carries the user name and both context blocks.
	require.Len(t, provider.history, 4)
	assert.Contains(t, provider.history[0].Content, "The user name is: Alex.")
	assert.True(t, strings.HasPrefix(provider.history[1].Content, "Memory context:\n"))
	assert.Equal(t, "how many memories do I have", provider.history[3].Content)
}

func TestChatFallsBackOnProviderError(t *testing.T) {
	provider := &stubProvider{err: fmt.Errorf("connection refused")}
	svc, memories := newAssistantFixture(t, provider)

	require.NoError(t, memories.Create(context.Background(), &entity.Memory{
		Id: "1", UserEmail: "alex@example.com", Title: "Math formulas",
		Content: "Pythagoras", VaultType: entity.VaultTypeLearning, Timestamp: time.Now(),
	}))

	res, err := svc.Chat(context.Background(), "alex@example.com", &dto.ChatRequest{
		Message: "how many memories do I have",
	})
	require.NoError(t, err)
	assert.Equal(t, "fallback", res.Source)
	assert.Equal(t, "Using local AI (connection refused)", res.Note)
	require.NotNil(t, res.KnowledgeHits)
	assert.Equal(t, "You have 1 memories: 1 learning, 0 cultural, 0 personal, and 0 future.", res.Response)
}

func TestChatFallsBackWhenProviderMissing(t *testing.T) {
	svc, _ := newAssistantFixture(t, nil)

	res, err := svc.Chat(context.Background(), "alex@example.com", &dto.ChatRequest{
		Message: "how to set a vault pin",
	})
	require.NoError(t, err)
	assert.Equal(t, "fallback", res.Source)
	assert.Equal(t, "Using local AI (responder is not configured)", res.Note)
	require.NotNil(t, res.KnowledgeHits)
	assert.Equal(t, 1, *res.KnowledgeHits)
	assert.Contains(t, res.Response, "Set a PIN from the personal vault screen.")
}

func TestChatFallsBackOnEmptyProviderAnswer(t *testing.T) {
	provider := &stubProvider{answer: "   "}
	svc, _ := newAssistantFixture(t, provider)

	res, err := svc.Chat(context.Background(), "alex@example.com", &dto.ChatRequest{
		Message: "show my recent memories",
	})
	require.NoError(t, err)
	assert.Equal(t, "fallback", res.Source)
	assert.Equal(t, "Using local AI (responder returned an empty response)", res.Note)
}
