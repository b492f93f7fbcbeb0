package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pageza/munchai/backend/internal/testhelpers"
)

func newTestLLMService(t *testing.T, api *testhelpers.FakeMessagesAPI) *LLMService {
	t.Helper()
	svc, err := NewLLMService("test-api-key", api.URL, zap.NewNop())
	require.NoError(t, err)
	return svc
}

func TestNewLLMService(t *testing.T) {
	t.Run("should create service with API key", func(t *testing.T) {
		svc, err := NewLLMService("test-api-key", "", zap.NewNop())
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})

	t.Run("should fail without API key", func(t *testing.T) {
		svc, err := NewLLMService("", "", zap.NewNop())
		assert.Error(t, err)
		assert.Nil(t, svc)
		assert.Contains(t, err.Error(), "ANTHROPIC_API_KEY must be set")
	})
}

func TestLLMService_Complete(t *testing.T) {
	reply := "I found some great options for you!\n\n1. **[Veggie Scramble](https://www.recipesvault.org/Recipe/Details/8)**"
	api := testhelpers.NewFakeMessagesAPI(t, reply)
	svc := newTestLLMService(t, api)

	got, err := svc.Complete(context.Background(), "the prompt")
	require.NoError(t, err)
	assert.Equal(t, reply, got)

	requests := api.Requests()
	require.Len(t, requests, 1)
	req := requests[0]
	assert.Equal(t, "/v1/messages", req.Path)
	assert.Equal(t, CompletionModel, req.Model)
	assert.Equal(t, CompletionMaxTokens, req.MaxTokens)
	assert.False(t, req.Stream)
	require.Len(t, req.Messages, 1)
	assert.Equal(t, "user", req.Messages[0].Role)
	assert.Equal(t, "the prompt", req.Prompt())
}

func TestLLMService_CompleteReturnsFirstTextBlock(t *testing.T) {
	api := testhelpers.NewFakeMessagesAPI(t, "")
	api.ReplyWithBlocks(
		map[string]string{"type": "text", "text": "first"},
		map[string]string{"type": "text", "text": "second"},
	)
	svc := newTestLLMService(t, api)

	got, err := svc.Complete(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "first", got)
}

func TestLLMService_CompleteWithoutText(t *testing.T) {
	api := testhelpers.NewFakeMessagesAPI(t, "")
	api.ReplyWithBlocks()
	svc := newTestLLMService(t, api)

	got, err := svc.Complete(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrEmptyCompletion)
	assert.Empty(t, got)
}

func TestLLMService_CompleteAPIError(t *testing.T) {
	api := testhelpers.NewFakeMessagesAPI(t, "unused")
	api.FailWith(http.StatusInternalServerError)
	svc := newTestLLMService(t, api)

	got, err := svc.Complete(context.Background(), "prompt")
	require.Error(t, err)
	assert.Empty(t, got)
	assert.Contains(t, err.Error(), "failed to create message")

	// retries are disabled
	assert.Len(t, api.Requests(), 1)
}

func TestLLMService_CompleteCanceledContext(t *testing.T) {
	api := testhelpers.NewFakeMessagesAPI(t, "unused")
	svc := newTestLLMService(t, api)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Complete(ctx, "prompt")
	assert.Error(t, err)
	assert.Empty(t, api.Requests())
}
