package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// ChatService answers a user message with recipe recommendations
type ChatService struct {
	recipes IRecipeService
	llm     ILLMService
	log     *zap.Logger
}

// NewChatService creates a new ChatService instance
func NewChatService(recipes IRecipeService, llm ILLMService, log *zap.Logger) *ChatService {
	return &ChatService{
		recipes: recipes,
		llm:     llm,
		log:     log,
	}
}

// Chat reads the current recipes, builds the prompt and returns the
// completion. The completion is not requested when the recipes cannot be read.
func (s *ChatService) Chat(ctx context.Context, message string) (string, error) {
	listing, err := s.recipes.RecipeListing(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get recipes: %w", err)
	}

	prompt := BuildPrompt(message, listing)
	s.log.Debug("Sending chat prompt", zap.Int("prompt_bytes", len(prompt)))

	response, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to get completion: %w", err)
	}

	return response, nil
}
