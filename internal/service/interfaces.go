package service

import (
	"context"

	"github.com/pageza/munchai/backend/internal/model"
)

// IRecipeService defines the interface for reading the recipe catalogue
type IRecipeService interface {
	ListRecipes(ctx context.Context) ([]model.Recipe, error)
	RecipeListing(ctx context.Context) (string, error)
}

// ILLMService defines the interface for single-turn completions
type ILLMService interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// IChatService defines the interface for answering a chat message
type IChatService interface {
	Chat(ctx context.Context, message string) (string, error)
}
