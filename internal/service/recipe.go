package service

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"

	"github.com/pageza/munchai/backend/internal/metrics"
	"github.com/pageza/munchai/backend/internal/model"
)

// recipeListingQuery joins every recipe to its cuisine. Recipes without a
// cuisine row are kept by the left join. No ordering is applied.
var recipeListingQuery = sq.Select(
	"r.RecipeID",
	"r.RecipeName",
	"COALESCE(r.Description, '')",
	"COALESCE(r.PrepTime, 0)",
	"COALESCE(r.CookTime, 0)",
	"COALESCE(r.DifficultyLevel, '')",
	"c.CuisineType",
).
	From("Recipes r").
	LeftJoin("Cuisine c ON r.CuisineID = c.CuisineID").
	PlaceholderFormat(sq.Dollar)

// RecipeService reads the recipe catalogue
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// ListRecipes returns every recipe in the store in the database's result order
func (s *RecipeService) ListRecipes(ctx context.Context) ([]model.Recipe, error) {
	query, args, err := recipeListingQuery.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build recipe query: %w", err)
	}

	rows, err := s.db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to query recipes: %w", err)
	}
	defer rows.Close()

	recipes := []model.Recipe{}
	for rows.Next() {
		var r model.Recipe
		if err := rows.Scan(&r.ID, &r.Name, &r.Description, &r.PrepTime, &r.CookTime, &r.Difficulty, &r.Cuisine); err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recipes: %w", err)
	}

	metrics.RecipesListed.Set(float64(len(recipes)))
	return recipes, nil
}

// RecipeListing returns the recipe listing used as model context
func (s *RecipeService) RecipeListing(ctx context.Context) (string, error) {
	recipes, err := s.ListRecipes(ctx)
	if err != nil {
		return "", err
	}
	return FormatRecipes(recipes), nil
}

// FormatRecipes renders one line per recipe:
//
//	- [ID:8] Veggie Scramble: Fresh vegetables (10 min, easy, American cuisine)
func FormatRecipes(recipes []model.Recipe) string {
	var b strings.Builder
	for _, r := range recipes {
		fmt.Fprintf(&b, "- [ID:%d] %s: %s (%d min, %s, %s cuisine)\n",
			r.ID, r.Name, r.Description, r.TotalTime(), r.Difficulty, r.CuisineOrDefault())
	}
	return b.String()
}
