package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// recipeSchema mirrors the Recipes Vault tables read by the recipe listing.
// The production schema is owned by Recipes Vault; this copy exists for
// local development and tests.
var recipeSchema = []string{
	`CREATE TABLE IF NOT EXISTS Cuisine (
		CuisineID INTEGER PRIMARY KEY,
		CuisineType VARCHAR(100) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS Recipes (
		RecipeID INTEGER PRIMARY KEY,
		RecipeName VARCHAR(255) NOT NULL,
		Description TEXT,
		PrepTime INTEGER,
		CookTime INTEGER,
		DifficultyLevel VARCHAR(50),
		CuisineID INTEGER REFERENCES Cuisine(CuisineID)
	)`,
}

// CreateRecipeSchema creates the Cuisine and Recipes tables if missing
func CreateRecipeSchema(ctx context.Context, db *gorm.DB) error {
	for _, stmt := range recipeSchema {
		if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create recipe schema: %w", err)
		}
	}
	return nil
}

// SampleCuisine is a Cuisine row
type SampleCuisine struct {
	ID   int64
	Type string
}

// SampleRecipe is a Recipes row. CuisineID 0 leaves the column NULL.
type SampleRecipe struct {
	ID          int64
	Name        string
	Description string
	PrepTime    int
	CookTime    int
	Difficulty  string
	CuisineID   int64
}

// SampleCuisines and SampleRecipes seed a development database
var (
	SampleCuisines = []SampleCuisine{
		{1, "American"},
		{2, "Italian"},
		{3, "Mexican"},
		{4, "Indian"},
		{5, "Japanese"},
	}

	SampleRecipes = []SampleRecipe{
		{1, "Classic Pancakes", "Fluffy buttermilk pancakes with maple syrup", 10, 15, "easy", 1},
		{2, "Spaghetti Carbonara", "Roman pasta with egg, pecorino and guanciale", 10, 15, "medium", 2},
		{3, "Chicken Tikka Masala", "Charred chicken in a creamy spiced tomato sauce", 30, 40, "medium", 4},
		{4, "Black Bean Tacos", "Crispy tacos with spiced black beans and salsa", 15, 10, "easy", 3},
		{5, "Loaded Omelette", "A hearty breakfast with cheese, bacon and veggies", 5, 10, "easy", 1},
		{6, "Margherita Pizza", "Tomato, mozzarella and basil on a thin crust", 90, 12, "medium", 2},
		{7, "Miso Ramen", "Rich miso broth with noodles, egg and scallions", 20, 30, "hard", 5},
		{8, "Veggie Scramble", "Lighter option with fresh vegetables", 5, 5, "easy", 1},
		{9, "Vegetable Curry", "Coconut curry with seasonal vegetables", 15, 25, "easy", 4},
		{10, "Grandma's Stew", "Slow cooked beef and root vegetable stew", 20, 120, "medium", 0},
	}
)

// SeedSamples inserts the sample cuisines and recipes, leaving rows that
// already exist untouched. It returns the number of recipes inserted.
func SeedSamples(ctx context.Context, db *gorm.DB) (int64, error) {
	var inserted int64
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range SampleCuisines {
			if err := tx.Exec(
				"INSERT INTO Cuisine (CuisineID, CuisineType) VALUES (?, ?) ON CONFLICT DO NOTHING",
				c.ID, c.Type,
			).Error; err != nil {
				return fmt.Errorf("failed to seed cuisine %q: %w", c.Type, err)
			}
		}

		for _, r := range SampleRecipes {
			var cuisineID interface{}
			if r.CuisineID != 0 {
				cuisineID = r.CuisineID
			}
			res := tx.Exec(
				"INSERT INTO Recipes (RecipeID, RecipeName, Description, PrepTime, CookTime, DifficultyLevel, CuisineID) VALUES (?, ?, ?, ?, ?, ?, ?) ON CONFLICT DO NOTHING",
				r.ID, r.Name, r.Description, r.PrepTime, r.CookTime, r.Difficulty, cuisineID,
			)
			if res.Error != nil {
				return fmt.Errorf("failed to seed recipe %q: %w", r.Name, res.Error)
			}
			inserted += res.RowsAffected
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}
