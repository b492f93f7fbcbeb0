package testhelpers

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pageza/munchai/backend/config"
	"github.com/pageza/munchai/backend/internal/database"
)

// RecipeRow is a row to insert into the Recipes table. CuisineID 0 leaves
// the column NULL.
type RecipeRow = database.SampleRecipe

// SetupRecipeDB returns an in-memory SQLite database with the recipe schema
func SetupRecipeDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}

	// every connection to :memory: is a separate database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	CreateRecipeSchema(t, db)
	return db
}

// CreateRecipeSchema creates the Cuisine and Recipes tables
func CreateRecipeSchema(t *testing.T, db *gorm.DB) {
	t.Helper()
	if err := database.CreateRecipeSchema(context.Background(), db); err != nil {
		t.Fatal(err)
	}
}

// SeedCuisine inserts a cuisine row
func SeedCuisine(t *testing.T, db *gorm.DB, id int64, cuisineType string) {
	t.Helper()
	if err := db.Exec("INSERT INTO Cuisine (CuisineID, CuisineType) VALUES (?, ?)", id, cuisineType).Error; err != nil {
		t.Fatalf("failed to seed cuisine %q: %v", cuisineType, err)
	}
}

// SeedRecipe inserts a recipe row
func SeedRecipe(t *testing.T, db *gorm.DB, r RecipeRow) {
	t.Helper()
	var cuisineID interface{}
	if r.CuisineID != 0 {
		cuisineID = r.CuisineID
	}
	err := db.Exec(
		"INSERT INTO Recipes (RecipeID, RecipeName, Description, PrepTime, CookTime, DifficultyLevel, CuisineID) VALUES (?, ?, ?, ?, ?, ?, ?)",
		r.ID, r.Name, r.Description, r.PrepTime, r.CookTime, r.Difficulty, cuisineID,
	).Error
	if err != nil {
		t.Fatalf("failed to seed recipe %q: %v", r.Name, err)
	}
}

// DropRecipeSchema removes the recipe tables so that listing queries fail
func DropRecipeSchema(t *testing.T, db *gorm.DB) {
	t.Helper()
	for _, table := range []string{"Recipes", "Cuisine"} {
		if err := db.Exec("DROP TABLE " + table).Error; err != nil {
			t.Fatalf("failed to drop %s: %v", table, err)
		}
	}
}

// SetupPostgres starts a PostgreSQL container and returns a configuration
// pointing at it. The test is skipped when Docker is not installed.
func SetupPostgres(t *testing.T) *config.Config {
	t.Helper()
	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("docker not installed, skipping container-based test")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "munch",
				"POSTGRES_PASSWORD": "munchpass",
				"POSTGRES_DB":       "recipesvault",
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("failed to start container: %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := container.Terminate(ctx); err != nil {
			t.Errorf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}
	mappedPort, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("failed to get container port: %v", err)
	}

	return &config.Config{
		DBHost:     host,
		DBPort:     mappedPort.Port(),
		DBUser:     "munch",
		DBPassword: "munchpass",
		DBName:     "recipesvault",
		DBSSLMode:  "disable",
	}
}
