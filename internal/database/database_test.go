package database

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestWrapHealthCheck(t *testing.T) {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	db := Wrap(gdb)
	assert.NoError(t, db.HealthCheck(context.Background()))

	require.NoError(t, db.Close())
	assert.Error(t, db.HealthCheck(context.Background()))
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(context.Background(), "redis://"+mr.Addr()+"/0", zap.NewNop())
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, client.Ping(context.Background()).Err())
}

func TestNewRedisClientInvalidURL(t *testing.T) {
	client, err := NewRedisClient(context.Background(), "not-a-url", zap.NewNop())
	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to parse Redis URL")
}

func openMemoryDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return gdb
}

func TestCreateRecipeSchemaIsIdempotent(t *testing.T) {
	gdb := openMemoryDB(t)

	require.NoError(t, CreateRecipeSchema(context.Background(), gdb))
	require.NoError(t, CreateRecipeSchema(context.Background(), gdb))

	assert.True(t, gdb.Migrator().HasTable("Recipes"))
	assert.True(t, gdb.Migrator().HasTable("Cuisine"))
}

func TestSeedSamples(t *testing.T) {
	gdb := openMemoryDB(t)
	ctx := context.Background()
	require.NoError(t, CreateRecipeSchema(ctx, gdb))

	inserted, err := SeedSamples(ctx, gdb)
	require.NoError(t, err)
	assert.Equal(t, int64(len(SampleRecipes)), inserted)

	// a second run leaves existing rows alone
	inserted, err = SeedSamples(ctx, gdb)
	require.NoError(t, err)
	assert.Zero(t, inserted)

	var count int64
	require.NoError(t, gdb.Raw("SELECT COUNT(*) FROM Recipes").Scan(&count).Error)
	assert.Equal(t, int64(len(SampleRecipes)), count)

	var nullCuisine int64
	require.NoError(t, gdb.Raw("SELECT COUNT(*) FROM Recipes WHERE CuisineID IS NULL").Scan(&nullCuisine).Error)
	assert.Equal(t, int64(1), nullCuisine)
}
