package database

import (
	"olympus_backend/internal/config"
	"olympus_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestOpenAndMigrateSQLite(t *testing.T) {
	db, err := Open(&config.DatabaseConfig{Driver: "sqlite", DSN: ":memory:"}, logger.Silent)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))

	for _, m := range Models() {
		assert.True(t, db.Migrator().HasTable(m), "%T table missing", m)
	}
	assert.True(t, db.Migrator().HasIndex(&model.User{}, "Email"))
	assert.True(t, db.Migrator().HasIndex(&model.LiveClass{}, "ChannelName"))

	// email is unique at the storage level
	require.NoError(t, db.Create(&model.User{Email: "x@y.z", Name: "X", PasswordHash: "h", Role: model.Student}).Error)
	assert.Error(t, db.Create(&model.User{Email: "x@y.z", Name: "Y", PasswordHash: "h", Role: model.Student}).Error)
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(&config.DatabaseConfig{Driver: "oracle"}, logger.Silent)
	assert.Error(t, err)
}

func TestInitRedisDisabled(t *testing.T) {
	rdb, err := InitRedis(&config.RedisConfig{Enabled: false})
	assert.NoError(t, err)
	assert.Nil(t, rdb)
}
