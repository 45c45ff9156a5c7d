package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMongoURIFromParts(t *testing.T) {
	assert.Equal(t, "mongodb://localhost:27017/personal_management",
		mongoURIFromParts("", "", "localhost", "27017", "personal_management"))

	assert.Equal(t, "mongodb://app:s3cret@db:27017/pm",
		mongoURIFromParts("app", "s3cret", "db", "27017", "pm"))

	// Credentials with reserved characters are escaped.
	assert.Equal(t, "mongodb://app:p%40ss@db:27017/pm",
		mongoURIFromParts("app", "p@ss", "db", "27017", "pm"))
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	t.Setenv("PORT", "")
	t.Setenv("MONGO_DB", "")
	t.Setenv("RECONCILE_INTERVAL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "personal_management", cfg.MongoDB)
	assert.Equal(t, "mongodb://localhost:27017/personal_management", cfg.MongoURI)
	assert.Equal(t, 10*time.Minute, cfg.ReconcileInterval)
	assert.Equal(t, "uploads", cfg.UploadDir)
}

func TestLoadExplicitURIWins(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://elsewhere:27017/other")
	t.Setenv("MONGO_HOST", "ignored")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "mongodb://elsewhere:27017/other", cfg.MongoURI)
}

func TestLoadRejectsBadInterval(t *testing.T) {
	t.Setenv("RECONCILE_INTERVAL", "soon")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDisabledReconcile(t *testing.T) {
	t.Setenv("RECONCILE_INTERVAL", "0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), cfg.ReconcileInterval)
}
