package dsn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "")
	assert.Empty(t, FromEnv())

	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "artisan")
	t.Setenv("DB_PASS", "secret")
	t.Setenv("DB_NAME", "onboarding")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_SSLMODE", "")
	assert.Equal(t, "host=db port=5432 user=artisan password=secret dbname=onboarding sslmode=disable", FromEnv())
}
