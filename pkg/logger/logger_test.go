package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRedactsSecrets(t *testing.T) {
	out := sanitize([]any{"jwt_secret", "abc", "port", "8080", "db_dsn", "", "dangling"})
	assert.Equal(t, []any{"jwt_secret", "[REDACTED]", "port", "8080", "db_dsn", "", "dangling"}, out)
}

func TestNewTestModeIsNop(t *testing.T) {
	l, err := New("test")
	assert.NoError(t, err)
	l.Info("discarded", "k", "v")
	l.With("req", 1).Warn("also discarded")
}
