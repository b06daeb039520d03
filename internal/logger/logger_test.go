package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSecretsAreRedacted(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := FromZap(zap.New(core)).With("llm_api_key", "sk-123")

	log.Info("request", "Authorization", "Bearer abc", "path", "/healthz")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, redacted, fields["llm_api_key"])
	assert.Equal(t, redacted, fields["Authorization"])
	assert.Equal(t, "/healthz", fields["path"])
}

func TestNewModes(t *testing.T) {
	for _, mode := range []string{"prod", "dev", ""} {
		l, err := New(mode)
		require.NoError(t, err, mode)
		assert.NotNil(t, l)
	}
}
