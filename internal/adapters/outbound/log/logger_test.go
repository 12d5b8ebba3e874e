package log

import (
	"bytes"
	"context"
	stdlog "log"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger_Initialize(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	il := &InitLogger{Level: "info", Format: "text"}
	ctx, err := il.Initialize(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, ctx)

	std, err := depend.Resolve[*stdlog.Logger]()
	assert.NoError(t, err)
	assert.NotNil(t, std)

	structured, err := depend.Resolve[*charmlog.Logger]()
	assert.NoError(t, err)
	assert.NotNil(t, structured)
}

func TestInitLogger_Levels(t *testing.T) {
	tests := map[string]struct {
		level    string
		message  string
		expected string
		dropped  bool
	}{
		"info-default": {
			level:    "info",
			message:  "Server ready",
			expected: "INFO todoql: Server ready",
		},
		"error-prefix": {
			level:    "info",
			message:  "ERROR something failed",
			expected: "ERRO todoql: something failed",
		},
		"debug-filtered": {
			level:   "info",
			message: "DEBUG noisy detail",
			dropped: true,
		},
		"debug-enabled": {
			level:    "debug",
			message:  "DEBUG noisy detail",
			expected: "DEBU todoql: noisy detail",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			il := &InitLogger{Level: tt.level, Format: "text", out: &buf}
			logger, err := il.newLogger()
			require.NoError(t, err)

			logger.StandardLog().Print(tt.message)

			if tt.dropped {
				assert.Empty(t, buf.String())
				return
			}
			assert.Contains(t, buf.String(), tt.expected)
		})
	}
}

func TestInitLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	il := &InitLogger{Level: "info", Format: "json", out: &buf}
	logger, err := il.newLogger()
	require.NoError(t, err)

	logger.StandardLog().Print("created todo")

	assert.Contains(t, buf.String(), `"msg":"created todo"`)
	assert.Contains(t, buf.String(), `"prefix":"todoql"`)
}

func TestInitLogger_InvalidConfig(t *testing.T) {
	tests := map[string]InitLogger{
		"invalid-level":  {Level: "loud", Format: "text"},
		"invalid-format": {Level: "info", Format: "xml"},
	}

	for name, il := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := il.Initialize(context.Background())
			assert.Error(t, err)
		})
	}
}
