package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	testCases := []struct {
		name     string
		expected LogLevel
		errMsg   string
	}{
		{name: "DEBUG", expected: DEBUG},
		{name: "INFO", expected: INFO},
		{name: "WARNING", expected: WARNING},
		{name: "ERROR", expected: ERROR},
		{name: "CRITICAL", expected: CRITICAL},
		{name: "warning", expected: WARNING},
		{name: " Info ", expected: INFO},
		{name: "VERBOSE", errMsg: "invalid log level"},
		{name: "", errMsg: "invalid log level"},
	}

	for _, tc := range testCases {
		level, err := ParseLogLevel(tc.name)
		if tc.errMsg != "" {
			require.Error(t, err, tc.name)
			assert.Contains(t, err.Error(), tc.errMsg)
		} else {
			require.NoError(t, err, tc.name)
			assert.Equal(t, tc.expected, level)
		}
	}
}

func TestLoggerFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(WARNING)
	log.Out = &buf

	log.Debugf("hidden %d", 1)
	log.Infof("hidden %d", 2)
	log.Warnf("degenerate tets: %d", 3)
	log.Errorf("shown %d", 4)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARNING] degenerate tets: 3")
	assert.Contains(t, out, "[ERROR] shown 4")
}
