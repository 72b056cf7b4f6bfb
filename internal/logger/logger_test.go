package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSetLevel(t *testing.T) {
	defer Logger.SetLevel(logrus.InfoLevel)

	tests := []struct {
		input    string
		expected logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"warn", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"bogus", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			SetLevel(tt.input)
			assert.Equal(t, tt.expected, Logger.GetLevel())
		})
	}
}

func TestQuietAndVerbose(t *testing.T) {
	defer Logger.SetLevel(logrus.InfoLevel)

	SetQuiet()
	assert.Equal(t, logrus.ErrorLevel, Logger.GetLevel())
	SetVerbose()
	assert.Equal(t, logrus.DebugLevel, Logger.GetLevel())
}
