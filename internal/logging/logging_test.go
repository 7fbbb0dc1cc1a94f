package logging_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/Cyfrin/aderyn-sub003/internal/logging"
)

func TestNewDefaultsToInfoAndText(t *testing.T) {
	entry := logging.New(logging.Options{})
	require.Equal(t, logrus.InfoLevel, entry.Logger.Level)
	_, isText := entry.Logger.Formatter.(*logrus.TextFormatter)
	require.True(t, isText)
}

func TestNewVerboseSetsDebugLevel(t *testing.T) {
	entry := logging.New(logging.Options{Verbose: true})
	require.Equal(t, logrus.DebugLevel, entry.Logger.Level)
}

func TestNewJSONSetsJSONFormatter(t *testing.T) {
	entry := logging.New(logging.Options{JSON: true})
	_, isJSON := entry.Logger.Formatter.(*logrus.JSONFormatter)
	require.True(t, isJSON)
}
