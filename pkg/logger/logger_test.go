package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNew_ValidLevel(t *testing.T) {
	log := New("debug")

	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	log := New("loud")

	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}
