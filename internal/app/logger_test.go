package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharmLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewCharmLogger(&buf, "")
	require.NoError(t, err)

	l.Infof("clock", "tick %d", 3)
	l.Errorf("fb", "open failed: %s", "denied")

	out := buf.String()
	assert.Contains(t, out, "tick 3")
	assert.Contains(t, out, "component=clock")
	assert.Contains(t, out, "open failed: denied")
	assert.Contains(t, out, "component=fb")
	assert.Contains(t, out, "clockface")
}

func TestCharmLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewCharmLogger(&buf, "ERROR")
	require.NoError(t, err)

	l.Infof("clock", "hidden")
	l.Errorf("clock", "shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	_, err = NewCharmLogger(&buf, "chatty")
	assert.Error(t, err)
}

func TestLoggersSatisfyInterface(t *testing.T) {
	var _ Logger = NoopLogger{}
	var _ Logger = (*CharmLogger)(nil)
}
