package component_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/clockface/component"
)

func TestInstallDefaultName(t *testing.T) {
	reg := component.NewMapRegistry()
	require.NoError(t, component.Install(reg, "", nil))

	assert.Equal(t, []string{component.DefaultName}, reg.Names())
	c, err := reg.Create("ClockFace")
	require.NoError(t, err)
	assert.False(t, c.Mounted())
}

func TestInstallCustomName(t *testing.T) {
	reg := component.NewMapRegistry()
	require.NoError(t, component.Install(reg, "WallClock", component.NoopLogger{}))

	_, ok := reg.Lookup(component.DefaultName)
	assert.False(t, ok)
	_, ok = reg.Lookup("WallClock")
	assert.True(t, ok)
}

func TestCreateReturnsIndependentComponents(t *testing.T) {
	reg := component.NewMapRegistry()
	require.NoError(t, component.Install(reg, "", nil))

	a, err := reg.Create(component.DefaultName)
	require.NoError(t, err)
	b, err := reg.Create(component.DefaultName)
	require.NoError(t, err)

	require.NoError(t, a.Set("dialRadius", 20))
	assert.Empty(t, b.Props())
}

func TestRegistryErrors(t *testing.T) {
	reg := component.NewMapRegistry()
	require.NoError(t, component.Install(reg, "", nil))

	assert.ErrorIs(t, component.Install(reg, component.DefaultName, nil), component.ErrAlreadyRegistered)
	_, err := reg.Create("Missing")
	assert.ErrorIs(t, err, component.ErrNotRegistered)
	assert.Error(t, reg.Register("Nil", nil))
}
