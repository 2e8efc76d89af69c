package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDefaults(t *testing.T) {
	require.NoError(t, Init(""))

	c := Get()
	assert.Equal(t, 60, c.Game.Map.Width)
	assert.Equal(t, 24, c.Game.Map.Height)
	assert.InDelta(t, 0.55, c.Game.Map.LandFraction, 1e-9)
	assert.Equal(t, 12, c.Game.Map.Cities)

	assert.Equal(t, 3, c.Game.Sight.City)
	assert.Equal(t, 4, c.Game.Sight.Fighter)

	assert.InDelta(t, 0.55, c.Game.Combat.BaseAttackerHit, 1e-9)
	assert.InDelta(t, 0.65, c.Game.Combat.FighterVsArmyAttackerHit, 1e-9)
	assert.Equal(t, 3, c.Game.Combat.AttackerDamage)

	assert.Equal(t, 6, c.Game.Units.Army.Cost)
	assert.Equal(t, 24, c.Game.Units.Missile.Cost)
	assert.Equal(t, 10, c.Game.Units.MissileMaxRange)
	assert.Equal(t, 2, c.Game.Units.SupportCap)

	assert.Equal(t, "saves", c.Persistence.SaveDir)
	assert.Equal(t, 50, c.Demo.MaxTurns)
}

func TestInitMissingExplicitFileFallsBackToDefaults(t *testing.T) {
	require.NoError(t, Init("/nonexistent/config.yaml"))
	assert.Equal(t, 60, Get().Game.Map.Width)
}

func TestInitReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("game:\n  map:\n    width: 80\n    height: 30\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	require.NoError(t, Init(path))

	c := Get()
	assert.Equal(t, 80, c.Game.Map.Width)
	assert.Equal(t, 30, c.Game.Map.Height)
	assert.Equal(t, 12, c.Game.Map.Cities, "unset keys keep their defaults")
	assert.Equal(t, path, ConfigFilePath())
}

func TestInitRejectsInvalidConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("game:\n  map:\n    land_fraction: 1.5\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	err := Init(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "land_fraction")
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		require.NoError(t, Init(""))
		c := *Get()
		return &c
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero map width", func(c *Config) { c.Game.Map.Width = 0 }},
		{"land fraction too high", func(c *Config) { c.Game.Map.LandFraction = 1.0 }},
		{"negative sight radius", func(c *Config) { c.Game.Sight.Army = -1 }},
		{"hit chance above one", func(c *Config) { c.Game.Combat.BaseAttackerHit = 1.2 }},
		{"zero damage", func(c *Config) { c.Game.Combat.AttackerDamage = 0 }},
		{"zero report capacity", func(c *Config) { c.Game.Combat.ReportCapacity = 0 }},
		{"zero unit hp", func(c *Config) { c.Game.Units.Carrier.HP = 0 }},
		{"zero missile range", func(c *Config) { c.Game.Units.MissileMaxRange = 0 }},
		{"empty save dir", func(c *Config) { c.Persistence.SaveDir = "" }},
		{"zero demo turns", func(c *Config) { c.Demo.MaxTurns = 0 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := base()
			require.NoError(t, Validate(c))
			tc.mutate(c)
			assert.Error(t, Validate(c))
		})
	}
}

func TestSetUpdatesStruct(t *testing.T) {
	require.NoError(t, Init(""))

	Set("game.map.width", 100)
	assert.Equal(t, 100, Get().Game.Map.Width)

	Set("game.map.width", 60)
}
