package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()

	assert.NoError(t, c.Validate())
	assert.Equal(t, 40, c.GridWidth())
	assert.Equal(t, 30, c.GridHeight())
	assert.Equal(t, 5, c.InitialLength)
	assert.Equal(t, 10, c.TickRate)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.WindowWidth = 0 }},
		{"negative height", func(c *Config) { c.WindowHeight = -20 }},
		{"zero cell", func(c *Config) { c.CellSize = 0 }},
		{"uneven cells", func(c *Config) { c.CellSize = 30 }},
		{"tiny grid", func(c *Config) { c.WindowWidth, c.WindowHeight = 20, 20 }},
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }},
		{"huge tick rate", func(c *Config) { c.TickRate = 1000 }},
		{"empty snake", func(c *Config) { c.InitialLength = 0 }},
		{"snake wider than grid", func(c *Config) { c.InitialLength = 41 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}
}
