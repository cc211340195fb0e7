package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultsAreValid(t *testing.T) {
	s := Defaults()
	require.NoError(t, s.Validate())
	assert.InDelta(t, 1.0/60.0, s.FixedStep(), 1e-12)
	assert.Equal(t, BaseStats(), s.Character)
	assert.Len(t, s.Animation.Clips, 8)
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	path := writeSettings(t, `
loop:
  max_steps: 3
  overflow: carry
character:
  max_jumps: 2
logging:
  level: debug
`)
	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, s.Loop.MaxSteps)
	assert.Equal(t, "carry", s.Loop.Overflow)
	assert.Equal(t, 60, s.Loop.TickRate)
	assert.Equal(t, 2, s.Character.MaxJumps)
	assert.Equal(t, 10.0, s.Character.MoveSpeed)
	assert.Equal(t, "debug", s.Logging.Level)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero tick rate", "loop:\n  tick_rate: 0\n"},
		{"bad overflow", "loop:\n  overflow: slowmo\n"},
		{"no players", "input:\n  players: 0\n"},
		{"local player out of range", "input:\n  players: 2\n  local_player: 2\n"},
		{"no jumps", "character:\n  max_jumps: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeSettings(t, tt.body))
			assert.ErrorIs(t, err, ErrInvalidSettings)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStatePredicates(t *testing.T) {
	assert.True(t, StateDucking.IsGrounded())
	assert.False(t, StateJumping.IsGrounded())
	assert.True(t, StateFastFalling.IsAirborne())
	assert.True(t, StateFastFalling.CanJump())
	assert.False(t, StateDucking.CanJump())
	assert.False(t, StateHitStun.CanMove())
	assert.False(t, StateDead.CanUseAbility())
	assert.True(t, StateWalking.CanDuck())
	assert.False(t, StateDucking.CanDuck())
	assert.False(t, StateFalling.CanDuck())
	assert.Equal(t, "fast_fall", StateFastFalling.AnimationName())
	assert.Equal(t, "hit", StateHitStun.AnimationName())
}

func TestActionNames(t *testing.T) {
	assert.Equal(t, "jump", ActionJump.String())
	assert.Equal(t, "action(42)", ActionID(42).String())
	assert.False(t, ActionNone.Valid())
	assert.True(t, ActionMenu.Valid())
}
