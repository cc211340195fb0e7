package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidSettings = errors.New("invalid settings")

// Load reads a YAML settings file on top of Defaults. Fields missing from
// the file keep their default values.
func Load(path string) (*Settings, error) {
	s := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate rejects values the game cannot run with.
func (s *Settings) Validate() error {
	switch {
	case s.Loop.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate must be positive", ErrInvalidSettings)
	case s.Loop.MaxSteps <= 0:
		return fmt.Errorf("%w: max_steps must be positive", ErrInvalidSettings)
	case s.Loop.Overflow != "drop" && s.Loop.Overflow != "carry":
		return fmt.Errorf("%w: overflow must be drop or carry, got %q", ErrInvalidSettings, s.Loop.Overflow)
	case s.Input.Players <= 0:
		return fmt.Errorf("%w: players must be positive", ErrInvalidSettings)
	case s.Input.LocalPlayer < 0 || s.Input.LocalPlayer >= s.Input.Players:
		return fmt.Errorf("%w: local_player %d out of range", ErrInvalidSettings, s.Input.LocalPlayer)
	case s.Character.MoveSpeed <= 0:
		return fmt.Errorf("%w: move_speed must be positive", ErrInvalidSettings)
	case s.Character.MaxJumps <= 0:
		return fmt.Errorf("%w: max_jumps must be positive", ErrInvalidSettings)
	case s.Character.Width <= 0 || s.Character.Height <= 0:
		return fmt.Errorf("%w: character dimensions must be positive", ErrInvalidSettings)
	case s.Physics.CellSize <= 0:
		return fmt.Errorf("%w: cell_size must be positive", ErrInvalidSettings)
	}
	return nil
}

// FixedStep is the duration of one fixed update in seconds.
func (s *Settings) FixedStep() float64 {
	return 1 / float64(s.Loop.TickRate)
}
