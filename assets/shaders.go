package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

// LoadTintShader compiles the shader that colors a character frame by its
// player slot. The shader reads the tint from its Tint uniform.
func LoadTintShader() (*ebiten.Shader, error) {
	src, err := shaderFS.ReadFile("shaders/tint.kage")
	if err != nil {
		return nil, fmt.Errorf("read tint shader: %w", err)
	}
	s, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("compile tint shader: %w", err)
	}
	return s, nil
}
