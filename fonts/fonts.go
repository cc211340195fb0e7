package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Title   FontName = "title"
	Small   FontName = "small"
)

// Set holds the faces used by the HUD.
type Set struct {
	faces map[FontName]font.Face
}

// NewSet loads Go Regular at the HUD sizes.
func NewSet() (*Set, error) {
	s := &Set{faces: make(map[FontName]font.Face)}
	sizes := map[FontName]float64{
		Regular: 14,
		Title:   28,
		Small:   10,
	}
	for name, size := range sizes {
		if err := s.LoadWithSize(name, goregular.TTF, size); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Set) LoadWithSize(name FontName, ttf []byte, size float64) error {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	s.faces[name] = truetype.NewFace(f, &truetype.Options{Size: size})
	return nil
}

// Face returns the named face. Unknown names get the built-in bitmap face.
func (s *Set) Face(name FontName) font.Face {
	if s != nil {
		if f, ok := s.faces[name]; ok {
			return f
		}
	}
	return basicfont.Face7x13
}
