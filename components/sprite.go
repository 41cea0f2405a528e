package components

import (
	"github.com/yohamta/donburi"
)

// SpriteData is what the renderer needs to draw the player box.
type SpriteData struct {
	Visible bool
	FlipX   bool
	Width   float64 // Pixels
	Height  float64
}

func (s *SpriteData) SetVisible(visible bool) { s.Visible = visible }
func (s *SpriteData) SetFlipX(flipped bool)   { s.FlipX = flipped }

var Sprite = donburi.NewComponentType[SpriteData]()
