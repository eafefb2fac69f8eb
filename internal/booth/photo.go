package booth

import (
	"time"
)

// Scale limits for a placed photo. Applied everywhere a scale is written.
const (
	MinScale = 0.3
	MaxScale = 3.0
)

// Photo is one captured, styled photo placed on the canvas.
// The image payload is fixed at capture time; placement fields are
// mutated freely during interaction.
type Photo struct {
	ID        string    `json:"id"`
	Style     string    `json:"style"`
	Name      string    `json:"name"`
	PosX      float64   `json:"pos_x"`
	PosY      float64   `json:"pos_y"`
	Rotation  float64   `json:"rotation"` // degrees
	Scale     float64   `json:"scale"`
	ZIndex    int       `json:"z_index"`
	CreatedAt time.Time `json:"created_at"`

	// Encoded raster (PNG/JPEG bytes), never exposed in JSON responses.
	Image []byte `json:"-"`
}

// ClampScale keeps s inside [MinScale, MaxScale].
func ClampScale(s float64) float64 {
	if s < MinScale {
		return MinScale
	}
	if s > MaxScale {
		return MaxScale
	}
	return s
}
