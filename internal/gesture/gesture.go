// Package gesture turns raw pointer positions into placement updates for a
// single entity. A gesture is a pointer-down/move/up interaction; the two
// modes are mutually exclusive on one entity.
package gesture

import (
	"math"

	"github.com/youruser/photobooth/internal/booth"
)

// Move drags an entity by its grab point: the offset between the pointer
// and the entity position is captured once and held for the whole gesture.
type Move struct {
	offsetX float64
	offsetY float64
}

// StartMove begins a move gesture with the pointer at (px, py) and the
// entity at (posX, posY).
func StartMove(px, py, posX, posY float64) Move {
	return Move{offsetX: px - posX, offsetY: py - posY}
}

// Update returns the entity position for the current pointer. Only the last
// pointer position matters; the path taken to it does not.
func (m Move) Update(px, py float64) (x, y float64) {
	return px - m.offsetX, py - m.offsetY
}

// Transform rotates and scales an entity around its fixed visual center
// with a single pointer. Both updates derive from the pointer-to-center
// vector: its angle drives rotation, its length drives scale.
type Transform struct {
	centerX     float64
	centerY     float64
	angleOffset float64 // degrees
	baseDist    float64
	baseScale   float64
}

// StartTransform begins a rotate+scale gesture. The entity's current
// rotation (degrees) and scale become the baselines; (cx, cy) is the visual
// center, which stays fixed for the whole gesture.
func StartTransform(px, py, cx, cy, rotation, scale float64) Transform {
	dx := px - cx
	dy := py - cy
	return Transform{
		centerX:     cx,
		centerY:     cy,
		angleOffset: rotation - degrees(math.Atan2(dy, dx)),
		baseDist:    math.Hypot(dx, dy),
		baseScale:   scale,
	}
}

// Update returns the rotation (degrees) and clamped scale for the current
// pointer. A gesture started with the pointer exactly at the center has no
// usable baseline distance; the scale ratio is then treated as 1.0.
func (t Transform) Update(px, py float64) (rotation, scale float64) {
	dx := px - t.centerX
	dy := py - t.centerY
	rotation = degrees(math.Atan2(dy, dx)) + t.angleOffset

	ratio := 1.0
	if t.baseDist > 0 {
		ratio = math.Hypot(dx, dy) / t.baseDist
	}
	scale = booth.ClampScale(t.baseScale * ratio)
	return rotation, scale
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
