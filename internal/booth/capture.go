package booth

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// ErrDecode marks an image payload that could not be decoded.
var ErrDecode = errors.New("image payload could not be decoded")

// NewPhoto wraps a captured still frame as a new entity. The frame must be
// a decodable raster; when mirror is set the frame is flipped horizontally
// (selfie capture) and re-encoded, otherwise the original bytes are kept
// untouched.
func NewPhoto(frame []byte, style, name string, mirror bool) (*Photo, error) {
	img, err := imaging.Decode(bytes.NewReader(frame))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	payload := frame
	if mirror {
		buf := new(bytes.Buffer)
		if err := imaging.Encode(buf, imaging.FlipH(img), imaging.PNG); err != nil {
			return nil, fmt.Errorf("encoding mirrored frame: %w", err)
		}
		payload = buf.Bytes()
	}

	return &Photo{
		ID:        uuid.NewString(),
		Style:     style,
		Name:      name,
		Scale:     1.0,
		CreatedAt: time.Now(),
		Image:     payload,
	}, nil
}
