package booth

import (
	"bytes"
	"errors"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
)

// asymmetric test frame: left half red, right half blue
func testFrame(t *testing.T) []byte {
	t.Helper()
	img := imaging.New(8, 4, color.NRGBA{R: 255, A: 255})
	for y := 0; y < 4; y++ {
		for x := 4; x < 8; x++ {
			img.Set(x, y, color.NRGBA{B: 255, A: 255})
		}
	}
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, imaging.PNG); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestNewPhoto(t *testing.T) {
	frame := testFrame(t)
	p, err := NewPhoto(frame, "daisy", "Alex", false)
	if err != nil {
		t.Fatal(err)
	}
	if p.ID == "" {
		t.Fatal("no id assigned")
	}
	if p.Scale != 1.0 {
		t.Fatalf("scale = %v, want 1.0", p.Scale)
	}
	if !bytes.Equal(p.Image, frame) {
		t.Fatal("unmirrored capture must keep the original bytes")
	}
}

func TestNewPhotoMirror(t *testing.T) {
	p, err := NewPhoto(testFrame(t), "daisy", "", true)
	if err != nil {
		t.Fatal(err)
	}
	img, err := imaging.Decode(bytes.NewReader(p.Image))
	if err != nil {
		t.Fatal(err)
	}
	// red half must now be on the right
	r, _, b, _ := img.At(6, 1).RGBA()
	if r == 0 || b != 0 {
		t.Fatalf("pixel (6,1) not mirrored: r=%d b=%d", r, b)
	}
}

func TestNewPhotoDecodeError(t *testing.T) {
	_, err := NewPhoto([]byte("not an image"), "daisy", "", false)
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("err = %v, want ErrDecode", err)
	}
}

func TestNewPhotoUniqueIDs(t *testing.T) {
	frame := testFrame(t)
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		p, err := NewPhoto(frame, "daisy", "", false)
		if err != nil {
			t.Fatal(err)
		}
		if seen[p.ID] {
			t.Fatalf("duplicate id %s", p.ID)
		}
		seen[p.ID] = true
	}
}
