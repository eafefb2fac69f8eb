// Package export turns composited frames into downloadable artifacts.
package export

import (
	"archive/zip"
	"bytes"
	"fmt"
	"image/png"
	"io"
	"strings"

	"github.com/youruser/photobooth/internal/booth"
	"github.com/youruser/photobooth/internal/frame"
)

// PNG composites one entity and encodes it as PNG bytes.
func PNG(p booth.Photo) ([]byte, error) {
	img, err := frame.Compose(p.Image, p.Style, p.Name)
	if err != nil {
		return nil, err
	}
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		return nil, fmt.Errorf("encoding composite: %w", err)
	}
	return buf.Bytes(), nil
}

// Archive writes a zip of every entity's composite to w. Entities fail in
// isolation: a payload that will not decode skips that entry and is listed
// in an errors.txt member, while the remaining entries are written intact.
// Entities are processed sequentially, one output buffer each.
func Archive(w io.Writer, photos []booth.Photo) error {
	zw := zip.NewWriter(w)
	var failures []string
	for i, p := range photos {
		b, err := PNG(p)
		if err != nil {
			failures = append(failures, fmt.Sprintf("photo-%02d (%s): %v", i+1, p.ID, err))
			continue
		}
		f, err := zw.Create(fmt.Sprintf("photo-%02d.png", i+1))
		if err != nil {
			return fmt.Errorf("creating archive entry: %w", err)
		}
		if _, err := f.Write(b); err != nil {
			return fmt.Errorf("writing archive entry: %w", err)
		}
	}
	if len(failures) > 0 {
		f, err := zw.Create("errors.txt")
		if err != nil {
			return fmt.Errorf("creating archive entry: %w", err)
		}
		if _, err := io.WriteString(f, strings.Join(failures, "\n")+"\n"); err != nil {
			return fmt.Errorf("writing archive entry: %w", err)
		}
	}
	return zw.Close()
}
