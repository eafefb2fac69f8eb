package export

import (
	"bytes"
	"image/png"

	qrcode "github.com/skip2/go-qrcode"
)

// ShareQR returns PNG bytes of a QR code for a gallery share link.
func ShareQR(text string, size int) ([]byte, error) {
	pngBytes, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		return nil, err
	}
	// validate png decode
	if _, err := png.Decode(bytes.NewReader(pngBytes)); err != nil {
		return nil, err
	}
	return pngBytes, nil
}
