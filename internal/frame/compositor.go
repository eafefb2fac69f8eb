package frame

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gogpu/gg"
)

// ErrDecode marks a photo payload the compositor could not decode.
var ErrDecode = errors.New("photo payload could not be decoded")

// Compose rasterizes one framed photo for export. The output is always
// BaseWidth*Upscale by BaseHeight*Upscale pixels regardless of the source
// aspect ratio; the photo is cover-fit into the content rectangle and
// clipped to it. Each call draws into its own buffer, so concurrent calls
// never share state.
func Compose(payload []byte, styleName, name string) (image.Image, error) {
	st, ok := Lookup(styleName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, styleName)
	}
	src, err := imaging.Decode(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	const k = float64(Upscale)
	w := BaseWidth * Upscale
	h := BaseHeight * Upscale
	dc := gg.NewContext(w, h)

	drawBackground(dc, st, k)
	drawBorder(dc, st, k)

	// photo window
	cx, cy, cw, ch := ContentRect()
	cx, cy, cw, ch = cx*k, cy*k, cw*k, ch*k
	fitted := imaging.Fill(src, int(cw), int(ch), imaging.Center, imaging.Lanczos)
	dc.ClipRect(cx, cy, cw, ch)
	dc.DrawImage(gg.ImageBufFromImage(fitted), cx, cy)
	dc.ResetClip()

	drawGlyphs(dc, st, cx, cy, cw, ch, k)
	drawHeader(dc, st, name, k)
	drawFooter(dc, st, k)

	return dc.Image(), nil
}

func drawBackground(dc *gg.Context, st Style, k float64) {
	w := float64(BaseWidth) * k
	h := float64(BaseHeight) * k
	bg := st.Background
	switch bg.Kind {
	case "gradient":
		brush := gg.NewLinearGradientBrush(0, 0, 0, h)
		for i, c := range bg.Colors {
			off := 0.0
			if len(bg.Colors) > 1 {
				off = float64(i) / float64(len(bg.Colors)-1)
			}
			brush.AddColorStop(off, gg.Hex(c))
		}
		dc.SetFillBrush(brush)
		dc.DrawRectangle(0, 0, w, h)
		dc.Fill()
	case "pattern":
		// dot grid, staggered every other row
		dc.ClearWithColor(gg.Hex(bg.Colors[0]))
		dc.SetHexColor(bg.Colors[1])
		for row, y := 0, 12.0; y < BaseHeight; y, row = y+24, row+1 {
			x := 12.0
			if row%2 == 1 {
				x += 12
			}
			for ; x < BaseWidth; x += 24 {
				dc.DrawCircle(x*k, y*k, 4*k)
			}
		}
		dc.Fill()
	default: // flat
		dc.ClearWithColor(gg.Hex(bg.Colors[0]))
	}
}

func drawBorder(dc *gg.Context, st Style, k float64) {
	w := float64(BaseWidth) * k
	h := float64(BaseHeight) * k
	lw := 3 * k
	dc.SetHexColor(st.Border)
	dc.SetLineWidth(lw)
	dc.DrawRectangle(lw/2, lw/2, w-lw, h-lw)
	dc.Stroke()
}

// drawGlyphs anchors each decorative glyph to a corner of the photo
// window, not the outer frame.
func drawGlyphs(dc *gg.Context, st Style, cx, cy, cw, ch, k float64) {
	for _, g := range st.Glyphs {
		x, y := cx, cy // tl
		switch g.Corner {
		case "tr":
			x, y = cx+cw, cy
		case "bl":
			x, y = cx, cy+ch
		case "br":
			x, y = cx+cw, cy+ch
		}
		x += g.DX * k
		y += g.DY * k

		dc.Push()
		dc.RotateAbout(g.Rotation*math.Pi/180, x, y)
		dc.SetHexColor(g.Color)
		switch g.Shape {
		case "heart":
			drawHeart(dc, x, y, g.Size*k)
		case "sparkle":
			drawStar(dc, x, y, 4, g.Size*k, g.Size*k*0.35)
		default: // star
			drawStar(dc, x, y, 5, g.Size*k, g.Size*k*0.45)
		}
		dc.Fill()
		dc.Pop()
	}
}

func drawStar(dc *gg.Context, x, y float64, points int, outer, inner float64) {
	for i := 0; i <= 2*points; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + float64(i)*math.Pi/float64(points)
		px := x + r*math.Cos(a)
		py := y + r*math.Sin(a)
		if i == 0 {
			dc.MoveTo(px, py)
		} else {
			dc.LineTo(px, py)
		}
	}
	dc.ClosePath()
}

func drawHeart(dc *gg.Context, x, y, r float64) {
	dc.MoveTo(x, y+r)
	dc.CubicTo(x-1.4*r, y+0.1*r, x-0.9*r, y-r, x, y-0.35*r)
	dc.CubicTo(x+0.9*r, y-r, x+1.4*r, y+0.1*r, x, y+r)
	dc.ClosePath()
}

// headerText resolves the display name, falling back to the placeholder
// for an empty or blank name.
func headerText(name string) string {
	if s := strings.TrimSpace(name); s != "" {
		return s
	}
	return DefaultName
}

// drawHeader renders the display name centered on the header anchor, word
// wrapped with a character fallback, with an outline pass for legibility.
func drawHeader(dc *gg.Context, st Style, name string, k float64) {
	s := headerText(name)
	dc.SetFont(headerFace(20 * k))

	maxWidth := float64(BaseWidth-2*marginSide) * k
	lines := wrapHeader(dc, s, maxWidth)

	lineH := float64(headerLineH) * k
	startY := float64(headerAnchorY)*k - lineH*float64(len(lines)-1)/2
	centerX := float64(BaseWidth) * k / 2
	o := 1.5 * k

	for i, line := range lines {
		y := startY + float64(i)*lineH
		dc.SetHexColor(st.Outline)
		for _, d := range [][2]float64{
			{-o, -o}, {0, -o}, {o, -o},
			{-o, 0}, {o, 0},
			{-o, o}, {0, o}, {o, o},
		} {
			dc.DrawStringAnchored(line, centerX+d[0], y+d[1], 0.5, 0.5)
		}
		dc.SetHexColor(st.Accent)
		dc.DrawStringAnchored(line, centerX, y, 0.5, 0.5)
	}
}

// drawFooter renders the fixed caption and attribution. Neither wraps.
func drawFooter(dc *gg.Context, st Style, k float64) {
	centerX := float64(BaseWidth) * k / 2

	dc.SetHexColor(st.Accent)
	dc.SetFont(headerFace(12 * k))
	dc.DrawStringAnchored(captionLine1, centerX, float64(captionY1)*k, 0.5, 0.5)
	dc.SetFont(bodyFace(11 * k))
	dc.DrawStringAnchored(captionLine2, centerX, float64(captionY2)*k, 0.5, 0.5)

	dc.SetHexColor(st.Border)
	dc.SetFont(bodyFace(9 * k))
	dc.DrawStringAnchored(creditLine1, centerX, float64(attributionY1)*k, 0.5, 0.5)
	dc.DrawStringAnchored(creditLine2, centerX, float64(attributionY2)*k, 0.5, 0.5)
}
