// Package frame renders a captured photo into a decorative frame design.
// One declarative style table drives both the export rasterizer here and
// the layout proportions reported to live renderers, so the two cannot
// drift apart.
package frame

import "errors"

// ErrUnknownStyle is returned when a style name is not in the table.
var ErrUnknownStyle = errors.New("unknown frame style")

// Base layout of the frame design, in design units. Export output is
// BaseWidth*Upscale by BaseHeight*Upscale pixels; the live canvas element
// is DisplayWidth by DisplayHeight at scale 1.
const (
	BaseWidth  = 300
	BaseHeight = 380
	Upscale    = 3

	DisplayWidth  = 150
	DisplayHeight = 190

	// Content rectangle margins: the photo window inside the frame.
	marginSide   = 20
	marginTop    = 90
	marginBottom = 70

	// Vertical anchor the wrapped header block is centered on.
	headerAnchorY = 46
	headerLineH   = 26

	// Footer caption and attribution baselines.
	captionY1     = 330
	captionY2     = 346
	attributionY1 = 362
	attributionY2 = 374
)

// Fixed texts shared by every style.
const (
	DefaultName  = "my photo"
	captionLine1 = "* photobooth *"
	captionLine2 = "say cheese!"
	creditLine1  = "made with love"
	creditLine2  = "photobooth studio"
)

// ContentRect is the photo window in design units.
func ContentRect() (x, y, w, h float64) {
	return marginSide, marginTop, BaseWidth - 2*marginSide, BaseHeight - marginTop - marginBottom
}

// DisplayCenter returns the visual center of a live canvas element whose
// top-left sits at (posX, posY). CSS-style transforms pivot the element
// center and never move it, so scale and rotation do not enter here.
func DisplayCenter(posX, posY float64) (cx, cy float64) {
	return posX + DisplayWidth/2, posY + DisplayHeight/2
}

// Background describes the style's backdrop treatment.
type Background struct {
	Kind   string   `json:"kind"`            // flat | gradient | pattern
	Colors []string `json:"colors"`          // flat: [fill]; gradient: stops top to bottom; pattern: [base, dot]
	Motif  string   `json:"motif,omitempty"` // pattern only: dots
}

// Glyph is one decorative shape anchored to a corner of the photo window.
type Glyph struct {
	Shape    string  `json:"shape"`  // heart | star | sparkle
	Corner   string  `json:"corner"` // tl | tr | bl | br
	DX       float64 `json:"dx"`     // offset from the corner, design units
	DY       float64 `json:"dy"`
	Rotation float64 `json:"rotation"` // degrees
	Size     float64 `json:"size"`     // nominal radius, design units
	Color    string  `json:"color"`
}

// Style is one entry of the closed style set.
type Style struct {
	Name       string     `json:"name"`
	Label      string     `json:"label"`
	Background Background `json:"background"`
	Border     string     `json:"border"`
	Accent     string     `json:"accent"`  // header fill
	Outline    string     `json:"outline"` // header outline, contrasting
	Glyphs     []Glyph    `json:"glyphs"`
}

// Styles is the closed style set, in presentation order.
var Styles = []Style{
	{
		Name:       "daisy",
		Label:      "Daisy",
		Background: Background{Kind: "flat", Colors: []string{"#fdf6e3"}},
		Border:     "#b58900",
		Accent:     "#cb4b16",
		Outline:    "#fdf6e3",
		Glyphs: []Glyph{
			{Shape: "star", Corner: "tl", DX: -6, DY: -6, Rotation: -15, Size: 16, Color: "#b58900"},
			{Shape: "star", Corner: "br", DX: 6, DY: 6, Rotation: 20, Size: 12, Color: "#cb4b16"},
		},
	},
	{
		Name:       "bubblegum",
		Label:      "Bubblegum",
		Background: Background{Kind: "gradient", Colors: []string{"#ffd6e8", "#ff9ecb"}},
		Border:     "#e85d9e",
		Accent:     "#d6336c",
		Outline:    "#fff0f6",
		Glyphs: []Glyph{
			{Shape: "heart", Corner: "tr", DX: 4, DY: -8, Rotation: 12, Size: 15, Color: "#e85d9e"},
			{Shape: "heart", Corner: "bl", DX: -4, DY: 8, Rotation: -18, Size: 11, Color: "#d6336c"},
			{Shape: "sparkle", Corner: "br", DX: 8, DY: 4, Rotation: 0, Size: 9, Color: "#fff0f6"},
		},
	},
	{
		Name:       "polka",
		Label:      "Polka",
		Background: Background{Kind: "pattern", Colors: []string{"#e6fcf5", "#63e6be"}, Motif: "dots"},
		Border:     "#099268",
		Accent:     "#087f5b",
		Outline:    "#e6fcf5",
		Glyphs: []Glyph{
			{Shape: "sparkle", Corner: "tl", DX: -5, DY: -5, Rotation: 0, Size: 13, Color: "#099268"},
			{Shape: "sparkle", Corner: "tr", DX: 5, DY: -5, Rotation: 30, Size: 10, Color: "#087f5b"},
		},
	},
}

// DefaultStyle is the style used when a capture names none.
var DefaultStyle = Styles[0].Name

// Lookup finds a style by name.
func Lookup(name string) (Style, bool) {
	for _, st := range Styles {
		if st.Name == name {
			return st, true
		}
	}
	return Style{}, false
}
