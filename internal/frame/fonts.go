package frame

import (
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	headerSource *text.FontSource
	bodySource   *text.FontSource
)

func init() {
	var err error
	headerSource, err = text.NewFontSource(gobold.TTF)
	if err != nil {
		panic("frame: parsing embedded header font: " + err.Error())
	}
	bodySource, err = text.NewFontSource(goregular.TTF)
	if err != nil {
		panic("frame: parsing embedded body font: " + err.Error())
	}
}

func headerFace(size float64) text.Face { return headerSource.Face(size) }
func bodyFace(size float64) text.Face   { return bodySource.Face(size) }
