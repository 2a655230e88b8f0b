// Package fonts provides the bundled raster fonts for PNG rendering.
//
// Template font families are not available at raster time, so text rasters
// with the Go fonts bundled into the binary; weight and italic map onto the
// closest bundled face. Faces are cached per (bold, italic, size).
package fonts

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	once    sync.Once
	regular *truetype.Font
	bold    *truetype.Font
	italic  *truetype.Font

	faceMu sync.Mutex
	faces  map[faceKey]font.Face
)

type faceKey struct {
	bold, italic bool
	size         float64
}

func load() {
	regular, _ = truetype.Parse(goregular.TTF)
	bold, _ = truetype.Parse(gobold.TTF)
	italic, _ = truetype.Parse(goitalic.TTF)
	faces = make(map[faceKey]font.Face)
}

// Face returns a cached font face. Weights of 600 and above select the bold
// face; bold wins over italic when both apply.
func Face(weight int, ital bool, size float64) font.Face {
	once.Do(load)
	key := faceKey{bold: weight >= 600, italic: ital, size: size}

	faceMu.Lock()
	defer faceMu.Unlock()
	if f, ok := faces[key]; ok {
		return f
	}

	ft := regular
	switch {
	case key.bold:
		ft = bold
	case key.italic:
		ft = italic
	}
	f := truetype.NewFace(ft, &truetype.Options{Size: size})
	faces[key] = f
	return f
}
