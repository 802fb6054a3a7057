// Package convert rasterizes images into the HTML cell encoding consumed
// by the render decoder. Two implementations exist: Exec shells out to a
// jp2a-compatible binary, Native computes the cells in-process. Both speak
// the same wire format, so everything downstream of the converter has a
// single decode path.
package convert

import (
	"context"
	"errors"

	"github.com/mbaudet/oeuvre/internal/render"
)

// ErrConversion tags every converter failure, so callers can recognize a
// broken conversion without caring which implementation ran.
var ErrConversion = errors.New("conversion failed")

// Request describes the character grid the converter must fill. The
// converter fits the image inside Columns x Rows preserving its aspect
// ratio; it never exceeds either bound.
type Request struct {
	Columns int
	Rows    int
	Mode    render.Mode
}

// Converter turns an image file into the structured cell encoding. The
// image is opaque bytes on disk; how pixels become glyphs and colors is
// the implementation's business.
type Converter interface {
	Convert(ctx context.Context, imagePath string, req Request) (string, error)
}

func validate(req Request) error {
	if req.Columns < 1 || req.Rows < 1 {
		return errors.New("requested grid has no room")
	}
	return nil
}
