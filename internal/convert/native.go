package convert

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"  // converter input decoding
	_ "image/jpeg" // converter input decoding
	_ "image/png"  // converter input decoding
	"math"
	"os"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"

	"github.com/mbaudet/oeuvre/internal/render"
)

// cellAspect is a terminal cell's height measured in widths. Cells are
// about twice as tall as wide, so one art row covers two pixels' worth of
// vertical image for every one of horizontal.
const cellAspect = 2.0

// glyphRamp orders glyphs by ink coverage, densest first. Bright pixels
// take dense glyphs so the art reads correctly on dark terminals.
const glyphRamp = "$@B%8&WM#*oahkbdpqwmZO0QLCJUYXzcvunxrjft/\\|()1{}[]?-_+~<>i!lI;:,\"^`'. "

// halfBlock paints the lower half of a cell with the foreground color and
// leaves the upper half to the background, giving fill mode two vertical
// samples per cell.
const halfBlock = '▄'

// defaultSourceBound caps the pixel dimensions fed to the grid resampler.
// Museum IIIF renditions stay under it; oversized local files are
// thumbnailed down first.
const defaultSourceBound = 1024

// Native converts in-process: no external binary, same wire format.
type Native struct {
	// SourceBound is the largest source width or height resampled as-is.
	SourceBound int
}

// NewNative creates the built-in converter.
func NewNative() *Native {
	return &Native{SourceBound: defaultSourceBound}
}

// Convert rasterizes the image at imagePath onto a character grid fitted
// inside the requested bounds and returns it in the converter wire format.
func (n *Native) Convert(ctx context.Context, imagePath string, req Request) (string, error) {
	if err := validate(req); err != nil {
		return "", fmt.Errorf("%s: %w", err, ErrConversion)
	}
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("convert %s: %w", imagePath, err)
	}

	img, err := n.loadImage(imagePath)
	if err != nil {
		return "", err
	}

	bounds := img.Bounds()
	cols, rows := fitGrid(bounds.Dx(), bounds.Dy(), req.Columns, req.Rows)

	var g render.Grid
	if req.Mode == render.ModeFill {
		g = fillCells(resample(img, cols, rows*2), cols, rows)
	} else {
		g = glyphCells(resample(img, cols, rows), cols, rows)
	}
	return render.Encode(g, req.Mode), nil
}

// loadImage decodes the source and thumbnails oversized ones so the
// resampling kernel runs over a bounded number of pixels.
func (n *Native) loadImage(imagePath string) (image.Image, error) {
	f, err := os.Open(imagePath)
	if err != nil {
		return nil, fmt.Errorf("open image: %v: %w", err, ErrConversion)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %v: %w", imagePath, err, ErrConversion)
	}

	bound := n.SourceBound
	if bound <= 0 {
		bound = defaultSourceBound
	}
	if b := img.Bounds(); b.Dx() > bound || b.Dy() > bound {
		img = resize.Thumbnail(uint(bound), uint(bound), img, resize.Lanczos3)
	}
	return img, nil
}

// fitGrid fits the image's aspect ratio inside the requested cell grid,
// compensating for the cell aspect. At least one cell always survives.
func fitGrid(imgW, imgH, maxCols, maxRows int) (cols, rows int) {
	cols = maxCols
	rows = int(math.Round(float64(cols) * float64(imgH) / (float64(imgW) * cellAspect)))
	if rows > maxRows {
		rows = maxRows
		cols = int(math.Round(float64(rows) * cellAspect * float64(imgW) / float64(imgH)))
		cols = min(cols, maxCols)
	}
	return max(cols, 1), max(rows, 1)
}

// resample scales the image onto the sampling raster, one pixel per sample.
func resample(img image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

// glyphCells maps one sample per cell: the sample's color becomes the
// foreground and its luminance picks a glyph from the ramp.
func glyphCells(raster *image.RGBA, cols, rows int) render.Grid {
	g := make(render.Grid, rows)
	for y := range rows {
		row := make(render.Row, cols)
		for x := range cols {
			c := sampleAt(raster, x, y)
			row[x] = render.Cell{Glyph: rampGlyph(luminance(c)), Fg: c}
		}
		g[y] = row
	}
	return g
}

// fillCells maps two vertical samples per cell onto a half-block glyph:
// the upper sample paints the background, the lower the foreground.
func fillCells(raster *image.RGBA, cols, rows int) render.Grid {
	g := make(render.Grid, rows)
	for y := range rows {
		row := make(render.Row, cols)
		for x := range cols {
			row[x] = render.Cell{
				Glyph: halfBlock,
				Fg:    sampleAt(raster, x, y*2+1),
				Bg:    sampleAt(raster, x, y*2),
				HasBg: true,
			}
		}
		g[y] = row
	}
	return g
}

func sampleAt(raster *image.RGBA, x, y int) render.RGB {
	r, g, b, _ := raster.At(raster.Rect.Min.X+x, raster.Rect.Min.Y+y).RGBA()
	return render.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// luminance approximates perceived brightness from 8-bit channels.
func luminance(c render.RGB) uint8 {
	return uint8((int(c.R)*2126 + int(c.G)*7152 + int(c.B)*722) / 10000)
}

// rampGlyph picks the glyph whose ink coverage matches the luminance.
func rampGlyph(lum uint8) rune {
	idx := len(glyphRamp) - int(float64(lum)/255*float64(len(glyphRamp)-1)) - 1
	return rune(glyphRamp[idx])
}
