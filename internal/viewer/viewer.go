// Package viewer drives the one-shot rendering pipeline: it sizes the art
// to the terminal while leaving room for the caption, runs the converter,
// decodes the cell encoding, and prints ANSI art followed by the tombstone.
package viewer

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/mbaudet/oeuvre/internal/artic"
	"github.com/mbaudet/oeuvre/internal/convert"
	"github.com/mbaudet/oeuvre/internal/render"
	"github.com/mbaudet/oeuvre/internal/termsize"
	"github.com/mbaudet/oeuvre/internal/tombstone"
)

// stage tracks how far a Show run got through the pipeline. The value is
// only ever read after the fact, by verbose traces and by tests; the
// pipeline itself is strictly sequential.
type stage int

const (
	stageIdle stage = iota
	stageLayout
	stageConverted
	stageDecoded
	stageRendered
	stageDone
	stageFailed
)

// ImageSource fetches the bytes of an artwork's primary image.
type ImageSource interface {
	DownloadImage(ctx context.Context, a *artic.Artwork) ([]byte, error)
}

// Options adjust a Viewer beyond its collaborators.
type Options struct {
	Mode    render.Mode
	Verbose bool
	Out     io.Writer // art and caption; defaults to os.Stdout
	Errs    io.Writer // verbose traces; defaults to os.Stderr
}

// Viewer renders artworks to the terminal, one Show call per artwork.
type Viewer struct {
	source    ImageSource
	converter convert.Converter
	mode      render.Mode
	verbose   bool

	out  io.Writer
	errs io.Writer

	// size queries the terminal; swapped out by tests.
	size func() (termsize.Size, error)

	stage stage
}

// New creates a viewer that downloads images from source and rasterizes
// them through converter.
func New(source ImageSource, converter convert.Converter, opts Options) *Viewer {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	errs := opts.Errs
	if errs == nil {
		errs = os.Stderr
	}
	v := &Viewer{
		source:    source,
		converter: converter,
		mode:      opts.Mode,
		verbose:   opts.Verbose,
		out:       out,
		errs:      errs,
	}
	v.size = func() (termsize.Size, error) {
		if f, ok := v.out.(*os.File); ok {
			return termsize.Query(f)
		}
		return termsize.Query(os.Stdout)
	}
	return v
}

// Show renders one artwork: ANSI art fitted to the terminal, then the
// tombstone caption. The caption is printed even when the image cannot be
// rendered, so a failed run still tells the user which artwork was drawn.
// Terminal dimensions are queried fresh on every call; a resize between
// runs is honored.
func (v *Viewer) Show(ctx context.Context, a *artic.Artwork) (err error) {
	v.stage = stageIdle
	caption := tombstone.Build(a)

	defer func() {
		if err != nil {
			v.stage = stageFailed
			v.writeCaption(caption)
		}
	}()

	size, err := v.size()
	if err != nil {
		return fmt.Errorf("read terminal size: %w", err)
	}
	reserved, err := render.EstimateRows(caption, size.Columns)
	if err != nil {
		return fmt.Errorf("lay out caption: %w", err)
	}
	v.stage = stageLayout
	rows := max(size.Rows-reserved, 1)
	v.tracef("layout: %dx%d terminal, %d rows reserved for the caption", size.Columns, size.Rows, reserved)

	data, err := v.source.DownloadImage(ctx, a)
	if err != nil {
		return fmt.Errorf("download image: %w", err)
	}
	v.tracef("downloaded %s image", formatSize(len(data)))

	scratch, cleanup, err := convert.Scratch(data)
	if err != nil {
		return err
	}
	defer cleanup()

	v.tracef("requesting %dx%d cell art (%s)", size.Columns, rows, v.mode)
	raw, err := v.converter.Convert(ctx, scratch, convert.Request{
		Columns: size.Columns,
		Rows:    rows,
		Mode:    v.mode,
	})
	if err != nil {
		return fmt.Errorf("convert image: %w", err)
	}
	v.stage = stageConverted

	grid, err := render.Decode(raw, v.mode)
	if err != nil {
		return fmt.Errorf("decode converter output: %w", err)
	}
	v.stage = stageDecoded
	v.tracef("decoded %d art rows", len(grid))

	fmt.Fprint(v.out, render.Compose(grid, v.mode))
	v.writeCaption(caption)
	v.stage = stageRendered

	cleanup()
	v.stage = stageDone
	return nil
}

func (v *Viewer) writeCaption(lines []string) {
	for _, line := range lines {
		fmt.Fprintln(v.out, line)
	}
}

// tracef reports pipeline progress when verbose is on.
func (v *Viewer) tracef(format string, args ...any) {
	if v.verbose {
		fmt.Fprintf(v.errs, format+"\n", args...)
	}
}

// formatSize formats a byte count in human-readable form. Binary
// calculation with SI notation, the way download sizes usually read.
func formatSize(n int) string {
	if n < 0 {
		n = 0
	}
	s := humanize.IBytes(uint64(n))
	return strings.ReplaceAll(s, "iB", "B")
}
