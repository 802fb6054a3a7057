// Debug program to render a local image file through the conversion
// pipeline without touching the network.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mbaudet/oeuvre/internal/convert"
	"github.com/mbaudet/oeuvre/internal/render"
	"github.com/mbaudet/oeuvre/internal/termsize"
)

func main() {
	var (
		fillFlag      = flag.Bool("fill", false, "paint cell backgrounds as well as glyphs")
		widthFlag     = flag.Int("width", 0, "grid width in columns (default: terminal width)")
		heightFlag    = flag.Int("height", 0, "grid height in rows (default: terminal height)")
		converterFlag = flag.String("converter", "", "path to a jp2a-compatible converter (default: built-in)")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("usage: renderimg [flags] <image-file>")
	}
	imagePath := flag.Arg(0)

	mode := render.ModeForeground
	if *fillFlag {
		mode = render.ModeFill
	}

	cols, rows := *widthFlag, *heightFlag
	if cols < 1 || rows < 1 {
		size, err := termsize.Query(os.Stdout)
		if err != nil {
			log.Fatalf("Failed to read terminal size: %v", err)
		}
		if cols < 1 {
			cols = size.Columns
		}
		if rows < 1 {
			// Leave the shell prompt a row
			rows = max(size.Rows-1, 1)
		}
	}

	var conv convert.Converter = convert.NewNative()
	if *converterFlag != "" {
		conv = convert.NewExec(*converterFlag)
	}

	log.Printf("Rendering %s onto a %dx%d grid (%s)", imagePath, cols, rows, mode)

	raw, err := conv.Convert(context.Background(), imagePath, convert.Request{
		Columns: cols,
		Rows:    rows,
		Mode:    mode,
	})
	if err != nil {
		log.Fatalf("Failed to convert image: %v", err)
	}

	grid, err := render.Decode(raw, mode)
	if err != nil {
		log.Fatalf("Failed to decode converter output: %v", err)
	}
	log.Printf("Decoded %d art rows", len(grid))

	fmt.Print(render.Compose(grid, mode))
}
