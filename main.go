package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mbaudet/oeuvre/internal/artic"
	"github.com/mbaudet/oeuvre/internal/browse"
	"github.com/mbaudet/oeuvre/internal/config"
	"github.com/mbaudet/oeuvre/internal/convert"
	"github.com/mbaudet/oeuvre/internal/errmsg"
	"github.com/mbaudet/oeuvre/internal/render"
	"github.com/mbaudet/oeuvre/internal/viewer"
)

func main() {
	var (
		fillFlag      = flag.Bool("fill", false, "Paint cell backgrounds as well as glyphs")
		browseFlag    = flag.Bool("browse", false, "Open the interactive gallery browser")
		randomFlag    = flag.Bool("random", false, "Pick a random artwork instead of searching")
		limitFlag     = flag.Int("limit", 20, "Maximum number of search results")
		converterFlag = flag.String("converter", "", "Path to a jp2a-compatible converter (default: built-in)")
		configFlag    = flag.String("config", "", "Path to config file")
		verboseFlag   = flag.Bool("verbose", false, "Trace the rendering pipeline on stderr")
	)
	flag.Usage = usage
	flag.Parse()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpLoadConfig, err))
		os.Exit(1)
	}

	// Flags override file config
	if *fillFlag {
		cfg.Fill = true
	}
	if *converterFlag != "" {
		cfg.Converter = *converterFlag
	}

	client := artic.NewClient(cfg.APIURL, cfg.IIIFURL, cfg.Timeout())
	client.SetUserAgent(cfg.UserAgent)

	conv := newConverter(cfg)
	mode := render.ModeForeground
	if cfg.Fill {
		mode = render.ModeFill
	}

	limit := max(*limitFlag, 1)

	if *browseFlag {
		if err := browse.Run(client, conv, mode, limit); err != nil {
			fmt.Fprintf(os.Stderr, "Error running browser: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Ctrl-C cancels in-flight network calls
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	query := strings.TrimSpace(strings.Join(flag.Args(), " "))
	art, err := selectArtwork(ctx, client, query, *randomFlag, limit)
	if err != nil {
		switch {
		case errors.Is(err, artic.ErrNoResults) && query != "":
			fmt.Fprintf(os.Stderr, "Nothing in the collection matches %q.\n", query)
		case query == "" || *randomFlag:
			fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpPickRandom, err))
		default:
			fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpSearchArtworks, err))
		}
		os.Exit(1)
	}

	v := viewer.New(client, conv, viewer.Options{Mode: mode, Verbose: *verboseFlag})
	if err := v.Show(ctx, art); err != nil {
		// The caption is already on screen either way. An artwork without
		// a digitized image is a legitimate outcome, not a failure.
		if errors.Is(err, artic.ErrNoImage) {
			fmt.Fprintln(os.Stderr, "This artwork has no digitized image.")
			return
		}
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpRenderArt, err))
		os.Exit(1)
	}
}

// selectArtwork resolves flags and query to a single artwork. Without a
// query the collection is sampled at random, same as -random.
func selectArtwork(ctx context.Context, client *artic.Client, query string, random bool, limit int) (*artic.Artwork, error) {
	if random || query == "" {
		return client.Random(ctx)
	}

	results, err := client.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, artic.ErrNoResults
	}
	// The API orders by relevance, so the first hit is the best match.
	return &results[0], nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

// newConverter picks the external binary when one is configured, the
// built-in rasterizer otherwise.
func newConverter(cfg *config.Config) convert.Converter {
	if cfg.Converter != "" {
		return convert.NewExec(cfg.Converter)
	}
	n := convert.NewNative()
	if cfg.ImageWidth > 0 {
		n.SourceBound = cfg.ImageWidth
	}
	return n
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintln(out, "oeuvre - art from the Art Institute of Chicago, in your terminal")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintln(out, "  oeuvre [flags] [query]")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Without a query, a random artwork from the collection is rendered.")
	fmt.Fprintln(out, "For the interactive gallery, use: oeuvre -browse")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Flags:")
	flag.PrintDefaults()
}
