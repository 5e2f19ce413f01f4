// Command identicon renders deterministic avatar images from input strings.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gopix/identicon"
	"github.com/gopix/identicon/internal/config"
	"github.com/gopix/identicon/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var (
		size    = flag.Int("size", cfg.Size, "output image edge length in pixels (with -serve: maximum requestable size)")
		dir     = flag.String("dir", cfg.Dir, "output directory")
		format  = flag.String("format", cfg.Format, "output format (png or bmp)")
		bg      = flag.String("bg", "", "background color as #rrggbb (default white)")
		serve   = flag.Bool("serve", false, "serve identicons over HTTP instead of writing files")
		addr    = flag.String("addr", cfg.Addr, "listen address for -serve")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		identicon.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *serve {
		// The server shares the package logger set above; -size becomes
		// the per-request size cap.
		srv := web.NewServer(web.WithSizeLimit(*size))
		log.Printf("Serving identicons on %s", *addr)
		log.Fatal(http.ListenAndServe(*addr, srv.Handler()))
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: identicon [flags] INPUT...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	opts := []identicon.Option{identicon.WithSize(*size)}
	if *bg != "" {
		c, err := identicon.ParseHex(*bg)
		if err != nil {
			log.Fatalf("Invalid -bg: %v", err)
		}
		opts = append(opts, identicon.WithBackground(c))
	}

	for _, input := range flag.Args() {
		path := filepath.Join(*dir, input+"."+*format)
		if err := writeIcon(input, path, *format, opts); err != nil {
			log.Fatalf("Failed to write %s: %v", path, err)
		}
		log.Printf("Wrote %s", path)
	}
}

// writeIcon renders input and saves it under path in the given format.
func writeIcon(input, path, format string, opts []identicon.Option) error {
	pm := identicon.Generate(input, opts...)
	switch format {
	case "png":
		return pm.SavePNG(path)
	case "bmp":
		return pm.SaveBMP(path)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
