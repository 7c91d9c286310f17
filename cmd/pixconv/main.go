// Command pixconv converts an image file between pixel formats and
// writes the result as PNG or BMP. It exists mostly to exercise the
// converter on real files and to print which strategy a format pair
// selects.
package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/jessevdk/go-flags"
	"golang.org/x/image/bmp"

	"github.com/vvhh2002/blend2d"
)

type options struct {
	Input   string `short:"i" long:"input"  description:"The input image (PNG or BMP)" required:"true"`
	Output  string `short:"o" long:"output" description:"The output image (PNG or BMP)" required:"true"`
	Format  string `short:"f" long:"format" description:"Intermediate pixel format" default:"prgb32"`
	Verbose bool   `short:"v" long:"verbose" description:"Print the selected strategy"`
}

var formatsByName = map[string]blend2d.FormatInfo{
	"prgb32":   blend2d.FormatPRGB32,
	"xrgb32":   blend2d.FormatXRGB32,
	"argb32":   blend2d.FormatARGB32,
	"rgba32":   blend2d.FormatRGBA32,
	"rgb24":    blend2d.FormatRGB24,
	"bgr24":    blend2d.FormatBGR24,
	"rgb565":   blend2d.FormatRGB565,
	"rgb555":   blend2d.FormatRGB555,
	"argb4444": blend2d.FormatARGB4444,
	"a8":       blend2d.FormatA8,
	"l8":       blend2d.FormatL8,
}

func parseCmd() options {
	var opts options
	cmdParser := flags.NewParser(&opts, flags.Default)

	if _, err := cmdParser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
	return opts
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		return bmp.Decode(f)
	default:
		return png.Decode(f)
	}
}

func saveImage(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		return bmp.Encode(f, img)
	default:
		return png.Encode(f, img)
	}
}

func run(opts options) error {
	format, ok := formatsByName[strings.ToLower(opts.Format)]
	if !ok {
		return fmt.Errorf("unknown format %q", opts.Format)
	}

	img, err := loadImage(opts.Input)
	if err != nil {
		return err
	}

	src, err := blend2d.FromImage(img)
	if err != nil {
		return err
	}

	if opts.Verbose {
		conv, err := blend2d.New(format, src.Format(), 0)
		if err != nil {
			return err
		}
		fmt.Printf("%v <- %v: strategy %v, optimized %v\n",
			format, src.Format(), conv.Strategy(), conv.IsOptimized())
		conv.Reset()
	}

	mid, err := src.ConvertTo(format)
	if err != nil {
		return err
	}

	out, err := mid.Image()
	if err != nil {
		return err
	}
	return saveImage(opts.Output, out)
}

func main() {
	opts := parseCmd()
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "pixconv: %v\n", err)
		os.Exit(1)
	}
}
