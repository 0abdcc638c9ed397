// Copyright 2025 The Pixfmt Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// pixcvt converts images to and from the packed pixel formats used by the
// pixfmt package.
//
// Input images may be BMP, GIF, JPEG, PNG, TIFF or WEBP. Converted buffers
// are written as PTX dumps; "unpack" turns a dump back into a PNG.
package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/kojeomstudio/pixfmt/internal/ptx"
	"github.com/kojeomstudio/pixfmt/lib/palette"
	"github.com/kojeomstudio/pixfmt/lib/pixfmt"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

var formatNames = map[string]pixfmt.Format{
	"a1r5g5b5": pixfmt.FormatA1R5G5B5,
	"r5g6b5":   pixfmt.FormatR5G6B5,
	"r8g8b8":   pixfmt.FormatR8G8B8,
	"a8r8g8b8": pixfmt.FormatA8R8G8B8,
}

func parseFormat(name string) (pixfmt.Format, error) {
	if f, ok := formatNames[name]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("unknown format %q", name)
}

func decodeInput(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	return m, err
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return os.Stdout, nil
	}
	return os.Create(path)
}

// flipRows reverses the scanline order of a packed buffer in place of the
// loader doing it, using the format-width scanline copy.
func flipRows(buf []byte, f pixfmt.Format, w int, h int) []byte {
	out := make([]byte, len(buf))
	switch f.BytesPerPixel() {
	case 2:
		pixfmt.Convert16BitTo16Bit(buf, out, w, h, 0, true)
	case 3:
		pixfmt.Convert24BitTo24Bit(buf, out, w, h, 0, true, false)
	case 4:
		pixfmt.Convert32BitTo32Bit(buf, out, w, h, 0, true)
	default:
		copy(out, buf)
	}
	return out
}

func convertAction(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	f, err := parseFormat(c.String("format"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	m, err := decodeInput(c.Args().First())
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	b := m.Bounds()
	logger.Printf("input %dx%d, packing as %v", b.Dx(), b.Dy(), f)

	buf, err := pixfmt.FromImage(m, f)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	if c.Bool("flip") {
		buf = flipRows(buf, f, b.Dx(), b.Dy())
	}

	out, err := openOutput(c.String("output"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer out.Close()

	h := ptx.Header{Format: f, Width: b.Dx(), Height: b.Dy()}
	if err := ptx.Encode(out, h, buf); err != nil {
		return cli.NewExitError(err, 1)
	}
	return nil
}

func unpackAction(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	in, err := os.Open(c.Args().First())
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer in.Close()

	h, payload, err := ptx.Decode(in)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	m, err := pixfmt.ToImage(payload, h.Format, h.Width, h.Height)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	out, err := openOutput(c.String("output"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer out.Close()

	if err := png.Encode(out, m); err != nil {
		return cli.NewExitError(err, 1)
	}
	return nil
}

func paletteAction(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	m, err := decodeInput(c.Args().First())
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	b := m.Bounds()

	pal, pix, err := palette.FromImage(m)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	logger.Printf("quantized %dx%d to 256-entry palette", b.Dx(), b.Dy())

	back, err := palette.ToImage(pix, pal, b.Dx(), b.Dy())
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	out, err := openOutput(c.String("output"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer out.Close()

	if err := png.Encode(out, back); err != nil {
		return cli.NewExitError(err, 1)
	}
	return nil
}

func main() {
	app := cli.NewApp()

	app.Name = "pixcvt"
	app.Usage = "packed pixel-format conversion utility"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "convert",
			Usage:     "Pack an image into a packed pixel format",
			ArgsUsage: "FILE",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "format",
					Value: "a8r8g8b8",
					Usage: "destination format: a1r5g5b5, r5g6b5, r8g8b8 or a8r8g8b8",
				},
				&cli.BoolFlag{
					Name:  "flip",
					Usage: "reverse scanline order",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "output path (default stdout)",
				},
			},
			Action: convertAction,
		},
		{
			Name:      "unpack",
			Usage:     "Expand a PTX dump back into a PNG",
			ArgsUsage: "FILE",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "output path (default stdout)",
				},
			},
			Action: unpackAction,
		},
		{
			Name:      "palette",
			Usage:     "Quantize an image through a 256-color palette and write the result as PNG",
			ArgsUsage: "FILE",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "output path (default stdout)",
				},
			},
			Action: paletteAction,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
