// Package render turns a scene into pixels. It walks the view frame, shades
// one ray per pixel, and hands the result to files or a terminal.
package render

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrFormat is returned by Save for an unsupported file extension.
var ErrFormat = errors.New("render: unsupported image format")

// Image is a rendered frame.
type Image struct {
	Width  int
	Height int
	Pixels []color.RGBA // Row-major, top row first
}

// NewImage creates a transparent image of the given size.
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]color.RGBA, width*height),
	}
}

// Clear fills the image with a solid color.
func (img *Image) Clear(c color.RGBA) {
	for i := range img.Pixels {
		img.Pixels[i] = c
	}
}

// SetPixel sets the pixel at (x, y). Out of bounds writes are ignored.
func (img *Image) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		return
	}
	img.Pixels[y*img.Width+x] = c
}

// GetPixel returns the pixel at (x, y), or transparent black out of bounds.
func (img *Image) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		return color.RGBA{}
	}
	return img.Pixels[y*img.Width+x]
}

// ToImage converts to a standard library image.
func (img *Image) ToImage() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			out.SetRGBA(x, y, img.Pixels[y*img.Width+x])
		}
	}
	return out
}

// WritePPM writes the image as a plain (P3) portable pixmap, one channel
// value per line. Alpha is dropped.
func (img *Image) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.Width, img.Height)
	for _, p := range img.Pixels {
		fmt.Fprintf(bw, "%d\n%d\n%d\n", p.R, p.G, p.B)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write ppm: %w", err)
	}
	return nil
}

// WritePNG writes the image as PNG.
func (img *Image) WritePNG(w io.Writer) error {
	if err := png.Encode(w, img.ToImage()); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

// Save writes the image to path, choosing PPM or PNG by extension.
func (img *Image) Save(path string) error {
	var write func(io.Writer) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ppm":
		write = img.WritePPM
	case ".png":
		write = img.WritePNG
	default:
		return fmt.Errorf("%w: %q", ErrFormat, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save image: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
