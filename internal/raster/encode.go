package raster

import (
	"fmt"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
)

// Format is an output image format
type Format int

const (
	FormatPNG Format = iota
	FormatWebP
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatWebP:
		return "webp"
	}
	return "unknown"
}

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".webp":
		return FormatWebP, nil
	}
	return 0, fmt.Errorf("unsupported image extension %q (want .png or .webp)", filepath.Ext(path))
}

// Encode writes the canvas image in the given format
func (c *Canvas) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatPNG:
		if err := png.Encode(w, c.img); err != nil {
			return fmt.Errorf("PNG encode: %w", err)
		}
	case FormatWebP:
		if err := nativewebp.Encode(w, c.img, nil); err != nil {
			return fmt.Errorf("WebP encode: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format %v", format)
	}
	return nil
}
