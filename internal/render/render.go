// Package render exports charts as image files: headless rasterization
// with optional supersampling, encoded to WebP or PNG.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"

	"github.com/litescript/ls-skychart/internal/canvas"
	"github.com/litescript/ls-skychart/internal/chart"
	"github.com/litescript/ls-skychart/internal/sky"
)

// Format selects the output encoding.
type Format string

const (
	FormatWebP Format = "webp"
	FormatPNG  Format = "png"
)

// ErrUnknownFormat indicates an unsupported output format or file
// extension.
var ErrUnknownFormat = errors.New("render: unknown output format")

// FormatFromPath derives the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".webp":
		return FormatWebP, nil
	case ".png":
		return FormatPNG, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Chart rasterizes the chart for the observer and instant and returns
// the image at the chart's configured size. With supersample > 1 the
// chart is rendered at a multiple of the target size and downscaled
// with CatmullRom, which smooths star points and line aliasing.
func Chart(c chart.Chart, obs sky.Observer, timestampMs int64, supersample int) *image.NRGBA {
	if supersample <= 1 {
		buf := canvas.NewBuffer(int(c.Settings.Width), int(c.Settings.Height))
		c.Render(buf, obs, timestampMs)
		return buf.Image()
	}

	big := c
	big.Settings.Width = c.Settings.Width * uint32(supersample)
	big.Settings.Height = c.Settings.Height * uint32(supersample)
	big.Settings.BackgroundRadius = c.Settings.BackgroundRadius * float64(supersample)

	buf := canvas.NewBuffer(int(big.Settings.Width), int(big.Settings.Height))
	big.Render(buf, obs, timestampMs)

	// The chart is fully opaque, so scaling NRGBA directly is safe; no
	// premultiply round trip needed.
	dst := image.NewNRGBA(image.Rect(0, 0, int(c.Settings.Width), int(c.Settings.Height)))
	src := buf.Image()
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Encode writes the image to w in the given format.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case FormatWebP:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("render: webp encode: %w", err)
		}
		return nil
	case FormatPNG:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("render: png encode: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// WriteFile encodes the image to path, deriving the format from the
// file extension.
func WriteFile(path string, img image.Image) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	defer out.Close()

	if err := Encode(out, img, f); err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("render: close %s: %w", path, err)
	}
	return nil
}
