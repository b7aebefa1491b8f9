// Package qr encodes payloads into QR code symbols and writes them as
// raster images.
package qr

import (
	"fmt"
	"image"
	"image/color"

	"github.com/skip2/go-qrcode"
)

// DefaultFilename is the output path used when none is given.
const DefaultFilename = "qrcode.png"

// Settings are the fixed encoding parameters of a generated code.
type Settings struct {
	Version    int // minimum symbol version; grown as needed to fit the payload
	Level      qrcode.RecoveryLevel
	BoxSize    int // pixels per module
	Border     int // quiet zone width in modules
	Foreground color.Color
	Background color.Color
}

// DefaultSettings returns version 1, low error correction, 10px modules and
// a 4 module border, black on white.
func DefaultSettings() Settings {
	return Settings{
		Version:    1,
		Level:      qrcode.Low,
		BoxSize:    10,
		Border:     4,
		Foreground: color.Black,
		Background: color.White,
	}
}

func (s Settings) validate() error {
	if s.Version < 1 || s.Version > 40 {
		return fmt.Errorf("invalid QR version %d", s.Version)
	}
	if s.BoxSize < 1 {
		return fmt.Errorf("invalid box size %d", s.BoxSize)
	}
	if s.Border < 0 {
		return fmt.Errorf("invalid border %d", s.Border)
	}
	return nil
}

// Encode builds a QR symbol for content. The smallest version able to hold
// the payload is used, but never one below s.Version.
func Encode(content string, s Settings) (*qrcode.QRCode, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	q, err := qrcode.New(content, s.Level)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	if q.VersionNumber < s.Version {
		q, err = qrcode.NewWithForcedVersion(content, s.Version, s.Level)
		if err != nil {
			return nil, fmt.Errorf("encode qr at version %d: %w", s.Version, err)
		}
	}
	return q, nil
}

// Render encodes content and draws it as a two-colour paletted image.
func Render(content string, s Settings) (image.Image, error) {
	q, err := Encode(content, s)
	if err != nil {
		return nil, err
	}

	// The quiet zone is drawn here so its width follows s.Border.
	q.DisableBorder = true
	bitmap := q.Bitmap()

	modules := len(bitmap) + 2*s.Border
	size := modules * s.BoxSize

	fg, bg := s.Foreground, s.Background
	if fg == nil {
		fg = color.Black
	}
	if bg == nil {
		bg = color.White
	}
	img := image.NewPaletted(image.Rect(0, 0, size, size), color.Palette{bg, fg})

	for y, row := range bitmap {
		for x, dark := range row {
			if !dark {
				continue
			}
			px := (x + s.Border) * s.BoxSize
			py := (y + s.Border) * s.BoxSize
			for dy := 0; dy < s.BoxSize; dy++ {
				for dx := 0; dx < s.BoxSize; dx++ {
					img.SetColorIndex(px+dx, py+dy, 1)
				}
			}
		}
	}
	return img, nil
}
