package qr

import (
	"fmt"
	"io"
	"os"
)

// Generator writes QR images and reports each result to Out.
type Generator struct {
	Settings Settings
	Out      io.Writer
}

// NewGenerator returns a Generator using DefaultSettings and reporting to
// out, or to standard output when out is nil.
func NewGenerator(out io.Writer) *Generator {
	if out == nil {
		out = os.Stdout
	}
	return &Generator{Settings: DefaultSettings(), Out: out}
}

// Generate writes url as a QR image at path, then prints the path and the
// encoded URL. The URL is encoded verbatim.
func (g *Generator) Generate(url, path string) error {
	if path == "" {
		path = DefaultFilename
	}
	if err := WriteFile(url, path, g.Settings); err != nil {
		return err
	}

	out := g.Out
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintf(out, "✅ QR code generated: %s\n", path)
	fmt.Fprintf(out, "📱 URL: %s\n", url)
	return nil
}
