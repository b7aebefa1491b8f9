package qr

import (
	"io"

	"github.com/mdp/qrterminal/v3"
)

// Terminal writes a text rendering of content to w, for scanning straight
// off the screen.
func Terminal(content string, w io.Writer) {
	qrterminal.Generate(content, qrterminal.L, w)
}
