package preview

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Formats supported by Encode.
const (
	FormatWebP = "webp"
	FormatTGA  = "tga"
)

// Encode writes the image in the given format.
func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case FormatWebP:
		return nativewebp.Encode(w, img, nil)
	case FormatTGA:
		return tga.Encode(w, img)
	}
	return fmt.Errorf("preview: unknown format %q", format)
}

// WriteFile encodes the image into a new file at path.
func WriteFile(path string, img image.Image, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := Encode(f, img, format); err != nil {
		return fmt.Errorf("preview: encode %s: %w", path, err)
	}
	return nil
}
