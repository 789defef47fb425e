package report

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // logo decoding
	_ "image/png"  // logo decoding
	"io/fs"
	"log"
	"os"

	"golang.org/x/image/font/sfnt"
)

// AssetPaths locates optional files on disk. Empty or missing paths are skipped.
type AssetPaths struct {
	Logo     string
	Font     string
	BoldFont string
}

// Image is a decoded-header raster ready for embedding.
type Image struct {
	Data   []byte
	Format string // "png" or "jpeg"
	Width  int
	Height int
}

// Ext returns the file extension for the image format.
func (i *Image) Ext() string {
	if i.Format == "jpeg" {
		return "jpeg"
	}
	return "png"
}

// Assets holds the optional logo and Unicode font bytes.
type Assets struct {
	Logo     *Image
	Font     []byte
	BoldFont []byte
}

// LoadAssets reads whatever assets exist. Missing, unreadable or invalid
// files are logged and left nil so exports fall back to text-only output.
func LoadAssets(paths AssetPaths) *Assets {
	a := &Assets{}

	if logo := readOptional("logo", paths.Logo); logo != nil {
		img, err := DecodeImage(logo)
		if err != nil {
			log.Printf("report.LoadAssets: ignoring logo %s: %v", paths.Logo, err)
		} else {
			a.Logo = img
		}
	}

	a.Font = readFont("font", paths.Font)
	if a.Font != nil {
		a.BoldFont = readFont("bold font", paths.BoldFont)
	}
	return a
}

func readFont(kind, path string) []byte {
	data := readOptional(kind, path)
	if data == nil {
		return nil
	}
	if err := ValidateFont(data); err != nil {
		log.Printf("report.LoadAssets: ignoring %s %s: %v", kind, path, err)
		return nil
	}
	return data
}

// ValidateFont checks that data parses as a TrueType or OpenType font.
func ValidateFont(data []byte) error {
	f, err := sfnt.Parse(data)
	if err != nil {
		return err
	}
	if f.NumGlyphs() == 0 {
		return errors.New("font has no glyphs")
	}
	return nil
}

// DecodeImage validates raster bytes and reads their dimensions.
func DecodeImage(data []byte) (*Image, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if format != "png" && format != "jpeg" {
		return nil, fmt.Errorf("unsupported image format %q", format)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, errors.New("empty image")
	}
	return &Image{Data: data, Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}

func readOptional(kind, path string) []byte {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		log.Printf("report.LoadAssets: cannot read %s %s: %v", kind, path, err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}
	return data
}
