package service

import (
	"bytes"
	"fmt"
	"image"
	"log"

	"github.com/disintegration/imaging"
)

const (
	// Max dimension for stored artwork. Imagen output is 1024x1024 today;
	// the bound protects the blob store if a future model returns more.
	maxPrintDim = 2048
	// Min dimension a canvas print can tolerate
	minPrintDim = 512
)

// PrepareArtwork normalizes generated image bytes before they are
// uploaded: decode whatever the model returned, clamp oversized output,
// and re-encode as PNG. Print artwork stays lossless; JPEG artifacts
// show on a canvas.
func PrepareArtwork(imageData []byte) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode generated image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	log.Printf("📸 PrepareArtwork: decoded format=%s bounds=%dx%d", format, width, height)

	if width < minPrintDim || height < minPrintDim {
		return nil, fmt.Errorf("generated image %dx%d is below the %dpx print minimum", width, height, minPrintDim)
	}

	if width > maxPrintDim || height > maxPrintDim {
		log.Printf("🔄 PrepareArtwork: resizing %dx%d to fit %dpx", width, height, maxPrintDim)
		img = imaging.Fit(img, maxPrintDim, maxPrintDim, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode artwork as PNG: %w", err)
	}

	log.Printf("✓ PrepareArtwork: output_size=%d bytes", buf.Len())
	return buf.Bytes(), nil
}
