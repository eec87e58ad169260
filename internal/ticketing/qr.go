package ticketing

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"event-admission-platform/internal/models"
)

// DefaultQRSize is the rendered symbol edge length in pixels
const DefaultQRSize = 330

// QRRenderer renders encrypted payload blobs as scannable PNG images.
// Rendering is lossless: a scan of the produced image yields the exact
// blob handed in.
type QRRenderer struct {
	size int
}

// NewQRRenderer creates a renderer producing size x size pixel images
func NewQRRenderer(size int) *QRRenderer {
	if size <= 0 {
		size = DefaultQRSize
	}
	return &QRRenderer{size: size}
}

// Render encodes the payload blob into a PNG QR symbol at the highest
// error-correction level. Blobs beyond symbol capacity fail with
// models.ErrPayloadTooLarge instead of producing a corrupt image.
func (r *QRRenderer) Render(payloadBlob string) ([]byte, error) {
	png, err := qrcode.Encode(payloadBlob, qrcode.Highest, r.size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrPayloadTooLarge, err)
	}

	return png, nil
}

// DataURL wraps rendered PNG bytes as an inline image URL, the form the
// ticket record stores and clients display directly.
func DataURL(png []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}
