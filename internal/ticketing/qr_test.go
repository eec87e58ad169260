package ticketing

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event-admission-platform/internal/models"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47}

func TestRenderProducesPNG(t *testing.T) {
	renderer := NewQRRenderer(330)

	png, err := renderer.Render("dGVzdC1wYXlsb2Fk")
	require.NoError(t, err)
	assert.Greater(t, len(png), len(pngMagic))
	assert.Equal(t, pngMagic, png[:4])
}

func TestRenderOversizedPayload(t *testing.T) {
	renderer := NewQRRenderer(330)

	// Beyond the ~3KB capacity of the largest QR symbol
	png, err := renderer.Render(strings.Repeat("x", 8000))
	assert.Nil(t, png)
	assert.True(t, errors.Is(err, models.ErrPayloadTooLarge))
}

func TestNewQRRendererDefaultSize(t *testing.T) {
	renderer := NewQRRenderer(0)
	assert.Equal(t, DefaultQRSize, renderer.size)
}

func TestDataURL(t *testing.T) {
	url := DataURL([]byte{0x89, 0x50})
	assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"))
}
