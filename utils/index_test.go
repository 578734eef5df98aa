package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidYYYYMMDD(t *testing.T) {
	assert.True(t, IsValidYYYYMMDD("2026-04-18"))
	assert.True(t, IsValidYYYYMMDD("2026-12-31"))

	assert.False(t, IsValidYYYYMMDD(""))
	assert.False(t, IsValidYYYYMMDD("18-04-2026"))
	assert.False(t, IsValidYYYYMMDD("2026/04/18"))
	assert.False(t, IsValidYYYYMMDD("2026-13-01"))
	assert.False(t, IsValidYYYYMMDD("2026-02-30"))
	assert.False(t, IsValidYYYYMMDD("2026-4-18"))
}

func TestStringPtr(t *testing.T) {
	assert.Nil(t, StringPtr(""))

	p := StringPtr("x")
	assert.NotNil(t, p)
	assert.Equal(t, "x", *p)
}

func TestGenerateQRCode(t *testing.T) {
	png, err := GenerateQRCode("GS-20260418-ABCD", 200)
	assert.NoError(t, err)
	assert.True(t, len(png) > 0)
	// PNG magic bytes.
	assert.Equal(t, "\x89PNG", string(png[:4]))
}

func TestQRCodeDataURI(t *testing.T) {
	uri := QRCodeDataURI("600", 100)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))
}
