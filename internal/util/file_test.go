package util

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateUniqueFilenameKeepsExtension(t *testing.T) {
	name := GenerateUniqueFilename("avatar.png")
	assert.True(t, strings.HasSuffix(name, ".png"))
	assert.NotEqual(t, GenerateUniqueFilename("avatar.png"), name)
}

func TestDecodeDataURL(t *testing.T) {
	payload := []byte{0x89, 0x50, 0x4e, 0x47}
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)

	data, contentType, err := DecodeDataURL(dataURL)
	assert.NoError(t, err)
	assert.Equal(t, payload, data)
	assert.Equal(t, "image/png", contentType)
}

func TestDecodeDataURLRejectsInvalidInput(t *testing.T) {
	_, _, err := DecodeDataURL("https://example.com/a.png")
	assert.Error(t, err)

	_, _, err = DecodeDataURL("data:image/png,plain-not-base64")
	assert.Error(t, err)

	_, _, err = DecodeDataURL("data:image/png;base64,@@@@")
	assert.Error(t, err)
}
