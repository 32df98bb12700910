package generation

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator(t *testing.T) (*UploadValidator, string) {
	t.Helper()
	dir := t.TempDir()
	v, err := NewUploadValidator(dir, zerolog.Nop())
	require.NoError(t, err)
	return v, dir
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "temp files left behind")
}

func TestValidateAcceptsPNG(t *testing.T) {
	v, dir := newTestValidator(t)
	data := pngBytes(t, 8, 8)

	img, err := v.Validate(Upload{Filename: "room.png", ContentType: "image/png", Data: data})
	require.NoError(t, err)
	assert.Equal(t, data, img.Data)
	assert.Equal(t, "image/png", img.MIMEType)
	assertNoTempFiles(t, dir)
}

func TestValidateRejectsDisallowedContentType(t *testing.T) {
	v, dir := newTestValidator(t)

	_, err := v.Validate(Upload{Filename: "doc.pdf", ContentType: "application/pdf", Data: []byte("%PDF-")})

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "Unsupported image type: application/pdf", inputErr.Detail)
	assertNoTempFiles(t, dir)
}

func TestValidateRejectsUndecodableBytes(t *testing.T) {
	v, dir := newTestValidator(t)

	_, err := v.Validate(Upload{Filename: "broken.png", ContentType: "image/png", Data: []byte("definitely not an image")})

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Contains(t, inputErr.Detail, "Invalid image upload")
	assertNoTempFiles(t, dir)
}

func TestValidateRejectsTruncatedPNG(t *testing.T) {
	v, dir := newTestValidator(t)
	data := pngBytes(t, 8, 8)

	_, err := v.Validate(Upload{Filename: "cut.png", ContentType: "image/png", Data: data[:20]})

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assertNoTempFiles(t, dir)
}

func TestValidateMissingContentTypeStillChecked(t *testing.T) {
	// The declared type is a hint only; absence falls through to decoding.
	v, dir := newTestValidator(t)
	data := pngBytes(t, 4, 4)

	img, err := v.Validate(Upload{Filename: "noext", Data: data})
	require.NoError(t, err)
	assert.Equal(t, "image/png", img.MIMEType)
	assertNoTempFiles(t, dir)
}
