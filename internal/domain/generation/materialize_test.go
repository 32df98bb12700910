package generation

import (
	"context"
	"encoding/base64"
	"regexp"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renova-server/internal/infrastructure/aiclient"
)

var generatedURLPattern = regexp.MustCompile(`^http://example\.test/assets/generated_[0-9a-f]{32}\.png$`)

func TestMaterializeBase64String(t *testing.T) {
	store := newMemStorage()
	m := NewMaterializer(store, zerolog.Nop())
	img := pngBytes(t, 4, 4)

	url, err := m.Materialize(context.Background(), "http://example.test", aiclient.Payload{
		B64: base64.StdEncoding.EncodeToString(img),
	})
	require.NoError(t, err)
	assert.Regexp(t, generatedURLPattern, url)

	require.Len(t, store.objects, 1)
	for _, stored := range store.objects {
		assert.Equal(t, img, stored)
	}
}

func TestMaterializeInvalidBase64(t *testing.T) {
	m := NewMaterializer(newMemStorage(), zerolog.Nop())

	_, err := m.Materialize(context.Background(), "http://example.test", aiclient.Payload{B64: "!!not-base64!!"})

	var perr *ProcessingError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "base64 decode", perr.Stage)
	assert.Equal(t, "base64 string", perr.PayloadKind)
	assert.Equal(t, len("!!not-base64!!"), perr.PayloadLen)
}

func TestMaterializeDoubleEncodedRawBytes(t *testing.T) {
	store := newMemStorage()
	m := NewMaterializer(store, zerolog.Nop())
	img := pngBytes(t, 3, 3)

	// Raw bytes that are themselves base64 text.
	raw := []byte(base64.StdEncoding.EncodeToString(img))

	_, err := m.Materialize(context.Background(), "http://example.test", aiclient.Payload{Raw: raw})
	require.NoError(t, err)
	for _, stored := range store.objects {
		assert.Equal(t, img, stored)
	}
}

func TestMaterializeRawBytesPassthrough(t *testing.T) {
	store := newMemStorage()
	m := NewMaterializer(store, zerolog.Nop())
	img := pngBytes(t, 2, 2)

	_, err := m.Materialize(context.Background(), "http://example.test", aiclient.Payload{Raw: img})
	require.NoError(t, err)
	for _, stored := range store.objects {
		assert.Equal(t, img, stored)
	}
}

func TestMaterializeNotAnImage(t *testing.T) {
	m := NewMaterializer(newMemStorage(), zerolog.Nop())

	payload := aiclient.Payload{B64: base64.StdEncoding.EncodeToString([]byte("plain text, not pixels"))}
	_, err := m.Materialize(context.Background(), "http://example.test", payload)

	var perr *ProcessingError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "image decode", perr.Stage)
}

func TestMaterializeEmptyPayload(t *testing.T) {
	m := NewMaterializer(newMemStorage(), zerolog.Nop())

	_, err := m.Materialize(context.Background(), "http://example.test", aiclient.Payload{})

	var perr *ProcessingError
	require.ErrorAs(t, err, &perr)
}

func TestMaterializeUniqueFilenames(t *testing.T) {
	store := newMemStorage()
	m := NewMaterializer(store, zerolog.Nop())
	payload := aiclient.Payload{B64: base64.StdEncoding.EncodeToString(pngBytes(t, 2, 2))}

	for i := 0; i < 10; i++ {
		_, err := m.Materialize(context.Background(), "http://example.test", payload)
		require.NoError(t, err)
	}
	assert.Len(t, store.objects, 10)
}
