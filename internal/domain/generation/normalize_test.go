package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renova-server/internal/infrastructure/aiclient"
)

func TestNormalizeSnakeCaseInlineData(t *testing.T) {
	resp, err := aiclient.ParseResponse([]byte(`{
		"candidates": [{"content": {"parts": [
			{"inline_data": {"mime_type": "image/png", "data": "aGVsbG8="}},
			{"text": "here is your image"}
		]}}]
	}`))
	require.NoError(t, err)

	payloads, texts := Normalize(resp)

	require.Len(t, payloads, 1)
	assert.Equal(t, "aGVsbG8=", payloads[0].B64)
	assert.Equal(t, []string{"here is your image"}, texts)
}

func TestNormalizeCamelCaseInlineData(t *testing.T) {
	resp, err := aiclient.ParseResponse([]byte(`{
		"candidates": [{"content": {"parts": [
			{"inlineData": {"mimeType": "image/png", "data": "aGVsbG8="}}
		]}}]
	}`))
	require.NoError(t, err)

	payloads, texts := Normalize(resp)

	require.Len(t, payloads, 1)
	assert.Equal(t, "aGVsbG8=", payloads[0].B64)
	assert.Empty(t, texts)
}

func TestNormalizeTextOnly(t *testing.T) {
	resp, err := aiclient.ParseResponse([]byte(`{
		"candidates": [{"content": {"parts": [{"text": "Content blocked"}]}}]
	}`))
	require.NoError(t, err)

	payloads, texts := Normalize(resp)

	assert.Empty(t, payloads)
	assert.Equal(t, []string{"Content blocked"}, texts)
}

func TestNormalizeEmptyParts(t *testing.T) {
	resp, err := aiclient.ParseResponse([]byte(`{
		"candidates": [{"content": {"parts": [
			{},
			{"inline_data": {"mime_type": "image/png", "data": ""}},
			{"text": ""}
		]}}]
	}`))
	require.NoError(t, err)

	payloads, texts := Normalize(resp)

	assert.Empty(t, payloads)
	assert.Empty(t, texts)
}

func TestNormalizeNilAndEmptyResponse(t *testing.T) {
	payloads, texts := Normalize(nil)
	assert.Empty(t, payloads)
	assert.Empty(t, texts)

	payloads, texts = Normalize(&aiclient.Response{})
	assert.Empty(t, payloads)
	assert.Empty(t, texts)
}

func TestNormalizeOrderPreserved(t *testing.T) {
	resp, err := aiclient.ParseResponse([]byte(`{
		"candidates": [{"content": {"parts": [
			{"text": "first"},
			{"inline_data": {"mime_type": "image/png", "data": "QQ=="}},
			{"text": "second"},
			{"inlineData": {"mimeType": "image/png", "data": "Qg=="}}
		]}}]
	}`))
	require.NoError(t, err)

	payloads, texts := Normalize(resp)

	require.Len(t, payloads, 2)
	assert.Equal(t, "QQ==", payloads[0].B64)
	assert.Equal(t, "Qg==", payloads[1].B64)
	assert.Equal(t, []string{"first", "second"}, texts)
}
