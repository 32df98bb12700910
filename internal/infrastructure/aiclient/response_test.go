package aiclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestParseResponseBothKeySpellings(t *testing.T) {
	resp, err := ParseResponse([]byte(`{
		"candidates": [{"content": {"parts": [
			{"inline_data": {"mime_type": "image/png", "data": "QQ=="}},
			{"inlineData": {"mimeType": "image/jpeg", "data": "Qg=="}},
			{"text": "done"}
		]}}]
	}`))
	require.NoError(t, err)
	require.Len(t, resp.Candidates, 1)

	parts := resp.Candidates[0].Content.Parts
	require.Len(t, parts, 3)

	require.NotNil(t, parts[0].Inline)
	assert.Equal(t, "image/png", parts[0].Inline.MIMEType)
	assert.Equal(t, "QQ==", parts[0].Inline.Data.B64)

	require.NotNil(t, parts[1].Inline)
	assert.Equal(t, "image/jpeg", parts[1].Inline.MIMEType)
	assert.Equal(t, "Qg==", parts[1].Inline.Data.B64)

	assert.Nil(t, parts[2].Inline)
	assert.Equal(t, "done", parts[2].Text)
}

func TestParseResponseEmptyInlineDataDropped(t *testing.T) {
	resp, err := ParseResponse([]byte(`{
		"candidates": [{"content": {"parts": [
			{"inline_data": {"mime_type": "image/png", "data": ""}}
		]}}]
	}`))
	require.NoError(t, err)
	assert.Nil(t, resp.Candidates[0].Content.Parts[0].Inline)
}

func TestFromGenAI(t *testing.T) {
	sdk := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{
				{Text: "hello"},
				{InlineData: &genai.Blob{MIMEType: "image/png", Data: []byte{1, 2, 3}}},
				nil,
			}},
		}},
	}

	resp := fromGenAI(sdk)

	require.Len(t, resp.Candidates, 1)
	parts := resp.Candidates[0].Content.Parts
	require.Len(t, parts, 2)
	assert.Equal(t, "hello", parts[0].Text)
	require.NotNil(t, parts[1].Inline)
	assert.Equal(t, []byte{1, 2, 3}, parts[1].Inline.Data.Raw)
	assert.Empty(t, parts[1].Inline.Data.B64)
}

func TestPayloadHelpers(t *testing.T) {
	assert.True(t, Payload{}.IsZero())
	assert.False(t, Payload{B64: "QQ=="}.IsZero())
	assert.False(t, Payload{Raw: []byte{1}}.IsZero())
	assert.Equal(t, 4, Payload{B64: "QQ=="}.Len())
	assert.Equal(t, 1, Payload{Raw: []byte{9}}.Len())
}
