package generation

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renova-server/internal/infrastructure/aiclient"
)

func TestGenerateFromPromptReturnsImageURL(t *testing.T) {
	img := pngBytes(t, 4, 4)
	provider := &fakeProvider{responses: map[string]*aiclient.Response{
		"image-model": inlineResponse(base64.StdEncoding.EncodeToString(img)),
	}}
	store := newMemStorage()
	svc := newTestService(t, provider, store)

	result, err := svc.GenerateFromPrompt(context.Background(), "http://example.test", "modern sofa")
	require.NoError(t, err)
	assert.Regexp(t, generatedURLPattern, result.ImageURL)
	assert.Empty(t, result.Message)

	require.Len(t, provider.calls, 1)
	assert.Equal(t, "image-model", provider.calls[0].model)
	assert.Equal(t, "modern sofa", provider.calls[0].parts[0].Text)
}

func TestGenerateFromPromptNoImage(t *testing.T) {
	provider := &fakeProvider{responses: map[string]*aiclient.Response{
		"image-model": textResponse("Content blocked"),
	}}
	svc := newTestService(t, provider, newMemStorage())

	result, err := svc.GenerateFromPrompt(context.Background(), "http://example.test", "modern sofa")
	require.NoError(t, err)
	assert.Empty(t, result.ImageURL)
	assert.Equal(t, "No image generated. API response: Content blocked", result.Message)
}

func TestGenerateFromPromptEmptyResponse(t *testing.T) {
	provider := &fakeProvider{}
	svc := newTestService(t, provider, newMemStorage())

	result, err := svc.GenerateFromPrompt(context.Background(), "http://example.test", "modern sofa")
	require.NoError(t, err)
	assert.Equal(t, "No image generated by the API", result.Message)
}

func TestGenerateFromPromptProviderError(t *testing.T) {
	provider := &fakeProvider{errs: map[string]error{"image-model": errors.New("quota exceeded")}}
	svc := newTestService(t, provider, newMemStorage())

	_, err := svc.GenerateFromPrompt(context.Background(), "http://example.test", "modern sofa")
	assert.Error(t, err)
}

func TestGenerateFromPromptBadPayloadBecomesMessage(t *testing.T) {
	provider := &fakeProvider{responses: map[string]*aiclient.Response{
		"image-model": inlineResponse("!!not base64!!"),
	}}
	svc := newTestService(t, provider, newMemStorage())

	result, err := svc.GenerateFromPrompt(context.Background(), "http://example.test", "modern sofa")
	require.NoError(t, err)
	assert.Empty(t, result.ImageURL)
	assert.Contains(t, result.Message, "Error processing generated image")
}

func TestGenerateFromUpload(t *testing.T) {
	img := pngBytes(t, 4, 4)
	provider := &fakeProvider{responses: map[string]*aiclient.Response{
		"image-model": inlineResponse(base64.StdEncoding.EncodeToString(img)),
	}}
	svc := newTestService(t, provider, newMemStorage())

	result, err := svc.GenerateFromUpload(context.Background(), "http://example.test", "add plants",
		Upload{Filename: "room.png", ContentType: "image/png", Data: img})
	require.NoError(t, err)
	assert.Regexp(t, generatedURLPattern, result.ImageURL)

	require.Len(t, provider.calls, 1)
	parts := provider.calls[0].parts
	require.Len(t, parts, 2)
	assert.Equal(t, UploadPrompt("add plants"), parts[0].Text)
	require.NotNil(t, parts[1].Image)
	assert.Equal(t, img, parts[1].Image.Data)
}

func TestGenerateFromUploadInvalidImage(t *testing.T) {
	provider := &fakeProvider{}
	svc := newTestService(t, provider, newMemStorage())

	_, err := svc.GenerateFromUpload(context.Background(), "http://example.test", "add plants",
		Upload{Filename: "room.png", ContentType: "image/png", Data: []byte("junk")})

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Empty(t, provider.calls, "provider must not be called for invalid uploads")
}

func TestGenerateInteriorWithCost(t *testing.T) {
	img := pngBytes(t, 4, 4)
	provider := &fakeProvider{responses: map[string]*aiclient.Response{
		"image-model": inlineResponse(base64.StdEncoding.EncodeToString(img)),
		"text-model":  textResponse(`Here you go: {"total_cost":"$500","currency":"USD","breakdown":[],"items":[]}`),
	}}
	svc := newTestService(t, provider, newMemStorage())

	result, err := svc.GenerateInteriorWithCost(context.Background(), "http://example.test", "scandi kitchen", "United States", nil)
	require.NoError(t, err)

	require.NotNil(t, result.ImageURL)
	assert.Regexp(t, generatedURLPattern, *result.ImageURL)
	assert.Equal(t, "$500", result.CostEstimation["total_cost"])
	assert.Equal(t, "United States", result.Country)
	assert.Equal(t, "scandi kitchen", result.Prompt)

	require.Len(t, provider.calls, 2)
	assert.Equal(t, InteriorPrompt("scandi kitchen"), provider.calls[0].parts[0].Text)
	assert.Equal(t, CostPrompt("scandi kitchen", "United States"), provider.calls[1].parts[0].Text)
}

func TestGenerateInteriorWithCostImageHalfFailsIndependently(t *testing.T) {
	provider := &fakeProvider{responses: map[string]*aiclient.Response{
		"image-model": inlineResponse("!!broken!!"),
		"text-model":  textResponse("no JSON here"),
	}}
	svc := newTestService(t, provider, newMemStorage())

	result, err := svc.GenerateInteriorWithCost(context.Background(), "http://example.test", "scandi kitchen", "Germany", nil)
	require.NoError(t, err)

	assert.Nil(t, result.ImageURL)
	assert.Equal(t, "Cost estimation unavailable", result.CostEstimation["total_cost"])
	assert.Equal(t, "no JSON here", result.CostEstimation["raw_response"])
}

func TestGenerateInteriorWithCostUploadVariantPrompt(t *testing.T) {
	img := pngBytes(t, 4, 4)
	provider := &fakeProvider{responses: map[string]*aiclient.Response{
		"text-model": textResponse("{}"),
	}}
	svc := newTestService(t, provider, newMemStorage())

	upload := &Upload{Filename: "before.png", ContentType: "image/png", Data: img}
	_, err := svc.GenerateInteriorWithCost(context.Background(), "http://example.test", "open plan", "Japan", upload)
	require.NoError(t, err)

	require.Len(t, provider.calls, 2)
	assert.Equal(t, InteriorUploadPrompt("open plan"), provider.calls[0].parts[0].Text)
	require.Len(t, provider.calls[0].parts, 2)
}

func TestGenerateInteriorWithCostCostCallFails(t *testing.T) {
	provider := &fakeProvider{
		responses: map[string]*aiclient.Response{"image-model": textResponse("nope")},
		errs:      map[string]error{"text-model": errors.New("timeout")},
	}
	svc := newTestService(t, provider, newMemStorage())

	_, err := svc.GenerateInteriorWithCost(context.Background(), "http://example.test", "scandi kitchen", "Canada", nil)
	assert.Error(t, err)
}

func TestDetectRooms(t *testing.T) {
	img := pngBytes(t, 4, 4)
	provider := &fakeProvider{responses: map[string]*aiclient.Response{
		"text-model": textResponse(`["Living Room", "Kitchen"]`),
	}}
	svc := newTestService(t, provider, newMemStorage())

	rooms, err := svc.DetectRooms(context.Background(), Upload{Filename: "plan.png", ContentType: "image/png", Data: img})
	require.NoError(t, err)
	assert.Equal(t, []string{"Living Room", "Kitchen"}, rooms)
}

func TestDetectRoomsFallsBackOnProviderError(t *testing.T) {
	img := pngBytes(t, 4, 4)
	provider := &fakeProvider{errs: map[string]error{"text-model": errors.New("unavailable")}}
	svc := newTestService(t, provider, newMemStorage())

	rooms, err := svc.DetectRooms(context.Background(), Upload{Filename: "plan.png", ContentType: "image/png", Data: img})
	require.NoError(t, err)
	assert.Equal(t, defaultRooms, rooms)
}

func TestDetectRoomsFallsBackOnUnusableText(t *testing.T) {
	img := pngBytes(t, 4, 4)
	provider := &fakeProvider{responses: map[string]*aiclient.Response{
		"text-model": textResponse("I see several rooms but cannot list them."),
	}}
	svc := newTestService(t, provider, newMemStorage())

	rooms, err := svc.DetectRooms(context.Background(), Upload{Filename: "plan.png", ContentType: "image/png", Data: img})
	require.NoError(t, err)
	assert.Equal(t, defaultRooms, rooms)
}

func TestDetectRoomsMissingKeyIsError(t *testing.T) {
	img := pngBytes(t, 4, 4)
	provider := &fakeProvider{errs: map[string]error{"text-model": aiclient.ErrUnavailable}}
	svc := newTestService(t, provider, newMemStorage())

	_, err := svc.DetectRooms(context.Background(), Upload{Filename: "plan.png", ContentType: "image/png", Data: img})
	assert.ErrorIs(t, err, aiclient.ErrUnavailable)
}
