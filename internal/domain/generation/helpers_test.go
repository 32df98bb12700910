package generation

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"renova-server/internal/infrastructure/aiclient"
)

// pngBytes encodes a small solid PNG for use as upload and payload fixture.
func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 120, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// memStorage keeps stored assets in a map.
type memStorage struct {
	objects map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{objects: map[string][]byte{}}
}

func (m *memStorage) Upload(_ context.Context, key string, body io.Reader, _ int64, _ string) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	m.objects[key] = data
	return nil
}

func (m *memStorage) Download(_ context.Context, key string) (io.ReadCloser, string, error) {
	data, ok := m.objects[key]
	if !ok {
		return nil, "", fmt.Errorf("not found: %s", key)
	}
	return io.NopCloser(bytes.NewReader(data)), "image/png", nil
}

func (m *memStorage) PublicURL(_ context.Context, baseURL, key string) (string, error) {
	return baseURL + "/assets/" + key, nil
}

func (m *memStorage) Delete(_ context.Context, key string) error {
	delete(m.objects, key)
	return nil
}

// fakeProvider replays canned responses per model and records the calls it
// received.
type fakeProvider struct {
	responses map[string]*aiclient.Response
	errs      map[string]error
	calls     []fakeCall
}

type fakeCall struct {
	model string
	parts []aiclient.ContentPart
}

func (f *fakeProvider) GenerateContent(_ context.Context, model string, parts []aiclient.ContentPart) (*aiclient.Response, error) {
	f.calls = append(f.calls, fakeCall{model: model, parts: parts})
	if err, ok := f.errs[model]; ok {
		return nil, err
	}
	if resp, ok := f.responses[model]; ok {
		return resp, nil
	}
	return &aiclient.Response{}, nil
}

func newTestService(t *testing.T, provider aiclient.Provider, store *memStorage) *Service {
	t.Helper()
	log := zerolog.Nop()
	validator, err := NewUploadValidator(t.TempDir(), log)
	require.NoError(t, err)
	return NewService(provider, validator, NewMaterializer(store, log), "image-model", "text-model", log)
}

func inlineResponse(b64 string) *aiclient.Response {
	return &aiclient.Response{Candidates: []aiclient.Candidate{{
		Content: aiclient.Content{Parts: []aiclient.Part{{
			Inline: &aiclient.Blob{MIMEType: "image/png", Data: aiclient.Payload{B64: b64}},
		}}},
	}}}
}

func textResponse(text string) *aiclient.Response {
	return &aiclient.Response{Candidates: []aiclient.Candidate{{
		Content: aiclient.Content{Parts: []aiclient.Part{{Text: text}}},
	}}}
}
