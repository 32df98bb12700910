package generation

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"

	// Formats the provider is known to emit.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/rs/zerolog"

	"renova-server/internal/domain/asset"
	"renova-server/internal/infrastructure/aiclient"
	"renova-server/internal/utils/idgen"
)

// Materializer turns a normalized binary payload into a stored image and a
// public URL for it.
type Materializer struct {
	storage asset.Storage
	log     zerolog.Logger
}

// NewMaterializer wires a Materializer onto the asset store.
func NewMaterializer(storage asset.Storage, log zerolog.Logger) *Materializer {
	return &Materializer{
		storage: storage,
		log:     log.With().Str("component", "materializer").Logger(),
	}
}

// decodePayload normalizes the three payload encodings to raw bytes. A
// base64 string must decode strictly; raw bytes are probed for
// double-encoding first and passed through unchanged when the probe fails.
func decodePayload(p aiclient.Payload) ([]byte, *ProcessingError) {
	if p.B64 != "" {
		data, err := base64.StdEncoding.DecodeString(p.B64)
		if err != nil {
			return nil, &ProcessingError{
				Stage:       "base64 decode",
				PayloadKind: "base64 string",
				PayloadLen:  len(p.B64),
				Err:         err,
			}
		}
		return data, nil
	}

	if len(p.Raw) == 0 {
		return nil, &ProcessingError{Stage: "decode", PayloadKind: "empty", PayloadLen: 0}
	}
	if decoded, err := base64.StdEncoding.DecodeString(string(p.Raw)); err == nil {
		return decoded, nil
	}
	return p.Raw, nil
}

// Materialize decodes the payload, verifies it is a real image, stores it
// under a random filename and returns its public URL. Shape problems come
// back as *ProcessingError; storage problems as plain errors.
func (m *Materializer) Materialize(ctx context.Context, baseURL string, payload aiclient.Payload) (string, error) {
	data, perr := decodePayload(payload)
	if perr != nil {
		return "", perr
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", &ProcessingError{
			Stage:       "image decode",
			PayloadKind: payloadKind(payload),
			PayloadLen:  len(data),
			Err:         err,
		}
	}
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return "", &ProcessingError{
			Stage:       "image decode",
			PayloadKind: payloadKind(payload),
			PayloadLen:  len(data),
			Err:         fmt.Errorf("decoded to empty %s image", format),
		}
	}

	suffix, err := idgen.RandomHex(16)
	if err != nil {
		return "", fmt.Errorf("generate image filename: %w", err)
	}
	key := "generated_" + suffix + ".png"

	if err := m.storage.Upload(ctx, key, bytes.NewReader(data), int64(len(data)), "image/png"); err != nil {
		return "", fmt.Errorf("store generated image: %w", err)
	}

	url, err := m.storage.PublicURL(ctx, baseURL, key)
	if err != nil {
		return "", fmt.Errorf("build image URL: %w", err)
	}

	m.log.Info().Str("key", key).Int("bytes", len(data)).Msg("generated image saved")
	return url, nil
}

func payloadKind(p aiclient.Payload) string {
	if p.B64 != "" {
		return "base64 string"
	}
	return "raw bytes"
}
