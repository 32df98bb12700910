package generation

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"

	"renova-server/internal/infrastructure/metrics"
	"renova-server/internal/utils/idgen"
)

// Upload is one incoming multipart file, fully read.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ValidatedImage is an upload that passed validation, with its sniffed
// media type.
type ValidatedImage struct {
	Data     []byte
	MIMEType string
}

var allowedUploadTypes = map[string]struct{}{
	"image/png":  {},
	"image/jpeg": {},
	"image/webp": {},
}

// UploadValidator stages uploads to disk and verifies they decode as real,
// non-empty images before anything downstream touches them.
type UploadValidator struct {
	dir string
	log zerolog.Logger
}

// NewUploadValidator builds a validator staging into dir, creating it if
// needed.
func NewUploadValidator(dir string, log zerolog.Logger) (*UploadValidator, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &UploadValidator{
		dir: dir,
		log: log.With().Str("component", "upload_validator").Logger(),
	}, nil
}

// Validate checks the declared content type, stages the bytes to a temp
// file, and decodes them as an image with nonzero bounds. The temp file is
// removed on every exit path; removal failures are logged, never returned,
// so they cannot mask the validation verdict. All rejections are
// *InputError.
func (v *UploadValidator) Validate(upload Upload) (*ValidatedImage, error) {
	if upload.ContentType != "" {
		if _, ok := allowedUploadTypes[upload.ContentType]; !ok {
			metrics.UploadsTotal.WithLabelValues(upload.ContentType, "rejected").Inc()
			return nil, NewInputError("Unsupported image type: %s", upload.ContentType)
		}
	}

	tempPath, err := v.stage(upload)
	if err != nil {
		return nil, err
	}
	defer v.remove(tempPath)

	// Decode from the staged file first; a file that was truncated on write
	// fails here even when the in-memory bytes look fine.
	data, err := os.ReadFile(tempPath)
	if err != nil {
		data = upload.Data
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		metrics.UploadsTotal.WithLabelValues(upload.ContentType, "invalid").Inc()
		return nil, NewInputError("Invalid image upload: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		metrics.UploadsTotal.WithLabelValues(upload.ContentType, "invalid").Inc()
		return nil, &InputError{Detail: "Invalid image upload: Empty or corrupt image file"}
	}

	metrics.UploadsTotal.WithLabelValues(upload.ContentType, "accepted").Inc()
	return &ValidatedImage{
		Data:     upload.Data,
		MIMEType: mimetype.Detect(upload.Data).String(),
	}, nil
}

func (v *UploadValidator) stage(upload Upload) (string, error) {
	suffix, err := idgen.RandomHex(8)
	if err != nil {
		return "", err
	}

	ext := ".png"
	if idx := strings.LastIndex(upload.Filename, "."); idx >= 0 && idx < len(upload.Filename)-1 {
		ext = strings.ToLower(upload.Filename[idx:])
	}

	path := filepath.Join(v.dir, "temp_"+suffix+ext)
	if err := os.WriteFile(path, upload.Data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func (v *UploadValidator) remove(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		v.log.Warn().Err(err).Str("path", path).Msg("failed to remove temp upload file")
	}
}
