package generation

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"renova-server/internal/infrastructure/aiclient"
	"renova-server/internal/infrastructure/metrics"
)

// ImageResult is the reply for the image-only variants. Exactly one of
// ImageURL and Message is set; a missing image is an explained 200, not an
// error.
type ImageResult struct {
	ImageURL string `json:"image_url,omitempty"`
	Message  string `json:"message,omitempty"`
}

// InteriorResult is the reply for the image-plus-cost variant. The two
// halves fail independently; ImageURL may be null while the estimate is
// populated and vice versa.
type InteriorResult struct {
	ImageURL       *string      `json:"image_url"`
	CostEstimation CostEstimate `json:"cost_estimation"`
	Country        string       `json:"country"`
	Prompt         string       `json:"prompt"`
}

// defaultRooms is served when room detection cannot get a usable answer
// from the provider.
var defaultRooms = []string{
	"Living Room",
	"Kitchen",
	"Master Bedroom",
	"Bedroom",
	"Bathroom",
	"Dining Room",
	"Hallway",
}

// Service sequences prompt building, provider calls, response
// normalization, image materialization and structured-text extraction for
// each endpoint variant.
type Service struct {
	provider    aiclient.Provider
	validator   *UploadValidator
	materialize *Materializer
	imageModel  string
	textModel   string
	log         zerolog.Logger
}

// NewService wires the orchestrator.
func NewService(provider aiclient.Provider, validator *UploadValidator, materializer *Materializer, imageModel, textModel string, log zerolog.Logger) *Service {
	return &Service{
		provider:    provider,
		validator:   validator,
		materialize: materializer,
		imageModel:  imageModel,
		textModel:   textModel,
		log:         log.With().Str("component", "generation").Logger(),
	}
}

// GenerateFromPrompt generates an image from a text prompt alone.
func (s *Service) GenerateFromPrompt(ctx context.Context, baseURL, prompt string) (*ImageResult, error) {
	resp, err := s.provider.GenerateContent(ctx, s.imageModel, []aiclient.ContentPart{{Text: prompt}})
	if err != nil {
		metrics.GenerationsTotal.WithLabelValues("prompt", "provider_error").Inc()
		return nil, err
	}
	return s.imageReply(ctx, "prompt", baseURL, resp), nil
}

// GenerateFromUpload generates an image from a prompt plus an uploaded
// source image. An invalid upload is rejected before the provider is
// called.
func (s *Service) GenerateFromUpload(ctx context.Context, baseURL, prompt string, upload Upload) (*ImageResult, error) {
	img, err := s.validator.Validate(upload)
	if err != nil {
		return nil, err
	}

	parts := []aiclient.ContentPart{
		{Text: UploadPrompt(prompt)},
		{Image: &aiclient.ImageInput{MIMEType: img.MIMEType, Data: img.Data}},
	}
	resp, err := s.provider.GenerateContent(ctx, s.imageModel, parts)
	if err != nil {
		metrics.GenerationsTotal.WithLabelValues("upload", "provider_error").Inc()
		return nil, err
	}
	return s.imageReply(ctx, "upload", baseURL, resp), nil
}

// GenerateInteriorWithCost runs the two-call variant: one image generation
// (optionally conditioned on an uploaded interior photo) and one
// independent cost estimation. A failed image half never blocks the cost
// half.
func (s *Service) GenerateInteriorWithCost(ctx context.Context, baseURL, prompt, country string, upload *Upload) (*InteriorResult, error) {
	var parts []aiclient.ContentPart
	if upload != nil {
		img, err := s.validator.Validate(*upload)
		if err != nil {
			return nil, err
		}
		parts = []aiclient.ContentPart{
			{Text: InteriorUploadPrompt(prompt)},
			{Image: &aiclient.ImageInput{MIMEType: img.MIMEType, Data: img.Data}},
		}
	} else {
		parts = []aiclient.ContentPart{{Text: InteriorPrompt(prompt)}}
	}

	resp, err := s.provider.GenerateContent(ctx, s.imageModel, parts)
	if err != nil {
		metrics.GenerationsTotal.WithLabelValues("interior", "provider_error").Inc()
		return nil, err
	}

	var imageURL *string
	payloads, _ := Normalize(resp)
	if len(payloads) > 0 {
		url, err := s.materialize.Materialize(ctx, baseURL, payloads[0])
		if err != nil {
			// The cost half still runs; the image slot stays null.
			s.log.Warn().Err(err).Msg("failed to materialize generated interior image")
			metrics.GenerationsTotal.WithLabelValues("interior", "materialize_error").Inc()
		} else {
			imageURL = &url
			metrics.GenerationsTotal.WithLabelValues("interior", "image").Inc()
		}
	}

	costResp, err := s.provider.GenerateContent(ctx, s.textModel, []aiclient.ContentPart{{Text: CostPrompt(prompt, country)}})
	if err != nil {
		metrics.GenerationsTotal.WithLabelValues("interior_cost", "provider_error").Inc()
		return nil, err
	}

	costText := ""
	if _, texts := Normalize(costResp); len(texts) > 0 {
		costText = texts[0]
	}

	return &InteriorResult{
		ImageURL:       imageURL,
		CostEstimation: ExtractCostEstimate(costText),
		Country:        country,
		Prompt:         prompt,
	}, nil
}

// DetectRooms asks the model to name the rooms in an uploaded 3D floor
// plan. A provider failure or an unusable answer degrades to the fixed
// room list; only a bad upload is an error.
func (s *Service) DetectRooms(ctx context.Context, upload Upload) ([]string, error) {
	img, err := s.validator.Validate(upload)
	if err != nil {
		return nil, err
	}

	parts := []aiclient.ContentPart{
		{Text: RoomsPrompt()},
		{Image: &aiclient.ImageInput{MIMEType: img.MIMEType, Data: img.Data}},
	}
	resp, err := s.provider.GenerateContent(ctx, s.textModel, parts)
	if err != nil {
		if errors.Is(err, aiclient.ErrUnavailable) {
			return nil, err
		}
		s.log.Warn().Err(err).Msg("room detection call failed, serving default room list")
		metrics.GenerationsTotal.WithLabelValues("rooms", "fallback").Inc()
		return append([]string(nil), defaultRooms...), nil
	}

	_, texts := Normalize(resp)
	if len(texts) > 0 {
		if rooms := ExtractRooms(texts[0]); len(rooms) > 0 {
			metrics.GenerationsTotal.WithLabelValues("rooms", "detected").Inc()
			return rooms, nil
		}
	}
	metrics.GenerationsTotal.WithLabelValues("rooms", "fallback").Inc()
	return append([]string(nil), defaultRooms...), nil
}

// imageReply turns a provider response into the image-or-message reply
// shared by the image-only variants.
func (s *Service) imageReply(ctx context.Context, variant, baseURL string, resp *aiclient.Response) *ImageResult {
	payloads, texts := Normalize(resp)

	if len(payloads) > 0 {
		url, err := s.materialize.Materialize(ctx, baseURL, payloads[0])
		if err != nil {
			s.log.Warn().Err(err).Msg("failed to materialize generated image")
			metrics.GenerationsTotal.WithLabelValues(variant, "materialize_error").Inc()
			return &ImageResult{Message: fmt.Sprintf("Error processing generated image: %v", err)}
		}
		metrics.GenerationsTotal.WithLabelValues(variant, "image").Inc()
		return &ImageResult{ImageURL: url}
	}

	metrics.GenerationsTotal.WithLabelValues(variant, "no_image").Inc()
	if len(texts) > 0 {
		return &ImageResult{Message: fmt.Sprintf("No image generated. API response: %s", texts[0])}
	}
	return &ImageResult{Message: "No image generated by the API"}
}
