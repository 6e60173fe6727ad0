package moderation

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"net/http"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/rs/zerolog/log"

	"github.com/Priyankg101/content-moderator/pkg/domain"
)

// TagVisualRejection marks verdicts produced by the visual classifier
// rejecting an image outright.
const TagVisualRejection = "DALL-E rejection"

// FrameChecker moderates already-local image bytes. The video moderator uses
// it for sampled frames, bypassing the URL download path.
type FrameChecker interface {
	ModerateBytes(ctx context.Context, img []byte, policy *domain.PolicyConfig, sensitivity domain.Sensitivity) (domain.Verdict, error)
}

// ImageModerator downloads an image, runs the visual classifier over it and
// then re-moderates any embedded text found by OCR.
type ImageModerator struct {
	fetcher domain.Fetcher
	visual  domain.VisualClassifier
	ocr     domain.OCREngine
	text    TextChecker
}

type ImageModeratorDependencies struct {
	Fetcher domain.Fetcher
	Visual  domain.VisualClassifier
	OCR     domain.OCREngine
	Text    TextChecker
}

func NewImageModerator(deps ImageModeratorDependencies) *ImageModerator {
	return &ImageModerator{
		fetcher: deps.Fetcher,
		visual:  deps.Visual,
		ocr:     deps.OCR,
		text:    deps.Text,
	}
}

func (m *ImageModerator) Moderate(ctx context.Context, item domain.ContentItem, policy *domain.PolicyConfig, sensitivity domain.Sensitivity) (domain.Verdict, error) {
	if item.ImageURL == nil || item.ImageURL.URL == "" {
		return domain.Verdict{Status: domain.StatusRejected, Reason: "No image URL provided"}, nil
	}

	body, statusCode, err := m.fetcher.Fetch(ctx, item.ImageURL.URL)
	if err != nil {
		return domain.Verdict{}, fmt.Errorf("download image: %w", err)
	}
	if statusCode != http.StatusOK {
		return domain.Verdict{Status: domain.StatusRejected, Reason: "Unable to download image"}, nil
	}

	return m.ModerateBytes(ctx, body, policy, sensitivity)
}

// ModerateBytes moderates in-memory image bytes: validate the encoding, run
// the visual classifier, then OCR plus a text check when the OCR engine is
// present on the host. A visual rejection returns immediately without OCR;
// a text rejection rejects the image with the merged tag set.
func (m *ImageModerator) ModerateBytes(ctx context.Context, img []byte, policy *domain.PolicyConfig, sensitivity domain.Sensitivity) (domain.Verdict, error) {
	if _, _, err := image.DecodeConfig(bytes.NewReader(img)); err != nil {
		return domain.Verdict{}, fmt.Errorf("decode image: %w", err)
	}

	result, err := m.visual.Check(ctx, img)
	if err != nil {
		return domain.Verdict{}, fmt.Errorf("visual check: %w", err)
	}

	if !result.Accepted {
		return domain.Verdict{
			Status: domain.StatusRejected,
			Reason: fmt.Sprintf("DALL-E rejected the image: %s", result.Detail),
			Tags:   []string{TagVisualRejection},
		}, nil
	}

	tags := []string{}

	if !m.ocr.Available() {
		log.Warn().Msg("OCR engine is not installed, skipping text extraction")
		return domain.Verdict{Status: domain.StatusApproved, Reason: "Content is appropriate", Tags: tags}, nil
	}

	extracted, err := m.ocr.ExtractText(ctx, img)
	if err != nil {
		// OCR trouble is never fatal to the image check.
		log.Error().Err(err).Msg("OCR extraction failed")
		extracted = ""
	}

	if extracted != "" {
		verdict, err := m.text.ModerateContent(ctx, extracted, policy, sensitivity)
		if err != nil {
			return domain.Verdict{}, fmt.Errorf("moderate extracted text: %w", err)
		}

		tags = append(tags, verdict.Tags...)
		if verdict.Status == domain.StatusRejected {
			return domain.Verdict{Status: domain.StatusRejected, Reason: verdict.Reason, Tags: tags}, nil
		}
	}

	return domain.Verdict{Status: domain.StatusApproved, Reason: "Content is appropriate", Tags: tags}, nil
}
