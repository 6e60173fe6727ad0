package moderation

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Priyankg101/content-moderator/pkg/domain"
)

// TextChecker moderates a plain string of text. Image, audio and video
// moderators use it to re-moderate derived artifacts (OCR text, transcripts)
// so the prompt construction and response parsing exist in one place.
type TextChecker interface {
	ModerateContent(ctx context.Context, text string, policy *domain.PolicyConfig, sensitivity domain.Sensitivity) (domain.Verdict, error)
}

// TextModerator classifies text against policy using a prescreen moderation
// endpoint (logged only) followed by the full reasoning classifier, which
// makes the actual decision.
type TextModerator struct {
	classifier domain.TextClassifier
	detector   domain.LanguageDetector
}

type TextModeratorDependencies struct {
	Classifier domain.TextClassifier
	Detector   domain.LanguageDetector
}

func NewTextModerator(deps TextModeratorDependencies) *TextModerator {
	return &TextModerator{
		classifier: deps.Classifier,
		detector:   deps.Detector,
	}
}

// Moderate checks a text content item. When the item carries no explicit
// language tag the language is detected as a best-effort hint; it is logged
// and never alters the classification prompt, since the classifier is
// instructed to respond in English regardless of input language.
func (m *TextModerator) Moderate(ctx context.Context, item domain.ContentItem, policy *domain.PolicyConfig, sensitivity domain.Sensitivity) (domain.Verdict, error) {
	language := item.Language
	if language == "" {
		language = m.detector.Detect(item.Text)
	}

	log.Info().Str("language", language).Msg("Detected language")

	return m.ModerateContent(ctx, item.Text, policy, sensitivity)
}

// ModerateContent runs the prescreen and reasoning classification over raw
// text. The prescreen's flagged signal is instrumentation only; the decision
// always comes from the reasoning classifier.
func (m *TextModerator) ModerateContent(ctx context.Context, text string, policy *domain.PolicyConfig, sensitivity domain.Sensitivity) (domain.Verdict, error) {
	flagged, err := m.classifier.Prescreen(ctx, text)
	if err != nil {
		return domain.Verdict{}, fmt.Errorf("prescreen text: %w", err)
	}

	log.Info().Bool("flagged", flagged).Msg("Prescreen result")

	instructions := PolicyInstructions(policy, sensitivity)

	raw, err := m.classifier.Review(ctx, text, instructions)
	if err != nil {
		return domain.Verdict{}, fmt.Errorf("review text: %w", err)
	}

	log.Info().Str("response", raw).Msg("Classifier response")

	verdict, _ := ParseReviewResponse(raw)
	return verdict, nil
}
