package domain

import "context"

// Fetcher retrieves remote content. The HTTP status code is returned
// alongside the body so callers can map non-200 responses to their own
// modality-specific rejection reasons instead of receiving an opaque error.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (body []byte, statusCode int, err error)
}

// TextClassifier is the moderation model pair behind text checks.
//
// Prescreen runs the fast baseline moderation endpoint; its flagged signal is
// recorded for instrumentation only and never short-circuits a decision.
// Review submits the text with prompt instructions to the full reasoning
// model and returns the raw response body, expected to be a JSON object with
// decision, reason and tags fields. Review must use deterministic decoding.
type TextClassifier interface {
	Prescreen(ctx context.Context, text string) (flagged bool, err error)
	Review(ctx context.Context, text string, instructions string) (raw string, err error)
}

// VisualResult is the outcome of a visual content check. Detail carries the
// classifier's message when the image was not accepted.
type VisualResult struct {
	Accepted bool
	Detail   string
}

// VisualClassifier judges raw image bytes. A policy rejection is reported
// through VisualResult, not through the error return; errors are reserved
// for transport or tooling failures.
type VisualClassifier interface {
	Check(ctx context.Context, image []byte) (VisualResult, error)
}

// Transcript is the output of a speech-to-text pass. Language is the spoken
// language reported by the engine, used for logging only.
type Transcript struct {
	Text     string
	Language string
}

// Transcriber converts an audio file on disk into text.
type Transcriber interface {
	Transcribe(ctx context.Context, filePath string) (Transcript, error)
}

// OCREngine extracts embedded text from image bytes. Availability must be
// probed before use; an unavailable engine degrades the pipeline to skipping
// the OCR sub-check rather than failing it.
type OCREngine interface {
	Available() bool
	ExtractText(ctx context.Context, image []byte) (string, error)
}

// LanguageDetector guesses the language of a piece of text. It never fails;
// implementations fall back to "en" when detection is unreliable.
type LanguageDetector interface {
	Detect(text string) string
}

// MediaProcessor wraps the host media-decoding tool. Errors embed the tool's
// stderr so rejection reasons can surface the failure detail.
type MediaProcessor interface {
	// ExtractAudio demuxes the best audio stream of the video at videoPath
	// into audioPath.
	ExtractAudio(ctx context.Context, videoPath, audioPath string) error
	// ExtractFrames samples one frame per second of video into dir and
	// returns the frame paths in ascending filename order.
	ExtractFrames(ctx context.Context, videoPath, dir string) ([]string, error)
}
