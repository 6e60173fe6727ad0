// Package initialization wires configuration and collaborators into a ready
// moderation pipeline.
package initialization

import (
	"fmt"

	"github.com/Priyankg101/content-moderator/internal/config"
	"github.com/Priyankg101/content-moderator/pkg/clients/fetch"
	"github.com/Priyankg101/content-moderator/pkg/clients/ffmpeg"
	"github.com/Priyankg101/content-moderator/pkg/clients/langdetect"
	"github.com/Priyankg101/content-moderator/pkg/clients/openaimod"
	"github.com/Priyankg101/content-moderator/pkg/clients/tesseract"
	"github.com/Priyankg101/content-moderator/pkg/moderation"
)

// Container holds the loaded configuration and the assembled pipeline.
type Container struct {
	config   *config.Config
	pipeline *moderation.Pipeline
}

func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return &Container{
		config:   cfg,
		pipeline: BuildPipeline(cfg),
	}, nil
}

func (c *Container) Config() *config.Config {
	return c.config
}

func (c *Container) Pipeline() *moderation.Pipeline {
	return c.pipeline
}

// BuildPipeline constructs every collaborator from explicit configuration
// and injects them into the modality moderators. There are no process-wide
// singletons; all shared clients live inside the returned pipeline.
func BuildPipeline(cfg *config.Config) *moderation.Pipeline {
	ai := openaimod.NewClient(openaimod.Config{
		APIKey:             cfg.OpenAIAPIKey,
		ReviewModel:        cfg.ReviewModel,
		TranscriptionModel: cfg.TranscriptionModel,
	})

	fetcher := fetch.NewClient()
	detector := langdetect.NewDetector()
	ocr := tesseract.NewEngine(cfg.TesseractPath)
	media := ffmpeg.NewProcessor(cfg.FFmpegPath)

	text := moderation.NewTextModerator(moderation.TextModeratorDependencies{
		Classifier: ai,
		Detector:   detector,
	})

	image := moderation.NewImageModerator(moderation.ImageModeratorDependencies{
		Fetcher: fetcher,
		Visual:  ai,
		OCR:     ocr,
		Text:    text,
	})

	audio := moderation.NewAudioModerator(moderation.AudioModeratorDependencies{
		Fetcher:     fetcher,
		Transcriber: ai,
		Text:        text,
	})

	video := moderation.NewVideoModerator(moderation.VideoModeratorDependencies{
		Fetcher:     fetcher,
		Media:       media,
		Transcriber: ai,
		Text:        text,
		Frames:      image,
	})

	return moderation.NewPipeline(moderation.PipelineDependencies{
		Text:  text,
		Image: image,
		Audio: audio,
		Video: video,
	})
}
