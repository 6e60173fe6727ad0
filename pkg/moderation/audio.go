package moderation

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/Priyankg101/content-moderator/pkg/domain"
)

// AudioModerator transcribes audio and delegates the transcript to the text
// moderator.
type AudioModerator struct {
	fetcher     domain.Fetcher
	transcriber domain.Transcriber
	text        TextChecker
}

type AudioModeratorDependencies struct {
	Fetcher     domain.Fetcher
	Transcriber domain.Transcriber
	Text        TextChecker
}

func NewAudioModerator(deps AudioModeratorDependencies) *AudioModerator {
	return &AudioModerator{
		fetcher:     deps.Fetcher,
		transcriber: deps.Transcriber,
		text:        deps.Text,
	}
}

func (m *AudioModerator) Moderate(ctx context.Context, item domain.ContentItem, policy *domain.PolicyConfig, sensitivity domain.Sensitivity) (domain.Verdict, error) {
	if item.AudioURL == nil || item.AudioURL.URL == "" {
		return domain.Verdict{Status: domain.StatusRejected, Reason: "No audio URL provided"}, nil
	}

	body, statusCode, err := m.fetcher.Fetch(ctx, item.AudioURL.URL)
	if err != nil {
		return domain.Verdict{}, fmt.Errorf("download audio: %w", err)
	}
	if statusCode != http.StatusOK {
		return domain.Verdict{Status: domain.StatusRejected, Reason: "Unable to download audio"}, nil
	}

	audioPath, err := writeTempArtifact(body, urlExtension(item.AudioURL.URL, ".mp3"))
	if err != nil {
		return domain.Verdict{}, fmt.Errorf("persist audio: %w", err)
	}
	defer os.Remove(audioPath)

	transcript, err := m.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		log.Error().Err(err).Msg("Error transcribing audio")
		return domain.Verdict{Status: domain.StatusRejected, Reason: "Error transcribing audio"}, nil
	}

	log.Info().Str("language", transcript.Language).Msg("Detected language")

	return m.text.ModerateContent(ctx, transcript.Text, policy, sensitivity)
}
