package moderation

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/Priyankg101/content-moderator/pkg/domain"
)

// VideoModerator demuxes a video into an audio track and sampled frames and
// moderates both: the transcript through the text moderator and each frame
// through the image path. Any rejection short-circuits the whole check.
type VideoModerator struct {
	fetcher     domain.Fetcher
	media       domain.MediaProcessor
	transcriber domain.Transcriber
	text        TextChecker
	frames      FrameChecker
}

type VideoModeratorDependencies struct {
	Fetcher     domain.Fetcher
	Media       domain.MediaProcessor
	Transcriber domain.Transcriber
	Text        TextChecker
	Frames      FrameChecker
}

func NewVideoModerator(deps VideoModeratorDependencies) *VideoModerator {
	return &VideoModerator{
		fetcher:     deps.Fetcher,
		media:       deps.Media,
		transcriber: deps.Transcriber,
		text:        deps.Text,
		frames:      deps.Frames,
	}
}

func (m *VideoModerator) Moderate(ctx context.Context, item domain.ContentItem, policy *domain.PolicyConfig, sensitivity domain.Sensitivity) (domain.Verdict, error) {
	if item.VideoURL == nil || item.VideoURL.URL == "" {
		return domain.Verdict{Status: domain.StatusRejected, Reason: "No video URL provided"}, nil
	}

	log.Info().Str("url", item.VideoURL.URL).Msg("Processing video URL")

	body, statusCode, err := m.fetcher.Fetch(ctx, item.VideoURL.URL)
	if err != nil {
		return domain.Verdict{}, fmt.Errorf("download video: %w", err)
	}
	if statusCode != http.StatusOK {
		return domain.Verdict{Status: domain.StatusRejected, Reason: "Unable to download video"}, nil
	}

	videoPath, err := writeTempArtifact(body, urlExtension(item.VideoURL.URL, ".mp4"))
	if err != nil {
		return domain.Verdict{}, fmt.Errorf("persist video: %w", err)
	}
	defer os.Remove(videoPath)

	verdict, err := m.process(ctx, videoPath, policy, sensitivity)
	if err != nil {
		// The whole video check fails closed; the caller never sees a raw
		// error from inside the extraction pipeline.
		log.Error().Err(err).Msg("Error processing video")
		return domain.Verdict{
			Status: domain.StatusRejected,
			Reason: fmt.Sprintf("Error processing video: %s", err),
		}, nil
	}

	return verdict, nil
}

func (m *VideoModerator) process(ctx context.Context, videoPath string, policy *domain.PolicyConfig, sensitivity domain.Sensitivity) (domain.Verdict, error) {
	tags := []string{}

	audioPath := videoPath + ".mp3"
	if err := m.media.ExtractAudio(ctx, videoPath, audioPath); err != nil {
		log.Error().Err(err).Msg("Audio extraction failed")
		return domain.Verdict{
			Status: domain.StatusRejected,
			Reason: fmt.Sprintf("Error extracting audio: %s", err),
		}, nil
	}
	defer os.Remove(audioPath)

	transcript, err := m.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return domain.Verdict{}, fmt.Errorf("transcribe video audio: %w", err)
	}

	log.Info().Str("language", transcript.Language).Msg("Detected language in video audio")

	audioVerdict, err := m.text.ModerateContent(ctx, transcript.Text, policy, sensitivity)
	if err != nil {
		return domain.Verdict{}, fmt.Errorf("moderate transcript: %w", err)
	}

	tags = append(tags, audioVerdict.Tags...)
	if audioVerdict.Status == domain.StatusRejected {
		return domain.Verdict{Status: domain.StatusRejected, Reason: audioVerdict.Reason, Tags: tags}, nil
	}

	framesDir, err := os.MkdirTemp("", "frames-")
	if err != nil {
		return domain.Verdict{}, fmt.Errorf("create frames dir: %w", err)
	}
	defer os.RemoveAll(framesDir)

	framePaths, err := m.media.ExtractFrames(ctx, videoPath, framesDir)
	if err != nil {
		log.Error().Err(err).Msg("Frame extraction failed")
		return domain.Verdict{
			Status: domain.StatusRejected,
			Reason: fmt.Sprintf("Error extracting frames: %s", err),
		}, nil
	}

	if len(framePaths) == 0 {
		log.Error().Msg("No frames were extracted from the video")
		return domain.Verdict{Status: domain.StatusRejected, Reason: "No frames were extracted from the video"}, nil
	}

	// Frames come back in ascending filename order, one per second of video.
	for _, framePath := range framePaths {
		frame, err := os.ReadFile(framePath)
		if err != nil {
			return domain.Verdict{}, fmt.Errorf("read frame %s: %w", framePath, err)
		}

		frameVerdict, err := m.frames.ModerateBytes(ctx, frame, policy, sensitivity)
		if err != nil {
			return domain.Verdict{}, fmt.Errorf("moderate frame %s: %w", framePath, err)
		}

		tags = append(tags, frameVerdict.Tags...)
		if frameVerdict.Status == domain.StatusRejected {
			return domain.Verdict{Status: domain.StatusRejected, Reason: frameVerdict.Reason, Tags: tags}, nil
		}
	}

	return domain.Verdict{Status: domain.StatusApproved, Reason: "Content is appropriate", Tags: tags}, nil
}
