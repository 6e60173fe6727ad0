// Package ffmpeg drives the host ffmpeg binary as a subprocess for audio
// demuxing and frame sampling.
package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

type Processor struct {
	binPath string
}

// NewProcessor builds a Processor invoking binPath, or "ffmpeg" from PATH
// when empty.
func NewProcessor(binPath string) *Processor {
	if binPath == "" {
		binPath = "ffmpeg"
	}
	return &Processor{binPath: binPath}
}

// ExtractAudio demuxes the best audio stream of the video into audioPath.
// The returned error carries ffmpeg's stderr so it can surface in rejection
// reasons.
func (p *Processor) ExtractAudio(ctx context.Context, videoPath, audioPath string) error {
	if err := p.run(ctx, "-i", videoPath, "-q:a", "0", "-map", "a", audioPath, "-y"); err != nil {
		return err
	}

	if _, err := os.Stat(audioPath); err != nil {
		return errors.New("audio output file was not created")
	}

	return nil
}

// ExtractFrames samples one frame per second of video into dir and returns
// the frame paths sorted by filename, which is also ascending time order
// given the sequential frame numbering.
func (p *Processor) ExtractFrames(ctx context.Context, videoPath, dir string) ([]string, error) {
	pattern := filepath.Join(dir, "frame%04d.jpg")
	if err := p.run(ctx, "-i", videoPath, "-vf", "fps=1", pattern); err != nil {
		return nil, err
	}

	frames, err := filepath.Glob(filepath.Join(dir, "frame*.jpg"))
	if err != nil {
		return nil, fmt.Errorf("list frames: %w", err)
	}
	sort.Strings(frames)

	return frames, nil
}

func (p *Processor) run(ctx context.Context, args ...string) error {
	var stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, p.binPath, args...)
	cmd.Stderr = &stderr

	log.Debug().Str("bin", p.binPath).Strs("args", args).Msg("Running ffmpeg")

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return errors.New(detail)
	}

	return nil
}
