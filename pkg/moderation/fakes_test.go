package moderation

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/Priyankg101/content-moderator/pkg/domain"
)

type fakeClassifier struct {
	flagged      bool
	prescreenErr error
	response     string
	reviewErr    error

	prescreenCalls   int
	reviewCalls      int
	lastText         string
	lastInstructions string
}

func (f *fakeClassifier) Prescreen(ctx context.Context, text string) (bool, error) {
	f.prescreenCalls++
	return f.flagged, f.prescreenErr
}

func (f *fakeClassifier) Review(ctx context.Context, text, instructions string) (string, error) {
	f.reviewCalls++
	f.lastText = text
	f.lastInstructions = instructions
	return f.response, f.reviewErr
}

type fakeDetector struct {
	lang  string
	calls int
}

func (f *fakeDetector) Detect(text string) string {
	f.calls++
	if f.lang == "" {
		return "en"
	}
	return f.lang
}

type fakeFetcher struct {
	body   []byte
	status int
	err    error

	calls   int
	lastURL string
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) ([]byte, int, error) {
	f.calls++
	f.lastURL = url
	return f.body, f.status, f.err
}

type fakeVisual struct {
	result domain.VisualResult
	err    error
	calls  int
}

func (f *fakeVisual) Check(ctx context.Context, img []byte) (domain.VisualResult, error) {
	f.calls++
	return f.result, f.err
}

type fakeOCR struct {
	available bool
	text      string
	err       error
	calls     int
}

func (f *fakeOCR) Available() bool { return f.available }

func (f *fakeOCR) ExtractText(ctx context.Context, img []byte) (string, error) {
	f.calls++
	return f.text, f.err
}

type fakeTextChecker struct {
	verdict domain.Verdict
	err     error

	calls    int
	lastText string
}

func (f *fakeTextChecker) ModerateContent(ctx context.Context, text string, policy *domain.PolicyConfig, sensitivity domain.Sensitivity) (domain.Verdict, error) {
	f.calls++
	f.lastText = text
	return f.verdict, f.err
}

type fakeTranscriber struct {
	transcript domain.Transcript
	err        error

	calls           int
	lastPath        string
	pathExistedWhen bool
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, filePath string) (domain.Transcript, error) {
	f.calls++
	f.lastPath = filePath
	_, statErr := os.Stat(filePath)
	f.pathExistedWhen = statErr == nil
	return f.transcript, f.err
}

type fakeMedia struct {
	audioErr  error
	frames    [][]byte
	framesErr error

	audioCalls  int
	framesCalls int
	videoPath   string
	audioPath   string
}

func (f *fakeMedia) ExtractAudio(ctx context.Context, videoPath, audioPath string) error {
	f.audioCalls++
	f.videoPath = videoPath
	f.audioPath = audioPath
	if f.audioErr != nil {
		return f.audioErr
	}
	return os.WriteFile(audioPath, []byte("audio"), 0o600)
}

func (f *fakeMedia) ExtractFrames(ctx context.Context, videoPath, dir string) ([]string, error) {
	f.framesCalls++
	if f.framesErr != nil {
		return nil, f.framesErr
	}

	paths := make([]string, 0, len(f.frames))
	for i, frame := range f.frames {
		p := filepath.Join(dir, fmt.Sprintf("frame%04d.jpg", i+1))
		if err := os.WriteFile(p, frame, 0o600); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

type fakeFrameChecker struct {
	verdicts []domain.Verdict
	err      error

	calls int
	seen  [][]byte
}

func (f *fakeFrameChecker) ModerateBytes(ctx context.Context, img []byte, policy *domain.PolicyConfig, sensitivity domain.Sensitivity) (domain.Verdict, error) {
	f.seen = append(f.seen, img)
	idx := f.calls
	f.calls++
	if f.err != nil {
		return domain.Verdict{}, f.err
	}
	if idx >= len(f.verdicts) {
		idx = len(f.verdicts) - 1
	}
	return f.verdicts[idx], nil
}

type fakeItemModerator struct {
	verdict domain.Verdict
	err     error
	calls   int
}

func (f *fakeItemModerator) Moderate(ctx context.Context, item domain.ContentItem, policy *domain.PolicyConfig, sensitivity domain.Sensitivity) (domain.Verdict, error) {
	f.calls++
	return f.verdict, f.err
}

func approvedVerdict(tags ...string) domain.Verdict {
	return domain.Verdict{Status: domain.StatusApproved, Reason: "Content is appropriate", Tags: tags}
}

func rejectedVerdict(reason string, tags ...string) domain.Verdict {
	return domain.Verdict{Status: domain.StatusRejected, Reason: reason, Tags: tags}
}

// pngBytes encodes a tiny valid PNG for tests that need decodable image data.
func pngBytes(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}
