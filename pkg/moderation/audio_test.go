package moderation

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Priyankg101/content-moderator/pkg/domain"
)

func audioItem(url string) domain.ContentItem {
	item := domain.ContentItem{Type: domain.ContentTypeAudio}
	if url != "" {
		item.AudioURL = &domain.URLPayload{URL: url}
	}
	return item
}

func TestAudioModerator_MissingURL(t *testing.T) {
	fetcher := &fakeFetcher{}
	m := NewAudioModerator(AudioModeratorDependencies{
		Fetcher:     fetcher,
		Transcriber: &fakeTranscriber{},
		Text:        &fakeTextChecker{},
	})

	verdict, err := m.Moderate(context.Background(), audioItem(""), nil, domain.SensitivityMedium)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, verdict.Status)
	assert.Equal(t, "No audio URL provided", verdict.Reason)
	assert.Equal(t, 0, fetcher.calls)
}

func TestAudioModerator_DownloadFailure(t *testing.T) {
	m := NewAudioModerator(AudioModeratorDependencies{
		Fetcher:     &fakeFetcher{status: http.StatusForbidden},
		Transcriber: &fakeTranscriber{},
		Text:        &fakeTextChecker{},
	})

	verdict, err := m.Moderate(context.Background(), audioItem("http://example.com/a.mp3"), nil, domain.SensitivityMedium)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, verdict.Status)
	assert.Equal(t, "Unable to download audio", verdict.Reason)
}

func TestAudioModerator_TranscriptionFailureRejects(t *testing.T) {
	m := NewAudioModerator(AudioModeratorDependencies{
		Fetcher:     &fakeFetcher{body: []byte("audio bytes"), status: http.StatusOK},
		Transcriber: &fakeTranscriber{err: errors.New("whisper unavailable")},
		Text:        &fakeTextChecker{},
	})

	verdict, err := m.Moderate(context.Background(), audioItem("http://example.com/a.mp3"), nil, domain.SensitivityMedium)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, verdict.Status)
	assert.Equal(t, "Error transcribing audio", verdict.Reason)
	assert.Empty(t, verdict.Tags)
}

func TestAudioModerator_DelegatesTranscriptToTextChecker(t *testing.T) {
	transcriber := &fakeTranscriber{transcript: domain.Transcript{Text: "hello there", Language: "english"}}
	text := &fakeTextChecker{verdict: approvedVerdict("greeting")}

	m := NewAudioModerator(AudioModeratorDependencies{
		Fetcher:     &fakeFetcher{body: []byte("audio bytes"), status: http.StatusOK},
		Transcriber: transcriber,
		Text:        text,
	})

	verdict, err := m.Moderate(context.Background(), audioItem("http://example.com/clip.wav"), nil, domain.SensitivityMedium)

	require.NoError(t, err)
	assert.Equal(t, approvedVerdict("greeting"), verdict)
	assert.Equal(t, "hello there", text.lastText)
}

func TestAudioModerator_TempFileLifecycle(t *testing.T) {
	transcriber := &fakeTranscriber{transcript: domain.Transcript{Text: "x"}}

	m := NewAudioModerator(AudioModeratorDependencies{
		Fetcher:     &fakeFetcher{body: []byte("audio bytes"), status: http.StatusOK},
		Transcriber: transcriber,
		Text:        &fakeTextChecker{verdict: approvedVerdict()},
	})

	_, err := m.Moderate(context.Background(), audioItem("http://example.com/clip.wav?token=abc"), nil, domain.SensitivityMedium)
	require.NoError(t, err)

	assert.True(t, transcriber.pathExistedWhen, "temp file must exist while transcribing")
	assert.True(t, strings.HasSuffix(transcriber.lastPath, ".wav"), "source extension preserved, got %s", transcriber.lastPath)

	_, statErr := os.Stat(transcriber.lastPath)
	assert.True(t, os.IsNotExist(statErr), "temp file must be removed after the check")
}

func TestAudioModerator_DefaultExtension(t *testing.T) {
	transcriber := &fakeTranscriber{err: errors.New("stop here")}

	m := NewAudioModerator(AudioModeratorDependencies{
		Fetcher:     &fakeFetcher{body: []byte("audio bytes"), status: http.StatusOK},
		Transcriber: transcriber,
		Text:        &fakeTextChecker{},
	})

	_, err := m.Moderate(context.Background(), audioItem("http://example.com/stream"), nil, domain.SensitivityMedium)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(transcriber.lastPath, ".mp3"), "default extension is .mp3, got %s", transcriber.lastPath)

	_, statErr := os.Stat(transcriber.lastPath)
	assert.True(t, os.IsNotExist(statErr), "temp file removed on the failure path too")
}
