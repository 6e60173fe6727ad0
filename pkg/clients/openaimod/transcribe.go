package openaimod

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/Priyankg101/content-moderator/pkg/domain"
)

// Transcribe converts the audio file at filePath to text. The verbose
// response format is requested so the spoken language comes back alongside
// the transcript.
func (c *Client) Transcribe(ctx context.Context, filePath string) (domain.Transcript, error) {
	resp, err := c.api.CreateTranscription(ctx, openai.AudioRequest{
		Model:    c.cfg.TranscriptionModel,
		FilePath: filePath,
		Format:   openai.AudioResponseFormatVerboseJSON,
	})
	if err != nil {
		return domain.Transcript{}, fmt.Errorf("transcriptions endpoint: %w", err)
	}

	return domain.Transcript{
		Text:     resp.Text,
		Language: resp.Language,
	}, nil
}
