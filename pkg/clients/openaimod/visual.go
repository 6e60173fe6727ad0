package openaimod

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/sashabaranov/go-openai"

	"github.com/Priyankg101/content-moderator/pkg/domain"
)

// The edit endpoint validates its input image against the platform content
// policy before doing any work. Submitting with a fixed probe prompt turns
// that validation into an accept/reject signal.
const visualProbePrompt = "check and return an error if image is not appropriate with I want you to blur the image that are not appropriate"

type apiErrorEnvelope struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Check submits image bytes to the DALL-E edit endpoint and maps its input
// validation into a visual verdict: acceptance means the image passed the
// platform policy, a bad-request rejection carries the policy message.
func (c *Client) Check(ctx context.Context, image []byte) (domain.VisualResult, error) {
	var body bytes.Buffer

	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("image", "image.png")
	if err != nil {
		return domain.VisualResult{}, fmt.Errorf("build multipart form: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return domain.VisualResult{}, fmt.Errorf("build multipart form: %w", err)
	}

	fields := map[string]string{
		"prompt": visualProbePrompt,
		"n":      "1",
		"size":   openai.CreateImageSize1024x1024,
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return domain.VisualResult{}, fmt.Errorf("build multipart form: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return domain.VisualResult{}, fmt.Errorf("build multipart form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/images/edits", &body)
	if err != nil {
		return domain.VisualResult{}, fmt.Errorf("build image edit request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.VisualResult{}, fmt.Errorf("image edit endpoint: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.VisualResult{}, fmt.Errorf("read image edit response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return domain.VisualResult{Accepted: true}, nil
	case resp.StatusCode == http.StatusBadRequest:
		var envelope apiErrorEnvelope
		if err := json.Unmarshal(respBody, &envelope); err != nil {
			return domain.VisualResult{}, fmt.Errorf("decode image edit rejection: %w", err)
		}
		return domain.VisualResult{Accepted: false, Detail: envelope.Error.Message}, nil
	default:
		return domain.VisualResult{}, fmt.Errorf("image edit endpoint: status %d: %s", resp.StatusCode, respBody)
	}
}
