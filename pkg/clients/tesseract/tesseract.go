// Package tesseract runs the host tesseract binary for optical character
// recognition. The binary is optional; availability is probed before use.
package tesseract

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

type Engine struct {
	binPath string
}

// NewEngine builds an Engine invoking binPath, or "tesseract" from PATH
// when empty.
func NewEngine(binPath string) *Engine {
	if binPath == "" {
		binPath = "tesseract"
	}
	return &Engine{binPath: binPath}
}

// Available reports whether the tesseract binary can be found on the host.
func (e *Engine) Available() bool {
	_, err := exec.LookPath(e.binPath)
	return err == nil
}

// ExtractText runs OCR over the image bytes and returns the trimmed text.
// An empty string means no text was found.
func (e *Engine) ExtractText(ctx context.Context, image []byte) (string, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, e.binPath, "stdin", "stdout")
	cmd.Stdin = bytes.NewReader(image)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return "", fmt.Errorf("tesseract: %s", detail)
	}

	return strings.TrimSpace(stdout.String()), nil
}
