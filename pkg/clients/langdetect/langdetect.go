// Package langdetect guesses the language of text offline. Detection is a
// best-effort hint used for logging; it never fails.
package langdetect

import (
	"strings"

	"github.com/abadojack/whatlanggo"
)

type Detector struct{}

func NewDetector() *Detector {
	return &Detector{}
}

// Detect returns the ISO 639-1 code of the text's language, defaulting to
// "en" when the text is empty or detection is unreliable.
func (d *Detector) Detect(text string) string {
	if strings.TrimSpace(text) == "" {
		return "en"
	}

	info := whatlanggo.Detect(text)

	code := info.Lang.Iso6391()
	if code == "" || !info.IsReliable() {
		return "en"
	}

	return code
}
