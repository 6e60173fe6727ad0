package moderation

import (
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
)

// urlExtension extracts the file extension from a URL's path component,
// falling back when the URL has none. Query strings are ignored.
func urlExtension(rawURL, fallback string) string {
	p := rawURL
	if parsed, err := url.Parse(rawURL); err == nil && parsed.Path != "" {
		p = parsed.Path
	}

	if ext := path.Ext(p); ext != "" {
		return ext
	}
	return fallback
}

// writeTempArtifact persists downloaded media bytes to a uniquely named file
// under the OS temp directory, preserving the source extension so external
// tools can sniff the container format. The caller owns the file and must
// remove it before returning.
func writeTempArtifact(data []byte, ext string) (string, error) {
	p := filepath.Join(os.TempDir(), uuid.NewString()+ext)
	if err := os.WriteFile(p, data, 0o600); err != nil {
		return "", err
	}
	return p, nil
}
