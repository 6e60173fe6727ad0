package moderation

import (
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Priyankg101/content-moderator/pkg/domain"
)

type reviewResponse struct {
	Decision string   `json:"decision"`
	Reason   string   `json:"reason"`
	Tags     []string `json:"tags"`
}

// ParseReviewResponse decodes the reasoning classifier's JSON reply into a
// Verdict. Malformed responses and unknown decisions fail closed: the
// returned verdict rejects with a generic reason and no tags, and ok is
// false. The same parser is shared by every modality moderator.
func ParseReviewResponse(raw string) (domain.Verdict, bool) {
	failClosed := domain.Verdict{
		Status: domain.StatusRejected,
		Reason: "Error in moderation process",
	}

	var parsed reviewResponse
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &parsed); err != nil {
		log.Error().Err(err).Msg("Failed to parse JSON response from classifier")
		return failClosed, false
	}

	var status domain.Status
	switch {
	case strings.EqualFold(parsed.Decision, string(domain.StatusApproved)):
		status = domain.StatusApproved
	case strings.EqualFold(parsed.Decision, string(domain.StatusRejected)):
		status = domain.StatusRejected
	default:
		log.Error().Str("decision", parsed.Decision).Msg("Classifier returned unknown decision")
		return failClosed, false
	}

	return domain.Verdict{
		Status: status,
		Reason: parsed.Reason,
		Tags:   parsed.Tags,
	}, true
}

// stripCodeFence removes a surrounding markdown code fence, which chat
// models sometimes add around JSON output despite instructions.
func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")

	return strings.TrimSpace(s)
}
