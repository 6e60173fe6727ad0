package moderation

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Priyankg101/content-moderator/pkg/domain"
)

// ItemModerator is the common contract every modality moderator satisfies.
type ItemModerator interface {
	Moderate(ctx context.Context, item domain.ContentItem, policy *domain.PolicyConfig, sensitivity domain.Sensitivity) (domain.Verdict, error)
}

// Pipeline routes each content item to the moderator for its modality and
// folds the verdicts into one aggregate result. Items are processed strictly
// in input order, one at a time; the first rejection stops the pass and later
// items are never evaluated. A Pipeline holds no per-call state and is safe
// for concurrent use.
type Pipeline struct {
	text  ItemModerator
	image ItemModerator
	audio ItemModerator
	video ItemModerator
}

type PipelineDependencies struct {
	Text  ItemModerator
	Image ItemModerator
	Audio ItemModerator
	Video ItemModerator
}

func NewPipeline(deps PipelineDependencies) *Pipeline {
	return &Pipeline{
		text:  deps.Text,
		image: deps.Image,
		audio: deps.Audio,
		video: deps.Video,
	}
}

// Moderate runs the whole moderation pass. It never returns an error: every
// failure below this boundary is resolved to a rejection verdict, logged with
// the failing modality. Tags from approved items still land in the final set.
func (p *Pipeline) Moderate(ctx context.Context, items []domain.ContentItem, policy *domain.PolicyConfig, sensitivity domain.Sensitivity) domain.ModerationResult {
	status := domain.StatusApproved
	reason := "Content is appropriate"
	var tags []string

	for _, item := range items {
		verdict := p.moderateItem(ctx, item, policy, sensitivity)

		tags = append(tags, verdict.Tags...)

		if verdict.Status == domain.StatusRejected {
			status = domain.StatusRejected
			reason = verdict.Reason
			break
		}
	}

	return domain.ModerationResult{
		Status: status,
		Reason: reason,
		Tags:   dedupeTags(tags),
		Time:   time.Now().Format(time.RFC3339),
	}
}

func (p *Pipeline) moderateItem(ctx context.Context, item domain.ContentItem, policy *domain.PolicyConfig, sensitivity domain.Sensitivity) domain.Verdict {
	var moderator ItemModerator

	switch item.Type {
	case domain.ContentTypeText:
		moderator = p.text
	case domain.ContentTypeImage:
		moderator = p.image
	case domain.ContentTypeAudio:
		moderator = p.audio
	case domain.ContentTypeVideo:
		moderator = p.video
	default:
		return domain.Verdict{Status: domain.StatusRejected, Reason: "Unsupported content type"}
	}

	verdict, err := moderator.Moderate(ctx, item, policy, sensitivity)
	if err != nil {
		log.Error().Err(err).Str("type", string(item.Type)).Msg("Error moderating item")
		return domain.Verdict{
			Status: domain.StatusRejected,
			Reason: fmt.Sprintf("Error processing %s", item.Type),
		}
	}

	return verdict
}

// dedupeTags drops duplicate tags, keeping first-seen order. The result is
// never nil so the envelope always serializes Tags as a JSON array.
func dedupeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))

	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}

	return out
}
