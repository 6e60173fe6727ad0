package moderation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Priyankg101/content-moderator/pkg/domain"
)

func TestTextModerator_ApprovesFigurativeLanguageAtLowSensitivity(t *testing.T) {
	classifier := &fakeClassifier{
		response: `{"decision":"Approved","reason":"Mild complaint, not hateful","tags":[]}`,
	}
	detector := &fakeDetector{}

	m := NewTextModerator(TextModeratorDependencies{Classifier: classifier, Detector: detector})

	item := domain.ContentItem{Type: domain.ContentTypeText, Text: "I hate Mondays"}
	verdict, err := m.Moderate(context.Background(), item, nil, domain.SensitivityLow)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, verdict.Status)
	assert.Equal(t, "Mild complaint, not hateful", verdict.Reason)
	assert.Empty(t, verdict.Tags)

	assert.Equal(t, "I hate Mondays", classifier.lastText)
	assert.Contains(t, classifier.lastInstructions, "Be lenient in your analysis")
}

func TestTextModerator_CustomPoliciesReachThePrompt(t *testing.T) {
	classifier := &fakeClassifier{
		response: `{"decision":"Rejected","reason":"Promotes gambling","tags":["gambling"]}`,
	}

	m := NewTextModerator(TextModeratorDependencies{Classifier: classifier, Detector: &fakeDetector{}})

	policy := &domain.PolicyConfig{DisallowedCategories: []string{"gambling"}}
	verdict, err := m.ModerateContent(context.Background(), "bet it all on red", policy, domain.SensitivityHigh)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, verdict.Status)
	assert.Equal(t, []string{"gambling"}, verdict.Tags)
	assert.Contains(t, classifier.lastInstructions, "Disallowed content categories include: gambling.")
	assert.Contains(t, classifier.lastInstructions, "Be strict in your analysis")
}

func TestTextModerator_FailsClosedOnMalformedResponse(t *testing.T) {
	classifier := &fakeClassifier{response: "not json at all"}

	m := NewTextModerator(TextModeratorDependencies{Classifier: classifier, Detector: &fakeDetector{}})

	verdict, err := m.ModerateContent(context.Background(), "anything", nil, domain.SensitivityMedium)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, verdict.Status)
	assert.Equal(t, "Error in moderation process", verdict.Reason)
	assert.Empty(t, verdict.Tags)
}

func TestTextModerator_PrescreenSignalDoesNotDecide(t *testing.T) {
	classifier := &fakeClassifier{
		flagged:  true,
		response: `{"decision":"Approved","reason":"Figurative expression","tags":[]}`,
	}

	m := NewTextModerator(TextModeratorDependencies{Classifier: classifier, Detector: &fakeDetector{}})

	verdict, err := m.ModerateContent(context.Background(), "I could kill for a coffee", nil, domain.SensitivityMedium)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, verdict.Status)
	assert.Equal(t, 1, classifier.prescreenCalls)
	assert.Equal(t, 1, classifier.reviewCalls)
}

func TestTextModerator_PrescreenErrorPropagates(t *testing.T) {
	classifier := &fakeClassifier{prescreenErr: errors.New("api down")}

	m := NewTextModerator(TextModeratorDependencies{Classifier: classifier, Detector: &fakeDetector{}})

	_, err := m.ModerateContent(context.Background(), "anything", nil, domain.SensitivityMedium)

	require.Error(t, err)
	assert.Equal(t, 0, classifier.reviewCalls)
}

func TestTextModerator_ExplicitLanguageSkipsDetection(t *testing.T) {
	classifier := &fakeClassifier{response: `{"decision":"Approved","reason":"ok","tags":[]}`}
	detector := &fakeDetector{lang: "de"}

	m := NewTextModerator(TextModeratorDependencies{Classifier: classifier, Detector: detector})

	item := domain.ContentItem{Type: domain.ContentTypeText, Text: "bonjour", Language: "fr"}
	_, err := m.Moderate(context.Background(), item, nil, domain.SensitivityMedium)

	require.NoError(t, err)
	assert.Equal(t, 0, detector.calls)
}

func TestTextModerator_MissingLanguageUsesDetector(t *testing.T) {
	classifier := &fakeClassifier{response: `{"decision":"Approved","reason":"ok","tags":[]}`}
	detector := &fakeDetector{lang: "fr"}

	m := NewTextModerator(TextModeratorDependencies{Classifier: classifier, Detector: detector})

	item := domain.ContentItem{Type: domain.ContentTypeText, Text: "bonjour tout le monde"}
	_, err := m.Moderate(context.Background(), item, nil, domain.SensitivityMedium)

	require.NoError(t, err)
	assert.Equal(t, 1, detector.calls)
}
