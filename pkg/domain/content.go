package domain

// ContentType discriminates the modality of a ContentItem.
type ContentType string

const (
	ContentTypeText  ContentType = "text"
	ContentTypeImage ContentType = "image_url"
	ContentTypeAudio ContentType = "audio_url"
	ContentTypeVideo ContentType = "video_url"
)

// URLPayload carries the remote location of a media item.
type URLPayload struct {
	URL string `json:"url"`
}

// ContentItem is a single item submitted for moderation. The Type field
// selects which payload field is meaningful; the JSON shape mirrors the
// chat-completions content part format (image_url: {url: ...} and friends).
type ContentItem struct {
	Type     ContentType `json:"type"`
	Text     string      `json:"text,omitempty"`
	Language string      `json:"language,omitempty"`
	ImageURL *URLPayload `json:"image_url,omitempty"`
	AudioURL *URLPayload `json:"audio_url,omitempty"`
	VideoURL *URLPayload `json:"video_url,omitempty"`
}

// Status is the outcome of a moderation check.
type Status string

const (
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Verdict is the result every moderation check returns. Reason is always a
// human-readable explanation; on Approved it reads as an affirmation rather
// than a list of disallowed categories. Tags may be empty.
type Verdict struct {
	Status Status   `json:"status"`
	Reason string   `json:"reason"`
	Tags   []string `json:"tags"`
}

// Sensitivity adjusts how strict the classifier is asked to be. Unknown
// values behave like SensitivityMedium.
type Sensitivity string

const (
	SensitivityLow    Sensitivity = "low"
	SensitivityMedium Sensitivity = "medium"
	SensitivityHigh   Sensitivity = "high"
)

// PolicyConfig customizes the category lists fed to the text classifier.
// A nil PolicyConfig means default policies.
type PolicyConfig struct {
	DisallowedCategories []string `json:"disallowed_categories,omitempty"`
	AllowedCategories    []string `json:"allowed_categories,omitempty"`
}

// ModerationResult is the aggregate envelope returned by the pipeline for a
// whole list of items. Tags are deduplicated; Time is an RFC 3339 timestamp
// captured when processing completed.
type ModerationResult struct {
	Status Status   `json:"Status"`
	Reason string   `json:"Reason"`
	Tags   []string `json:"Tags"`
	Time   string   `json:"Time"`
}
