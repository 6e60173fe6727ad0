package moderation

import (
	"strings"

	"github.com/Priyankg101/content-moderator/pkg/domain"
)

var sensitivityInstructions = map[domain.Sensitivity]string{
	domain.SensitivityLow:    "Be lenient in your analysis, only flag severe violations.",
	domain.SensitivityMedium: "Apply standard moderation guidelines.",
	domain.SensitivityHigh:   "Be strict in your analysis, flag even minor violations.",
}

// PolicyInstructions renders the sensitivity level and any custom category
// lists as a natural-language fragment for the classifier prompt. Unknown
// sensitivity values fall back to the standard instruction. The result is
// recomputed per call; policies may change between items.
func PolicyInstructions(policy *domain.PolicyConfig, sensitivity domain.Sensitivity) string {
	instruction, ok := sensitivityInstructions[sensitivity]
	if !ok {
		instruction = sensitivityInstructions[domain.SensitivityMedium]
	}

	var b strings.Builder
	b.WriteString(instruction)

	if policy != nil {
		if len(policy.DisallowedCategories) > 0 {
			b.WriteString(" Disallowed content categories include: ")
			b.WriteString(strings.Join(policy.DisallowedCategories, ", "))
			b.WriteString(".")
		}
		if len(policy.AllowedCategories) > 0 {
			b.WriteString(" Allowed content categories include: ")
			b.WriteString(strings.Join(policy.AllowedCategories, ", "))
			b.WriteString(".")
		}
	}

	return b.String()
}
