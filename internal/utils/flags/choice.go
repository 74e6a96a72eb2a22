package flags

import (
	"fmt"
	"strings"
)

const (
	choiceListOpenConstant      = "<"
	choiceListCloseConstant     = ">"
	choiceListSeparatorConstant = "|"
)

// FormatChoiceUsage renders a flag usage string listing the accepted values,
// with the default value upper-cased so it stands out in help output.
func FormatChoiceUsage(defaultChoice string, choices []string, description string) string {
	placeholder := choiceListOpenConstant + strings.Join(renderChoices(defaultChoice, choices), choiceListSeparatorConstant) + choiceListCloseConstant
	trimmedDescription := strings.TrimSpace(description)
	if len(trimmedDescription) == 0 {
		return fmt.Sprintf("`%s`", placeholder)
	}
	return fmt.Sprintf("`%s` %s", placeholder, trimmedDescription)
}

func renderChoices(defaultChoice string, choices []string) []string {
	normalizedDefault := strings.ToLower(strings.TrimSpace(defaultChoice))
	rendered := make([]string, 0, len(choices))
	alreadyRendered := make(map[string]struct{}, len(choices))
	for _, candidateChoice := range choices {
		trimmedChoice := strings.TrimSpace(candidateChoice)
		if len(trimmedChoice) == 0 {
			continue
		}
		normalizedChoice := strings.ToLower(trimmedChoice)
		if _, duplicate := alreadyRendered[normalizedChoice]; duplicate {
			continue
		}
		alreadyRendered[normalizedChoice] = struct{}{}
		if normalizedChoice == normalizedDefault {
			rendered = append(rendered, strings.ToUpper(trimmedChoice))
			continue
		}
		rendered = append(rendered, trimmedChoice)
	}
	return rendered
}
