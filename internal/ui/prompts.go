package ui

import (
	"github.com/AlecAivazis/survey/v2"
)

// PromptYesNo asks a yes/no question. In non-interactive mode the default
// is returned without asking.
func (u *UI) PromptYesNo(prompt string, defaultYes bool) (bool, error) {
	if u.nonInteractive {
		return defaultYes, nil
	}

	result := defaultYes
	p := &survey.Confirm{
		Message: prompt,
		Default: defaultYes,
	}

	err := survey.AskOne(p, &result)
	return result, err
}
