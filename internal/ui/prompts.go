package ui

import (
	"github.com/AlecAivazis/survey/v2"
)

// Select prompts the user to pick one of options and returns the choice.
func (u *UI) Select(prompt string, options []string) (string, error) {
	if u.nonInteractive {
		return "", ErrNonInteractive
	}

	var selected string
	p := &survey.Select{
		Message: prompt,
		Options: options,
	}
	if err := survey.AskOne(p, &selected); err != nil {
		return "", err
	}
	return selected, nil
}
