// Package prompt is the terminal interaction layer: a multi-select prompt
// with a live selection validator and a yes/no confirmation prompt.
package prompt

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/core"
	"github.com/pkg/errors"
)

type Prompter interface {
	// MultiSelect keeps soliciting until the validator accepts the
	// selection or the prompt is aborted.
	MultiSelect(message string, options []string, validate func(selected []string) error) ([]string, error)

	Confirm(message string, defaultValue bool, help string) (bool, error)
}

type SurveyPrompter struct{}

func NewSurveyPrompter() *SurveyPrompter {
	return &SurveyPrompter{}
}

func (p *SurveyPrompter) MultiSelect(message string, options []string,
	validate func(selected []string) error) ([]string, error) {
	selected := make([]string, 0)
	multiSelect := &survey.MultiSelect{
		Message: message,
		Options: options,
	}
	err := survey.AskOne(multiSelect, &selected, survey.WithValidator(adaptValidator(validate)))
	return selected, err
}

func (p *SurveyPrompter) Confirm(message string, defaultValue bool, help string) (bool, error) {
	confirmed := defaultValue
	confirm := &survey.Confirm{
		Message: message,
		Default: defaultValue,
		Help:    help,
	}
	err := survey.AskOne(confirm, &confirmed)
	return confirmed, err
}

// adaptValidator bridges the string-slice validator contract to survey's
// answer representation.
func adaptValidator(validate func(selected []string) error) survey.Validator {
	return func(answer interface{}) error {
		selectedOptions, ok := answer.([]core.OptionAnswer)
		if !ok {
			return errors.Errorf("unexpected multi-select answer type %T", answer)
		}
		selected := make([]string, 0, len(selectedOptions))
		for _, option := range selectedOptions {
			selected = append(selected, option.Value)
		}
		return validate(selected)
	}
}
