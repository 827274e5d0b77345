package testtools

import "github.com/pkg/errors"

// ScriptedPrompter plays back a scripted interactive session. MultiSelect
// runs each selection attempt through the live validator the way a real
// prompt would, refusing invalid attempts and returning the first valid one.
type ScriptedPrompter struct {
	SelectionAttempts [][]string
	ConfirmAnswer     bool
	MultiSelectErr    error
	ConfirmErr        error

	MultiSelectCalls int
	ConfirmCalls     int
	RejectedReasons  []string
}

func (p *ScriptedPrompter) MultiSelect(message string, options []string,
	validate func(selected []string) error) ([]string, error) {
	p.MultiSelectCalls++
	if p.MultiSelectErr != nil {
		return nil, p.MultiSelectErr
	}
	for _, attempt := range p.SelectionAttempts {
		if err := validate(attempt); err != nil {
			p.RejectedReasons = append(p.RejectedReasons, err.Error())
			continue
		}
		return attempt, nil
	}
	return nil, errors.New("no valid selection attempt scripted")
}

func (p *ScriptedPrompter) Confirm(message string, defaultValue bool, help string) (bool, error) {
	p.ConfirmCalls++
	if p.ConfirmErr != nil {
		return defaultValue, p.ConfirmErr
	}
	return p.ConfirmAnswer, nil
}
