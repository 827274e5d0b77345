package internal

import (
	"strings"

	"github.com/pkg/errors"
)

const DefaultMaxSelections = 5

// DefaultProtectedNames are substrings that mark a bucket as off-limits.
// Substring match on purpose: "prod-backup-2023" is just as protected as
// "backup".
var DefaultProtectedNames = []string{"backup", "do-not-delete", "console"}

type SelectionLimits struct {
	MaxSelections  int
	ProtectedNames []string
}

// SelectionValidator gates which selections may be confirmed. Checks run in
// a fixed order and the first failure wins.
type SelectionValidator struct {
	limits SelectionLimits
}

func NewSelectionValidator(limits SelectionLimits) *SelectionValidator {
	return &SelectionValidator{limits: limits}
}

func (v *SelectionValidator) Validate(candidates []string) error {
	if err := v.checkProtectedNames(candidates); err != nil {
		return err
	}
	return v.checkCardinality(candidates)
}

func (v *SelectionValidator) checkProtectedNames(candidates []string) error {
	for _, candidate := range candidates {
		for _, protected := range v.limits.ProtectedNames {
			if strings.Contains(candidate, protected) {
				return errors.New("Cannot delete buckets with protected names")
			}
		}
	}
	return nil
}

func (v *SelectionValidator) checkCardinality(candidates []string) error {
	if len(candidates) > v.limits.MaxSelections {
		return errors.Errorf("Maximum of %d selections. You have %d", v.limits.MaxSelections, len(candidates))
	}
	if len(candidates) == 0 {
		return errors.New("Must select a bucket")
	}
	return nil
}
