package configurator

import (
	"errors"
	"fmt"

	"github.com/toushik018/hardal/internal/commerce"
)

var (
	ErrStepOutOfRange = errors.New("step index out of range")
	ErrJumpNotAllowed = errors.New("jump target not reachable from current step")
)

// ValidationError reports an unmet category minimum. It blocks only the
// transition it was raised for.
type ValidationError struct {
	Category string
	Required int
	Actual   int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf(
		"Bitte wählen Sie mindestens %d %s Artikel. Sie haben %d ausgewählt.",
		e.Required, e.Category, e.Actual,
	)
}

// Next advances the linear step index. When the active category's minimum is
// unmet it returns a ValidationError and the index stays put. On the last
// step it returns commit=true instead of advancing: the caller must commit
// the package remotely and only leave the configurator when that succeeds.
func Next(step int, steps []commerce.MenuContent, currentCount int) (next int, commit bool, err error) {
	if step < 0 || step >= len(steps) {
		return step, false, ErrStepOutOfRange
	}

	category := steps[step]
	if currentCount < category.Count {
		return step, false, &ValidationError{
			Category: category.Name,
			Required: category.Count,
			Actual:   currentCount,
		}
	}

	if step < len(steps)-1 {
		return step + 1, false, nil
	}
	return step, true, nil
}

// Previous steps back one, flooring at the first step.
func Previous(step int) int {
	if step > 0 {
		return step - 1
	}
	return 0
}

// JumpTo validates a direct jump: strictly earlier steps are always
// reachable, the immediate next step only when the current gate is
// satisfied, everything else is rejected.
func JumpTo(step, target, total int, gateSatisfied bool) (int, error) {
	if target < 0 || target >= total {
		return step, ErrStepOutOfRange
	}
	if target < step {
		return target, nil
	}
	if target == step+1 && gateSatisfied {
		return target, nil
	}
	return step, ErrJumpNotAllowed
}
