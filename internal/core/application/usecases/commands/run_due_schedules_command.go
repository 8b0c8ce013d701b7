package commands

import (
	"errors"

	"sellerops/internal/pkg/guard"
)

var ErrRunDueSchedulesCommandIsNotConstructed = errors.New(
	"RunDueSchedulesCommand must be created via NewRunDueSchedulesCommand constructor",
)

// RunDueSchedulesCommand triggers one pass of the schedule runner over every
// active schedule whose next run date has passed.
type RunDueSchedulesCommand struct {
	guard guard.ConstructorGuard
}

func NewRunDueSchedulesCommand() RunDueSchedulesCommand {
	return RunDueSchedulesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c RunDueSchedulesCommand) Validate() error {
	return c.guard.Validate(ErrRunDueSchedulesCommandIsNotConstructed)
}
