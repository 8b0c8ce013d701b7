package commands

import (
	"errors"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/guard"
)

var ErrSetScheduleActivationCommandIsNotConstructed = errors.New(
	"SetScheduleActivationCommand must be created via NewSetScheduleActivationCommand constructor",
)

type SetScheduleActivationCommand struct { //nolint:recvcheck //using for validation
	scheduleID kernel.ID
	active     bool

	guard guard.ConstructorGuard
}

func NewSetScheduleActivationCommand(scheduleID string, active bool) (SetScheduleActivationCommand, error) {
	id, err := parseID("schedule_id", scheduleID)
	if err != nil {
		return SetScheduleActivationCommand{}, err
	}

	return SetScheduleActivationCommand{
		scheduleID: id,
		active:     active,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c SetScheduleActivationCommand) Validate() error {
	return c.guard.Validate(ErrSetScheduleActivationCommandIsNotConstructed)
}

func (c SetScheduleActivationCommand) ScheduleID() kernel.ID { return c.scheduleID }
func (c SetScheduleActivationCommand) Active() bool          { return c.active }
