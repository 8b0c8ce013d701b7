package commands

import (
	"errors"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/guard"
)

var ErrMoveReplacementCommandIsNotConstructed = errors.New(
	"MoveReplacementCommand must be created via NewDispatchReplacementCommand or NewCompleteReplacementCommand",
)

type ReplacementMove int

const (
	MoveReplacementDispatch ReplacementMove = iota + 1
	MoveReplacementComplete
)

type MoveReplacementCommand struct { //nolint:recvcheck //using for validation
	replacementID kernel.ID
	move          ReplacementMove
	trackingID    string

	guard guard.ConstructorGuard
}

// NewDispatchReplacementCommand validates the tracking id in the handler, together with the aggregate.
func NewDispatchReplacementCommand(replacementID, trackingID string) (MoveReplacementCommand, error) {
	return newMoveReplacementCommand(replacementID, MoveReplacementDispatch, trackingID)
}

func NewCompleteReplacementCommand(replacementID string) (MoveReplacementCommand, error) {
	return newMoveReplacementCommand(replacementID, MoveReplacementComplete, "")
}

func newMoveReplacementCommand(replacementID string, move ReplacementMove, trackingID string) (MoveReplacementCommand, error) {
	id, err := parseID("replacement_id", replacementID)
	if err != nil {
		return MoveReplacementCommand{}, err
	}

	return MoveReplacementCommand{
		replacementID: id,
		move:          move,
		trackingID:    trackingID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c MoveReplacementCommand) Validate() error {
	return c.guard.Validate(ErrMoveReplacementCommandIsNotConstructed)
}

func (c MoveReplacementCommand) ReplacementID() kernel.ID { return c.replacementID }
func (c MoveReplacementCommand) Move() ReplacementMove    { return c.move }
func (c MoveReplacementCommand) TrackingID() string       { return c.trackingID }
