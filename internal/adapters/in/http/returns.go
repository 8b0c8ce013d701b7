package http

import (
	"net/http"

	"sellerops/internal/core/application/usecases/commands"
	"sellerops/internal/core/domain/model/returns"

	"github.com/labstack/echo/v4"
)

// CreateReturn handles POST /api/v1/returns.
func (s *Server) CreateReturn(ctx echo.Context) error {
	var body CreateReturnRequest
	if err := s.bind(ctx, &body); err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewCreateReturnCommand(commands.ReturnInput{
		ReturnID:      body.ReturnID,
		OrderID:       body.OrderID,
		OrderItemID:   body.OrderItemID,
		Reason:        body.Reason,
		Description:   body.Description,
		RefundAmount:  *body.RefundAmount,
		PickupAddress: body.PickupAddress,
	})
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.CreateReturn.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, StatusResponse{
		ID:     cmd.ReturnID().String(),
		Status: returns.ReturnInitiated.String(),
	})
}

func (s *Server) ApproveReturn(ctx echo.Context, id string) error {
	return s.changeReturnStatus(ctx, id, commands.ApproveReturn)
}

func (s *Server) RejectReturn(ctx echo.Context, id string) error {
	return s.changeReturnStatus(ctx, id, commands.RejectReturn)
}

func (s *Server) CompleteReturn(ctx echo.Context, id string) error {
	return s.changeReturnStatus(ctx, id, commands.CompleteReturn)
}

func (s *Server) changeReturnStatus(ctx echo.Context, id string, action commands.ReturnAction) error {
	cmd, err := commands.NewChangeReturnStatusCommand(id, action)
	if err != nil {
		return s.respondError(ctx, err)
	}

	status, err := s.handlers.ChangeReturnStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StatusResponse{ID: cmd.ReturnID().String(), Status: status.String()})
}

// CreateReplacement handles POST /api/v1/replacements.
func (s *Server) CreateReplacement(ctx echo.Context) error {
	var body CreateReplacementRequest
	if err := s.bind(ctx, &body); err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewCreateReplacementCommand(body.ReplacementID, body.ReturnID, body.DeliveryAddress)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.CreateReplacement.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, StatusResponse{
		ID:     cmd.ReplacementID().String(),
		Status: returns.ReplacementInitiated.String(),
	})
}

// DispatchReplacement handles POST /api/v1/replacements/{id}/dispatch.
func (s *Server) DispatchReplacement(ctx echo.Context, id string) error {
	var body TrackingIDRequest
	if err := s.bind(ctx, &body); err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewDispatchReplacementCommand(id, body.TrackingID)
	if err != nil {
		return s.respondError(ctx, err)
	}
	return s.moveReplacement(ctx, cmd)
}

// CompleteReplacement handles POST /api/v1/replacements/{id}/complete.
func (s *Server) CompleteReplacement(ctx echo.Context, id string) error {
	cmd, err := commands.NewCompleteReplacementCommand(id)
	if err != nil {
		return s.respondError(ctx, err)
	}
	return s.moveReplacement(ctx, cmd)
}

func (s *Server) moveReplacement(ctx echo.Context, cmd commands.MoveReplacementCommand) error {
	status, err := s.handlers.MoveReplacement.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StatusResponse{ID: cmd.ReplacementID().String(), Status: status.String()})
}

// CreateRefund handles POST /api/v1/refunds.
func (s *Server) CreateRefund(ctx echo.Context) error {
	var body CreateRefundRequest
	if err := s.bind(ctx, &body); err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewCreateRefundCommand(body.TransactionID, body.ReturnID, *body.RefundAmount, body.RefundMethod)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.CreateRefund.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, StatusResponse{
		ID:     cmd.TransactionID().String(),
		Status: returns.RefundPending.String(),
	})
}

func (s *Server) ProcessRefund(ctx echo.Context, id string) error {
	return s.changeRefundStatus(ctx, id, commands.ProcessRefund)
}

func (s *Server) CompleteRefund(ctx echo.Context, id string) error {
	return s.changeRefundStatus(ctx, id, commands.CompleteRefund)
}

func (s *Server) changeRefundStatus(ctx echo.Context, id string, action commands.RefundAction) error {
	cmd, err := commands.NewChangeRefundStatusCommand(id, action)
	if err != nil {
		return s.respondError(ctx, err)
	}

	status, err := s.handlers.ChangeRefundStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StatusResponse{ID: cmd.TransactionID().String(), Status: status.String()})
}
