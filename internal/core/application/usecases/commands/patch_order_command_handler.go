package commands

import (
	"context"
)

// PatchOrderCommandHandler handles delivery-address amendments.
// Loads the order, applies the patch through the aggregate (which enforces
// the Created-only rule), and persists the change.
type PatchOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPatchOrderCommandHandler creates a handler for order patch operations.
func NewPatchOrderCommandHandler(uowFactory OrderUoWFactory) PatchOrderCommandHandler {
	return PatchOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the patch command. Returns errs.ErrObjectNotFound when the
// order does not exist and errs.ErrInvalidState when it already left Created.
func (h PatchOrderCommandHandler) Handle(ctx context.Context, cmd PatchOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.PatchDelivery(cmd.Instructions(), cmd.Point()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
