package commands

import (
	"context"
	"errors"

	"lastmile/internal/core/domain/model/order"
	"lastmile/internal/core/domain/services"
	"lastmile/internal/pkg/errs"
)

// ErrNoTariffConfigured is returned when no tariff exists for the requested
// vehicle class. Orders cannot be priced, and therefore not created, without one.
var ErrNoTariffConfigured = errors.New("no tariff configured for vehicle type")

// CreateOrderCommandHandler handles the business logic for order creation.
// Prices the route against the vehicle tariff and persists the order with its
// fare in one transaction; an order never exists unpriced.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoTariffConfigured):
//	    // vehicle class has no pricing rule
//	case errors.Is(err, services.ErrOutOfCoverage):
//	    // route is longer than the coverage area
//	case err != nil:
//	    // infrastructure failure
//	}
type CreateOrderCommandHandler struct {
	uowFactory PricingUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a PricingUoWFactory so the tariff read and the order write share a
// transaction.
func NewCreateOrderCommandHandler(uowFactory PricingUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Measures the route first (coverage gates before any tariff concern), then
// looks up the tariff for the requested vehicle class, computes the fare,
// and persists the order in Created status.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	calculator := services.NewFareCalculator()
	distanceKm, err := calculator.Distance(
		*cmd.PickupAddress().Point(), *cmd.DeliveryAddress().Point())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	t, err := uow.TariffRepository().GetByVehicleType(ctx, cmd.VehicleType())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoTariffConfigured
	}
	if err != nil {
		return err
	}

	pricing, err := calculator.Calculate(distanceKm, t)
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.CustomerID(),
		cmd.PickupAddress(), cmd.DeliveryAddress(),
		cmd.Items(), pricing,
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
