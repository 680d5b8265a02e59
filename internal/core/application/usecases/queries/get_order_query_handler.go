package queries

import (
	"context"
	"encoding/json"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order read model from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ErrObjectNotFound when no order
// with the requested id exists.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			driver_id,
			vehicle_id,
			pickup_address,
			delivery_address,
			distance_km,
			trip_fee,
			service_fee,
			total_amount,
			status,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderQueryResponse{}, err
		}
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	var (
		resp            GetOrderQueryResponse
		id              uuid.UUID
		customerID      uuid.UUID
		driverID        uuid.NullUUID
		pickupAddress   []byte
		deliveryAddress []byte
	)

	err = rows.Scan(
		&id,
		&customerID,
		&driverID,
		&resp.VehicleID,
		&pickupAddress,
		&deliveryAddress,
		&resp.DistanceKm,
		&resp.TripFee,
		&resp.ServiceFee,
		&resp.Total,
		&resp.Status,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if driverID.Valid {
		drv, idErr := kernel.UUIDFromBytes(driverID.UUID[:])
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}
		resp.DriverID = &drv
	}

	if err = json.Unmarshal(pickupAddress, &resp.PickupAddress); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if err = json.Unmarshal(deliveryAddress, &resp.DeliveryAddress); err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.Items, err = h.loadItems(ctx, query.OrderID()); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID kernel.UUID) ([]ItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			description,
			quantity,
			weight_kg,
			declared_value,
			handling_fee
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]ItemResponse, 0)
	for rows.Next() {
		var (
			item          ItemResponse
			id            uuid.UUID
			declaredValue decimal.NullDecimal
			handlingFee   decimal.NullDecimal
		)

		err = rows.Scan(
			&id,
			&item.Description,
			&item.Quantity,
			&item.WeightKg,
			&declaredValue,
			&handlingFee,
		)
		if err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if declaredValue.Valid {
			item.DeclaredValue = &declaredValue.Decimal
		}
		if handlingFee.Valid {
			item.HandlingFee = &handlingFee.Decimal
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
