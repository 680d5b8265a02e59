// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database rows.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Addresses are stored as jsonb documents; items live in their own table and
// are loaded eagerly with the order.
type OrderDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID  `gorm:"type:uuid;index"`
	DriverID   *uuid.UUID `gorm:"type:uuid;index"`
	VehicleID  *string

	PickupAddress   AddressDTO `gorm:"type:jsonb"`
	DeliveryAddress AddressDTO `gorm:"type:jsonb"`

	Items []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	DistanceKm  decimal.Decimal `gorm:"type:numeric(10,2)"`
	TripFee     decimal.Decimal `gorm:"type:numeric(12,2)"`
	ServiceFee  decimal.Decimal `gorm:"type:numeric(12,2)"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(12,2)"`

	Status string `gorm:"index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one package item row belonging to an order.
type ItemDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID `gorm:"type:uuid;index"`

	Description   string
	Quantity      int
	WeightKg      decimal.Decimal     `gorm:"type:numeric(10,3)"`
	DeclaredValue decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	HandlingFee   decimal.NullDecimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for order items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// AddressDTO is the jsonb document shape of a stored address. Coordinates are
// optional; orders created through the API always carry them, but the column
// format leaves room for addresses captured without geocoding.
type AddressDTO struct {
	Street       string   `json:"street"`
	City         string   `json:"city"`
	Instructions string   `json:"instructions,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
}

// Value serializes the address for the jsonb column.
func (a AddressDTO) Value() (driver.Value, error) {
	return json.Marshal(a)
}

// Scan deserializes the address from the jsonb column.
func (a *AddressDTO) Scan(value any) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return fmt.Errorf("cannot scan %T into AddressDTO", value)
	}
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	pricing := aggregate.Pricing()
	dto := OrderDTO{
		ID:              aggregate.ID().Bytes(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		DriverID:        driverID,
		VehicleID:       aggregate.VehicleID(),
		PickupAddress:   addressFromDomain(aggregate.PickupAddress()),
		DeliveryAddress: addressFromDomain(aggregate.DeliveryAddress()),
		DistanceKm:      pricing.DistanceKm(),
		TripFee:         pricing.TripFee(),
		ServiceFee:      pricing.ServiceFee(),
		TotalAmount:     pricing.Total(),
		Status:          aggregate.Status().String(),
	}

	for _, item := range aggregate.Items() {
		dto.Items = append(dto.Items, itemFromDomain(aggregate.ID(), item))
	}

	return dto
}

func addressFromDomain(address order.Address) AddressDTO {
	dto := AddressDTO{
		Street:       address.Street(),
		City:         address.City(),
		Instructions: address.Instructions(),
	}

	if point := address.Point(); point != nil {
		lat := point.Latitude()
		lon := point.Longitude()
		dto.Latitude = &lat
		dto.Longitude = &lon
	}

	return dto
}

func itemFromDomain(orderID kernel.UUID, item *order.Item) ItemDTO {
	dto := ItemDTO{
		ID:          item.ID().Bytes(),
		OrderID:     orderID.Bytes(),
		Description: item.Description(),
		Quantity:    item.Quantity(),
		WeightKg:    item.WeightKg(),
	}

	if v := item.DeclaredValue(); v != nil {
		dto.DeclaredValue = decimal.NullDecimal{Decimal: *v, Valid: true}
	}
	if v := item.HandlingFee(); v != nil {
		dto.HandlingFee = decimal.NullDecimal{Decimal: *v, Valid: true}
	}

	return dto
}

// toDomain converts a database DTO to an order aggregate.
// Reconstructs the complete aggregate through RestoreOrder so all invariants
// are re-checked.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		drv, drvErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if drvErr != nil {
			return nil, drvErr
		}
		driverID = &drv
	}

	pickupAddress, err := addressToDomain(dto.PickupAddress)
	if err != nil {
		return nil, err
	}

	deliveryAddress, err := addressToDomain(dto.DeliveryAddress)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	pricing, err := order.NewPricing(dto.DistanceKm, dto.TripFee, dto.ServiceFee, dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, customerID, driverID, dto.VehicleID,
		pickupAddress, deliveryAddress, items, pricing, status,
	)
}

func addressToDomain(dto AddressDTO) (order.Address, error) {
	var point *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		p, err := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if err != nil {
			return order.Address{}, err
		}
		point = &p
	}

	return order.NewAddress(dto.Street, dto.City, dto.Instructions, point)
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var declaredValue, handlingFee *decimal.Decimal
	if dto.DeclaredValue.Valid {
		declaredValue = &dto.DeclaredValue.Decimal
	}
	if dto.HandlingFee.Valid {
		handlingFee = &dto.HandlingFee.Decimal
	}

	return order.RestoreItem(id, dto.Description, dto.Quantity, dto.WeightKg, declaredValue, handlingFee)
}
