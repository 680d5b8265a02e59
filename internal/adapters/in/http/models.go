package http

import (
	"time"

	"lastmile/internal/core/application/usecases/queries"

	"github.com/shopspring/decimal"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AddressRequest carries an address in create and patch payloads.
type AddressRequest struct {
	Street       string   `json:"street"`
	City         string   `json:"city"`
	Instructions string   `json:"instructions"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}

// ItemRequest carries one order item in the create payload.
type ItemRequest struct {
	Description   string           `json:"description"`
	Quantity      int              `json:"quantity"`
	WeightKg      decimal.Decimal  `json:"weightKg"`
	DeclaredValue *decimal.Decimal `json:"declaredValue"`
	HandlingFee   *decimal.Decimal `json:"handlingFee"`
}

// CreateOrderRequest is the payload for POST /orders.
type CreateOrderRequest struct {
	CustomerID      string         `json:"customerId"`
	PickupAddress   AddressRequest `json:"pickupAddress"`
	DeliveryAddress AddressRequest `json:"deliveryAddress"`
	Items           []ItemRequest  `json:"items"`
	VehicleType     string         `json:"vehicleType"`
}

// PatchOrderRequest is the payload for PATCH /orders/:id. Instructions are
// always applied; latitude and longitude must come together or not at all.
type PatchOrderRequest struct {
	Instructions string   `json:"instructions"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}

// AssignDriverRequest is the payload for PATCH /orders/:id/assign.
type AssignDriverRequest struct {
	DriverID  string `json:"driverId"`
	VehicleID string `json:"vehicleId"`
}

// CreateInvoiceRequest is the payload for POST /invoices. The total is
// supplied by the caller and must equal subtotal plus tax.
type CreateInvoiceRequest struct {
	OrderID       string          `json:"orderId"`
	CustomerTaxID string          `json:"customerTaxId"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
	Total         decimal.Decimal `json:"total"`
}

// CreatedResponse returns the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// AddressResponse mirrors queries.AddressResponse with JSON tags.
type AddressResponse struct {
	Street       string   `json:"street"`
	City         string   `json:"city"`
	Instructions string   `json:"instructions,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
}

// ItemResponse is the JSON shape of one order item.
type ItemResponse struct {
	ID            string           `json:"id"`
	Description   string           `json:"description"`
	Quantity      int              `json:"quantity"`
	WeightKg      decimal.Decimal  `json:"weightKg"`
	DeclaredValue *decimal.Decimal `json:"declaredValue,omitempty"`
	HandlingFee   *decimal.Decimal `json:"handlingFee,omitempty"`
}

// OrderResponse is the full JSON read model of an order.
type OrderResponse struct {
	ID              string          `json:"id"`
	CustomerID      string          `json:"customerId"`
	DriverID        *string         `json:"driverId,omitempty"`
	VehicleID       *string         `json:"vehicleId,omitempty"`
	PickupAddress   AddressResponse `json:"pickupAddress"`
	DeliveryAddress AddressResponse `json:"deliveryAddress"`
	Items           []ItemResponse  `json:"items"`
	DistanceKm      decimal.Decimal `json:"distanceKm"`
	TripFee         decimal.Decimal `json:"tripFee"`
	ServiceFee      decimal.Decimal `json:"serviceFee"`
	Total           decimal.Decimal `json:"total"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// OrderSummaryResponse is the JSON shape of one order in list endpoints.
type OrderSummaryResponse struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customerId"`
	Status     string          `json:"status"`
	DistanceKm decimal.Decimal `json:"distanceKm"`
	Total      decimal.Decimal `json:"total"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// InvoiceResponse is the JSON shape of an invoice.
type InvoiceResponse struct {
	ID            string          `json:"id"`
	OrderID       string          `json:"orderId"`
	CustomerTaxID string          `json:"customerTaxId"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"`
	IssuedAt      *time.Time      `json:"issuedAt,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func orderResponseFrom(src queries.GetOrderQueryResponse) OrderResponse {
	resp := OrderResponse{
		ID:              src.ID.String(),
		CustomerID:      src.CustomerID.String(),
		VehicleID:       src.VehicleID,
		PickupAddress:   addressResponseFrom(src.PickupAddress),
		DeliveryAddress: addressResponseFrom(src.DeliveryAddress),
		Items:           make([]ItemResponse, 0, len(src.Items)),
		DistanceKm:      src.DistanceKm,
		TripFee:         src.TripFee,
		ServiceFee:      src.ServiceFee,
		Total:           src.Total,
		Status:          src.Status,
		CreatedAt:       src.CreatedAt,
		UpdatedAt:       src.UpdatedAt,
	}

	if src.DriverID != nil {
		driverID := src.DriverID.String()
		resp.DriverID = &driverID
	}

	for _, item := range src.Items {
		resp.Items = append(resp.Items, ItemResponse{
			ID:            item.ID.String(),
			Description:   item.Description,
			Quantity:      item.Quantity,
			WeightKg:      item.WeightKg,
			DeclaredValue: item.DeclaredValue,
			HandlingFee:   item.HandlingFee,
		})
	}

	return resp
}

func addressResponseFrom(src queries.AddressResponse) AddressResponse {
	return AddressResponse{
		Street:       src.Street,
		City:         src.City,
		Instructions: src.Instructions,
		Latitude:     src.Latitude,
		Longitude:    src.Longitude,
	}
}

func orderSummariesFrom(src []queries.OrderSummaryResponse) []OrderSummaryResponse {
	resp := make([]OrderSummaryResponse, 0, len(src))
	for _, summary := range src {
		resp = append(resp, OrderSummaryResponse{
			ID:         summary.ID.String(),
			CustomerID: summary.CustomerID.String(),
			Status:     summary.Status,
			DistanceKm: summary.DistanceKm,
			Total:      summary.Total,
			CreatedAt:  summary.CreatedAt,
		})
	}
	return resp
}

func invoiceResponseFrom(src queries.InvoiceResponse) InvoiceResponse {
	return InvoiceResponse{
		ID:            src.ID.String(),
		OrderID:       src.OrderID.String(),
		CustomerTaxID: src.CustomerTaxID,
		Subtotal:      src.Subtotal,
		TaxAmount:     src.TaxAmount,
		Total:         src.Total,
		Status:        src.Status,
		IssuedAt:      src.IssuedAt,
		CreatedAt:     src.CreatedAt,
	}
}
