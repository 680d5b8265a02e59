// Package http exposes the order and billing route groups over echo.
// Handlers translate JSON payloads into commands and queries and map
// application errors to HTTP status codes.
package http

import (
	"net/http"

	"lastmile/internal/core/application/usecases/commands"
	"lastmile/internal/core/application/usecases/queries"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/order"
	"lastmile/internal/core/domain/model/tariff"
	"lastmile/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler   commands.CreateOrderCommandHandler
	patchOrderHandler    commands.PatchOrderCommandHandler
	cancelOrderHandler   commands.CancelOrderCommandHandler
	assignDriverHandler  commands.AssignDriverCommandHandler
	createInvoiceHandler commands.CreateInvoiceCommandHandler
	issueInvoiceHandler  commands.IssueInvoiceCommandHandler

	getOrderHandler            queries.GetOrderQueryHandler
	getOrdersHandler           queries.GetOrdersQueryHandler
	getOrdersByCustomerHandler queries.GetOrdersByCustomerQueryHandler
	orderExistsHandler         queries.OrderExistsQueryHandler
	getInvoiceByOrderHandler   queries.GetInvoiceByOrderQueryHandler
	getInvoicesHandler         queries.GetInvoicesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	patchOrderHandler commands.PatchOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	createInvoiceHandler commands.CreateInvoiceCommandHandler,
	issueInvoiceHandler commands.IssueInvoiceCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrdersByCustomerHandler queries.GetOrdersByCustomerQueryHandler,
	orderExistsHandler queries.OrderExistsQueryHandler,
	getInvoiceByOrderHandler queries.GetInvoiceByOrderQueryHandler,
	getInvoicesHandler queries.GetInvoicesQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		patchOrderHandler:          patchOrderHandler,
		cancelOrderHandler:         cancelOrderHandler,
		assignDriverHandler:        assignDriverHandler,
		createInvoiceHandler:       createInvoiceHandler,
		issueInvoiceHandler:        issueInvoiceHandler,
		getOrderHandler:            getOrderHandler,
		getOrdersHandler:           getOrdersHandler,
		getOrdersByCustomerHandler: getOrdersByCustomerHandler,
		orderExistsHandler:         orderExistsHandler,
		getInvoiceByOrderHandler:   getInvoiceByOrderHandler,
		getInvoicesHandler:         getInvoicesHandler,
	}
}

// RegisterRoutes attaches the order and billing route groups to e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	orders := e.Group("/orders")
	orders.POST("", s.CreateOrder)
	orders.GET("", s.GetOrders)
	orders.GET("/:id", s.GetOrder)
	orders.GET("/customer/:customerId", s.GetOrdersByCustomer)
	orders.PATCH("/:id", s.PatchOrder)
	orders.POST("/:id/cancel", s.CancelOrder)
	orders.PATCH("/:id/assign", s.AssignDriver)
	orders.POST("/exists/:id", s.OrderExists)

	invoices := e.Group("/invoices")
	invoices.POST("", s.CreateInvoice)
	invoices.GET("", s.GetInvoices)
	invoices.POST("/:id/issue", s.IssueInvoice)
	invoices.GET("/order/:orderId", s.GetInvoiceByOrder)
}

// CreateOrder handles POST /orders. Prices the order against the tariff
// for the requested vehicle class and stores it in CREATED status.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "invalid customer id")
	}

	vehicleType, err := tariff.VehicleTypeFromString(req.VehicleType)
	if err != nil {
		return errorJSON(ctx, err)
	}

	pickup, err := addressFromRequest(req.PickupAddress)
	if err != nil {
		return errorJSON(ctx, err)
	}
	delivery, err := addressFromRequest(req.DeliveryAddress)
	if err != nil {
		return errorJSON(ctx, err)
	}

	items := make([]*order.Item, 0, len(req.Items))
	for _, itemReq := range req.Items {
		item, itemErr := order.NewItem(
			itemReq.Description, itemReq.Quantity, itemReq.WeightKg,
			itemReq.DeclaredValue, itemReq.HandlingFee,
		)
		if itemErr != nil {
			return errorJSON(ctx, itemErr)
		}
		items = append(items, item)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, pickup, delivery, items, vehicleType)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// GetOrder handles GET /orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFrom(resp))
}

// GetOrders handles GET /orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	resp, err := s.getOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetOrdersQuery())
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderSummariesFrom(resp))
}

// GetOrdersByCustomer handles GET /orders/customer/:customerId.
func (s *Server) GetOrdersByCustomer(ctx echo.Context) error {
	customerID, err := pathUUID(ctx, "customerId")
	if err != nil {
		return badRequest(ctx, "invalid customer id")
	}

	query, err := queries.NewGetOrdersByCustomerQuery(customerID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	resp, err := s.getOrdersByCustomerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderSummariesFrom(resp))
}

// PatchOrder handles PATCH /orders/:id. Amends delivery instructions and,
// when a coordinate pair is present, the delivery point.
func (s *Server) PatchOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req PatchOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	point, err := pointFromRequest(req.Latitude, req.Longitude)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewPatchOrderCommand(orderID, req.Instructions, point)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.patchOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDriver handles PATCH /orders/:id/assign.
func (s *Server) AssignDriver(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req AssignDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return badRequest(ctx, "invalid driver id")
	}

	cmd, err := commands.NewAssignDriverCommand(orderID, driverID, req.VehicleID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.assignDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// OrderExists handles POST /orders/exists/:id. Used by the billing side;
// answers with a bare boolean and never an error body.
func (s *Server) OrderExists(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return ctx.JSON(http.StatusOK, false)
	}

	query, err := queries.NewOrderExistsQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusOK, false)
	}

	exists := s.orderExistsHandler.Handle(ctx.Request().Context(), query)
	return ctx.JSON(http.StatusOK, exists)
}

// CreateInvoice handles POST /invoices. Drafts an invoice after the
// duplicate and order-existence checks pass.
func (s *Server) CreateInvoice(ctx echo.Context) error {
	var req CreateInvoiceRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	invoiceID := kernel.NewUUID()
	cmd, err := commands.NewCreateInvoiceCommand(
		invoiceID, orderID, req.CustomerTaxID, req.Subtotal, req.TaxAmount, req.Total)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.createInvoiceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: invoiceID.String()})
}

// IssueInvoice handles POST /invoices/:id/issue.
func (s *Server) IssueInvoice(ctx echo.Context) error {
	invoiceID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid invoice id")
	}

	cmd, err := commands.NewIssueInvoiceCommand(invoiceID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.issueInvoiceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetInvoiceByOrder handles GET /invoices/order/:orderId.
func (s *Server) GetInvoiceByOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetInvoiceByOrderQuery(orderID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	resp, err := s.getInvoiceByOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, invoiceResponseFrom(resp))
}

// GetInvoices handles GET /invoices.
func (s *Server) GetInvoices(ctx echo.Context) error {
	resp, err := s.getInvoicesHandler.Handle(ctx.Request().Context(), queries.NewGetInvoicesQuery())
	if err != nil {
		return errorJSON(ctx, err)
	}

	responses := make([]InvoiceResponse, 0, len(resp))
	for _, inv := range resp {
		responses = append(responses, invoiceResponseFrom(inv))
	}

	return ctx.JSON(http.StatusOK, responses)
}

func pathUUID(ctx echo.Context, param string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(param))
}

func addressFromRequest(req AddressRequest) (order.Address, error) {
	point, err := pointFromRequest(req.Latitude, req.Longitude)
	if err != nil {
		return order.Address{}, err
	}

	return order.NewAddress(req.Street, req.City, req.Instructions, point)
}

// pointFromRequest builds a geo point from optional payload coordinates.
// Coordinates come as a pair: supplying only one of them is a client error,
// not an omitted point.
func pointFromRequest(latitude, longitude *float64) (*kernel.GeoPoint, error) {
	if latitude == nil && longitude == nil {
		return nil, nil
	}
	if latitude == nil {
		return nil, errs.NewValueIsRequiredError("latitude")
	}
	if longitude == nil {
		return nil, errs.NewValueIsRequiredError("longitude")
	}

	p, err := kernel.NewGeoPoint(*latitude, *longitude)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
