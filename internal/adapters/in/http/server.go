// Package http exposes the marketplace over a thin echo-based REST surface.
// The acting principal arrives via headers: X-Session-ID identifies the cart
// session, X-User-ID the customer or driver, X-User-Role the declared role.
// Authentication is out of scope; the adapter trusts the headers and the
// domain enforces ownership.
package http

import (
	"errors"
	"net/http"
	"time"

	"mealdash/internal/core/application/usecases/commands"
	"mealdash/internal/core/application/usecases/queries"
	"mealdash/internal/core/domain/model/kernel"
	"mealdash/internal/core/domain/model/principal"
	"mealdash/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	headerSessionID = "X-Session-ID"
	headerUserID    = "X-User-ID"
	headerUserRole  = "X-User-Role"
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	AddToCart          commands.AddToCartCommandHandler
	Checkout           commands.CheckoutCommandHandler
	ClaimOrder         commands.ClaimOrderCommandHandler
	DriverConfirm      commands.DriverConfirmCommandHandler
	CustomerConfirm    commands.CustomerConfirmCommandHandler
	ToggleAvailability commands.ToggleDriverAvailabilityCommandHandler

	ViewCart         queries.ViewCartQueryHandler
	AvailableOrders  queries.AvailableOrdersQueryHandler
	DriverDeliveries queries.DriverDeliveriesQueryHandler
	DriverStats      queries.DriverStatsQueryHandler
	CustomerOrders   queries.CustomerOrdersQueryHandler
	Restaurants      queries.RestaurantsQueryHandler
	RestaurantMenu   queries.RestaurantMenuQueryHandler
}

// Server coordinates between HTTP routes and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates an HTTP server over the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes attaches all marketplace routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/cart/items", s.AddCartItem)
	api.GET("/cart", s.GetCart)
	api.POST("/checkout", s.Checkout)

	api.GET("/orders/available", s.GetAvailableOrders)
	api.POST("/orders/:id/claim", s.ClaimOrder)
	api.POST("/orders/:id/confirm/driver", s.ConfirmByDriver)
	api.POST("/orders/:id/confirm/customer", s.ConfirmByCustomer)

	api.GET("/drivers/:id/deliveries", s.GetDriverDeliveries)
	api.GET("/drivers/:id/stats", s.GetDriverStats)
	api.POST("/drivers/:id/availability", s.ToggleDriverAvailability)

	api.GET("/customers/:id/orders", s.GetCustomerOrders)

	api.GET("/restaurants", s.GetRestaurants)
	api.GET("/restaurants/:id/menu", s.GetRestaurantMenu)

	e.GET("/health", s.Health)
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps application failures onto the REST surface: unknown
// objects are 404, an unresolvable checkout is 409, malformed input is 400.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, commands.ErrEmptyCart):
		return ctx.JSON(http.StatusConflict, errorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func sessionID(ctx echo.Context) string {
	return ctx.Request().Header.Get(headerSessionID)
}

func userID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Request().Header.Get(headerUserID))
}

func userRole(ctx echo.Context) principal.Role {
	return principal.Role(ctx.Request().Header.Get(headerUserRole))
}

func pathID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

type addCartItemRequest struct {
	MenuItemID string `json:"menu_item_id"`
}

// AddCartItem handles POST /api/v1/cart/items.
func (s *Server) AddCartItem(ctx echo.Context) error {
	var req addCartItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	menuItemID, err := kernel.UUIDFromString(req.MenuItemID)
	if err != nil {
		return badRequest(ctx, "invalid menu item id")
	}

	cmd, err := commands.NewAddToCartCommand(sessionID(ctx), menuItemID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.AddToCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type cartLineResponse struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unit_price"`
	Subtotal   string `json:"subtotal"`
}

type cartResponse struct {
	Lines []cartLineResponse `json:"lines"`
	Total string             `json:"total"`
}

// GetCart handles GET /api/v1/cart.
func (s *Server) GetCart(ctx echo.Context) error {
	query, err := queries.NewViewCartQuery(sessionID(ctx))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	view, err := s.handlers.ViewCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	resp := cartResponse{
		Lines: make([]cartLineResponse, 0, len(view.Lines)),
		Total: view.Total.String(),
	}
	for _, line := range view.Lines {
		resp.Lines = append(resp.Lines, cartLineResponse{
			MenuItemID: line.MenuItemID.String(),
			Name:       line.Name,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice.String(),
			Subtotal:   line.Subtotal.String(),
		})
	}

	return ctx.JSON(http.StatusOK, resp)
}

type checkoutResponse struct {
	OrderID    string `json:"order_id"`
	TotalPrice string `json:"total_price"`
}

// Checkout handles POST /api/v1/checkout.
func (s *Server) Checkout(ctx echo.Context) error {
	customerID, err := userID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid user id")
	}

	cmd, err := commands.NewCheckoutCommand(kernel.NewUUID(), sessionID(ctx), customerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	created, err := s.handlers.Checkout.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, checkoutResponse{
		OrderID:    created.ID().String(),
		TotalPrice: created.TotalPrice().String(),
	})
}

type availableOrderResponse struct {
	ID         string `json:"id"`
	TotalPrice string `json:"total_price"`
	CreatedAt  string `json:"created_at"`
}

// GetAvailableOrders handles GET /api/v1/orders/available.
func (s *Server) GetAvailableOrders(ctx echo.Context) error {
	orders, err := s.handlers.AvailableOrders.Handle(ctx.Request().Context(), queries.NewAvailableOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	resp := make([]availableOrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, availableOrderResponse{
			ID:         o.ID.String(),
			TotalPrice: o.TotalPrice.String(),
			CreatedAt:  o.CreatedAt.Format(time.RFC3339),
		})
	}

	return ctx.JSON(http.StatusOK, resp)
}

// ClaimOrder handles POST /api/v1/orders/:id/claim.
// A rejected claim (wrong role, already claimed, lost race) is a silent
// no-op: the client gets 204 either way.
func (s *Server) ClaimOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	driverID, err := userID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid user id")
	}

	cmd, err := commands.NewClaimOrderCommand(orderID, driverID, userRole(ctx))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if _, err = s.handlers.ClaimOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmByDriver handles POST /api/v1/orders/:id/confirm/driver.
func (s *Server) ConfirmByDriver(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	driverID, err := userID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid user id")
	}

	cmd, err := commands.NewDriverConfirmCommand(orderID, driverID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if _, err = s.handlers.DriverConfirm.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmByCustomer handles POST /api/v1/orders/:id/confirm/customer.
func (s *Server) ConfirmByCustomer(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	customerID, err := userID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid user id")
	}

	cmd, err := commands.NewCustomerConfirmCommand(orderID, customerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if _, err = s.handlers.CustomerConfirm.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type deliveryResponse struct {
	ID                string `json:"id"`
	TotalPrice        string `json:"total_price"`
	DriverConfirmed   bool   `json:"driver_confirmed"`
	CustomerConfirmed bool   `json:"customer_confirmed"`
}

// GetDriverDeliveries handles GET /api/v1/drivers/:id/deliveries.
func (s *Server) GetDriverDeliveries(ctx echo.Context) error {
	driverID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid driver id")
	}

	query, err := queries.NewDriverDeliveriesQuery(driverID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	deliveries, err := s.handlers.DriverDeliveries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	resp := make([]deliveryResponse, 0, len(deliveries))
	for _, d := range deliveries {
		resp = append(resp, deliveryResponse{
			ID:                d.ID.String(),
			TotalPrice:        d.TotalPrice.String(),
			DriverConfirmed:   d.DriverConfirmed,
			CustomerConfirmed: d.CustomerConfirmed,
		})
	}

	return ctx.JSON(http.StatusOK, resp)
}

type driverStatsResponse struct {
	CompletedCount int    `json:"completed_count"`
	Earnings       string `json:"earnings"`
}

// GetDriverStats handles GET /api/v1/drivers/:id/stats.
func (s *Server) GetDriverStats(ctx echo.Context) error {
	driverID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid driver id")
	}

	query, err := queries.NewDriverStatsQuery(driverID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	stats, err := s.handlers.DriverStats.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, driverStatsResponse{
		CompletedCount: stats.CompletedCount,
		Earnings:       stats.Earnings.String(),
	})
}

type availabilityResponse struct {
	IsAvailable bool `json:"is_available"`
}

// ToggleDriverAvailability handles POST /api/v1/drivers/:id/availability.
func (s *Server) ToggleDriverAvailability(ctx echo.Context) error {
	driverID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid driver id")
	}

	cmd, err := commands.NewToggleDriverAvailabilityCommand(driverID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	isAvailable, err := s.handlers.ToggleAvailability.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, availabilityResponse{IsAvailable: isAvailable})
}

type customerOrderResponse struct {
	ID                string `json:"id"`
	Status            string `json:"status"`
	TotalPrice        string `json:"total_price"`
	CustomerConfirmed bool   `json:"customer_confirmed"`
}

type customerOrdersResponse struct {
	Active []customerOrderResponse `json:"active"`
	Past   []customerOrderResponse `json:"past"`
}

// GetCustomerOrders handles GET /api/v1/customers/:id/orders.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	customerID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid customer id")
	}

	query, err := queries.NewCustomerOrdersQuery(customerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.handlers.CustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	resp := customerOrdersResponse{
		Active: make([]customerOrderResponse, 0, len(result.Active)),
		Past:   make([]customerOrderResponse, 0, len(result.Past)),
	}
	for _, o := range result.Active {
		resp.Active = append(resp.Active, toCustomerOrderResponse(o))
	}
	for _, o := range result.Past {
		resp.Past = append(resp.Past, toCustomerOrderResponse(o))
	}

	return ctx.JSON(http.StatusOK, resp)
}

func toCustomerOrderResponse(o queries.CustomerOrder) customerOrderResponse {
	return customerOrderResponse{
		ID:                o.ID.String(),
		Status:            o.Status.String(),
		TotalPrice:        o.TotalPrice.String(),
		CustomerConfirmed: o.CustomerConfirmed,
	}
}

type restaurantResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// GetRestaurants handles GET /api/v1/restaurants.
func (s *Server) GetRestaurants(ctx echo.Context) error {
	restaurants, err := s.handlers.Restaurants.Handle(ctx.Request().Context(), queries.NewRestaurantsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	resp := make([]restaurantResponse, 0, len(restaurants))
	for _, r := range restaurants {
		resp = append(resp, restaurantResponse{ID: r.ID.String(), Name: r.Name})
	}

	return ctx.JSON(http.StatusOK, resp)
}

type menuItemResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

type restaurantMenuResponse struct {
	ID    string             `json:"id"`
	Name  string             `json:"name"`
	Items []menuItemResponse `json:"items"`
}

// GetRestaurantMenu handles GET /api/v1/restaurants/:id/menu.
func (s *Server) GetRestaurantMenu(ctx echo.Context) error {
	restaurantID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid restaurant id")
	}

	query, err := queries.NewRestaurantMenuQuery(restaurantID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.handlers.RestaurantMenu.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	resp := restaurantMenuResponse{
		ID:    result.ID.String(),
		Name:  result.Name,
		Items: make([]menuItemResponse, 0, len(result.Items)),
	}
	for _, item := range result.Items {
		resp.Items = append(resp.Items, menuItemResponse{
			ID:    item.ID.String(),
			Name:  item.Name,
			Price: item.Price.String(),
		})
	}

	return ctx.JSON(http.StatusOK, resp)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
