package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"delivery/internal/usecase/order"
)

type OrderController struct {
	uc orderUsecase
}

type OrderDto struct {
	ID            uint64     `json:"order_id"`
	Weight        float64    `json:"weight"`
	Regions       int32      `json:"regions"`
	DeliveryHours []string   `json:"delivery_hours"`
	Cost          uint32     `json:"cost"`
	CompletedTime *time.Time `json:"completed_time"`
}

func NewOrderController(uc orderUsecase) OrderController {
	return OrderController{
		uc: uc,
	}
}

// ===================================
// ========== GET /orders ============
// ===================================

func (c *OrderController) GetAll(ctx echo.Context) error {

	offset, limit, err := paginationParams(ctx)
	if err != nil {
		return err
	}

	orders, err := c.uc.PaginatedGetAll(ctx.Request().Context(), offset, limit)
	if err != nil {
		return err
	}

	res := []OrderDto{}

	for _, order := range *orders {
		res = append(res, OrderDto{
			ID:            order.ID,
			Weight:        order.Weight,
			Regions:       order.Regions,
			DeliveryHours: order.DeliveryHours,
			Cost:          order.Cost,
			CompletedTime: order.CompletedTime,
		})
	}

	return ctx.JSON(http.StatusOK, res)
}

// ====================================
// ========== POST /orders ============
// ====================================

type OrderCreateRequest struct {
	Orders []OrderRequestCreateDto `json:"orders" validate:"required,dive"`
}

type OrderRequestCreateDto struct {
	Weight        float64  `json:"weight" validate:"required,min=0"`
	Regions       int32    `json:"regions" validate:"required,max=2147483647"`
	DeliveryHours []string `json:"delivery_hours" validate:"required"`
	Cost          uint32   `json:"cost" validate:"required,min=0,max=2147483647"`
}

func (c *OrderController) Create(ctx echo.Context) error {

	var req OrderCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}

	if err := ctx.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}

	newOrders := []order.OrderToCreateDTO{}
	for _, newOrder := range req.Orders {

		newOrders = append(newOrders, order.OrderToCreateDTO{
			Weight:        newOrder.Weight,
			Regions:       newOrder.Regions,
			DeliveryHours: newOrder.DeliveryHours,
			Cost:          newOrder.Cost,
		})
	}

	savedOrders, err := c.uc.CreateOrders(ctx.Request().Context(), newOrders)
	if err != nil {
		return err
	}

	res := []OrderDto{}
	for _, newOrder := range *savedOrders {
		res = append(res, OrderDto{
			ID:            newOrder.ID,
			Weight:        newOrder.Weight,
			Regions:       newOrder.Regions,
			DeliveryHours: newOrder.DeliveryHours,
			Cost:          newOrder.Cost,
		})
	}

	return ctx.JSON(http.StatusOK, res)
}

// =============================================
// ========== GET /orders/{order_id} ===========
// =============================================

func (c *OrderController) GetById(ctx echo.Context) error {

	orderIdParam := ctx.Param("order_id")

	orderId, err := strconv.Atoi(orderIdParam)
	if err != nil || orderId <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, ":order_id must be valid int64")
	}

	order, err := c.uc.GetById(ctx.Request().Context(), uint64(orderId))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, OrderDto{
		ID:            order.ID,
		Weight:        order.Weight,
		Regions:       order.Regions,
		DeliveryHours: order.DeliveryHours,
		Cost:          order.Cost,
		CompletedTime: order.CompletedTime,
	})
}

// =============================================
// ========== POST /orders/complete ============
// =============================================

type OrderCompleteRequest struct {
	Info []OrderCompleteItem `json:"complete_info" validate:"required,dive"`
}

type OrderCompleteItem struct {
	CourierId    int64     `json:"courier_id" validate:"min=0,max=9223372036854775807"`
	OrderId      int64     `json:"order_id" validate:"min=0,max=9223372036854775807"`
	CompleteTime time.Time `json:"complete_time" validate:"required"`
}

func (c *OrderController) Complete(ctx echo.Context) error {

	var req OrderCompleteRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}

	if err := ctx.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}

	toComplete := []order.OrderToCompleteDTO{}
	for _, i := range req.Info {
		toComplete = append(toComplete, order.OrderToCompleteDTO{
			CourierId:    i.CourierId,
			OrderId:      i.OrderId,
			CompleteTime: i.CompleteTime,
		})
	}

	orders, err := c.uc.Complete(ctx.Request().Context(), toComplete)
	if err != nil {
		return err
	}

	res := []OrderDto{}
	if orders != nil {
		for _, o := range *orders {
			res = append(res, OrderDto{
				ID:            o.ID,
				Weight:        o.Weight,
				Regions:       o.Regions,
				DeliveryHours: o.DeliveryHours,
				Cost:          o.Cost,
				CompletedTime: o.CompletedTime,
			})
		}
	}

	return ctx.JSON(http.StatusOK, res)
}
