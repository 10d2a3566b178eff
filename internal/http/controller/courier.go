package controller

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"delivery/internal/usecase/courier"
)

type CourierController struct {
	uc courierUsecase
}

type CourierDto struct {
	CourierId    uint64   `json:"id"`
	CourierType  string   `json:"type"`
	Regions      []int32  `json:"regions"`
	WorkingHours []string `json:"working_hours"`
}

func NewCourierController(uc courierUsecase) CourierController {
	return CourierController{
		uc: uc,
	}
}

// ===================================
// ========== GET /couriers ==========
// ===================================

type CourierGetAllReponse struct {
	Couriers []CourierDto `json:"couriers"`
	Offset   int32        `json:"offset"`
	Limit    int32        `json:"limit"`
}

func (c *CourierController) GetAll(ctx echo.Context) error {

	offset, limit, err := paginationParams(ctx)
	if err != nil {
		return err
	}

	couriers, err := c.uc.PaginatedGetAll(ctx.Request().Context(), offset, limit)
	if err != nil {
		return err
	}

	res := CourierGetAllReponse{
		Couriers: []CourierDto{},
	}
	for _, courier := range *couriers {
		res.Couriers = append(res.Couriers, CourierDto{
			CourierId:    courier.ID,
			CourierType:  string(courier.CourierType),
			Regions:      courier.Regions,
			WorkingHours: courier.WorkingHours,
		})
	}
	res.Offset = offset
	res.Limit = limit

	return ctx.JSON(http.StatusOK, res)
}

// ====================================
// ========== POST /couriers ==========
// ====================================

type CourierCreateRequest struct {
	Couriers []CourierRequestCreateDto `json:"couriers" validate:"required,dive"`
}

type CourierRequestCreateDto struct {
	CourierType  string   `json:"type" validate:"required"`
	Regions      []int32  `json:"regions" validate:"required"`
	WorkingHours []string `json:"working_hours" validate:"required"`
}

type CourierCreateResponse struct {
	Couriers []CourierDto `json:"couriers"`
}

func (c *CourierController) Create(ctx echo.Context) error {

	var req CourierCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}

	if err := ctx.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}

	newCouriers := []courier.CourierToCreateDTO{}
	for _, newCourier := range req.Couriers {

		newCouriers = append(newCouriers, courier.CourierToCreateDTO{
			CourierType:  newCourier.CourierType,
			Regions:      newCourier.Regions,
			WorkingHours: newCourier.WorkingHours,
		})
	}

	savedCouriers, err := c.uc.CreateCouriers(ctx.Request().Context(), newCouriers)
	if err != nil {
		return err
	}

	res := CourierCreateResponse{
		Couriers: []CourierDto{},
	}

	for _, newCourier := range *savedCouriers {
		res.Couriers = append(res.Couriers, CourierDto{
			CourierId:    newCourier.ID,
			CourierType:  string(newCourier.CourierType),
			Regions:      newCourier.Regions,
			WorkingHours: newCourier.WorkingHours,
		})
	}

	return ctx.JSON(http.StatusOK, res)
}

// ================================================
// ========== GET /couriers/{courier_id} ==========
// ================================================

func (c *CourierController) GetById(ctx echo.Context) error {

	courierIdParam := ctx.Param("courier_id")

	courierId, err := strconv.Atoi(courierIdParam)
	if err != nil || courierId <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, ":courier_id must be valid integer")
	}

	courier, err := c.uc.GetById(ctx.Request().Context(), uint64(courierId))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, CourierDto{
		CourierId:    courier.ID,
		CourierType:  string(courier.CourierType),
		Regions:      courier.Regions,
		WorkingHours: courier.WorkingHours,
	})
}

// ==========================================================
// ========== GET /couriers/meta-info/{courier_id} ==========
// ==========================================================

// The meta-info response is the one courier payload with the long field
// names; every other courier endpoint serializes "id" and "type".
type CourierMetaByIDResponse struct {
	CourierId    uint64   `json:"courier_id"`
	CourierType  string   `json:"courier_type"`
	Regions      []int32  `json:"regions"`
	WorkingHours []string `json:"working_hours"`
	Rating       *int32   `json:"rating,omitempty"`
	Earnings     *int32   `json:"earnings,omitempty"`
}

func (c *CourierController) MetaByCourierId(ctx echo.Context) error {

	courierId, err := strconv.Atoi(ctx.Param("courier_id"))
	if err != nil || courierId <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid :courier_id param")
	}

	startDate, err := time.Parse("2006-01-02", ctx.QueryParam("start_date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid :start_date param")
	}

	endDate, err := time.Parse("2006-01-02", ctx.QueryParam("end_date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid :end_date param")
	}

	courier, err := c.uc.GetById(ctx.Request().Context(), uint64(courierId))
	if err != nil {
		return err
	}

	meta, err := c.uc.MetaInInterval(ctx.Request().Context(), courier, startDate, endDate)
	if err != nil {
		return err
	}

	res := CourierMetaByIDResponse{
		CourierId:    courier.ID,
		CourierType:  string(courier.CourierType),
		Regions:      courier.Regions,
		WorkingHours: courier.WorkingHours,
		Rating:       meta.Rating,
		Earnings:     meta.Earnings,
	}

	return ctx.JSON(http.StatusOK, res)
}

// paginationParams parses offset and limit with defaults 0 and 1.
func paginationParams(ctx echo.Context) (offset, limit int32, err error) {

	l := 1
	o := 0

	limitParam := ctx.QueryParam("limit")
	if limitParam != "" {
		l, err = strconv.Atoi(limitParam)
		if err != nil || l < 0 || l > math.MaxInt32 {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid 'limit' param")
		}
	}

	offsetParam := ctx.QueryParam("offset")
	if offsetParam != "" {
		o, err = strconv.Atoi(offsetParam)
		if err != nil || o < 0 || o > math.MaxInt32 {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid 'offset' param")
		}
	}

	return int32(o), int32(l), nil
}
