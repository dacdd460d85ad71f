package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/team2/university-room-booking/internal/model"
	"github.com/team2/university-room-booking/internal/repository"
)

// HolidayHandler manages the holiday calendar (admin only for writes).
type HolidayHandler struct {
	Holidays *repository.HolidayRepo
}

func NewHolidayHandler(h *repository.HolidayRepo) *HolidayHandler {
	return &HolidayHandler{Holidays: h}
}

type holidayReq struct {
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

func (h *HolidayHandler) List(c echo.Context) error {
	items, err := h.Holidays.FindAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

func (h *HolidayHandler) Create(c echo.Context) error {
	var req holidayReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	if !req.EndDate.After(req.StartDate) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "end_date must be after start_date"})
	}

	ctx := c.Request().Context()
	existing, err := h.Holidays.FindByName(ctx, name)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if existing != nil {
		return c.JSON(http.StatusConflict, echo.Map{"error": "holiday already exists"})
	}

	hol := &model.Holiday{Name: name, StartDate: req.StartDate.UTC(), EndDate: req.EndDate.UTC()}
	if err := h.Holidays.Create(ctx, hol); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return c.JSON(http.StatusCreated, hol)
}

func (h *HolidayHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var req holidayReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	if !req.EndDate.After(req.StartDate) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "end_date must be after start_date"})
	}

	ctx := c.Request().Context()
	hol, err := h.Holidays.FindByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if hol == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "holiday not found"})
	}

	hol.Name = name
	hol.StartDate = req.StartDate.UTC()
	hol.EndDate = req.EndDate.UTC()
	if err := h.Holidays.Update(ctx, hol); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, hol)
}

// DeleteByName removes a holiday addressed by its name.
func (h *HolidayHandler) DeleteByName(c echo.Context) error {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	removed, err := h.Holidays.DeleteByName(c.Request().Context(), name)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	if !removed {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "holiday not found"})
	}
	return c.NoContent(http.StatusNoContent)
}
