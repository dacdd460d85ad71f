package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/team2/university-room-booking/internal/model"
	"github.com/team2/university-room-booking/internal/repository"
)

// FeatureHandler manages the room feature catalog (admin only).
type FeatureHandler struct {
	Features *repository.FeatureRepo
}

func NewFeatureHandler(f *repository.FeatureRepo) *FeatureHandler {
	return &FeatureHandler{Features: f}
}

func (h *FeatureHandler) List(c echo.Context) error {
	items, err := h.Features.FindAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

func (h *FeatureHandler) Create(c echo.Context) error {
	var req nameReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	ctx := c.Request().Context()
	taken, err := h.Features.ExistsByName(ctx, name, 0)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if taken {
		return c.JSON(http.StatusConflict, echo.Map{"error": "feature name already exists"})
	}

	f := &model.RoomFeature{Name: name}
	if err := h.Features.Create(ctx, f); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *FeatureHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var req nameReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	ctx := c.Request().Context()
	f, err := h.Features.FindByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if f == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "feature not found"})
	}
	taken, err := h.Features.ExistsByName(ctx, name, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if taken {
		return c.JSON(http.StatusConflict, echo.Map{"error": "feature name already exists"})
	}

	f.Name = name
	if err := h.Features.Update(ctx, f); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FeatureHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	ctx := c.Request().Context()
	f, err := h.Features.FindByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if f == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "feature not found"})
	}
	if err := h.Features.Delete(ctx, id); err != nil {
		if err == repository.ErrConflict {
			return c.JSON(http.StatusConflict, echo.Map{"error": "feature is still assigned to rooms"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
