package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/team2/university-room-booking/internal/model"
	"github.com/team2/university-room-booking/internal/repository"
)

// DepartmentHandler manages the department catalog (admin only).
type DepartmentHandler struct {
	Departments *repository.DepartmentRepo
}

func NewDepartmentHandler(d *repository.DepartmentRepo) *DepartmentHandler {
	return &DepartmentHandler{Departments: d}
}

type nameReq struct {
	Name string `json:"name"`
}

func (h *DepartmentHandler) List(c echo.Context) error {
	items, err := h.Departments.FindAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

func (h *DepartmentHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	d, err := h.Departments.FindByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if d == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "department not found"})
	}
	return c.JSON(http.StatusOK, d)
}

func (h *DepartmentHandler) Create(c echo.Context) error {
	var req nameReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	ctx := c.Request().Context()
	taken, err := h.Departments.ExistsByName(ctx, name, 0)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if taken {
		return c.JSON(http.StatusConflict, echo.Map{"error": "department name already exists"})
	}

	d := &model.Department{Name: name}
	if err := h.Departments.Create(ctx, d); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return c.JSON(http.StatusCreated, d)
}

func (h *DepartmentHandler) Update(c echo.Context) error {
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
	d, err := h.Departments.FindByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if d == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "department not found"})
	}
	taken, err := h.Departments.ExistsByName(ctx, name, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if taken {
		return c.JSON(http.StatusConflict, echo.Map{"error": "department name already exists"})
	}

	d.Name = name
	if err := h.Departments.Update(ctx, d); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, d)
}

func (h *DepartmentHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	ctx := c.Request().Context()
	d, err := h.Departments.FindByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if d == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "department not found"})
	}
	if err := h.Departments.Delete(ctx, id); err != nil {
		if err == repository.ErrConflict {
			return c.JSON(http.StatusConflict, echo.Map{"error": "department still has buildings"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
