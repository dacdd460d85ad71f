package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/team2/university-room-booking/internal/model"
	"github.com/team2/university-room-booking/internal/repository"
)

// BuildingHandler manages the building catalog (admin only).
type BuildingHandler struct {
	Buildings   *repository.BuildingRepo
	Departments *repository.DepartmentRepo
}

func NewBuildingHandler(b *repository.BuildingRepo, d *repository.DepartmentRepo) *BuildingHandler {
	return &BuildingHandler{Buildings: b, Departments: d}
}

type buildingReq struct {
	Name         string `json:"name"`
	DepartmentID uint64 `json:"department_id"`
}

func (h *BuildingHandler) List(c echo.Context) error {
	items, err := h.Buildings.FindAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

func (h *BuildingHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	b, err := h.Buildings.FindByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if b == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "building not found"})
	}
	return c.JSON(http.StatusOK, b)
}

func (h *BuildingHandler) Create(c echo.Context) error {
	var req buildingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	name := strings.TrimSpace(req.Name)
	if name == "" || req.DepartmentID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and department_id are required"})
	}

	ctx := c.Request().Context()
	dep, err := h.Departments.FindByID(ctx, req.DepartmentID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if dep == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "department does not exist"})
	}
	taken, err := h.Buildings.ExistsByName(ctx, name, 0)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if taken {
		return c.JSON(http.StatusConflict, echo.Map{"error": "building name already exists"})
	}

	b := &model.Building{Name: name, DepartmentID: req.DepartmentID}
	if err := h.Buildings.Create(ctx, b); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *BuildingHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var req buildingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	name := strings.TrimSpace(req.Name)
	if name == "" || req.DepartmentID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and department_id are required"})
	}

	ctx := c.Request().Context()
	b, err := h.Buildings.FindByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if b == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "building not found"})
	}
	dep, err := h.Departments.FindByID(ctx, req.DepartmentID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if dep == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "department does not exist"})
	}
	taken, err := h.Buildings.ExistsByName(ctx, name, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if taken {
		return c.JSON(http.StatusConflict, echo.Map{"error": "building name already exists"})
	}

	b.Name = name
	b.DepartmentID = req.DepartmentID
	if err := h.Buildings.Update(ctx, b); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, b)
}

func (h *BuildingHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	ctx := c.Request().Context()
	b, err := h.Buildings.FindByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if b == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "building not found"})
	}
	if err := h.Buildings.Delete(ctx, id); err != nil {
		if err == repository.ErrConflict {
			return c.JSON(http.StatusConflict, echo.Map{"error": "building still has rooms"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
