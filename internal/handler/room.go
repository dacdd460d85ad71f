package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/team2/university-room-booking/internal/model"
	"github.com/team2/university-room-booking/internal/repository"
)

// RoomHandler manages the room catalog.  Listing is open to any
// authenticated user; writes are admin only.
type RoomHandler struct {
	Rooms     *repository.RoomRepo
	Buildings *repository.BuildingRepo
	Features  *repository.FeatureRepo
	Bookings  *repository.BookingRepo
}

func NewRoomHandler(r *repository.RoomRepo, b *repository.BuildingRepo, f *repository.FeatureRepo, bk *repository.BookingRepo) *RoomHandler {
	return &RoomHandler{Rooms: r, Buildings: b, Features: f, Bookings: bk}
}

type roomReq struct {
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	Capacity   int      `json:"capacity"`
	Available  *bool    `json:"available"`
	BuildingID uint64   `json:"building_id"`
	FeatureIDs []uint64 `json:"feature_ids"`
}

func (h *RoomHandler) List(c echo.Context) error {
	items, err := h.Rooms.FindAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

func (h *RoomHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	room, err := h.Rooms.FindByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if room == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
	}
	return c.JSON(http.StatusOK, room)
}

// validateRoomReq checks the shared invariants for create and update.
// A non-nil return is the response already written.
func (h *RoomHandler) validateRoomReq(c echo.Context, req *roomReq, excludeID uint64) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Type = strings.ToUpper(strings.TrimSpace(req.Type))
	if req.Name == "" || req.BuildingID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and building_id are required"})
	}
	if !model.ValidRoomType(req.Type) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room type"})
	}
	if req.Capacity < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "capacity must be at least 1"})
	}

	ctx := c.Request().Context()
	b, err := h.Buildings.FindByID(ctx, req.BuildingID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if b == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "building does not exist"})
	}
	taken, err := h.Rooms.ExistsByNameInBuilding(ctx, req.Name, req.BuildingID, excludeID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if taken {
		return c.JSON(http.StatusConflict, echo.Map{"error": "room name already exists in this building"})
	}
	if len(req.FeatureIDs) > 0 {
		n, err := h.Features.CountByIDs(ctx, req.FeatureIDs)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
		}
		if n != len(dedupe(req.FeatureIDs)) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown feature id"})
		}
	}
	return nil
}

func (h *RoomHandler) Create(c echo.Context) error {
	var req roomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if resp := h.validateRoomReq(c, &req, 0); resp != nil {
		return resp
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}
	room := &model.Room{
		Name:       req.Name,
		Type:       req.Type,
		Capacity:   req.Capacity,
		Available:  available,
		BuildingID: req.BuildingID,
		FeatureIDs: dedupe(req.FeatureIDs),
	}
	if err := h.Rooms.Create(c.Request().Context(), room); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return c.JSON(http.StatusCreated, room)
}

func (h *RoomHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var req roomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx := c.Request().Context()
	room, err := h.Rooms.FindByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if room == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
	}
	if resp := h.validateRoomReq(c, &req, id); resp != nil {
		return resp
	}

	room.Name = req.Name
	room.Type = req.Type
	room.Capacity = req.Capacity
	if req.Available != nil {
		room.Available = *req.Available
	}
	room.BuildingID = req.BuildingID
	room.FeatureIDs = dedupe(req.FeatureIDs)
	if err := h.Rooms.Update(ctx, room); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, room)
}

func (h *RoomHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	ctx := c.Request().Context()
	room, err := h.Rooms.FindByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if room == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
	}
	booked, err := h.Bookings.ExistsByRoom(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if booked {
		return c.JSON(http.StatusConflict, echo.Map{"error": "room has bookings"})
	}
	if err := h.Rooms.Delete(ctx, id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

func dedupe(ids []uint64) []uint64 {
	seen := make(map[uint64]bool, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
