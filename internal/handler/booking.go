package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/team2/university-room-booking/internal/booking"
	"github.com/team2/university-room-booking/internal/model"
	"github.com/team2/university-room-booking/internal/queue"
	"github.com/team2/university-room-booking/internal/repository"
	queue_publisher "github.com/team2/university-room-booking/internal/service"
)

// BookingHandler exposes the booking lifecycle over HTTP.  All routes
// require authentication; role guards are applied in the router.
type BookingHandler struct {
	Svc   *booking.Service
	Rooms *repository.RoomRepo
}

func NewBookingHandler(svc *booking.Service, rooms *repository.RoomRepo) *BookingHandler {
	return &BookingHandler{Svc: svc, Rooms: rooms}
}

type createBookingReq struct {
	RoomID             *uint64   `json:"room_id"`
	RoomType           *string   `json:"room_type"`
	RequiredFeatureIDs []uint64  `json:"required_feature_ids"`
	StartTime          time.Time `json:"start_time"`
	EndTime            time.Time `json:"end_time"`
	Purpose            string    `json:"purpose"`
}

type decisionReq struct {
	Reason string `json:"reason"`
}

// Create books a room.  When room_id is absent the engine auto-selects
// the first available room matching the optional type and feature set.
func (h *BookingHandler) Create(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	b, err := h.Svc.Create(c.Request().Context(), actor, booking.CreateRequest{
		RoomID:             req.RoomID,
		RoomType:           req.RoomType,
		RequiredFeatureIDs: req.RequiredFeatureIDs,
		StartTime:          req.StartTime.UTC(),
		EndTime:            req.EndTime.UTC(),
		Purpose:            strings.TrimSpace(req.Purpose),
	})
	if err != nil {
		return writeBookingError(c, err)
	}

	h.publishStatusChange(c.Request().Context(), b, actor.ID, "")
	return c.JSON(http.StatusCreated, b)
}

// Approve moves a pending booking to APPROVED.
func (h *BookingHandler) Approve(c echo.Context) error {
	return h.decide(c, func(ctx context.Context, actor booking.Actor, id uint64, _ string) (*model.Booking, error) {
		return h.Svc.Approve(ctx, actor, id)
	}, false)
}

// Reject moves a pending booking to REJECTED.  A reason is mandatory.
func (h *BookingHandler) Reject(c echo.Context) error {
	return h.decide(c, func(ctx context.Context, actor booking.Actor, id uint64, reason string) (*model.Booking, error) {
		return h.Svc.Reject(ctx, actor, id, reason)
	}, true)
}

// Cancel lets the owner cancel a booking strictly before its start.
func (h *BookingHandler) Cancel(c echo.Context) error {
	return h.decide(c, func(ctx context.Context, actor booking.Actor, id uint64, _ string) (*model.Booking, error) {
		return h.Svc.Cancel(ctx, actor, id)
	}, false)
}

type decisionFn func(ctx context.Context, actor booking.Actor, id uint64, reason string) (*model.Booking, error)

func (h *BookingHandler) decide(c echo.Context, fn decisionFn, needBody bool) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var req decisionReq
	if needBody {
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
		}
	} else {
		_ = c.Bind(&req)
	}

	b, err := fn(c.Request().Context(), actor, id, strings.TrimSpace(req.Reason))
	if err != nil {
		return writeBookingError(c, err)
	}

	h.publishStatusChange(c.Request().Context(), b, actor.ID, strings.TrimSpace(req.Reason))
	return c.JSON(http.StatusOK, b)
}

// ByStatus lists bookings in a given status, newest first.
func (h *BookingHandler) ByStatus(c echo.Context) error {
	status := strings.ToUpper(strings.TrimSpace(c.Param("status")))
	list, err := h.Svc.BookingsByStatus(c.Request().Context(), status)
	if err != nil {
		return writeBookingError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// TopRooms returns the most used rooms of the user named in the path.
// Users may query themselves; admins may query anyone.  A missing or
// non-positive limit falls back to the default of three.
func (h *BookingHandler) TopRooms(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	userID, err := pathID(c, "userId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if userID != actor.ID && actor.Role != model.RoleAdmin {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	limit := 0
	if s := c.QueryParam("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			limit = n
		}
	}
	usage, err := h.Svc.TopRooms(c.Request().Context(), userID, limit)
	if err != nil {
		return writeBookingError(c, err)
	}
	return c.JSON(http.StatusOK, usage)
}

// publishStatusChange fires a broker event for a status transition.
// Failures are ignored; the database write already succeeded.
func (h *BookingHandler) publishStatusChange(ctx context.Context, b *model.Booking, actorID uint64, reason string) {
	roomName := ""
	if room, err := h.Rooms.FindByID(ctx, b.RoomID); err == nil && room != nil {
		roomName = room.Name
	}
	_ = queue_publisher.PublishBookingStatusChanged(ctx, queue.BookingStatusChangedEvent{
		BookingID: b.ID,
		UserID:    b.UserID,
		ActorID:   actorID,
		RoomID:    b.RoomID,
		RoomName:  roomName,
		Status:    b.Status,
		Reason:    reason,
		StartsAt:  b.StartTime.UTC().Format(time.RFC3339),
		EndsAt:    b.EndTime.UTC().Format(time.RFC3339),
		ChangedAt: time.Now().UTC().Format(time.RFC3339),
	})
}
