package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/team2/university-room-booking/internal/booking"
	"github.com/team2/university-room-booking/internal/config"
	"github.com/team2/university-room-booking/internal/database"
	"github.com/team2/university-room-booking/internal/handler"
	"github.com/team2/university-room-booking/internal/queue"
	"github.com/team2/university-room-booking/internal/repository"
	"github.com/team2/university-room-booking/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; cache and rate limiting disabled")
	}

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	rooms := repository.NewRoomRepo(db)
	buildings := repository.NewBuildingRepo(db)
	departments := repository.NewDepartmentRepo(db)
	features := repository.NewFeatureRepo(db)
	holidays := repository.NewHolidayRepo(db)
	bookings := repository.NewBookingRepo(db)
	history := repository.NewHistoryRepo(db)

	svc := booking.NewService(rooms, bookings, holidays, history)

	h := router.Handlers{
		Auth:         handler.NewAuthHandler(cfg, users, tokens),
		Bookings:     handler.NewBookingHandler(svc, rooms),
		Availability: handler.NewAvailabilityHandler(svc),
		History:      handler.NewHistoryHandler(svc),
		Rooms:        handler.NewRoomHandler(rooms, buildings, features, bookings),
		Buildings:    handler.NewBuildingHandler(buildings, departments),
		Departments:  handler.NewDepartmentHandler(departments),
		Features:     handler.NewFeatureHandler(features),
		Holidays:     handler.NewHolidayHandler(holidays),
	}

	e := echo.New()
	e.HideBanner = true
	router.Register(e, h, cfg, rdb)

	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
