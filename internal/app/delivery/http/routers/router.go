package routers

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"schedboard-service/internal/app/config"
	"schedboard-service/internal/app/delivery/http/middlewares"
	"schedboard-service/internal/app/services/core/bookings"
	"schedboard-service/internal/app/services/core/cancellations"
	"schedboard-service/internal/app/services/core/leaves"
	"schedboard-service/internal/app/services/core/weekdata"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	weekDataController *weekdata.WeekDataController,
	bookingController *bookings.BookingController,
	cancellationController *cancellations.CancellationController,
	leaveController *leaves.LeaveController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/grid", func(r chi.Router) {
			attachGridRoutes(r, weekDataController)
		})

		r.Route("/timezones", func(r chi.Router) {
			r.Get("/", weekDataController.GetTimezones)
		})

		r.Route("/operations", func(r chi.Router) {
			r.Get("/status", weekDataController.GetOperationStatuses)
		})

		r.Route("/bookings", func(r chi.Router) {
			attachBookingRoutes(r, bookingController)
		})

		r.Route("/cancellations", func(r chi.Router) {
			attachCancellationRoutes(r, cancellationController)
		})

		r.Route("/leaves", func(r chi.Router) {
			attachLeaveRoutes(r, leaveController)
		})
	})
}
