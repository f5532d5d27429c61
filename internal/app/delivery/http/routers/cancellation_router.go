package routers

import (
	"time"

	"github.com/go-chi/chi/v5"

	"schedboard-service/internal/app/delivery/http/middlewares"
	"schedboard-service/internal/app/services/core/cancellations"
)

func attachCancellationRoutes(r chi.Router, controller *cancellations.CancellationController) {
	limiter := middlewares.NewRateLimiter(5, time.Second, 30*time.Second)

	r.With(limiter.Limit).Post("/bookings", controller.CancelBooking)
	r.With(limiter.Limit).Post("/availability", controller.CancelAvailability)
}
