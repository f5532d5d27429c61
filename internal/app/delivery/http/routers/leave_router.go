package routers

import (
	"time"

	"github.com/go-chi/chi/v5"

	"schedboard-service/internal/app/delivery/http/middlewares"
	"schedboard-service/internal/app/services/core/leaves"
)

func attachLeaveRoutes(r chi.Router, controller *leaves.LeaveController) {
	limiter := middlewares.NewRateLimiter(5, time.Second, 30*time.Second)

	r.With(limiter.Limit).Post("/", controller.ApplyLeave)
}
