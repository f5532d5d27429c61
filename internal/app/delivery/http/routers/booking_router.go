package routers

import (
	"time"

	"github.com/go-chi/chi/v5"

	"schedboard-service/internal/app/delivery/http/middlewares"
	"schedboard-service/internal/app/services/core/bookings"
	"schedboard-service/internal/pkg/constvars"
)

func attachBookingRoutes(r chi.Router, controller *bookings.BookingController) {
	// Submissions reach the upstream backend; throttle them harder than
	// the read endpoints.
	submitLimiter := middlewares.NewRateLimiter(5, time.Second, 30*time.Second)

	r.Post("/drafts", controller.CreateDraft)
	r.Route("/drafts/{"+constvars.URLParamDraftID+"}", func(r chi.Router) {
		r.Get("/", controller.GetDraft)
		r.Post("/entries", controller.AddScheduleEntry)
		r.Delete("/entries", controller.RemoveScheduleEntry)
		r.Post("/students", controller.AddStudent)
		r.Delete("/students/{"+constvars.URLParamJetLearnerID+"}", controller.RemoveStudent)
		r.Put("/attendees", controller.SetAttendees)
		r.Put("/options", controller.SetPaidOptions)
		r.With(submitLimiter.Limit).Post("/submit", controller.Submit)
	})
}
