package routers

import (
	"github.com/go-chi/chi/v5"

	"schedboard-service/internal/app/services/core/weekdata"
)

func attachGridRoutes(r chi.Router, controller *weekdata.WeekDataController) {
	r.Get("/week", controller.GetWeekGrid)
	r.Get("/slot/events", controller.GetSlotEvents)
}
