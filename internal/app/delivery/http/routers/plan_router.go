package routers

import (
	"clinidash-core/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachPlanRoutes(router chi.Router, planController *controllers.PlanController) {
	router.Get("/", planController.FindAll)
	router.Post("/", planController.Create)
	router.Put("/{plan_id}", planController.Update)
	router.Delete("/{plan_id}", planController.Delete)
	router.Patch("/{plan_id}/prescripciones/{prescription_id}", planController.UpdateCompliance)
}
