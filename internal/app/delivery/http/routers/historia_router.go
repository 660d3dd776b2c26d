package routers

import (
	"clinidash-core/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachHistoriaRoutes(router chi.Router, recordController *controllers.RecordController) {
	router.Get("/", recordController.FindAll)
	router.Post("/", recordController.Create)
	router.Patch("/{record_id}", recordController.Update)
	router.Delete("/{record_id}", recordController.Delete)
}
