package routers

import (
	"clinidash-core/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachModalRoutes(router chi.Router, modalController *controllers.ModalController) {
	router.Get("/", modalController.Names)
	router.Get("/{name}", modalController.State)
	router.Post("/{name}/abrir", modalController.Open)
	router.Post("/{name}/cerrar", modalController.Close)
}
