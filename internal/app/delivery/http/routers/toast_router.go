package routers

import (
	"clinidash-core/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachToastRoutes(router chi.Router, toastController *controllers.ToastController) {
	router.Get("/", toastController.Current)
	router.Post("/", toastController.Show)
	router.Delete("/", toastController.Dismiss)
}
