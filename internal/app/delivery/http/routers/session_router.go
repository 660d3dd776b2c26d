package routers

import (
	"clinidash-core/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachSessionRoutes(router chi.Router, sessionController *controllers.SessionController) {
	router.Post("/login", sessionController.Login)
	router.Post("/logout", sessionController.Logout)
	router.Get("/", sessionController.Current)
	router.Get("/profile", sessionController.Profile)
}
