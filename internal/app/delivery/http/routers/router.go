package routers

import (
	"fmt"
	"time"

	"clinidash-core/internal/app/config"
	"clinidash-core/internal/app/delivery/http/controllers"
	"clinidash-core/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	sessionController *controllers.SessionController,
	patientController *controllers.PatientController,
	planController *controllers.PlanController,
	recordController *controllers.RecordController,
	modalController *controllers.ModalController,
	toastController *controllers.ToastController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logger)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/session", func(r chi.Router) {
				attachSessionRoutes(r, sessionController)
			})

			r.Route("/pacientes", func(r chi.Router) {
				attachPatientRoutes(r, patientController)
			})

			r.Route("/planes", func(r chi.Router) {
				attachPlanRoutes(r, planController)
			})

			r.Route("/historias", func(r chi.Router) {
				attachHistoriaRoutes(r, recordController)
			})

			r.Route("/modales", func(r chi.Router) {
				attachModalRoutes(r, modalController)
			})

			r.Route("/toast", func(r chi.Router) {
				attachToastRoutes(r, toastController)
			})
		})
	})
}
