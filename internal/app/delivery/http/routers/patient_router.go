package routers

import (
	"clinidash-core/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, patientController *controllers.PatientController) {
	router.Get("/", patientController.FindAll)
	router.Post("/", patientController.Create)
	router.Put("/{patient_id}", patientController.Update)
	router.Delete("/{patient_id}", patientController.Delete)
	router.Post("/{patient_id}/asignar-gestor", patientController.AssignGestor)
}
