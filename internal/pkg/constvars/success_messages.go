package constvars

const (
	LoginSuccessMessage      = "Logged in successfully"
	LogoutSuccessMessage     = "Logged out successfully"
	ProfileLoadedMessage     = "Profile loaded successfully"
	PatientCreatedMessage    = "Patient registered successfully"
	PatientUpdatedMessage    = "Patient updated successfully"
	PatientDeletedMessage    = "Patient deleted successfully"
	GestorAssignedMessage    = "Case manager assigned successfully"
	PlanSavedMessage         = "Treatment plan saved successfully"
	PlanDeletedMessage       = "Treatment plan deleted successfully"
	ComplianceUpdatedMessage = "Prescription compliance updated"
	HistoriaSavedMessage     = "Clinical record saved successfully"
	HistoriaDeletedMessage   = "Clinical record deleted successfully"
	ListFetchedMessage       = "List fetched successfully"
	ToastShownMessage        = "Toast shown"
	ToastDismissedMessage    = "Toast dismissed"
	ToastStateMessage        = "Toast state fetched"
	ModalOpenedMessage       = "Modal opened"
	ModalClosedMessage       = "Modal closed"
	ModalStateMessage        = "Modal state fetched"
)
