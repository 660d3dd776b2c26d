package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
)

// Upstream API resources.
const (
	ResourceAuth      = "auth"
	ResourceProfile   = "profile"
	ResourcePatients  = "patients"
	ResourcePlans     = "planes"
	ResourceHistoria  = "historia"
	EndpointLogin     = "auth/login"
	EndpointLogout    = "auth/logout"
	EndpointVerify    = "auth/verify"
	EndpointAssignFmt = "patients/%d/assign-gestor"
)

// User roles as the upstream reports them.
const (
	RolePatient     = "paciente"
	RolePhysician   = "medico"
	RoleCaseManager = "gestor"
	RoleAdmin       = "admin"
)

// Persisted session keys shared across tab instances.
const (
	StorageUserKey        = "clinidash:user"
	StorageProfileKey     = "clinidash:profile"
	SessionChangedChannel = "clinidash:session:changed"
)

// Modal slot names. The set is closed; unknown names are ignored.
const (
	ModalRegistro        = "registro"
	ModalViewPaciente    = "viewPaciente"
	ModalEditPaciente    = "editPaciente"
	ModalAsignarGestor   = "asignarGestor"
	ModalViewPlan        = "viewPlan"
	ModalEditPlan        = "editPlan"
	ModalCrearHistoria   = "crearHistoria"
	ModalEditHistoria    = "editHistoria"
	ModalConfirmarBorrar = "confirmarBorrado"
)

// Toast kinds.
const (
	ToastSuccess = "success"
	ToastError   = "error"
	ToastWarning = "warning"
	ToastInfo    = "info"
)

// Session lifecycle events published to the audit queue.
const (
	SessionEventLogin         = "session.login"
	SessionEventLogout        = "session.logout"
	SessionEventForcedLogout  = "session.forced_logout"
	SessionEventRemoteRefresh = "session.remote_refresh"
)
