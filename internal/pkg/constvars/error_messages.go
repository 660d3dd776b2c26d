package constvars

// Client-facing messages. These are the exact strings the rendering layer
// shows in toasts, so keep them stable.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process your request, please check your input"
	ErrClientInvalidUsernameOrPassword     = "Invalid username or password"
	ErrClientNotLoggedIn                   = "Your session has expired, please log in again"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientServerLongRespond             = "The server took too long to respond"
	ErrClientServerUnreachable             = "Could not reach the server, please check your connection"

	ErrClientFetchPatients  = "Could not load the patient list"
	ErrClientCreatePatient  = "Could not register the patient"
	ErrClientUpdatePatient  = "Could not update the patient"
	ErrClientDeletePatient  = "Could not delete the patient"
	ErrClientAssignGestor   = "Could not assign the case manager"
	ErrClientFetchPlans     = "Could not load the treatment plans"
	ErrClientSavePlan       = "Could not save the treatment plan"
	ErrClientDeletePlan     = "Could not delete the treatment plan"
	ErrClientCompliance     = "Could not update the prescription compliance"
	ErrClientFetchHistorias = "Could not load the clinical records"
	ErrClientSaveHistoria   = "Could not save the clinical record"
	ErrClientDeleteHistoria = "Could not delete the clinical record"
)

// Developer messages, logged but never surfaced to the client.
const (
	ErrDevValidationFailed       = "Request validation failed"
	ErrDevInvalidCredentials     = "Credentials are empty or rejected by the upstream"
	ErrDevNoActiveSession        = "No active session and no explicit user id supplied"
	ErrDevSessionIdentityDiverge = "Persisted profile identity diverges from user identity"
	ErrDevUnauthorizedResponse   = "Upstream returned 401, session invalidated"
	ErrDevRequestAborted         = "Request canceled by caller signal"
	ErrDevCreateHTTPRequest      = "Failed to build the HTTP request"
	ErrDevSendHTTPRequest        = "Failed to send the HTTP request"
	ErrDevDecodeResponse         = "Failed to decode the upstream response"
	ErrDevUpstreamRejected       = "Upstream rejected the request"
	ErrDevCannotParseJSON        = "Failed to parse JSON payload"
	ErrDevCannotMarshalJSON      = "Failed to marshal value to JSON"
	ErrDevServerProcess          = "Unhandled failure while processing the request"
	ErrDevServerDeadlineExceeded = "Deadline exceeded while waiting for the upstream"

	ErrDevRedisGetData       = "Failed to get data from Redis"
	ErrDevRedisSetData       = "Failed to set data to Redis"
	ErrDevRedisDeleteData    = "Failed to delete data from Redis"
	ErrDevRedisPublish       = "Failed to publish to the session channel"
	ErrDevRabbitMQPublish    = "Failed to publish the session event"
	ErrDevUnknownModalSlot   = "Unknown modal slot name"
	ErrDevProfileFetchFailed = "Profile fetch failed, keeping minimal profile"
)
