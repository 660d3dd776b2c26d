package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingInstanceIDKey = "instance_id"
	LoggingUserIDKey     = "user_id"
	LoggingEntityKey     = "entity"
	LoggingEntityIDKey   = "entity_id"
	LoggingModalKey      = "modal"
	LoggingFetchKeyKey   = "fetch_key"
	LoggingDataKey       = "data"
	LoggingResponseKey   = "response"
)
