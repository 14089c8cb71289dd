package constants

const (
	ContentTypeJSON     = "application/json"
	ContentTypeHeader   = "Content-Type"
	AuthorizationHeader = "Authorization"
	AuthSchemeBearer    = "Bearer"
)
