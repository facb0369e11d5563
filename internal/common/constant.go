package common

// AuthHeaderName is the HTTP header used to carry the access token on
// outbound requests to protected endpoints.
const AuthHeaderName = "Authorization"

// BearerPrefix precedes the token value inside AuthHeaderName.
const BearerPrefix = "Bearer "
