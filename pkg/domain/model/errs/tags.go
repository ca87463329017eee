package errs

import "github.com/m-mizutani/goerr/v2"

var (
	// Client errors (4xx)
	TagNotFound       = goerr.NewTag("not_found")       // 404
	TagInvalidRequest = goerr.NewTag("invalid_request") // 400
	TagUnauthorized   = goerr.NewTag("unauthorized")    // 401
	TagForbidden      = goerr.NewTag("forbidden")       // 403

	// External service errors
	TagSlackError = goerr.NewTag("slack_error")
	TagAIError    = goerr.NewTag("ai_error")

	// Malformed output from the AI endpoint
	TagInvalidAIResponse = goerr.NewTag("invalid_ai_response")
)
