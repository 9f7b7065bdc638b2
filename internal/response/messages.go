package response

import "net/http"

// Message returns the stable, documented message for a failure status.
// Clients match on these strings, so they must not change casually.
func Message(statusCode int) string {
	switch statusCode {
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusNotFound:
		return "resources not found"
	case http.StatusMethodNotAllowed:
		return "method not allowed"
	case http.StatusUnprocessableEntity:
		return "unprocessable"
	case http.StatusTooManyRequests:
		return "too many requests"
	case http.StatusInternalServerError:
		return "internal server error"
	default:
		return "unexpected error"
	}
}
