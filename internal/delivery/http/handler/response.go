package handler

// ErrorResponse is the JSON body returned on request-level failures.
type ErrorResponse struct {
	Error string `json:"error"`
}
