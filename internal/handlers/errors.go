package handlers

// ErrorResponse is the uniform error body: every failure yields
// {"error": "<message>"} with the corresponding status code.
type ErrorResponse struct {
	Error string `json:"error"`
}
