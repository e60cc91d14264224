package res

// ErrorResponse is the uniform error body; Message is shown to the user
// verbatim, Errors carries per-field validation detail when present.
type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}
