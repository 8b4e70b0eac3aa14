package handler

// ErrorResponse is the envelope of every 4xx/5xx body.
type ErrorResponse struct {
	Error      string      `json:"error"`
	Violations []Violation `json:"violations,omitempty"`
}

type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
