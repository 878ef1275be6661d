package models

// ErrorResponse is the body of every failed HTTP request.
type ErrorResponse struct {
	Message string `json:"message"`
}

// DeleteResponse confirms that a subject was removed.
type DeleteResponse struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}
