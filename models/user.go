package models

// User is a person enrolled in subjects. Users are owned by a separate
// subsystem; this service only reads them.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Age   int    `json:"age,omitempty"`
	Email string `json:"email,omitempty"`
}
