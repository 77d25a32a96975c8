package models

// Account mirrors the user object the upstream auth service returns from
// register. Only the identifier is load-bearing; it is what the compensating
// deletion targets.
type Account struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
