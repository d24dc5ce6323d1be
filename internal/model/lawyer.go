package model

import "time"

// Lawyer is a directory entry for an attorney that cases can be assigned to.
// Cases reference lawyers by ID only; there is no back-pointer.
type Lawyer struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	BarNumber string    `json:"bar_number,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
