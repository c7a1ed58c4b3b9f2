package v1

import (
	"fmt"
	"strings"
)

// User is a registered customer.
type User struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	JoinDate Timestamp `json:"join_date"`

	// Status is carried for display ("active", "suspended").
	Status string `json:"status,omitempty"`
}

// Validate checks a user strictly before it is stored.
func (u *User) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(u.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if !strings.Contains(u.Email, "@") {
		return fmt.Errorf("email is invalid")
	}
	if !u.JoinDate.Valid {
		return fmt.Errorf("join_date is required")
	}
	return nil
}
