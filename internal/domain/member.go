package domain

import "time"

const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

type Member struct {
	ID                  uint      `json:"id"`
	Email               string    `json:"email"`
	Password            string    `json:"-"`
	Name                string    `json:"name"`
	Role                string    `json:"role"`
	Balance             int       `json:"balance"`
	JoinedAt            time.Time `json:"joined_at"`
	PreferredCategories []string  `json:"preferred_categories,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (m Member) IsAdmin() bool {
	return m.Role == RoleAdmin
}
