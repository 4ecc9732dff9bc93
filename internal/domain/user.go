package domain

import "time"

const RoleAdmin = "ADMIN"

type User struct {
	ID           string
	Email        string
	DisplayName  string
	PasswordHash string
	Roles        []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
