package models

import "time"

const (
	RoleAdmin       = "admin"
	RoleScorekeeper = "scorekeeper"
	RoleViewer      = "viewer"
)

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
