package models

import "time"

type Team struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"nama_tim"`
	Group     string    `json:"group" db:"grup"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
