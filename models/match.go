package models

import "time"

type MatchStatus string

const (
	StatusScheduled  MatchStatus = "scheduled"
	StatusInProgress MatchStatus = "in_progress"
	StatusCompleted  MatchStatus = "completed"
)

// MaxGameScore is the per-game point cap enforced on score entry.
const MaxGameScore = 30

type Match struct {
	ID        int         `json:"id" db:"id"`
	Group     string      `json:"group" db:"grup"`
	Team1     string      `json:"team1" db:"team1"`
	Team2     string      `json:"team2" db:"team2"`
	Score1    *int        `json:"score1,omitempty" db:"score1"`
	Score2    *int        `json:"score2,omitempty" db:"score2"`
	Status    MatchStatus `json:"status" db:"status"`
	UpdatedAt time.Time   `json:"updated_at" db:"updated_at"`
}
