package models

// StandingsRow is a team's aggregated record within its group. It is derived
// from completed matches on every request and never persisted.
type StandingsRow struct {
	Team          string `json:"team"`
	GamesPlayed   int    `json:"games_played"`
	Wins          int    `json:"wins"`
	Losses        int    `json:"losses"`
	PointsFor     int    `json:"points_for"`
	PointsAgainst int    `json:"points_against"`
	PointsDiff    int    `json:"points_diff"`
	Points        int    `json:"points"`
}

// GroupQualifiers names the two teams a group sends to the knockout stage.
type GroupQualifiers struct {
	Group    string `json:"group"`
	Winner   string `json:"winner"`
	RunnerUp string `json:"runner_up"`
}
