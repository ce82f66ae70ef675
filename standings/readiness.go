package standings

import (
	"fmt"

	"github.com/LinQu/SOGSCup/models"
)

// The cup plays round-robin groups of four: three games per team when the
// group is complete. Both thresholds are fixed properties of the format.
const (
	MinTeamsPerGroup = 4
	MinGamesPerTeam  = 3
)

type Readiness struct {
	Ready  bool   `json:"ready"`
	Reason string `json:"reason,omitempty"`
}

// CheckReadiness decides whether a group's table holds enough data to seed
// the knockout bracket. A group qualifies once it has at least four teams and
// every team has played at least three games.
func CheckReadiness(table []models.StandingsRow) Readiness {
	if len(table) < MinTeamsPerGroup {
		return Readiness{
			Reason: fmt.Sprintf("group has %d teams, at least %d required", len(table), MinTeamsPerGroup),
		}
	}
	for _, row := range table {
		if row.GamesPlayed < MinGamesPerTeam {
			return Readiness{
				Reason: fmt.Sprintf("%s has played %d of %d required games", row.Team, row.GamesPlayed, MinGamesPerTeam),
			}
		}
	}
	return Readiness{Ready: true}
}
