package standings

import (
	"errors"
	"fmt"
	"sort"

	"github.com/LinQu/SOGSCup/models"
)

// PointsPerWin is the tournament points awarded for a won game. Losses and
// drawn scores award nothing.
const PointsPerWin = 3

// ErrUnknownTeam reports a completed match whose team is missing from the
// group roster. The store keeps match teams a subset of registered teams, so
// hitting this means the data is broken upstream.
var ErrUnknownTeam = errors.New("match references a team outside the group roster")

// Calculate derives the group table from the registered roster and the
// group's matches. Every registered team gets a row, teams without a single
// completed game included. Only completed matches with both scores recorded
// are aggregated; an equal score counts as a played game and moves PF/PA but
// credits neither a win nor a loss.
//
// Rows are ordered by tournament points, then point differential, then team
// name. The name key exists purely to make equal records deterministic.
func Calculate(teams []string, matches []*models.Match) ([]models.StandingsRow, error) {
	rows := make(map[string]*models.StandingsRow, len(teams))
	for _, name := range teams {
		rows[name] = &models.StandingsRow{Team: name}
	}

	for _, m := range matches {
		if m.Status != models.StatusCompleted || m.Score1 == nil || m.Score2 == nil {
			continue
		}
		r1, ok := rows[m.Team1]
		if !ok {
			return nil, fmt.Errorf("%w: match %d, team %q, group %q", ErrUnknownTeam, m.ID, m.Team1, m.Group)
		}
		r2, ok := rows[m.Team2]
		if !ok {
			return nil, fmt.Errorf("%w: match %d, team %q, group %q", ErrUnknownTeam, m.ID, m.Team2, m.Group)
		}

		s1, s2 := *m.Score1, *m.Score2

		r1.GamesPlayed++
		r2.GamesPlayed++
		r1.PointsFor += s1
		r1.PointsAgainst += s2
		r2.PointsFor += s2
		r2.PointsAgainst += s1

		switch {
		case s1 > s2:
			r1.Wins++
			r2.Losses++
		case s2 > s1:
			r2.Wins++
			r1.Losses++
		}
	}

	table := make([]models.StandingsRow, 0, len(rows))
	for _, r := range rows {
		r.PointsDiff = r.PointsFor - r.PointsAgainst
		r.Points = r.Wins * PointsPerWin
		table = append(table, *r)
	}

	sort.Slice(table, func(i, j int) bool {
		a, b := table[i], table[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.PointsDiff != b.PointsDiff {
			return a.PointsDiff > b.PointsDiff
		}
		return a.Team < b.Team
	})

	return table, nil
}
