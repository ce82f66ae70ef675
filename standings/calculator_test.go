package standings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LinQu/SOGSCup/models"
)

func completedMatch(group, team1, team2 string, s1, s2 int) *models.Match {
	return &models.Match{
		Group:  group,
		Team1:  team1,
		Team2:  team2,
		Score1: &s1,
		Score2: &s2,
		Status: models.StatusCompleted,
	}
}

// TestCalculate_EveryTeamGetsARow checks that registered teams without a
// single played game still appear with a zero record.
func TestCalculate_EveryTeamGetsARow(t *testing.T) {
	teams := []string{"Alpha", "Bravo", "Charlie", "Delta"}

	table, err := Calculate(teams, nil)

	require.NoError(t, err)
	require.Len(t, table, 4)
	for _, row := range table {
		assert.Equal(t, 0, row.GamesPlayed)
		assert.Equal(t, 0, row.Points)
	}
	// Equal records fall back to name order.
	assert.Equal(t, "Alpha", table[0].Team)
	assert.Equal(t, "Delta", table[3].Team)
}

// TestCalculate_WinLossAccounting verifies points, games and differentials
// after a pair of decisive games.
func TestCalculate_WinLossAccounting(t *testing.T) {
	teams := []string{"Alpha", "Bravo", "Charlie", "Delta"}
	matches := []*models.Match{
		completedMatch("A", "Alpha", "Bravo", 21, 15),
		completedMatch("A", "Charlie", "Delta", 18, 21),
	}

	table, err := Calculate(teams, matches)

	require.NoError(t, err)
	byTeam := make(map[string]models.StandingsRow)
	for _, row := range table {
		byTeam[row.Team] = row
	}

	assert.Equal(t, 1, byTeam["Alpha"].Wins)
	assert.Equal(t, PointsPerWin, byTeam["Alpha"].Points)
	assert.Equal(t, 6, byTeam["Alpha"].PointsDiff)
	assert.Equal(t, 1, byTeam["Bravo"].Losses)
	assert.Equal(t, 0, byTeam["Bravo"].Points)
	assert.Equal(t, -6, byTeam["Bravo"].PointsDiff)
	assert.Equal(t, 1, byTeam["Delta"].Wins)
	assert.Equal(t, -3, byTeam["Charlie"].PointsDiff)
}

// TestCalculate_DrawCountsGameButNoPoints: an equal score is a played game
// that moves PF/PA but credits neither side with a win or loss.
func TestCalculate_DrawCountsGameButNoPoints(t *testing.T) {
	teams := []string{"Alpha", "Bravo"}
	matches := []*models.Match{
		completedMatch("A", "Alpha", "Bravo", 20, 20),
	}

	table, err := Calculate(teams, matches)

	require.NoError(t, err)
	for _, row := range table {
		assert.Equal(t, 1, row.GamesPlayed)
		assert.Equal(t, 0, row.Wins)
		assert.Equal(t, 0, row.Losses)
		assert.Equal(t, 0, row.Points)
		assert.Equal(t, 20, row.PointsFor)
		assert.Equal(t, 20, row.PointsAgainst)
	}
}

// TestCalculate_SkipsUnfinishedMatches: scheduled and in-progress matches, and
// completed rows missing a score, contribute nothing to the table.
func TestCalculate_SkipsUnfinishedMatches(t *testing.T) {
	teams := []string{"Alpha", "Bravo"}
	score := 10
	matches := []*models.Match{
		{Group: "A", Team1: "Alpha", Team2: "Bravo", Status: models.StatusScheduled},
		{Group: "A", Team1: "Alpha", Team2: "Bravo", Score1: &score, Score2: &score, Status: models.StatusInProgress},
		{Group: "A", Team1: "Alpha", Team2: "Bravo", Score1: &score, Status: models.StatusCompleted},
	}

	table, err := Calculate(teams, matches)

	require.NoError(t, err)
	for _, row := range table {
		assert.Equal(t, 0, row.GamesPlayed)
	}
}

// TestCalculate_UnknownTeamFailsLoudly: a completed match naming a team
// outside the roster is corrupt data, not something to paper over.
func TestCalculate_UnknownTeamFailsLoudly(t *testing.T) {
	teams := []string{"Alpha", "Bravo"}
	matches := []*models.Match{
		completedMatch("A", "Alpha", "Ghost", 21, 10),
	}

	_, err := Calculate(teams, matches)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownTeam)
	assert.Contains(t, err.Error(), "Ghost")
}

// TestCalculate_Ordering runs a full four-team round robin and checks the
// points-then-differential-then-name ordering.
func TestCalculate_Ordering(t *testing.T) {
	teams := []string{"Alpha", "Bravo", "Charlie", "Delta"}
	matches := []*models.Match{
		// Alpha wins all three.
		completedMatch("A", "Alpha", "Bravo", 21, 12),
		completedMatch("A", "Alpha", "Charlie", 21, 18),
		completedMatch("A", "Alpha", "Delta", 21, 10),
		// The rest win one game each; the differential decides their order:
		// Bravo +1, Delta -7, Charlie -17.
		completedMatch("A", "Bravo", "Charlie", 21, 5),
		completedMatch("A", "Bravo", "Delta", 15, 21),
		completedMatch("A", "Charlie", "Delta", 21, 19),
	}

	table, err := Calculate(teams, matches)

	require.NoError(t, err)
	require.Len(t, table, 4)
	assert.Equal(t, "Alpha", table[0].Team)
	assert.Equal(t, 3*PointsPerWin, table[0].Points)
	assert.Equal(t, "Bravo", table[1].Team)
	assert.Equal(t, "Delta", table[2].Team)
	assert.Equal(t, "Charlie", table[3].Team)
	assert.Equal(t, 1, table[1].PointsDiff)
	assert.Equal(t, -7, table[2].PointsDiff)
	assert.Equal(t, -17, table[3].PointsDiff)
	assert.Equal(t, table[1].Points, table[3].Points)
}
