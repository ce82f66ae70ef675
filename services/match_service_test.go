package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LinQu/SOGSCup/brackets"
	"github.com/LinQu/SOGSCup/models"
)

func newMatchServiceUnderTest(t *testing.T) (MatchService, *fakeMatchRepo) {
	t.Helper()
	teamRepo := newFakeTeamRepo(
		&models.Team{Group: "A", Name: "Alpha"},
		&models.Team{Group: "A", Name: "Bravo"},
		&models.Team{Group: "B", Name: "Charlie"},
	)
	matchRepo := newFakeMatchRepo()
	return NewMatchService(matchRepo, teamRepo, brackets.NewHub()), matchRepo
}

// TestCreateSchedule_Valid normalizes the group label and stores the fixture
// as scheduled.
func TestCreateSchedule_Valid(t *testing.T) {
	svc, _ := newMatchServiceUnderTest(t)

	match, err := svc.CreateSchedule(context.Background(), ScheduleInput{
		Group: " a ",
		Team1: "Alpha",
		Team2: "Bravo",
	})

	require.NoError(t, err)
	assert.Equal(t, "A", match.Group)
	assert.Equal(t, models.StatusScheduled, match.Status)
	assert.Nil(t, match.Score1)
	assert.NotZero(t, match.ID)
}

// TestCreateSchedule_Rejections covers the pairing validation rules.
func TestCreateSchedule_Rejections(t *testing.T) {
	svc, _ := newMatchServiceUnderTest(t)
	ctx := context.Background()

	_, err := svc.CreateSchedule(ctx, ScheduleInput{Group: "A", Team1: "Alpha", Team2: "Alpha"})
	assert.ErrorIs(t, err, ErrTeamsIdentical)

	// Charlie plays in group B.
	_, err = svc.CreateSchedule(ctx, ScheduleInput{Group: "A", Team1: "Alpha", Team2: "Charlie"})
	assert.ErrorIs(t, err, ErrTeamNotInGroup)

	_, err = svc.CreateSchedule(ctx, ScheduleInput{Group: "A", Team1: "", Team2: "Bravo"})
	assert.ErrorIs(t, err, ErrValidationFailed)
}

// TestUpdateSchedule_CompletedIsFrozen: finished fixtures cannot be moved.
func TestUpdateSchedule_CompletedIsFrozen(t *testing.T) {
	svc, repo := newMatchServiceUnderTest(t)
	ctx := context.Background()

	match, err := svc.CreateSchedule(ctx, ScheduleInput{Group: "A", Team1: "Alpha", Team2: "Bravo"})
	require.NoError(t, err)
	require.NoError(t, repo.UpdateScore(ctx, match.ID, 21, 15, models.StatusCompleted))

	_, err = svc.UpdateSchedule(ctx, match.ID, ScheduleInput{Group: "A", Team1: "Bravo", Team2: "Alpha"})
	assert.ErrorIs(t, err, ErrMatchNotEditable)
}

// TestSubmitResult_CreatesCompletedMatch: scoring an unscheduled pairing
// creates the match already completed.
func TestSubmitResult_CreatesCompletedMatch(t *testing.T) {
	svc, _ := newMatchServiceUnderTest(t)

	match, err := svc.SubmitResult(context.Background(), "A", ResultInput{
		Team1:  "Alpha",
		Team2:  "Bravo",
		Score1: 21,
		Score2: 18,
	})

	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, match.Status)
	require.NotNil(t, match.Score1)
	assert.Equal(t, 21, *match.Score1)
	assert.Equal(t, 18, *match.Score2)
}

// TestSubmitResult_OverwritesExisting: re-entering a pairing's score updates
// the stored match in place. Last write wins.
func TestSubmitResult_OverwritesExisting(t *testing.T) {
	svc, repo := newMatchServiceUnderTest(t)
	ctx := context.Background()

	first, err := svc.SubmitResult(ctx, "A", ResultInput{Team1: "Alpha", Team2: "Bravo", Score1: 21, Score2: 18})
	require.NoError(t, err)

	second, err := svc.SubmitResult(ctx, "A", ResultInput{Team1: "Alpha", Team2: "Bravo", Score1: 19, Score2: 21})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 19, *second.Score1)
	assert.Len(t, repo.matches, 1)
}

// TestSubmitResult_ScoreBounds enforces the per-game maximum.
func TestSubmitResult_ScoreBounds(t *testing.T) {
	svc, _ := newMatchServiceUnderTest(t)
	ctx := context.Background()

	_, err := svc.SubmitResult(ctx, "A", ResultInput{Team1: "Alpha", Team2: "Bravo", Score1: models.MaxGameScore + 1, Score2: 0})
	assert.ErrorIs(t, err, ErrScoreOutOfRange)

	_, err = svc.SubmitResult(ctx, "A", ResultInput{Team1: "Alpha", Team2: "Bravo", Score1: -1, Score2: 0})
	assert.ErrorIs(t, err, ErrScoreOutOfRange)

	_, err = svc.SubmitResult(ctx, "A", ResultInput{Team1: "Alpha", Team2: "Bravo", Score1: models.MaxGameScore, Score2: 0})
	assert.NoError(t, err)
}

// TestLiveFlow_StartScoreFinish walks the full live lifecycle.
func TestLiveFlow_StartScoreFinish(t *testing.T) {
	svc, _ := newMatchServiceUnderTest(t)
	ctx := context.Background()

	match, err := svc.CreateSchedule(ctx, ScheduleInput{Group: "A", Team1: "Alpha", Team2: "Bravo"})
	require.NoError(t, err)

	started, err := svc.StartMatch(ctx, match.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, started.Status)

	scored, err := svc.UpdateLiveScore(ctx, match.ID, 11, 9)
	require.NoError(t, err)
	assert.Equal(t, 11, *scored.Score1)
	assert.Equal(t, models.StatusInProgress, scored.Status)

	finished, err := svc.FinishMatch(ctx, match.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, finished.Status)
	assert.Equal(t, 11, *finished.Score1)
}

// TestStartMatch_OnlyFromScheduled.
func TestStartMatch_OnlyFromScheduled(t *testing.T) {
	svc, _ := newMatchServiceUnderTest(t)
	ctx := context.Background()

	match, err := svc.CreateSchedule(ctx, ScheduleInput{Group: "A", Team1: "Alpha", Team2: "Bravo"})
	require.NoError(t, err)
	_, err = svc.StartMatch(ctx, match.ID)
	require.NoError(t, err)

	_, err = svc.StartMatch(ctx, match.ID)
	assert.ErrorIs(t, err, ErrMatchNotEditable)
}

// TestUpdateLiveScore_RequiresInProgress: the live score endpoint rejects
// matches that have not been started.
func TestUpdateLiveScore_RequiresInProgress(t *testing.T) {
	svc, _ := newMatchServiceUnderTest(t)
	ctx := context.Background()

	match, err := svc.CreateSchedule(ctx, ScheduleInput{Group: "A", Team1: "Alpha", Team2: "Bravo"})
	require.NoError(t, err)

	_, err = svc.UpdateLiveScore(ctx, match.ID, 5, 3)
	assert.ErrorIs(t, err, ErrMatchNotEditable)
}

// TestFinishMatch_RequiresBothScores: a match cannot complete without a
// recorded score for each side.
func TestFinishMatch_RequiresBothScores(t *testing.T) {
	svc, _ := newMatchServiceUnderTest(t)
	ctx := context.Background()

	match, err := svc.CreateSchedule(ctx, ScheduleInput{Group: "A", Team1: "Alpha", Team2: "Bravo"})
	require.NoError(t, err)
	_, err = svc.StartMatch(ctx, match.ID)
	require.NoError(t, err)

	_, err = svc.FinishMatch(ctx, match.ID)
	assert.ErrorIs(t, err, ErrResultMissing)
}

// TestGetMatch_NotFound maps the repository miss to the shared sentinel.
func TestGetMatch_NotFound(t *testing.T) {
	svc, _ := newMatchServiceUnderTest(t)

	_, err := svc.GetMatch(context.Background(), 404)

	assert.ErrorIs(t, err, ErrNotFound)
}
