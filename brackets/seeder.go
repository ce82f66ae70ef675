package brackets

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/LinQu/SOGSCup/models"
)

var (
	ErrUnsupportedGroupCount = errors.New("no crossed seeding template for this group count")
	ErrMissingQualifier      = errors.New("group qualifiers incomplete")
)

// slotRef addresses one qualifier within a label order: the winner or
// runner-up of the order's i-th group.
type slotRef struct {
	group    int
	runnerUp bool
}

// crossedTemplates maps group count to the slot layout of the first knockout
// round. The layout crosses winners against another group's runner-up and
// keeps a group's two qualifiers in opposite halves of the bracket, so group
// mates cannot meet before the semifinal. Only the four-group cup format is
// defined; other counts are rejected.
var crossedTemplates = map[int][]slotRef{
	4: {
		{group: 0}, {group: 1, runnerUp: true},
		{group: 2}, {group: 3, runnerUp: true},
		{group: 1}, {group: 0, runnerUp: true},
		{group: 3}, {group: 2, runnerUp: true},
	},
}

// Seed builds the deterministic default draw, taking group labels in
// ascending order. With groups A-D that yields:
// (A1 vs B2), (C1 vs D2), (B1 vs A2), (D1 vs C2).
func Seed(qualifiers map[string]models.GroupQualifiers) (*models.BracketDraw, error) {
	return seedWithOrder(qualifiers, sortedLabels(qualifiers))
}

// Shuffle permutes the mapping of group labels to template positions and
// re-applies the crossed layout. The winner/runner-up roles never move, so
// every reshuffled draw still satisfies the crossing invariant.
func Shuffle(qualifiers map[string]models.GroupQualifiers, rng *rand.Rand) (*models.BracketDraw, error) {
	order := sortedLabels(qualifiers)
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	return seedWithOrder(qualifiers, order)
}

func sortedLabels(qualifiers map[string]models.GroupQualifiers) []string {
	labels := make([]string, 0, len(qualifiers))
	for label := range qualifiers {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

func seedWithOrder(qualifiers map[string]models.GroupQualifiers, order []string) (*models.BracketDraw, error) {
	template, ok := crossedTemplates[len(order)]
	if !ok {
		return nil, fmt.Errorf("%w: got %d groups", ErrUnsupportedGroupCount, len(order))
	}

	draw := &models.BracketDraw{GeneratedAt: time.Now()}
	for i, ref := range template {
		label := order[ref.group]
		q, ok := qualifiers[label]
		if !ok || q.Winner == "" || q.RunnerUp == "" {
			return nil, fmt.Errorf("%w: group %s", ErrMissingQualifier, label)
		}
		if ref.runnerUp {
			draw.Slots[i] = q.RunnerUp
		} else {
			draw.Slots[i] = q.Winner
		}
	}
	return draw, nil
}
