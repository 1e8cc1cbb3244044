package roster

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mddrc-backend/internal/models"
)

func participants(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("p%02d", i)
	}
	return ids
}

func assign(roles ...string) []models.TrainerAssignment {
	out := make([]models.TrainerAssignment, len(roles))
	for i, r := range roles {
		out[i] = models.TrainerAssignment{TrainerID: fmt.Sprintf("t%d", i), Role: r}
	}
	return out
}

func counts(shares []Share) []int {
	out := make([]int, len(shares))
	for i, s := range shares {
		out[i] = s.Count
	}
	return out
}

func TestDistribute(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		roles  []string
		counts []int
		starts []int
	}{
		{"even split ignores roles", 12, []string{"chief", "regular", "regular"}, []int{4, 4, 4}, []int{0, 4, 8}},
		{"chief first gets floor", 10, []string{"chief", "regular", "regular"}, []int{3, 4, 3}, []int{0, 3, 7}},
		{"chief listed last still takes front range", 10, []string{"regular", "regular", "chief"}, []int{4, 3, 3}, []int{3, 7, 0}},
		{"no chiefs spreads remainder", 7, []string{"regular", "regular", "regular"}, []int{3, 2, 2}, []int{0, 3, 5}},
		{"two chiefs", 11, []string{"chief", "chief", "regular"}, []int{3, 3, 5}, []int{0, 3, 6}},
		{"fewer participants than trainers", 2, []string{"chief", "regular", "regular"}, []int{0, 1, 1}, []int{0, 0, 1}},
		{"single trainer", 5, []string{"chief"}, []int{5}, []int{0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ids := participants(tc.n)
			shares := Distribute(ids, assign(tc.roles...))
			require.Len(t, shares, len(tc.roles))
			assert.Equal(t, tc.counts, counts(shares))
			for i, s := range shares {
				assert.Equal(t, tc.starts[i], s.Start, "start of %s", s.TrainerID)
				assert.Len(t, s.ParticipantIDs, s.Count)
			}
		})
	}
}

func TestDistributeCoversEveryParticipantOnce(t *testing.T) {
	for n := 1; n <= 25; n++ {
		for _, roles := range [][]string{
			{"regular"},
			{"chief", "regular"},
			{"chief", "regular", "regular"},
			{"regular", "chief", "regular", "chief"},
			{"chief", "regular", "regular", "regular", "regular"},
		} {
			seen := map[string]int{}
			for _, s := range Distribute(participants(n), assign(roles...)) {
				for _, id := range s.ParticipantIDs {
					seen[id]++
				}
			}
			assert.Len(t, seen, n, "n=%d roles=%v", n, roles)
			for id, c := range seen {
				assert.Equal(t, 1, c, "%s assigned %d times", id, c)
			}
		}
	}
}

func TestDistributeAllChiefsLeavesRemainder(t *testing.T) {
	shares := Distribute(participants(7), assign("chief", "chief"))
	assert.Equal(t, []int{3, 3}, counts(shares))
}

func TestDistributeEmpty(t *testing.T) {
	assert.Empty(t, Distribute(participants(4), nil))

	shares := Distribute(nil, assign("chief", "regular"))
	require.Len(t, shares, 2)
	assert.Equal(t, []int{0, 0}, counts(shares))
	assert.NotNil(t, shares[0].ParticipantIDs)
}

func TestDistributeDuplicateTrainer(t *testing.T) {
	a := assign("regular", "regular")
	a = append(a, models.TrainerAssignment{TrainerID: "t0", Role: "chief"})
	shares := Distribute(participants(4), a)
	require.Len(t, shares, 2)
	assert.Equal(t, models.TrainerRegular, shares[0].Role)
}

func TestAssignedTo(t *testing.T) {
	ids := participants(10)
	a := assign("chief", "regular", "regular")

	got, ok := AssignedTo(ids, a, "t1")
	require.True(t, ok)
	assert.Equal(t, []string{"p03", "p04", "p05", "p06"}, got)

	_, ok = AssignedTo(ids, a, "stranger")
	assert.False(t, ok)
}
