package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name         string
		canTeach     []string
		wantsToLearn []string
		want         int
	}{
		{"bidirectional single", []string{"Python"}, []string{"Guitar"}, 25},
		{"one directional", []string{"Python"}, nil, 10},
		{"no overlap", nil, nil, 0},
		{"two by one", []string{"Python", "SQL"}, []string{"Guitar"}, 40},
		{"two by two", []string{"Python", "SQL"}, []string{"Guitar", "Piano"}, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.canTeach, tt.wantsToLearn))
		})
	}
}

func TestComputeDropsIrrelevantCandidates(t *testing.T) {
	candidates := []Candidate{
		{UserID: 1, TeachSkills: []string{"Cooking"}, LearnSkills: []string{"Yoga"}},
	}

	matches := Compute([]string{"Python"}, []string{"Guitar"}, candidates)
	assert.Empty(t, matches)
}

func TestComputeEmptyCandidateSet(t *testing.T) {
	matches := Compute([]string{"Python"}, []string{"Guitar"}, nil)
	assert.Empty(t, matches) // empty input is not an error
}

func TestComputeBidirectionalExample(t *testing.T) {
	// A teaches Python and wants Guitar; B teaches Guitar and wants Python.
	candidates := []Candidate{
		{UserID: 2, TeachSkills: []string{"Guitar"}, LearnSkills: []string{"Python"}},
	}

	matches := Compute([]string{"Python"}, []string{"Guitar"}, candidates)
	assert.Len(t, matches, 1)
	assert.Equal(t, []string{"Python"}, matches[0].CanTeach)
	assert.Equal(t, []string{"Guitar"}, matches[0].WantsToLearn)
	assert.Equal(t, 25, matches[0].Score)
	assert.True(t, matches[0].IsBidirectional())
}

func TestComputeOneDirectionalExample(t *testing.T) {
	// A teaches Python, wants nothing; B only wants Python.
	candidates := []Candidate{
		{UserID: 2, LearnSkills: []string{"Python"}},
	}

	matches := Compute([]string{"Python"}, nil, candidates)
	assert.Len(t, matches, 1)
	assert.Equal(t, 10, matches[0].Score)
	assert.Empty(t, matches[0].WantsToLearn)
	assert.False(t, matches[0].IsBidirectional())
}

func TestComputeSortsByScoreDescending(t *testing.T) {
	candidates := []Candidate{
		{UserID: 1, LearnSkills: []string{"Python"}},                                  // score 10
		{UserID: 2, TeachSkills: []string{"Guitar"}, LearnSkills: []string{"Python"}}, // score 25
		{UserID: 3, LearnSkills: []string{"Python", "SQL"}},                           // score 20
	}

	matches := Compute([]string{"Python", "SQL"}, []string{"Guitar"}, candidates)
	assert.Len(t, matches, 3)
	assert.Equal(t, uint(2), matches[0].Candidate.UserID)
	assert.Equal(t, uint(3), matches[1].Candidate.UserID)
	assert.Equal(t, uint(1), matches[2].Candidate.UserID)
}

func TestComputeStableTieBreak(t *testing.T) {
	// Both candidates score 10; input order must be preserved.
	candidates := []Candidate{
		{UserID: 7, LearnSkills: []string{"Python"}},
		{UserID: 3, LearnSkills: []string{"Python"}},
	}

	matches := Compute([]string{"Python"}, nil, candidates)
	assert.Len(t, matches, 2)
	assert.Equal(t, uint(7), matches[0].Candidate.UserID)
	assert.Equal(t, uint(3), matches[1].Candidate.UserID)
}

func TestSortBidirectionalFirst(t *testing.T) {
	// A high-scoring one-directional match must still rank below any
	// bidirectional match in this mode.
	matches := []Match{
		{Candidate: Candidate{UserID: 1}, CanTeach: []string{"Python", "SQL", "Go"}, Score: 30},
		{Candidate: Candidate{UserID: 2}, CanTeach: []string{"Python"}, WantsToLearn: []string{"Guitar"}, Score: 25},
		{Candidate: Candidate{UserID: 3}, WantsToLearn: []string{"Piano"}, Score: 10},
	}

	sorted := SortBidirectionalFirst(matches)
	assert.Equal(t, uint(2), sorted[0].Candidate.UserID)
	assert.Equal(t, uint(1), sorted[1].Candidate.UserID)
	assert.Equal(t, uint(3), sorted[2].Candidate.UserID)

	// Original slice is untouched.
	assert.Equal(t, uint(1), matches[0].Candidate.UserID)
}

func TestIntersectPreservesOrder(t *testing.T) {
	got := intersect([]string{"A", "B", "C"}, []string{"C", "A"})
	assert.Equal(t, []string{"A", "C"}, got)
}
