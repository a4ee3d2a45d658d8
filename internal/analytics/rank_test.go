package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleEntries() []SkillAnalytics {
	return []SkillAnalytics{
		{Skill: "Python", TeachCount: 5, LearnCount: 2, TotalRequests: 9},
		{Skill: "Guitar", TeachCount: 1, LearnCount: 8, TotalRequests: 4},
		{Skill: "Spanish", TeachCount: 3, LearnCount: 3, TotalRequests: 12},
		{Skill: "Chess", TeachCount: 0, LearnCount: 1, TotalRequests: 0},
	}
}

func TestTopSkillsByTeach(t *testing.T) {
	top := TopSkills(sampleEntries(), RankTeach, 10)

	// Chess has no teachers and is dropped.
	assert.Len(t, top, 3)
	assert.Equal(t, "Python", top[0].Skill)
	assert.Equal(t, "Spanish", top[1].Skill)
	assert.Equal(t, "Guitar", top[2].Skill)
}

func TestTopSkillsByLearn(t *testing.T) {
	top := TopSkills(sampleEntries(), RankLearn, 10)

	assert.Len(t, top, 4)
	assert.Equal(t, "Guitar", top[0].Skill)
}

func TestTopSkillsByPopularity(t *testing.T) {
	// Popularity counts profile listings in both directions:
	// Guitar 1+8=9, Python 5+2=7, Spanish 3+3=6, Chess 0+1=1.
	top := TopSkills(sampleEntries(), RankPopular, 2)

	assert.Len(t, top, 2)
	assert.Equal(t, "Guitar", top[0].Skill)
	assert.Equal(t, "Python", top[1].Skill)
}

func TestTopSkillsStableTies(t *testing.T) {
	entries := []SkillAnalytics{
		{Skill: "Drawing", TeachCount: 2},
		{Skill: "Painting", TeachCount: 2},
	}

	top := TopSkills(entries, RankTeach, 10)

	assert.Equal(t, "Drawing", top[0].Skill)
	assert.Equal(t, "Painting", top[1].Skill)
}

func TestTopSkillsDoesNotModifyInput(t *testing.T) {
	entries := sampleEntries()
	TopSkills(entries, RankPopular, 1)

	assert.Equal(t, "Python", entries[0].Skill)
	assert.Equal(t, "Chess", entries[3].Skill)
}

func TestValidRankKind(t *testing.T) {
	assert.True(t, ValidRankKind(RankTeach))
	assert.True(t, ValidRankKind(RankLearn))
	assert.True(t, ValidRankKind(RankPopular))
	assert.False(t, ValidRankKind("alphabetical"))
}
