// Package match computes ranked skill matches between the current user and
// other public profiles. The engine is pure and in-memory: fetching
// candidates is the caller's job.
package match

import "sort"

// Scoring weights. The multiplicative bonus rewards bidirectional matches
// (skills flow both ways) over one-directional ones of the same size.
const (
	overlapWeight       = 10
	bidirectionalWeight = 5
)

// Candidate is one public profile considered for matching, pre-filtered to
// exclude the current user and private profiles.
type Candidate struct {
	UserID      uint     `json:"user_id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	AvatarURL   string   `json:"avatar_url,omitempty"`
	Bio         string   `json:"bio,omitempty"`
	TeachSkills []string `json:"teach_skills"`
	LearnSkills []string `json:"learn_skills"`
}

// Match pairs the current user with one candidate. CanTeach holds the
// skills the current user can teach the candidate, WantsToLearn the skills
// the candidate can teach the current user.
type Match struct {
	Candidate    Candidate `json:"candidate"`
	CanTeach     []string  `json:"can_teach"`
	WantsToLearn []string  `json:"wants_to_learn"`
	Score        int       `json:"score"`
}

// IsBidirectional reports whether skills flow both ways in this match.
func (m *Match) IsBidirectional() bool {
	return len(m.CanTeach) > 0 && len(m.WantsToLearn) > 0
}

// Score computes the match score for the two overlap sets:
// 10×(|canTeach|+|wantsToLearn|) + 5×|canTeach|×|wantsToLearn|.
func Score(canTeach, wantsToLearn []string) int {
	return overlapWeight*(len(canTeach)+len(wantsToLearn)) +
		bidirectionalWeight*len(canTeach)*len(wantsToLearn)
}

// Compute scores every candidate against the current user's teach/learn
// lists and returns matches sorted by score descending. Candidates with no
// overlap in either direction are dropped. The sort is stable, so equal
// scores keep the input order; callers wanting deterministic ties should
// order candidates by a stable key first.
func Compute(teachSkills, learnSkills []string, candidates []Candidate) []Match {
	matches := make([]Match, 0, len(candidates))

	for _, cand := range candidates {
		canTeach := intersect(teachSkills, cand.LearnSkills)
		wantsToLearn := intersect(learnSkills, cand.TeachSkills)

		if len(canTeach) == 0 && len(wantsToLearn) == 0 {
			continue // no mutual relevance
		}

		matches = append(matches, Match{
			Candidate:    cand,
			CanTeach:     canTeach,
			WantsToLearn: wantsToLearn,
			Score:        Score(canTeach, wantsToLearn),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}

// SortBidirectionalFirst re-sorts matches so every bidirectional match
// precedes every one-directional one, each group internally ordered by
// score. This is a presentation-level re-sort; scores are unchanged.
func SortBidirectionalFirst(matches []Match) []Match {
	out := make([]Match, len(matches))
	copy(out, matches)

	sort.SliceStable(out, func(i, j int) bool {
		bi, bj := out[i].IsBidirectional(), out[j].IsBidirectional()
		if bi != bj {
			return bi
		}
		return out[i].Score > out[j].Score
	})
	return out
}

// intersect returns the elements of a that are also in b, preserving a's
// order. Inputs are small (at most a handful of skills), so linear scans
// beat building maps.
func intersect(a, b []string) []string {
	var out []string
	for _, s := range a {
		for _, t := range b {
			if s == t {
				out = append(out, s)
				break
			}
		}
	}
	return out
}
