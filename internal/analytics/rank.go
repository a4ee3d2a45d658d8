package analytics

import "sort"

// RankKind selects which column drives a top-skills ranking.
type RankKind string

const (
	RankTeach   RankKind = "teach"   // most offered to teach
	RankLearn   RankKind = "learn"   // most wanted to learn
	RankPopular RankKind = "popular" // most listed on profiles overall
)

// ValidRankKind reports whether kind names a supported ranking.
func ValidRankKind(kind RankKind) bool {
	switch kind {
	case RankTeach, RankLearn, RankPopular:
		return true
	}
	return false
}

func rankValue(e SkillAnalytics, kind RankKind) int {
	switch kind {
	case RankTeach:
		return e.TeachCount
	case RankLearn:
		return e.LearnCount
	default:
		// Popularity is how often a skill appears on profiles at all,
		// regardless of direction.
		return e.TeachCount + e.LearnCount
	}
}

// TopSkills returns up to limit entries ordered by the chosen column,
// highest first. Entries scoring zero on that column are dropped, and ties
// keep the input order. The input slice is not modified.
func TopSkills(entries []SkillAnalytics, kind RankKind, limit int) []SkillAnalytics {
	ranked := make([]SkillAnalytics, 0, len(entries))
	for _, e := range entries {
		if rankValue(e, kind) > 0 {
			ranked = append(ranked, e)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return rankValue(ranked[i], kind) > rankValue(ranked[j], kind)
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
