package analytics

import (
	"sort"

	"gorm.io/gorm"

	"github.com/skillswap/skillswap/internal/pairing"
	"github.com/skillswap/skillswap/internal/session"
)

type AnalyticsRepository interface {
	SkillRollup() ([]SkillAnalytics, error)
	StatsForUser(userID uint) (*UserStats, error)
}

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new instance of AnalyticsRepository.
func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

type skillCount struct {
	Skill string
	Count int
}

// SkillRollup aggregates platform-wide counts per skill: how many public
// profiles offer or want it, and how many pairing requests name it. Skills
// are unnested from the JSONB profile arrays in the database rather than in
// application code.
func (r *analyticsRepository) SkillRollup() ([]SkillAnalytics, error) {
	rollup := make(map[string]*SkillAnalytics)
	entry := func(skill string) *SkillAnalytics {
		if e, ok := rollup[skill]; ok {
			return e
		}
		e := &SkillAnalytics{Skill: skill}
		rollup[skill] = e
		return e
	}

	var teach []skillCount
	err := r.db.Raw(`
		SELECT skill, COUNT(*) AS count
		FROM profiles, jsonb_array_elements_text(teach_skills) AS skill
		WHERE is_public = true AND deleted_at IS NULL
		GROUP BY skill`).Scan(&teach).Error
	if err != nil {
		return nil, err
	}
	for _, row := range teach {
		entry(row.Skill).TeachCount = row.Count
	}

	var learn []skillCount
	err = r.db.Raw(`
		SELECT skill, COUNT(*) AS count
		FROM profiles, jsonb_array_elements_text(learn_skills) AS skill
		WHERE is_public = true AND deleted_at IS NULL
		GROUP BY skill`).Scan(&learn).Error
	if err != nil {
		return nil, err
	}
	for _, row := range learn {
		entry(row.Skill).LearnCount = row.Count
	}

	var requests []struct {
		Skill    string
		Total    int
		Accepted int
	}
	err = r.db.Model(&pairing.PairRequest{}).
		Select("skill, COUNT(*) AS total, COUNT(*) FILTER (WHERE status = ?) AS accepted", pairing.StatusAccepted).
		Group("skill").
		Scan(&requests).Error
	if err != nil {
		return nil, err
	}
	for _, row := range requests {
		e := entry(row.Skill)
		e.TotalRequests = row.Total
		e.SuccessfulMatches = row.Accepted
	}

	entries := make([]SkillAnalytics, 0, len(rollup))
	for _, e := range rollup {
		entries = append(entries, *e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Skill < entries[j].Skill })
	return entries, nil
}

func (r *analyticsRepository) StatsForUser(userID uint) (*UserStats, error) {
	stats := &UserStats{}

	counts := []struct {
		dest  *int
		query *gorm.DB
	}{
		{&stats.RequestsSent, r.db.Model(&pairing.PairRequest{}).Where("requester_id = ?", userID)},
		{&stats.RequestsReceived, r.db.Model(&pairing.PairRequest{}).Where("requested_id = ?", userID)},
		{&stats.AcceptedRequests, r.db.Model(&pairing.PairRequest{}).
			Where("(requester_id = ? OR requested_id = ?) AND status = ?", userID, userID, pairing.StatusAccepted)},
		{&stats.SessionsTotal, r.db.Model(&session.Session{}).
			Where("teacher_id = ? OR learner_id = ?", userID, userID)},
		{&stats.SessionsCompleted, r.db.Model(&session.Session{}).
			Where("(teacher_id = ? OR learner_id = ?) AND status = ?", userID, userID, session.StatusCompleted)},
	}

	for _, c := range counts {
		var n int64
		if err := c.query.Count(&n).Error; err != nil {
			return nil, err
		}
		*c.dest = int(n)
	}

	return stats, nil
}
