// internal/profile/profile_model.go
package profile

import (
	"gorm.io/gorm"

	"github.com/skillswap/skillswap/internal/models"
	"github.com/skillswap/skillswap/internal/user"
)

// MaxSkillsPerList caps each of the teach/learn lists.
const MaxSkillsPerList = 3

// Profile holds a user's declared teach/learn skill lists and visibility.
// Exactly one profile per user; created on first save, never hard-deleted.
type Profile struct {
	gorm.Model
	UserID      uint               `json:"user_id" gorm:"uniqueIndex;not null"`
	User        user.User          `json:"user" gorm:"foreignKey:UserID"`
	TeachSkills models.StringSlice `json:"teach_skills" gorm:"type:jsonb;not null;default:'[]'"`
	LearnSkills models.StringSlice `json:"learn_skills" gorm:"type:jsonb;not null;default:'[]'"`
	Bio         string             `json:"bio" gorm:"type:text"`
	IsPublic    bool               `json:"is_public" gorm:"default:true"`
}

// IsComplete reports whether the profile is usable for matching: at least
// one of the two skill lists must be non-empty.
func (p *Profile) IsComplete() bool {
	return len(p.TeachSkills) > 0 || len(p.LearnSkills) > 0
}

// NormalizeSkills deduplicates a skill list while preserving order and
// dropping empty entries.
func NormalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]bool, len(skills))
	for _, s := range skills {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
