package profile

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/skillswap/skillswap/config"
	"github.com/skillswap/skillswap/internal/middleware"
)

// fakeProfileRepo is an in-memory ProfileRepository mirroring the upsert
// semantics of the GORM-backed one: one row per user, editable fields
// replaced on conflict.
type fakeProfileRepo struct {
	profiles map[uint]*Profile
	nextID   uint
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[uint]*Profile)}
}

func (f *fakeProfileRepo) GetByUserID(userID uint) (*Profile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, nil
	}
	stored := *p
	return &stored, nil
}

func (f *fakeProfileRepo) Upsert(profile *Profile) error {
	if existing, ok := f.profiles[profile.UserID]; ok {
		existing.TeachSkills = profile.TeachSkills
		existing.LearnSkills = profile.LearnSkills
		existing.Bio = profile.Bio
		existing.IsPublic = profile.IsPublic
		return nil
	}
	f.nextID++
	stored := *profile
	stored.ID = f.nextID
	f.profiles[profile.UserID] = &stored
	return nil
}

func (f *fakeProfileRepo) ListPublic(excludeUserID uint) ([]Profile, error) {
	var out []Profile
	for _, p := range f.profiles {
		if p.IsPublic && p.UserID != excludeUserID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func putSaveProfile(t *testing.T, pc *ProfileController, userID uint, body SaveProfileRequest) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	payload, err := json.Marshal(body)
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/profiles/me", bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.AuthUserIDKey, userID)

	pc.SaveMyProfile(c)
	return w
}

func TestSaveProfileIsIdempotent(t *testing.T) {
	repo := newFakeProfileRepo()
	pc := NewProfileController(repo, &config.Config{})
	body := SaveProfileRequest{
		TeachSkills: []string{"Python", "Guitar"},
		LearnSkills: []string{"Spanish"},
		Bio:         "Happy to trade lessons",
	}

	w := putSaveProfile(t, pc, 1, body)
	assert.Equal(t, http.StatusOK, w.Code)

	first, err := repo.GetByUserID(1)
	assert.NoError(t, err)
	assert.NotNil(t, first)

	// Saving the exact same payload again must leave the same single row.
	w = putSaveProfile(t, pc, 1, body)
	assert.Equal(t, http.StatusOK, w.Code)

	second, err := repo.GetByUserID(1)
	assert.NoError(t, err)
	assert.Len(t, repo.profiles, 1)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.TeachSkills, second.TeachSkills)
	assert.Equal(t, first.LearnSkills, second.LearnSkills)
	assert.Equal(t, first.Bio, second.Bio)
	assert.Equal(t, first.IsPublic, second.IsPublic)
}

func TestSaveProfileReplacesSkillLists(t *testing.T) {
	repo := newFakeProfileRepo()
	pc := NewProfileController(repo, &config.Config{})

	w := putSaveProfile(t, pc, 1, SaveProfileRequest{TeachSkills: []string{"Python"}})
	assert.Equal(t, http.StatusOK, w.Code)

	w = putSaveProfile(t, pc, 1, SaveProfileRequest{LearnSkills: []string{"Guitar"}})
	assert.Equal(t, http.StatusOK, w.Code)

	saved, err := repo.GetByUserID(1)
	assert.NoError(t, err)
	assert.Empty(t, saved.TeachSkills)
	assert.Equal(t, []string{"Guitar"}, []string(saved.LearnSkills))
}

func TestSaveProfileRequiresASkill(t *testing.T) {
	repo := newFakeProfileRepo()
	pc := NewProfileController(repo, &config.Config{})

	w := putSaveProfile(t, pc, 1, SaveProfileRequest{Bio: "no skills yet"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.profiles)
}
