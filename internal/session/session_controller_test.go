package session

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/skillswap/skillswap/config"
	"github.com/skillswap/skillswap/internal/middleware"
	"github.com/skillswap/skillswap/internal/pairing"
)

// stubPairingRepo serves a single canned pairing request.
type stubPairingRepo struct {
	request *pairing.PairRequest
}

func (s *stubPairingRepo) Create(*pairing.PairRequest) error { return nil }

func (s *stubPairingRepo) GetByID(id uint) (*pairing.PairRequest, error) {
	if s.request != nil && s.request.ID == id {
		return s.request, nil
	}
	return nil, nil
}

func (s *stubPairingRepo) ListSent(uint) ([]pairing.PairRequest, error)     { return nil, nil }
func (s *stubPairingRepo) ListReceived(uint) ([]pairing.PairRequest, error) { return nil, nil }
func (s *stubPairingRepo) UpdateStatus(*pairing.PairRequest) error          { return nil }
func (s *stubPairingRepo) HasPending(uint, uint, string) (bool, error)      { return false, nil }

type fakeSessionRepo struct {
	sessions []*Session
	nextID   uint
}

func (f *fakeSessionRepo) Create(session *Session) error {
	f.nextID++
	session.ID = f.nextID
	f.sessions = append(f.sessions, session)
	return nil
}

func (f *fakeSessionRepo) GetByID(id uint) (*Session, error) {
	for _, s := range f.sessions {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSessionRepo) GetByPairRequestID(pairRequestID uint) (*Session, error) {
	for _, s := range f.sessions {
		if s.PairRequestID == pairRequestID {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSessionRepo) ListForUser(userID uint) ([]Session, error) {
	var out []Session
	for _, s := range f.sessions {
		if s.HasParticipant(userID) {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) Update(session *Session) error { return nil }

func acceptedRequest() *pairing.PairRequest {
	return &pairing.PairRequest{
		Model:       gorm.Model{ID: 5},
		RequesterID: 1,
		RequestedID: 2,
		Skill:       "Python",
		Status:      pairing.StatusAccepted,
	}
}

func postCreateSession(t *testing.T, sc *SessionController, userID uint, body CreateSessionRequest) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	payload, err := json.Marshal(body)
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/sessions", bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.AuthUserIDKey, userID)

	sc.CreateSession(c)
	return w
}

func TestCreateSessionAssignsRoles(t *testing.T) {
	repo := &fakeSessionRepo{}
	sc := NewSessionController(repo, &stubPairingRepo{request: acceptedRequest()}, &config.Config{})

	w := postCreateSession(t, sc, 2, CreateSessionRequest{PairRequestID: 5, DurationMinutes: 60})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, repo.sessions, 1)

	created := repo.sessions[0]
	assert.Equal(t, uint(2), created.TeacherID, "the accepting party teaches")
	assert.Equal(t, uint(1), created.LearnerID)
	assert.Equal(t, "Python", created.Skill)
	assert.Equal(t, 60, created.DurationMinutes)
	assert.Equal(t, StatusScheduled, created.Status)
	assert.NotEmpty(t, created.RoomCode)
}

func TestCreateSessionOnlyByAcceptingParty(t *testing.T) {
	repo := &fakeSessionRepo{}
	sc := NewSessionController(repo, &stubPairingRepo{request: acceptedRequest()}, &config.Config{})

	// The requester cannot schedule; only the party who accepted can.
	w := postCreateSession(t, sc, 1, CreateSessionRequest{PairRequestID: 5})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, repo.sessions)
}

func TestCreateSessionRequiresAcceptedRequest(t *testing.T) {
	req := acceptedRequest()
	req.Status = pairing.StatusPending
	sc := NewSessionController(&fakeSessionRepo{}, &stubPairingRepo{request: req}, &config.Config{})

	w := postCreateSession(t, sc, 2, CreateSessionRequest{PairRequestID: 5})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateSessionRejectsSecondSessionForRequest(t *testing.T) {
	repo := &fakeSessionRepo{}
	sc := NewSessionController(repo, &stubPairingRepo{request: acceptedRequest()}, &config.Config{})

	w := postCreateSession(t, sc, 2, CreateSessionRequest{PairRequestID: 5})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = postCreateSession(t, sc, 2, CreateSessionRequest{PairRequestID: 5})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Len(t, repo.sessions, 1)
}
