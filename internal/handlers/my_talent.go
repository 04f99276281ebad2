package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MyTalentHandler manages the skills, experiences, projects and social links
// on the caller's own profile. Every item is looked up together with the
// caller's profile id, so another profile's item reads as not found.
type MyTalentHandler struct {
	profiles ProfileStore
	talents  TalentStore
	now      func() time.Time
	logger   *zap.Logger
}

func NewMyTalentHandler(profiles ProfileStore, talents TalentStore, logger *zap.Logger) *MyTalentHandler {
	return &MyTalentHandler{profiles: profiles, talents: talents, now: time.Now, logger: logger}
}

// WithClock overrides the clock used for date checks
func (h *MyTalentHandler) WithClock(now func() time.Time) *MyTalentHandler {
	h.now = now
	return h
}

// profileID resolves the caller's profile; on failure it has already responded
func (h *MyTalentHandler) profileID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := callerID(w, r)
	if !ok {
		return uuid.Nil, false
	}
	p, err := h.profiles.GetByUserID(r.Context(), userID)
	if err != nil {
		writeStoreError(w, r, h.logger, "Profile", err)
		return uuid.Nil, false
	}
	return p.Profile.ID, true
}

// owned resolves the caller's profile and the {id} path parameter
func (h *MyTalentHandler) owned(w http.ResponseWriter, r *http.Request) (profileID, id uuid.UUID, ok bool) {
	if id, ok = pathID(w, r, "id"); !ok {
		return
	}
	profileID, ok = h.profileID(w, r)
	return
}
