package handlers_test

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"UMS_TALENTA_BACK-END/internal/dto"
)

func TestPublicDirectory(t *testing.T) {
	env := newTestEnv(t)
	budi := env.student("L200230277", "Budi Santoso")
	siti := env.student("L200230278", "Siti Aminah")
	hidden := env.student("L200230279", "Rahmat Hidayat")
	env.db.profileOf(hidden.ID).Profile.IsPublic = false

	sitiToken := env.token(siti)
	for _, s := range []string{"Go", "SQL"} {
		require.Equal(t, http.StatusCreated, env.do(http.MethodPost, "/api/talents/me/skills", sitiToken, map[string]string{"skill_name": s}).Code)
	}
	require.Equal(t, http.StatusCreated, env.do(http.MethodPost, "/api/talents/me/skills", env.token(budi), map[string]string{"skill_name": "go"}).Code)

	t.Run("list hides non-public profiles", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/api/talents/public", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		list := decode[dto.TalentListResponse](t, rec)
		assert.Equal(t, 2, list.Pagination.Total)
		assert.Equal(t, 20, list.Pagination.Limit)
		for _, p := range list.Results {
			assert.NotEqual(t, "L200230279", p.NIM)
		}
	})

	t.Run("pagination", func(t *testing.T) {
		list := decode[dto.TalentListResponse](t, env.do(http.MethodGet, "/api/talents/public?limit=1&offset=1", "", nil))
		assert.Len(t, list.Results, 1)
		assert.Equal(t, dto.Pagination{Total: 2, Limit: 1, Offset: 1}, list.Pagination)
	})

	t.Run("search", func(t *testing.T) {
		list := decode[dto.TalentListResponse](t, env.do(http.MethodGet, "/api/talents/public?search=siti", "", nil))
		require.Len(t, list.Results, 1)
		assert.Equal(t, "Siti Aminah", list.Results[0].UserFullName)
	})

	t.Run("statistics", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/api/talents/statistics", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, dto.StatisticsResponse{TotalTalents: 2, TotalSkills: 2}, decode[dto.StatisticsResponse](t, rec))
	})

	t.Run("top and its alias", func(t *testing.T) {
		for _, path := range []string{"/api/talents/top", "/api/talents/top-talents"} {
			top := decode[[]dto.ProfileResponse](t, env.do(http.MethodGet, path, "", nil))
			require.Len(t, top, 2)
			assert.Equal(t, "Siti Aminah", top[0].UserFullName, path)
		}
	})

	t.Run("latest", func(t *testing.T) {
		latest := decode[[]dto.ProfileResponse](t, env.do(http.MethodGet, "/api/talents/latest", "", nil))
		require.Len(t, latest, 2)
		assert.Equal(t, "Siti Aminah", latest[0].UserFullName)
	})
}

func TestTalentDetail_Visibility(t *testing.T) {
	env := newTestEnv(t)
	owner := env.student("L200230277", "Budi Santoso")
	viewer := env.student("L200230278", "Siti Aminah")
	profile := env.db.profileOf(owner.ID)
	profile.Profile.IsPublic = false
	path := "/api/talents/" + profile.Profile.ID.String()

	assert.Equal(t, http.StatusNotFound, env.do(http.MethodGet, path, "", nil).Code, "anonymous")
	assert.Equal(t, http.StatusNotFound, env.do(http.MethodGet, path, env.token(viewer), nil).Code, "other student")

	own := profileResponse(t, env.do(http.MethodGet, path, env.token(owner), nil))
	assert.Equal(t, 0, own.ViewsCount, "owner views are not counted")

	admin := profileResponse(t, env.do(http.MethodGet, path, env.token(env.admin()), nil))
	assert.Equal(t, 1, admin.ViewsCount)

	assert.Equal(t, http.StatusNotFound, env.do(http.MethodGet, "/api/talents/"+viewer.ID.String(), "", nil).Code, "user id is not a profile id")
	assert.Equal(t, http.StatusBadRequest, env.do(http.MethodGet, "/api/talents/nope", "", nil).Code)
}

func TestTalentDetail_CountsViews(t *testing.T) {
	env := newTestEnv(t)
	owner := env.student("L200230277", "Budi Santoso")
	path := "/api/talents/" + env.profileOf(owner).Profile.ID.String()

	first := profileResponse(t, env.do(http.MethodGet, path, "", nil))
	second := profileResponse(t, env.do(http.MethodGet, path, "", nil))
	assert.Equal(t, 1, first.ViewsCount)
	assert.Equal(t, 2, second.ViewsCount)

	require.Len(t, env.db.views, 2)
	require.NotNil(t, env.db.views[0].ViewerIP)
	assert.Equal(t, "192.0.2.1", *env.db.views[0].ViewerIP)
}

func TestEndorsements(t *testing.T) {
	env := newTestEnv(t)
	owner := env.student("L200230277", "Budi Santoso")
	endorser := env.student("L200230278", "Siti Aminah")
	ownerToken, endorserToken := env.token(owner), env.token(endorser)

	rec := env.do(http.MethodPost, "/api/talents/me/skills", ownerToken, map[string]string{"skill_name": "Go"})
	require.Equal(t, http.StatusCreated, rec.Code)
	skill := decode[dto.StudentSkillResponse](t, rec)
	base := "/api/talents/" + env.profileOf(owner).Profile.ID.String() + "/skills/" + skill.ID

	t.Run("anonymous", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, env.do(http.MethodPost, base+"/endorse", "", nil).Code)
	})

	t.Run("own skill", func(t *testing.T) {
		errs := fieldErrors(t, env.do(http.MethodPost, base+"/endorse", ownerToken, nil))
		assert.Equal(t, "You cannot endorse your own skill.", errs["endorsement"])
	})

	t.Run("caller without profile", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, env.do(http.MethodPost, base+"/endorse", env.token(env.admin()), nil).Code)
	})

	rec = env.do(http.MethodPost, base+"/endorse", endorserToken, map[string]string{"message": "Solid Go code"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[dto.EndorsementResponse](t, rec)
	assert.Equal(t, "Siti Aminah (L200230278)", created.Endorser)
	assert.Equal(t, "Solid Go code", created.Message)

	t.Run("duplicate", func(t *testing.T) {
		errs := fieldErrors(t, env.do(http.MethodPost, base+"/endorse", endorserToken, nil))
		assert.Equal(t, "You have already endorsed this skill.", errs["endorsement"])
	})

	t.Run("count and list", func(t *testing.T) {
		got := decode[dto.StudentSkillResponse](t, env.do(http.MethodGet, "/api/talents/me/skills/"+skill.ID, ownerToken, nil))
		assert.Equal(t, 1, got.EndorsementCount)

		list := decode[[]dto.EndorsementResponse](t, env.do(http.MethodGet, base+"/endorsements", "", nil))
		require.Len(t, list, 1)
		assert.Equal(t, created.ID, list[0].ID)
	})

	t.Run("hidden profile", func(t *testing.T) {
		env.db.profileOf(owner.ID).Profile.IsActive = false
		third := env.token(env.student("L200230279", "Rahmat Hidayat"))
		assert.Equal(t, http.StatusNotFound, env.do(http.MethodPost, base+"/endorse", third, nil).Code)
	})
}

func TestAdmin(t *testing.T) {
	env := newTestEnv(t)
	student := env.student("L200230277", "Budi Santoso")
	adminToken := env.token(env.admin())
	profileID := env.profileOf(student).Profile.ID.String()

	assert.Equal(t, http.StatusForbidden, env.do(http.MethodGet, "/api/talents/admin/talents", env.token(student), nil).Code)

	rec := env.do(http.MethodPost, "/api/talents/admin/talents/"+profileID+"/deactivate", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "deactivated", decode[dto.StatusResponse](t, rec).Status)
	assert.Equal(t, 0, decode[dto.TalentListResponse](t, env.do(http.MethodGet, "/api/talents/public", "", nil)).Pagination.Total)

	all := decode[dto.TalentListResponse](t, env.do(http.MethodGet, "/api/talents/admin/talents", adminToken, nil))
	require.Len(t, all.Results, 1)
	assert.False(t, all.Results[0].IsActive)

	rec = env.do(http.MethodPost, "/api/talents/admin/talents/"+profileID+"/activate", adminToken, nil)
	assert.Equal(t, "activated", decode[dto.StatusResponse](t, rec).Status)

	assert.Equal(t, http.StatusNoContent, env.do(http.MethodDelete, "/api/talents/admin/talents/"+profileID, adminToken, nil).Code)
	assert.Equal(t, http.StatusNotFound, env.do(http.MethodDelete, "/api/talents/admin/talents/"+profileID, adminToken, nil).Code)
	assert.Equal(t, http.StatusNotFound, env.do(http.MethodPost, "/api/talents/admin/talents/"+profileID+"/activate", adminToken, nil).Code)
}

func TestAdminDelete_RemovesPhoto(t *testing.T) {
	env := newTestEnv(t)
	u := env.student("L200230277", "Budi Santoso")
	photo := decode[dto.PhotoResponse](t, uploadPhoto(t, env, env.token(u), pngBytes(t))).Photo
	file := filepath.Join(env.cfg.Media.Root, strings.TrimPrefix(photo, "/media/"))
	_, err := os.Stat(file)
	require.NoError(t, err)

	profileID := env.profileOf(u).Profile.ID.String()
	rec := env.do(http.MethodDelete, "/api/talents/admin/talents/"+profileID, env.token(env.admin()), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	_, err = os.Stat(file)
	assert.True(t, os.IsNotExist(err), "photo file is removed with the account")
}
