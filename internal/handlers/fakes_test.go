package handlers_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"UMS_TALENTA_BACK-END/internal/models"
	"UMS_TALENTA_BACK-END/internal/store"
)

// fakeDB implements every store interface the handlers depend on
type fakeDB struct {
	mu           sync.Mutex
	users        map[uuid.UUID]*models.User
	profiles     map[uuid.UUID]*models.ProfileDetail
	catalog      map[string]models.Skill
	endorsements map[uuid.UUID][]models.Endorsement
	views        []models.ProfileView
	clock        time.Time

	// createErr is returned by CreateStudent once the duplicate checks pass
	createErr error
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		users:        map[uuid.UUID]*models.User{},
		profiles:     map[uuid.UUID]*models.ProfileDetail{},
		catalog:      map[string]models.Skill{},
		endorsements: map[uuid.UUID][]models.Endorsement{},
		clock:        time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC),
	}
}

func (f *fakeDB) tick() time.Time {
	f.clock = f.clock.Add(time.Minute)
	return f.clock
}

func (f *fakeDB) profileOf(userID uuid.UUID) *models.ProfileDetail {
	for _, p := range f.profiles {
		if p.Profile.UserID == userID {
			return p
		}
	}
	return nil
}

func (f *fakeDB) owned(profileID uuid.UUID) (*models.ProfileDetail, error) {
	p, ok := f.profiles[profileID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return p, nil
}

func copyDetail(p *models.ProfileDetail) *models.ProfileDetail {
	c := *p
	c.Skills = append([]models.StudentSkill(nil), p.Skills...)
	c.Experiences = append([]models.Experience(nil), p.Experiences...)
	c.Projects = append([]models.PortfolioProject(nil), p.Projects...)
	c.SocialLinks = append([]models.SocialLink(nil), p.SocialLinks...)
	return &c
}

// users

func (f *fakeDB) EmailExists(_ context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeDB) NIMExists(_ context.Context, nim string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.profiles {
		if p.Profile.NIM == nim {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeDB) CreateStudent(ctx context.Context, s store.NewStudent) (*models.User, error) {
	if taken, _ := f.EmailExists(ctx, s.Email); taken {
		return nil, store.ErrDuplicateEmail
	}
	if taken, _ := f.NIMExists(ctx, s.NIM); taken {
		return nil, store.ErrDuplicateNIM
	}
	if f.createErr != nil {
		return nil, f.createErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	now := f.tick()
	u := &models.User{
		ID: uuid.New(), Email: s.Email, PasswordHash: s.PasswordHash, FullName: s.FullName,
		Role: models.RoleStudent, IsActive: true, CreatedAt: now, UpdatedAt: now,
	}
	f.users[u.ID] = u
	p := &models.ProfileDetail{
		Profile: models.StudentProfile{
			ID: uuid.New(), UserID: u.ID, NIM: s.NIM, Prodi: s.Prodi, Angkatan: s.Angkatan,
			IsPublic: true, IsActive: true, CreatedAt: now, UpdatedAt: now,
		},
		FullName: u.FullName,
		Email:    u.Email,
	}
	f.profiles[p.Profile.ID] = p
	cp := *u
	return &cp, nil
}

func (f *fakeDB) addAdmin(email, passwordHash string) *models.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := &models.User{ID: uuid.New(), Email: email, PasswordHash: passwordHash, FullName: "Admin",
		Role: models.RoleAdmin, IsActive: true, CreatedAt: f.tick()}
	f.users[u.ID] = u
	return u
}

func (f *fakeDB) GetByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeDB) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

// profiles

func (f *fakeDB) GetByUserID(_ context.Context, userID uuid.UUID) (*models.ProfileDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := f.profileOf(userID)
	if p == nil {
		return nil, store.ErrNotFound
	}
	return &models.ProfileDetail{Profile: p.Profile, FullName: p.FullName, Email: p.Email}, nil
}

func (f *fakeDB) GetDetailByUserID(_ context.Context, userID uuid.UUID) (*models.ProfileDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := f.profileOf(userID)
	if p == nil {
		return nil, store.ErrNotFound
	}
	return copyDetail(p), nil
}

func (f *fakeDB) GetDetail(_ context.Context, profileID uuid.UUID) (*models.ProfileDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, err := f.owned(profileID)
	if err != nil {
		return nil, err
	}
	return copyDetail(p), nil
}

func (f *fakeDB) Update(_ context.Context, userID uuid.UUID, c store.ProfileChanges) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := f.profileOf(userID)
	if p == nil {
		return store.ErrNotFound
	}
	if c.FullName != nil {
		p.FullName = *c.FullName
		f.users[userID].FullName = *c.FullName
	}
	if c.Prodi != nil {
		p.Profile.Prodi = *c.Prodi
	}
	if c.Angkatan != nil {
		p.Profile.Angkatan = *c.Angkatan
	}
	if c.Headline != nil {
		p.Profile.Headline = *c.Headline
	}
	if c.Bio != nil {
		p.Profile.Bio = *c.Bio
	}
	if c.IsPublic != nil {
		p.Profile.IsPublic = *c.IsPublic
	}
	if c.Photo != nil {
		if *c.Photo == "" {
			p.Profile.Photo = nil
		} else {
			v := *c.Photo
			p.Profile.Photo = &v
		}
	}
	p.Profile.UpdatedAt = f.tick()
	return nil
}

func (f *fakeDB) SetPhoto(_ context.Context, userID uuid.UUID, ref string) (*string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := f.profileOf(userID)
	if p == nil {
		return nil, store.ErrNotFound
	}
	previous := p.Profile.Photo
	p.Profile.Photo = &ref
	return previous, nil
}

func (f *fakeDB) RecordView(_ context.Context, profileID uuid.UUID, viewerIP *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, err := f.owned(profileID)
	if err != nil {
		return err
	}
	f.views = append(f.views, models.ProfileView{ID: uuid.New(), ProfileID: profileID, ViewerIP: viewerIP, ViewedAt: f.tick()})
	p.Profile.ViewsCount++
	return nil
}

func (f *fakeDB) SetActive(_ context.Context, profileID uuid.UUID, active bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, err := f.owned(profileID)
	if err != nil {
		return err
	}
	p.Profile.IsActive = active
	return nil
}

func (f *fakeDB) DeleteOwner(_ context.Context, profileID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, err := f.owned(profileID)
	if err != nil {
		return err
	}
	delete(f.users, p.Profile.UserID)
	delete(f.profiles, profileID)
	return nil
}

// talents

func indexOf[T any](items []T, id uuid.UUID, idOf func(T) uuid.UUID) int {
	for i, it := range items {
		if idOf(it) == id {
			return i
		}
	}
	return -1
}

func skillID(s models.StudentSkill) uuid.UUID       { return s.ID }
func expID(e models.Experience) uuid.UUID           { return e.ID }
func projectID(p models.PortfolioProject) uuid.UUID { return p.ID }
func linkID(l models.SocialLink) uuid.UUID          { return l.ID }

func (f *fakeDB) ListSkills(_ context.Context, profileID uuid.UUID) ([]models.StudentSkill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, err := f.owned(profileID)
	if err != nil {
		return nil, err
	}
	return append([]models.StudentSkill(nil), p.Skills...), nil
}

func (f *fakeDB) GetSkill(_ context.Context, profileID, id uuid.UUID) (*models.StudentSkill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, err := f.owned(profileID)
	if err != nil {
		return nil, err
	}
	i := indexOf(p.Skills, id, skillID)
	if i < 0 {
		return nil, store.ErrNotFound
	}
	s := p.Skills[i]
	return &s, nil
}

func (f *fakeDB) AddSkill(_ context.Context, profileID uuid.UUID, name, level string) (*models.StudentSkill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, err := f.owned(profileID)
	if err != nil {
		return nil, err
	}
	key := strings.ToLower(name)
	skill, ok := f.catalog[key]
	if !ok {
		skill = models.Skill{ID: uuid.New(), Name: name}
		f.catalog[key] = skill
	}
	for _, s := range p.Skills {
		if s.Skill.ID == skill.ID {
			return nil, store.ErrDuplicateSkill
		}
	}
	s := models.StudentSkill{ID: uuid.New(), ProfileID: profileID, Skill: skill, Level: level}
	p.Skills = append(p.Skills, s)
	return &s, nil
}

func (f *fakeDB) UpdateSkillLevel(_ context.Context, profileID, id uuid.UUID, level string) (*models.StudentSkill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, err := f.owned(profileID)
	if err != nil {
		return nil, err
	}
	i := indexOf(p.Skills, id, skillID)
	if i < 0 {
		return nil, store.ErrNotFound
	}
	p.Skills[i].Level = level
	s := p.Skills[i]
	return &s, nil
}

func (f *fakeDB) DeleteSkill(_ context.Context, profileID, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, err := f.owned(profileID)
	if err != nil {
		return err
	}
	i := indexOf(p.Skills, id, skillID)
	if i < 0 {
		return store.ErrNotFound
	}
	p.Skills = append(p.Skills[:i], p.Skills[i+1:]...)
	return nil
}

func (f *fakeDB) ListExperiences(_ context.Context, profileID uuid.UUID) ([]models.Experience, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, err := f.owned(profileID)
	if err != nil {
		return nil, err
	}
	out := append([]models.Experience(nil), p.Experiences...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })
	return out, nil
}

func (f *fakeDB) GetExperience(_ context.Context, profileID, id uuid.UUID) (*models.Experience, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, err := f.owned(profileID)
	if err != nil {
		return nil, err
	}
	i := indexOf(p.Experiences, id, expID)
	if i < 0 {
		return nil, store.ErrNotFound
	}
	e := p.Experiences[i]
	return &e, nil
}

func (f *fakeDB) CreateExperience(_ context.Context, profileID uuid.UUID, e models.Experience) (*models.Experience, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, err := f.owned(profileID)
	if err != nil {
		return nil, err
	}
	e.ID, e.ProfileID = uuid.New(), profileID
	p.Experiences = append(p.Experiences, e)
	return &e, nil
}

func (f *fakeDB) UpdateExperience(_ context.Context, profileID, id uuid.UUID, e models.Experience) (*models.Experience, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, err := f.owned(profileID)
	if err != nil {
		return nil, err
	}
	i := indexOf(p.Experiences, id, expID)
	if i < 0 {
		return nil, store.ErrNotFound
	}
	e.ID, e.ProfileID = id, profileID
	p.Experiences[i] = e
	return &e, nil
}

func (f *fakeDB) DeleteExperience(_ context.Context, profileID, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, err := f.owned(profileID)
	if err != nil {
		return err
	}
	i := indexOf(p.Experiences, id, expID)
	if i < 0 {
		return store.ErrNotFound
	}
	p.Experiences = append(p.Experiences[:i], p.Experiences[i+1:]...)
	return nil
}

func (f *fakeDB) ListProjects(_ context.Context, profileID uuid.UUID) ([]models.PortfolioProject, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, err := f.owned(profileID)
	if err != nil {
		return nil, err
	}
	return append([]models.PortfolioProject(nil), p.Projects...), nil
}

func (f *fakeDB) GetProject(_ context.Context, profileID, id uuid.UUID) (*models.PortfolioProject, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, err := f.owned(profileID)
	if err != nil {
		return nil, err
	}
	i := indexOf(p.Projects, id, projectID)
	if i < 0 {
		return nil, store.ErrNotFound
	}
	pr := p.Projects[i]
	return &pr, nil
}

func (f *fakeDB) CreateProject(_ context.Context, profileID uuid.UUID, pr models.PortfolioProject) (*models.PortfolioProject, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, err := f.owned(profileID)
	if err != nil {
		return nil, err
	}
	pr.ID, pr.ProfileID = uuid.New(), profileID
	p.Projects = append(p.Projects, pr)
	return &pr, nil
}

func (f *fakeDB) UpdateProject(_ context.Context, profileID, id uuid.UUID, pr models.PortfolioProject) (*models.PortfolioProject, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, err := f.owned(profileID)
	if err != nil {
		return nil, err
	}
	i := indexOf(p.Projects, id, projectID)
	if i < 0 {
		return nil, store.ErrNotFound
	}
	pr.ID, pr.ProfileID = id, profileID
	p.Projects[i] = pr
	return &pr, nil
}

func (f *fakeDB) DeleteProject(_ context.Context, profileID, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, err := f.owned(profileID)
	if err != nil {
		return err
	}
	i := indexOf(p.Projects, id, projectID)
	if i < 0 {
		return store.ErrNotFound
	}
	p.Projects = append(p.Projects[:i], p.Projects[i+1:]...)
	return nil
}

func (f *fakeDB) ListSocialLinks(_ context.Context, profileID uuid.UUID) ([]models.SocialLink, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, err := f.owned(profileID)
	if err != nil {
		return nil, err
	}
	return append([]models.SocialLink(nil), p.SocialLinks...), nil
}

func (f *fakeDB) GetSocialLink(_ context.Context, profileID, id uuid.UUID) (*models.SocialLink, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, err := f.owned(profileID)
	if err != nil {
		return nil, err
	}
	i := indexOf(p.SocialLinks, id, linkID)
	if i < 0 {
		return nil, store.ErrNotFound
	}
	l := p.SocialLinks[i]
	return &l, nil
}

func (f *fakeDB) CreateSocialLink(_ context.Context, profileID uuid.UUID, l models.SocialLink) (*models.SocialLink, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, err := f.owned(profileID)
	if err != nil {
		return nil, err
	}
	l.ID, l.ProfileID = uuid.New(), profileID
	p.SocialLinks = append(p.SocialLinks, l)
	return &l, nil
}

func (f *fakeDB) UpdateSocialLink(_ context.Context, profileID, id uuid.UUID, l models.SocialLink) (*models.SocialLink, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, err := f.owned(profileID)
	if err != nil {
		return nil, err
	}
	i := indexOf(p.SocialLinks, id, linkID)
	if i < 0 {
		return nil, store.ErrNotFound
	}
	l.ID, l.ProfileID = id, profileID
	p.SocialLinks[i] = l
	return &l, nil
}

func (f *fakeDB) DeleteSocialLink(_ context.Context, profileID, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, err := f.owned(profileID)
	if err != nil {
		return err
	}
	i := indexOf(p.SocialLinks, id, linkID)
	if i < 0 {
		return store.ErrNotFound
	}
	p.SocialLinks = append(p.SocialLinks[:i], p.SocialLinks[i+1:]...)
	return nil
}

// directory

func (f *fakeDB) listed(includeHidden bool) []models.ProfileDetail {
	var out []models.ProfileDetail
	for _, p := range f.profiles {
		if includeHidden || p.Profile.Listed() {
			out = append(out, *copyDetail(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Profile.CreatedAt.After(out[j].Profile.CreatedAt) })
	return out
}

func (f *fakeDB) Search(_ context.Context, sp store.SearchParams) ([]models.ProfileDetail, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []models.ProfileDetail
	term := strings.ToLower(strings.TrimSpace(sp.Search))
	for _, p := range f.listed(sp.IncludeHidden) {
		if term != "" && !strings.Contains(strings.ToLower(p.FullName), term) &&
			!strings.Contains(strings.ToLower(p.Profile.NIM), term) {
			continue
		}
		if sp.Prodi != "" && !strings.EqualFold(p.Profile.Prodi, sp.Prodi) {
			continue
		}
		matched = append(matched, p)
	}
	total := len(matched)
	if sp.Offset >= total {
		return nil, total, nil
	}
	end := sp.Offset + sp.Limit
	if end > total {
		end = total
	}
	return matched[sp.Offset:end], total, nil
}

func (f *fakeDB) Latest(_ context.Context, n int) ([]models.ProfileDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.listed(false)
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}

func (f *fakeDB) Top(_ context.Context, n int) ([]models.ProfileDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.listed(false)
	sort.SliceStable(out, func(i, j int) bool {
		if len(out[i].Skills) != len(out[j].Skills) {
			return len(out[i].Skills) > len(out[j].Skills)
		}
		return len(out[i].Experiences) > len(out[j].Experiences)
	})
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}

func (f *fakeDB) Statistics(_ context.Context) (store.Statistics, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var st store.Statistics
	skills := map[uuid.UUID]bool{}
	for _, p := range f.listed(false) {
		st.TotalTalents++
		st.TotalExperiences += len(p.Experiences)
		for _, s := range p.Skills {
			skills[s.Skill.ID] = true
		}
	}
	st.TotalSkills = len(skills)
	return st, nil
}

// endorsements

func (f *fakeDB) listedSkill(profileID, studentSkillID uuid.UUID) (*models.StudentSkill, error) {
	p, ok := f.profiles[profileID]
	if !ok || !p.Profile.Listed() {
		return nil, store.ErrNotFound
	}
	i := indexOf(p.Skills, studentSkillID, skillID)
	if i < 0 {
		return nil, store.ErrNotFound
	}
	return &p.Skills[i], nil
}

func (f *fakeDB) Endorse(_ context.Context, profileID, studentSkillID, endorserID uuid.UUID, message string) (*models.Endorsement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, err := f.listedSkill(profileID, studentSkillID)
	if err != nil {
		return nil, err
	}
	for _, e := range f.endorsements[studentSkillID] {
		if e.EndorserID == endorserID {
			return nil, store.ErrDuplicateEndorsement
		}
	}
	endorser := f.profiles[endorserID]
	e := models.Endorsement{
		ID: uuid.New(), StudentSkillID: studentSkillID, EndorserID: endorserID,
		EndorserName: endorser.FullName, EndorserNIM: endorser.Profile.NIM,
		Message: message, CreatedAt: f.tick(),
	}
	f.endorsements[studentSkillID] = append([]models.Endorsement{e}, f.endorsements[studentSkillID]...)
	s.EndorsementCount++
	return &e, nil
}

func (f *fakeDB) List(_ context.Context, profileID, studentSkillID uuid.UUID) ([]models.Endorsement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, err := f.listedSkill(profileID, studentSkillID); err != nil {
		return nil, err
	}
	return append([]models.Endorsement(nil), f.endorsements[studentSkillID]...), nil
}

// fakeCache backs token revocation, OAuth state and the rate limiter
type fakeCache struct {
	mu      sync.Mutex
	values  map[string]string
	counts  map[string]int64
	revoked map[string]bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: map[string]string{}, counts: map[string]int64{}, revoked: map[string]bool{}}
}

func (c *fakeCache) RevokeToken(_ context.Context, jti string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.revoked[jti] = true
	return nil
}

func (c *fakeCache) IsTokenRevoked(_ context.Context, jti string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.revoked[jti], nil
}

func (c *fakeCache) Set(_ context.Context, ns, key string, value interface{}, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[ns+":"+key], _ = value.(string)
	return nil
}

func (c *fakeCache) Get(_ context.Context, ns, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values[ns+":"+key], nil
}

func (c *fakeCache) Delete(_ context.Context, ns, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, ns+":"+key)
	return nil
}

func (c *fakeCache) IncrWithExpire(_ context.Context, ns, key string, _ time.Duration) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[ns+":"+key]++
	return c.counts[ns+":"+key], nil
}

func (c *fakeCache) GetTTL(context.Context, string, string) (time.Duration, error) {
	return time.Minute, nil
}

// pinger is a HealthHandler dependency with a fixed answer
type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }
