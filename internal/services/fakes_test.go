package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"eventboard/internal/domain"
)

// fakeEventRepo is an in-memory EventRepository for tests.
type fakeEventRepo struct {
	byID   map[string]*domain.Event
	order  []string
	nextID int

	createErr error
	deleteErr error
	listErr   error

	// freeCounters mirrors the organizer counter updates the real repository
	// performs transactionally.
	freeCounters map[string]int
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{
		byID:         make(map[string]*domain.Event),
		nextID:       1,
		freeCounters: make(map[string]int),
	}
}

func (f *fakeEventRepo) add(e *domain.Event) *domain.Event {
	e.ID = fmt.Sprintf("ev-%d", f.nextID)
	f.nextID++
	f.byID[e.ID] = e
	f.order = append(f.order, e.ID)
	return e
}

func (f *fakeEventRepo) CreateWithQuota(ctx context.Context, e *domain.Event, freeLimit int) error {
	if f.createErr != nil {
		return f.createErr
	}
	if freeLimit >= 0 && f.freeCounters[e.OrganizerID] >= freeLimit {
		return domain.ErrQuotaExceeded
	}
	f.freeCounters[e.OrganizerID]++
	f.add(e)
	return nil
}

func (f *fakeEventRepo) DeleteCascade(ctx context.Context, eventID, organizerID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.byID[eventID]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, eventID)
	for i, id := range f.order {
		if id == eventID {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	if f.freeCounters[organizerID] > 0 {
		f.freeCounters[organizerID]--
	}
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if e, ok := f.byID[id]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	for _, id := range f.order {
		if f.byID[id].Slug == slug {
			return f.byID[id], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) ListByOrganizer(ctx context.Context, organizerID string) ([]*domain.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*domain.Event
	for _, id := range f.order {
		if f.byID[id].OrganizerID == organizerID {
			out = append(out, f.byID[id])
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeEventRepo) upcoming() []*domain.Event {
	now := time.Now()
	var out []*domain.Event
	for _, id := range f.order {
		if !f.byID[id].StartDate.Before(now) {
			out = append(out, f.byID[id])
		}
	}
	return out
}

func truncate(events []*domain.Event, limit int) []*domain.Event {
	if len(events) > limit {
		return events[:limit]
	}
	return events
}

func (f *fakeEventRepo) ListUpcomingByPopularity(ctx context.Context, limit int) ([]*domain.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	events := f.upcoming()
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].RegistrationCount > events[j].RegistrationCount
	})
	return truncate(events, limit), nil
}

func (f *fakeEventRepo) ListUpcoming(ctx context.Context, limit int) ([]*domain.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return truncate(f.upcoming(), limit), nil
}

func (f *fakeEventRepo) ListUpcomingByCity(ctx context.Context, city string, limit int) ([]*domain.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*domain.Event
	for _, e := range f.upcoming() {
		if strings.EqualFold(e.City, city) {
			out = append(out, e)
		}
	}
	return truncate(out, limit), nil
}

func (f *fakeEventRepo) ListUpcomingByState(ctx context.Context, state string, limit int) ([]*domain.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*domain.Event
	for _, e := range f.upcoming() {
		if e.State != nil && strings.EqualFold(*e.State, state) {
			out = append(out, e)
		}
	}
	return truncate(out, limit), nil
}

func (f *fakeEventRepo) ListUpcomingByCategory(ctx context.Context, category string, limit int) ([]*domain.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*domain.Event
	for _, e := range f.upcoming() {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return truncate(out, limit), nil
}

func (f *fakeEventRepo) CountUpcomingByCategory(ctx context.Context) (map[string]int, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	counts := make(map[string]int)
	for _, e := range f.upcoming() {
		counts[e.Category]++
	}
	return counts, nil
}

func (f *fakeEventRepo) SearchUpcoming(ctx context.Context, query string, limit int) ([]*domain.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*domain.Event
	for _, e := range f.upcoming() {
		if strings.Contains(strings.ToLower(e.Title), strings.ToLower(query)) {
			out = append(out, e)
		}
	}
	return truncate(out, limit), nil
}

// fakeUserRepo is an in-memory UserRepository for tests.
type fakeUserRepo struct {
	byToken map[string]*domain.User
	nextID  int
	err     error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byToken: make(map[string]*domain.User), nextID: 1}
}

func (f *fakeUserRepo) UpsertByToken(ctx context.Context, user *domain.User) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if existing, ok := f.byToken[user.TokenIdentifier]; ok {
		return existing, nil
	}
	user.ID = fmt.Sprintf("u-%d", f.nextID)
	f.nextID++
	f.byToken[user.TokenIdentifier] = user
	return user, nil
}

func (f *fakeUserRepo) GetByToken(ctx context.Context, tokenIdentifier string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.byToken[tokenIdentifier]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	for _, u := range f.byToken {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) CompleteOnboarding(ctx context.Context, userID string, loc domain.Location, interests []string) (*domain.User, error) {
	for _, u := range f.byToken {
		if u.ID == userID {
			u.Location = &loc
			u.Interests = interests
			u.HasCompletedOnboarding = true
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// fakeRegistrationRepo is an in-memory RegistrationRepository for tests. It
// mirrors the transactional counter updates of the real repository.
type fakeRegistrationRepo struct {
	regs      []*domain.Registration
	nextID    int
	events    *fakeEventRepo
	createErr error
}

func newFakeRegistrationRepo(events *fakeEventRepo) *fakeRegistrationRepo {
	return &fakeRegistrationRepo{events: events, nextID: 1}
}

func (f *fakeRegistrationRepo) Create(ctx context.Context, reg *domain.Registration) error {
	if f.createErr != nil {
		return f.createErr
	}
	event, ok := f.events.byID[reg.EventID]
	if !ok {
		return domain.ErrNotFound
	}
	reg.ID = fmt.Sprintf("reg-%d", f.nextID)
	f.nextID++
	f.regs = append(f.regs, reg)
	event.RegistrationCount++
	return nil
}

func (f *fakeRegistrationRepo) Delete(ctx context.Context, eventID, userID string) error {
	for i, reg := range f.regs {
		if reg.EventID == eventID && reg.UserID == userID {
			f.regs = append(f.regs[:i], f.regs[i+1:]...)
			if e, ok := f.events.byID[eventID]; ok && e.RegistrationCount > 0 {
				e.RegistrationCount--
			}
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeRegistrationRepo) GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Registration, error) {
	for _, reg := range f.regs {
		if reg.EventID == eventID && reg.UserID == userID {
			return reg, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRegistrationRepo) ListByUserID(ctx context.Context, userID string) ([]*domain.Registration, error) {
	var out []*domain.Registration
	for _, reg := range f.regs {
		if reg.UserID == userID {
			out = append(out, reg)
		}
	}
	return out, nil
}

// fakePublisher records published registration messages.
type fakePublisher struct {
	messages []domain.RegistrationMessage
	err      error
}

func (f *fakePublisher) PublishRegistration(msg domain.RegistrationMessage) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, msg)
	return nil
}
