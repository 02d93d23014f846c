package domain

import (
	"context"
	"database/sql"
	"sort"

	"gorm.io/gorm"

	"github.com/irankiai/cinema-admin/internal/model"
	"github.com/irankiai/cinema-admin/internal/mq"
	"github.com/irankiai/cinema-admin/internal/payment"
	"github.com/irankiai/cinema-admin/internal/repository"
)

// fakeTx satisfies service.TxRunner by running the callback outside any
// transaction; the fake repositories ignore the nil tx handle.
type fakeTx struct{}

func (fakeTx) Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error {
	return fc(nil)
}

type fakeMovieRepo struct {
	movies map[uint]model.Movie
	nextID uint
}

var _ repository.MovieRepo = (*fakeMovieRepo)(nil)

func newFakeMovieRepo(movies ...model.Movie) *fakeMovieRepo {
	r := &fakeMovieRepo{movies: make(map[uint]model.Movie), nextID: 1}
	for _, m := range movies {
		r.movies[m.ID] = m
		if m.ID >= r.nextID {
			r.nextID = m.ID + 1
		}
	}
	return r
}

func (r *fakeMovieRepo) WithTx(tx *gorm.DB) repository.MovieRepo { return r }

func (r *fakeMovieRepo) Create(movie *model.Movie) error {
	movie.ID = r.nextID
	r.nextID++
	r.movies[movie.ID] = *movie
	return nil
}

func (r *fakeMovieRepo) GetByID(id uint) (*model.Movie, error) {
	m, ok := r.movies[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &m, nil
}

func (r *fakeMovieRepo) ListAll() ([]model.Movie, error) {
	ids := make([]uint, 0, len(r.movies))
	for id := range r.movies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]model.Movie, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.movies[id])
	}
	return out, nil
}

func (r *fakeMovieRepo) Update(movie *model.Movie) error {
	if _, ok := r.movies[movie.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.movies[movie.ID] = *movie
	return nil
}

func (r *fakeMovieRepo) Delete(id uint) error {
	if _, ok := r.movies[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.movies, id)
	return nil
}

type fakePersonalMovieRepo struct {
	entries map[uint]model.PersonalMovie
	nextID  uint
}

var _ repository.PersonalMovieRepo = (*fakePersonalMovieRepo)(nil)

func newFakePersonalMovieRepo(entries ...model.PersonalMovie) *fakePersonalMovieRepo {
	r := &fakePersonalMovieRepo{entries: make(map[uint]model.PersonalMovie), nextID: 1}
	for _, e := range entries {
		r.entries[e.ID] = e
		if e.ID >= r.nextID {
			r.nextID = e.ID + 1
		}
	}
	return r
}

func (r *fakePersonalMovieRepo) WithTx(tx *gorm.DB) repository.PersonalMovieRepo { return r }

func (r *fakePersonalMovieRepo) Create(entry *model.PersonalMovie) error {
	entry.ID = r.nextID
	r.nextID++
	r.entries[entry.ID] = *entry
	return nil
}

func (r *fakePersonalMovieRepo) GetByID(id uint) (*model.PersonalMovie, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &e, nil
}

func (r *fakePersonalMovieRepo) GetByUserAndMovie(userID, movieID uint) (*model.PersonalMovie, error) {
	for _, e := range r.entries {
		if e.UserID == userID && e.MovieID == movieID {
			e := e
			return &e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePersonalMovieRepo) ListAll() ([]model.PersonalMovie, error) {
	ids := make([]uint, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]model.PersonalMovie, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.entries[id])
	}
	return out, nil
}

func (r *fakePersonalMovieRepo) Update(entry *model.PersonalMovie) error {
	if _, ok := r.entries[entry.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.entries[entry.ID] = *entry
	return nil
}

func (r *fakePersonalMovieRepo) Delete(id uint) error {
	if _, ok := r.entries[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.entries, id)
	return nil
}

func (r *fakePersonalMovieRepo) DeleteByMovieID(movieID uint) error {
	for id, e := range r.entries {
		if e.MovieID == movieID {
			delete(r.entries, id)
		}
	}
	return nil
}

func (r *fakePersonalMovieRepo) DeleteByUserID(userID uint) error {
	for id, e := range r.entries {
		if e.UserID == userID {
			delete(r.entries, id)
		}
	}
	return nil
}

type fakeScreeningRepo struct {
	screenings map[uint]model.Screening
	nextID     uint
	decrements []uint
}

var _ repository.ScreeningRepo = (*fakeScreeningRepo)(nil)

func newFakeScreeningRepo(screenings ...model.Screening) *fakeScreeningRepo {
	r := &fakeScreeningRepo{screenings: make(map[uint]model.Screening), nextID: 1}
	for _, s := range screenings {
		r.screenings[s.ID] = s
		if s.ID >= r.nextID {
			r.nextID = s.ID + 1
		}
	}
	return r
}

func (r *fakeScreeningRepo) WithTx(tx *gorm.DB) repository.ScreeningRepo { return r }

func (r *fakeScreeningRepo) Create(screening *model.Screening) error {
	screening.ID = r.nextID
	r.nextID++
	r.screenings[screening.ID] = *screening
	return nil
}

func (r *fakeScreeningRepo) GetByID(id uint) (*model.Screening, error) {
	s, ok := r.screenings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &s, nil
}

func (r *fakeScreeningRepo) ListAll() ([]model.Screening, error) {
	ids := make([]uint, 0, len(r.screenings))
	for id := range r.screenings {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]model.Screening, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.screenings[id])
	}
	return out, nil
}

func (r *fakeScreeningRepo) Update(screening *model.Screening) error {
	if _, ok := r.screenings[screening.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.screenings[screening.ID] = *screening
	return nil
}

func (r *fakeScreeningRepo) Delete(id uint) error {
	if _, ok := r.screenings[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.screenings, id)
	return nil
}

func (r *fakeScreeningRepo) DeleteByCinemaID(cinemaID uint) error {
	for id, s := range r.screenings {
		if s.CinemaID == cinemaID {
			delete(r.screenings, id)
		}
	}
	return nil
}

func (r *fakeScreeningRepo) DecrementTickets(id uint) error {
	r.decrements = append(r.decrements, id)
	s, ok := r.screenings[id]
	if ok && s.TicketCount > 0 {
		s.TicketCount--
		r.screenings[id] = s
	}
	return nil
}

type fakeCinemaRepo struct {
	cinemas map[uint]model.Cinema
	nextID  uint
}

var _ repository.CinemaRepo = (*fakeCinemaRepo)(nil)

func newFakeCinemaRepo(cinemas ...model.Cinema) *fakeCinemaRepo {
	r := &fakeCinemaRepo{cinemas: make(map[uint]model.Cinema), nextID: 1}
	for _, c := range cinemas {
		r.cinemas[c.ID] = c
		if c.ID >= r.nextID {
			r.nextID = c.ID + 1
		}
	}
	return r
}

func (r *fakeCinemaRepo) WithTx(tx *gorm.DB) repository.CinemaRepo { return r }

func (r *fakeCinemaRepo) Create(cinema *model.Cinema) error {
	cinema.ID = r.nextID
	r.nextID++
	r.cinemas[cinema.ID] = *cinema
	return nil
}

func (r *fakeCinemaRepo) GetByID(id uint) (*model.Cinema, error) {
	c, ok := r.cinemas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (r *fakeCinemaRepo) ListAll() ([]model.Cinema, error) {
	ids := make([]uint, 0, len(r.cinemas))
	for id := range r.cinemas {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]model.Cinema, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.cinemas[id])
	}
	return out, nil
}

func (r *fakeCinemaRepo) Update(cinema *model.Cinema) error {
	if _, ok := r.cinemas[cinema.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.cinemas[cinema.ID] = *cinema
	return nil
}

func (r *fakeCinemaRepo) Delete(id uint) error {
	if _, ok := r.cinemas[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.cinemas, id)
	return nil
}

type fakeProfileRepo struct {
	profiles map[uint]model.UserProfile
}

var _ repository.UserProfileRepo = (*fakeProfileRepo)(nil)

func newFakeProfileRepo(profiles ...model.UserProfile) *fakeProfileRepo {
	r := &fakeProfileRepo{profiles: make(map[uint]model.UserProfile)}
	for _, p := range profiles {
		r.profiles[p.ID] = p
	}
	return r
}

func (r *fakeProfileRepo) WithTx(tx *gorm.DB) repository.UserProfileRepo { return r }

func (r *fakeProfileRepo) Create(profile *model.UserProfile) error {
	r.profiles[profile.ID] = *profile
	return nil
}

func (r *fakeProfileRepo) GetByID(id uint) (*model.UserProfile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (r *fakeProfileRepo) ListAll() ([]model.UserProfile, error) {
	ids := make([]uint, 0, len(r.profiles))
	for id := range r.profiles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]model.UserProfile, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.profiles[id])
	}
	return out, nil
}

func (r *fakeProfileRepo) ListByCinemaID(cinemaID uint) ([]model.UserProfile, error) {
	var out []model.UserProfile
	for _, p := range r.profiles {
		if p.CinemaID != nil && *p.CinemaID == cinemaID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeProfileRepo) Update(profile *model.UserProfile) error {
	if _, ok := r.profiles[profile.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.profiles[profile.ID] = *profile
	return nil
}

func (r *fakeProfileRepo) Delete(id uint) error {
	if _, ok := r.profiles[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.profiles, id)
	return nil
}

func (r *fakeProfileRepo) DeleteByCinemaID(cinemaID uint) error {
	for id, p := range r.profiles {
		if p.CinemaID != nil && *p.CinemaID == cinemaID {
			delete(r.profiles, id)
		}
	}
	return nil
}

type fakeAccountRepo struct {
	accounts map[uint]model.Account
	nextID   uint
}

var _ repository.AccountRepo = (*fakeAccountRepo)(nil)

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[uint]model.Account), nextID: 1}
}

func (r *fakeAccountRepo) WithTx(tx *gorm.DB) repository.AccountRepo { return r }

func (r *fakeAccountRepo) Create(account *model.Account) error {
	account.ID = r.nextID
	r.nextID++
	r.accounts[account.ID] = *account
	return nil
}

func (r *fakeAccountRepo) GetByID(id uint) (*model.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &a, nil
}

func (r *fakeAccountRepo) GetByEmail(email string) (*model.Account, error) {
	for _, a := range r.accounts {
		if a.Email == email {
			a := a
			return &a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAccountRepo) Update(account *model.Account) error {
	if _, ok := r.accounts[account.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.accounts[account.ID] = *account
	return nil
}

func (r *fakeAccountRepo) Delete(id uint) error {
	if _, ok := r.accounts[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.accounts, id)
	return nil
}

type fakeGuard struct {
	held map[[2]uint]bool
}

func newFakeGuard() *fakeGuard {
	return &fakeGuard{held: make(map[[2]uint]bool)}
}

func (g *fakeGuard) AcquireCheckoutGuard(principalID, screeningID uint) (bool, error) {
	key := [2]uint{principalID, screeningID}
	if g.held[key] {
		return false, nil
	}
	g.held[key] = true
	return true, nil
}

func (g *fakeGuard) ReleaseCheckoutGuard(principalID, screeningID uint) error {
	delete(g.held, [2]uint{principalID, screeningID})
	return nil
}

type fakePaymentProvider struct {
	sessions []payment.LineItem
	paid     map[string]bool
	fail     error
}

func (p *fakePaymentProvider) CreateSession(ctx context.Context, item payment.LineItem) (string, error) {
	if p.fail != nil {
		return "", p.fail
	}
	p.sessions = append(p.sessions, item)
	return "cs_test_1", nil
}

func (p *fakePaymentProvider) SessionPaid(ctx context.Context, sessionID string) (bool, error) {
	if p.fail != nil {
		return false, p.fail
	}
	return p.paid[sessionID], nil
}

type fakePublisher struct {
	published []mq.TicketSoldMessage
}

func (p *fakePublisher) PublishTicketSold(msg mq.TicketSoldMessage) error {
	p.published = append(p.published, msg)
	return nil
}
