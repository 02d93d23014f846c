package domain

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/irankiai/cinema-admin/internal/identity"
	"github.com/irankiai/cinema-admin/internal/model"
	"github.com/irankiai/cinema-admin/internal/service"
)

func TestDeleteCinemaCascades(t *testing.T) {
	cinemaID := uint(4)
	otherCinema := uint(5)

	cinemas := newFakeCinemaRepo(
		model.Cinema{ID: 4, Name: "Roxy"},
		model.Cinema{ID: 5, Name: "Forum"},
	)
	screenings := newFakeScreeningRepo(
		model.Screening{ID: 1, MovieID: 1, CinemaID: 4, Date: time.Now()},
		model.Screening{ID: 2, MovieID: 1, CinemaID: 5, Date: time.Now()},
	)
	accounts := newFakeAccountRepo()
	accounts.Create(&model.Account{Email: "w1@example.com"}) // id 1
	accounts.Create(&model.Account{Email: "w2@example.com"}) // id 2
	profiles := newFakeProfileRepo(
		model.UserProfile{ID: 1, Type: model.TypeCinemaWorker, CinemaID: &cinemaID},
		model.UserProfile{ID: 2, Type: model.TypeCinemaWorker, CinemaID: &otherCinema},
	)
	provider := identity.NewProvider(accounts, testSecret, time.Hour, bcrypt.MinCost)
	svc := NewCinemaService(fakeTx{}, cinemas, screenings, profiles, provider, zap.NewNop())

	if err := svc.DeleteCinema(4); err != nil {
		t.Fatalf("DeleteCinema() error = %v", err)
	}

	if _, err := svc.GetCinemaByID(4); !errors.Is(err, service.ErrNotFound) {
		t.Error("cinema 4 survived delete")
	}
	left, _ := screenings.ListAll()
	if len(left) != 1 || left[0].CinemaID != 5 {
		t.Errorf("screenings after delete = %v, want only cinema 5's", left)
	}
	if _, err := profiles.GetByID(1); err == nil {
		t.Error("worker profile at deleted cinema survived")
	}
	if _, err := accounts.GetByID(1); err == nil {
		t.Error("worker identity account at deleted cinema survived")
	}
	if _, err := profiles.GetByID(2); err != nil {
		t.Error("worker at another cinema was removed")
	}
	if _, err := accounts.GetByID(2); err != nil {
		t.Error("account of worker at another cinema was removed")
	}
}

func TestDeleteCinemaNotFound(t *testing.T) {
	provider := identity.NewProvider(newFakeAccountRepo(), testSecret, time.Hour, bcrypt.MinCost)
	svc := NewCinemaService(fakeTx{}, newFakeCinemaRepo(), newFakeScreeningRepo(),
		newFakeProfileRepo(), provider, zap.NewNop())

	if err := svc.DeleteCinema(9); !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("DeleteCinema() error = %v, want ErrNotFound", err)
	}
}
