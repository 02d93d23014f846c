package domain

import (
	"errors"
	"testing"

	"github.com/irankiai/cinema-admin/internal/model"
	"github.com/irankiai/cinema-admin/internal/service"
)

func ownerProfile(id uint) *model.UserProfile {
	return &model.UserProfile{ID: id, Type: model.TypeUser}
}

func TestCreatePersonalMovieValidation(t *testing.T) {
	tests := []struct {
		name  string
		entry model.PersonalMovie
	}{
		{"unknown state", model.PersonalMovie{UserID: 1, MovieID: 1, State: "dropped", Rating: 5}},
		{"rating above ten", model.PersonalMovie{UserID: 1, MovieID: 1, State: model.StateWatched, Rating: 11}},
		{"rating below zero", model.PersonalMovie{UserID: 1, MovieID: 1, State: model.StateWatched, Rating: -1}},
		{"missing movie", model.PersonalMovie{UserID: 1, State: model.StateToWatch}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewPersonalMovieService(newFakePersonalMovieRepo())
			entry := tt.entry
			err := svc.CreatePersonalMovie(ownerProfile(1), &entry)
			if !errors.Is(err, service.ErrValidation) {
				t.Fatalf("CreatePersonalMovie() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestCreatePersonalMovieRejectsDuplicate(t *testing.T) {
	repo := newFakePersonalMovieRepo(
		model.PersonalMovie{ID: 1, UserID: 1, MovieID: 5, State: model.StateWatched, Rating: 8},
	)
	svc := NewPersonalMovieService(repo)

	err := svc.CreatePersonalMovie(ownerProfile(1), &model.PersonalMovie{
		UserID: 1, MovieID: 5, State: model.StateToWatch,
	})
	if !errors.Is(err, service.ErrValidation) {
		t.Fatalf("CreatePersonalMovie() error = %v, want ErrValidation for duplicate", err)
	}

	// Same movie for another user is fine.
	err = svc.CreatePersonalMovie(ownerProfile(2), &model.PersonalMovie{
		UserID: 2, MovieID: 5, State: model.StateToWatch,
	})
	if err != nil {
		t.Fatalf("CreatePersonalMovie() for second user error = %v", err)
	}
}

func TestCreatePersonalMovieOwnerScope(t *testing.T) {
	svc := NewPersonalMovieService(newFakePersonalMovieRepo())
	entry := &model.PersonalMovie{UserID: 2, MovieID: 1, State: model.StateToWatch}

	if err := svc.CreatePersonalMovie(ownerProfile(1), entry); !errors.Is(err, service.ErrPermissionDenied) {
		t.Fatalf("non-owner create error = %v, want ErrPermissionDenied", err)
	}

	admin := &model.UserProfile{ID: 1, Type: model.TypeAdmin}
	if err := svc.CreatePersonalMovie(admin, entry); err != nil {
		t.Fatalf("admin create for another user error = %v", err)
	}
}

func TestUpdatePersonalMovieReplacesOnlyMutableFields(t *testing.T) {
	repo := newFakePersonalMovieRepo(
		model.PersonalMovie{ID: 1, UserID: 3, MovieID: 5, State: model.StateToWatch, Rating: 0},
	)
	svc := NewPersonalMovieService(repo)

	err := svc.UpdatePersonalMovie(ownerProfile(3), &model.PersonalMovie{
		ID:     1,
		UserID: 9, // ignored
		State:  model.StateWatched,
		Rating: 7,
		Review: "held up",
	})
	if err != nil {
		t.Fatalf("UpdatePersonalMovie() error = %v", err)
	}

	got, _ := repo.GetByID(1)
	if got.UserID != 3 || got.MovieID != 5 {
		t.Errorf("owner/movie changed on update: %+v", got)
	}
	if got.State != model.StateWatched || got.Rating != 7 || got.Review != "held up" {
		t.Errorf("mutable fields not applied: %+v", got)
	}
}

func TestDeletePersonalMovieNonOwnerDenied(t *testing.T) {
	repo := newFakePersonalMovieRepo(
		model.PersonalMovie{ID: 1, UserID: 3, MovieID: 5, State: model.StateWatched},
	)
	svc := NewPersonalMovieService(repo)

	if err := svc.DeletePersonalMovie(ownerProfile(4), 1); !errors.Is(err, service.ErrPermissionDenied) {
		t.Fatalf("DeletePersonalMovie() error = %v, want ErrPermissionDenied", err)
	}
	if err := svc.DeletePersonalMovie(ownerProfile(3), 1); err != nil {
		t.Fatalf("owner delete error = %v", err)
	}
	if err := svc.DeletePersonalMovie(ownerProfile(3), 1); !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("second delete error = %v, want ErrNotFound", err)
	}
}
