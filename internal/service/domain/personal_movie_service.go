package domain

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/irankiai/cinema-admin/internal/model"
	"github.com/irankiai/cinema-admin/internal/repository"
	"github.com/irankiai/cinema-admin/internal/service"
)

type PersonalMovieService interface {
	CreatePersonalMovie(actor *model.UserProfile, entry *model.PersonalMovie) error
	GetAllPersonalMovies() ([]model.PersonalMovie, error)
	UpdatePersonalMovie(actor *model.UserProfile, entry *model.PersonalMovie) error
	DeletePersonalMovie(actor *model.UserProfile, id uint) error
}

type personalMovieService struct {
	repo repository.PersonalMovieRepo
}

var _ PersonalMovieService = (*personalMovieService)(nil)

func NewPersonalMovieService(personalMovieRepo repository.PersonalMovieRepo) *personalMovieService {
	return &personalMovieService{
		repo: personalMovieRepo,
	}
}

// ownerScope allows the entry's owner and admins.
func ownerScope(actor *model.UserProfile, ownerID uint) error {
	if actor == nil {
		return service.ErrUnauthenticated
	}
	if actor.Type == model.TypeAdmin || actor.ID == ownerID {
		return nil
	}
	return service.ErrPermissionDenied
}

func validateEntry(entry *model.PersonalMovie) error {
	switch entry.State {
	case model.StateToWatch, model.StateWatched:
	default:
		return fmt.Errorf("%w: unknown state %q", service.ErrValidation, entry.State)
	}
	if entry.Rating < 0 || entry.Rating > 10 {
		return fmt.Errorf("%w: rating must be between 0 and 10", service.ErrValidation)
	}
	return nil
}

func (s *personalMovieService) CreatePersonalMovie(actor *model.UserProfile, entry *model.PersonalMovie) error {
	if err := ownerScope(actor, entry.UserID); err != nil {
		return err
	}
	if entry.MovieID == 0 || entry.UserID == 0 {
		return fmt.Errorf("%w: movieId and userId are required", service.ErrValidation)
	}
	if err := validateEntry(entry); err != nil {
		return err
	}
	// One entry per (user, movie).
	if _, err := s.repo.GetByUserAndMovie(entry.UserID, entry.MovieID); err == nil {
		return fmt.Errorf("%w: personal entry for this movie already exists", service.ErrValidation)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.repo.Create(entry)
}

func (s *personalMovieService) GetAllPersonalMovies() ([]model.PersonalMovie, error) {
	return s.repo.ListAll()
}

// UpdatePersonalMovie replaces state, rating and review; the owning user
// and movie are fixed at creation.
func (s *personalMovieService) UpdatePersonalMovie(actor *model.UserProfile, entry *model.PersonalMovie) error {
	if err := validateEntry(entry); err != nil {
		return err
	}
	existing, err := s.repo.GetByID(entry.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return service.ErrNotFound
		}
		return err
	}
	if err := ownerScope(actor, existing.UserID); err != nil {
		return err
	}
	existing.State = entry.State
	existing.Rating = entry.Rating
	existing.Review = entry.Review
	return s.repo.Update(existing)
}

func (s *personalMovieService) DeletePersonalMovie(actor *model.UserProfile, id uint) error {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return service.ErrNotFound
		}
		return err
	}
	if err := ownerScope(actor, existing.UserID); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
