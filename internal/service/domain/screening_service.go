package domain

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/irankiai/cinema-admin/internal/model"
	"github.com/irankiai/cinema-admin/internal/repository"
	"github.com/irankiai/cinema-admin/internal/service"
)

type ScreeningService interface {
	CreateScreening(actor *model.UserProfile, screening *model.Screening) error
	GetScreeningByID(id uint) (*model.Screening, error)
	GetAllScreenings() ([]model.Screening, error)
	UpdateScreening(actor *model.UserProfile, screening *model.Screening) error
	DeleteScreening(actor *model.UserProfile, id uint) error
}

type screeningService struct {
	repo repository.ScreeningRepo
}

var _ ScreeningService = (*screeningService)(nil)

func NewScreeningService(screeningRepo repository.ScreeningRepo) *screeningService {
	return &screeningService{
		repo: screeningRepo,
	}
}

// workerScope rejects cinema workers acting on screenings of a cinema other
// than their own. Admins pass unconditionally.
func workerScope(actor *model.UserProfile, cinemaID uint) error {
	if actor == nil {
		return service.ErrUnauthenticated
	}
	if actor.Type != model.TypeCinemaWorker {
		return nil
	}
	if actor.CinemaID == nil || *actor.CinemaID != cinemaID {
		return service.ErrPermissionDenied
	}
	return nil
}

func validateScreening(screening *model.Screening) error {
	if screening.MovieID == 0 {
		return fmt.Errorf("%w: movieId is required", service.ErrValidation)
	}
	if screening.CinemaID == 0 {
		return fmt.Errorf("%w: cinemaId is required", service.ErrValidation)
	}
	if screening.Date.IsZero() {
		return fmt.Errorf("%w: date is required", service.ErrValidation)
	}
	return nil
}

func (s *screeningService) CreateScreening(actor *model.UserProfile, screening *model.Screening) error {
	if err := validateScreening(screening); err != nil {
		return err
	}
	if err := workerScope(actor, screening.CinemaID); err != nil {
		return err
	}
	return s.repo.Create(screening)
}

func (s *screeningService) GetScreeningByID(id uint) (*model.Screening, error) {
	screening, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return screening, nil
}

func (s *screeningService) GetAllScreenings() ([]model.Screening, error) {
	return s.repo.ListAll()
}

func (s *screeningService) UpdateScreening(actor *model.UserProfile, screening *model.Screening) error {
	if err := validateScreening(screening); err != nil {
		return err
	}
	existing, err := s.GetScreeningByID(screening.ID)
	if err != nil {
		return err
	}
	// A worker must own both the screening's current cinema and the one it
	// is being moved to.
	if err := workerScope(actor, existing.CinemaID); err != nil {
		return err
	}
	if err := workerScope(actor, screening.CinemaID); err != nil {
		return err
	}
	return s.repo.Update(screening)
}

func (s *screeningService) DeleteScreening(actor *model.UserProfile, id uint) error {
	existing, err := s.GetScreeningByID(id)
	if err != nil {
		return err
	}
	if err := workerScope(actor, existing.CinemaID); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return service.ErrNotFound
		}
		return err
	}
	return nil
}
