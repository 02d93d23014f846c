package domain

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/irankiai/cinema-admin/internal/identity"
	"github.com/irankiai/cinema-admin/internal/model"
	"github.com/irankiai/cinema-admin/internal/repository"
	"github.com/irankiai/cinema-admin/internal/service"
)

type CinemaService interface {
	CreateCinema(cinema *model.Cinema) error
	GetCinemaByID(id uint) (*model.Cinema, error)
	GetAllCinemas() ([]model.Cinema, error)
	UpdateCinema(cinema *model.Cinema) error
	DeleteCinema(id uint) error
}

type cinemaService struct {
	db         service.TxRunner
	repo       repository.CinemaRepo
	screenings repository.ScreeningRepo
	profiles   repository.UserProfileRepo
	provider   *identity.Provider
	logger     *zap.Logger
}

var _ CinemaService = (*cinemaService)(nil)

func NewCinemaService(db service.TxRunner, cinemaRepo repository.CinemaRepo, screeningRepo repository.ScreeningRepo,
	profileRepo repository.UserProfileRepo, provider *identity.Provider, logger *zap.Logger) *cinemaService {
	return &cinemaService{
		db:         db,
		repo:       cinemaRepo,
		screenings: screeningRepo,
		profiles:   profileRepo,
		provider:   provider,
		logger:     logger,
	}
}

func (s *cinemaService) CreateCinema(cinema *model.Cinema) error {
	if strings.TrimSpace(cinema.Name) == "" {
		return fmt.Errorf("%w: name is required", service.ErrValidation)
	}
	return s.repo.Create(cinema)
}

func (s *cinemaService) GetCinemaByID(id uint) (*model.Cinema, error) {
	cinema, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return cinema, nil
}

func (s *cinemaService) GetAllCinemas() ([]model.Cinema, error) {
	return s.repo.ListAll()
}

func (s *cinemaService) UpdateCinema(cinema *model.Cinema) error {
	if strings.TrimSpace(cinema.Name) == "" {
		return fmt.Errorf("%w: name is required", service.ErrValidation)
	}
	if _, err := s.repo.GetByID(cinema.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return service.ErrNotFound
		}
		return err
	}
	return s.repo.Update(cinema)
}

// DeleteCinema cascades to the cinema's screenings and worker profiles in
// one transaction. The workers' identity accounts live with the identity
// provider and are removed after the commit; a failure there leaves an
// orphaned account, which is logged rather than rolled back.
func (s *cinemaService) DeleteCinema(id uint) error {
	workers, err := s.profiles.ListByCinemaID(id)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Delete(id); err != nil {
			return err
		}
		if err := s.screenings.WithTx(tx).DeleteByCinemaID(id); err != nil {
			return err
		}
		return s.profiles.WithTx(tx).DeleteByCinemaID(id)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return service.ErrNotFound
		}
		return err
	}

	for _, w := range workers {
		if err := s.provider.DeleteAccount(w.ID); err != nil {
			s.logger.Error("failed to remove identity account for deleted worker",
				zap.Uint("user_id", w.ID), zap.Error(err))
		}
	}
	return nil
}
