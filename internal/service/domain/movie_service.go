package domain

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/irankiai/cinema-admin/internal/model"
	"github.com/irankiai/cinema-admin/internal/repository"
	"github.com/irankiai/cinema-admin/internal/service"
)

type MovieService interface {
	CreateMovie(movie *model.Movie) error
	GetMovieByID(id uint) (*model.Movie, error)
	GetAllMovies() ([]model.Movie, error)
	UpdateMovie(movie *model.Movie) error
	DeleteMovie(id uint) error
}

type movieService struct {
	db             service.TxRunner
	repo           repository.MovieRepo
	personalMovies repository.PersonalMovieRepo
}

var _ MovieService = (*movieService)(nil)

func NewMovieService(db service.TxRunner, movieRepo repository.MovieRepo, personalMovieRepo repository.PersonalMovieRepo) *movieService {
	return &movieService{
		db:             db,
		repo:           movieRepo,
		personalMovies: personalMovieRepo,
	}
}

func (s *movieService) CreateMovie(movie *model.Movie) error {
	if strings.TrimSpace(movie.Title) == "" {
		return fmt.Errorf("%w: title is required", service.ErrValidation)
	}
	return s.repo.Create(movie)
}

func (s *movieService) GetMovieByID(id uint) (*model.Movie, error) {
	movie, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return movie, nil
}

func (s *movieService) GetAllMovies() ([]model.Movie, error) {
	return s.repo.ListAll()
}

// UpdateMovie replaces title, director and release date. The genre set is
// only settable at creation, matching the update contract.
func (s *movieService) UpdateMovie(movie *model.Movie) error {
	if strings.TrimSpace(movie.Title) == "" {
		return fmt.Errorf("%w: title is required", service.ErrValidation)
	}
	existing, err := s.repo.GetByID(movie.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return service.ErrNotFound
		}
		return err
	}
	existing.Title = movie.Title
	existing.Director = movie.Director
	existing.ReleaseDate = movie.ReleaseDate
	return s.repo.Update(existing)
}

// DeleteMovie removes the movie and every personal entry referencing it in
// one transaction; a half-applied cascade never commits.
func (s *movieService) DeleteMovie(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Delete(id); err != nil {
			return err
		}
		return s.personalMovies.WithTx(tx).DeleteByMovieID(id)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return service.ErrNotFound
	}
	return err
}
