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

type GenreService interface {
	CreateGenre(genre *model.Genre) error
	GetAllGenres() ([]model.Genre, error)
	DeleteGenre(id uint) error
}

type genreService struct {
	repo repository.GenreRepo
}

var _ GenreService = (*genreService)(nil)

func NewGenreService(genreRepo repository.GenreRepo) *genreService {
	return &genreService{
		repo: genreRepo,
	}
}

func (s *genreService) CreateGenre(genre *model.Genre) error {
	if strings.TrimSpace(genre.Name) == "" {
		return fmt.Errorf("%w: name is required", service.ErrValidation)
	}
	return s.repo.Create(genre)
}

func (s *genreService) GetAllGenres() ([]model.Genre, error) {
	return s.repo.ListAll()
}

// DeleteGenre does not touch movies that still carry the genre id; the
// store enforces no references, so those ids simply dangle.
func (s *genreService) DeleteGenre(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return service.ErrNotFound
		}
		return err
	}
	return nil
}
