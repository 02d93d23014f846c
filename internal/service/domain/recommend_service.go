package domain

import (
	"github.com/irankiai/cinema-admin/internal/recommend"
	"github.com/irankiai/cinema-admin/internal/repository"
	"github.com/irankiai/cinema-admin/internal/service"
)

type RecommendService interface {
	GetRecommendations(userID uint, genreIDs []uint) ([]recommend.ScoredMovie, error)
}

type recommendService struct {
	personalMovies repository.PersonalMovieRepo
	movies         repository.MovieRepo
}

var _ RecommendService = (*recommendService)(nil)

func NewRecommendService(personalMovieRepo repository.PersonalMovieRepo, movieRepo repository.MovieRepo) *recommendService {
	return &recommendService{
		personalMovies: personalMovieRepo,
		movies:         movieRepo,
	}
}

// GetRecommendations recomputes the ranking from scratch on every call;
// nothing is persisted.
func (s *recommendService) GetRecommendations(userID uint, genreIDs []uint) ([]recommend.ScoredMovie, error) {
	if userID == 0 {
		return nil, service.ErrUnauthenticated
	}
	entries, err := s.personalMovies.ListAll()
	if err != nil {
		return nil, err
	}
	catalog, err := s.movies.ListAll()
	if err != nil {
		return nil, err
	}
	return recommend.Recommend(userID, entries, catalog, genreIDs), nil
}
