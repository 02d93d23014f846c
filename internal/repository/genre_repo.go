package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/irankiai/cinema-admin/internal/model"
)

type GenreRepo interface {
	WithTx(tx *gorm.DB) GenreRepo
	Create(genre *model.Genre) error
	ListAll() ([]model.Genre, error)
	Delete(id uint) error
}

type genreRepoGorm struct {
	db *gorm.DB
}

var _ GenreRepo = (*genreRepoGorm)(nil)

func NewGenreRepoGorm(db *gorm.DB) *genreRepoGorm {
	return &genreRepoGorm{
		db: db,
	}
}

func (r *genreRepoGorm) WithTx(tx *gorm.DB) GenreRepo {
	return &genreRepoGorm{
		db: tx,
	}
}

func (r *genreRepoGorm) Create(genre *model.Genre) error {
	ctx := context.Background()
	return gorm.G[model.Genre](r.db).Create(ctx, genre)
}

func (r *genreRepoGorm) ListAll() ([]model.Genre, error) {
	ctx := context.Background()
	return gorm.G[model.Genre](r.db).Order("id").Find(ctx)
}

func (r *genreRepoGorm) Delete(id uint) error {
	ctx := context.Background()
	rows, err := gorm.G[model.Genre](r.db).Where("id = ?", id).Delete(ctx)
	if err != nil {
		return err
	}
	if rows == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
