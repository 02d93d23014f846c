package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/irankiai/cinema-admin/internal/model"
)

type MovieRepo interface {
	WithTx(tx *gorm.DB) MovieRepo
	Create(movie *model.Movie) error
	GetByID(id uint) (*model.Movie, error)
	ListAll() ([]model.Movie, error)
	Update(movie *model.Movie) error
	Delete(id uint) error
}

type movieRepoGorm struct {
	db *gorm.DB
}

var _ MovieRepo = (*movieRepoGorm)(nil)

func NewMovieRepoGorm(db *gorm.DB) *movieRepoGorm {
	return &movieRepoGorm{
		db: db,
	}
}

func (r *movieRepoGorm) WithTx(tx *gorm.DB) MovieRepo {
	return &movieRepoGorm{
		db: tx,
	}
}

func (r *movieRepoGorm) Create(movie *model.Movie) error {
	ctx := context.Background()
	return gorm.G[model.Movie](r.db).Create(ctx, movie)
}

func (r *movieRepoGorm) GetByID(id uint) (*model.Movie, error) {
	ctx := context.Background()
	movie, err := gorm.G[model.Movie](r.db).Where("id = ?", id).First(ctx)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepoGorm) ListAll() ([]model.Movie, error) {
	ctx := context.Background()
	return gorm.G[model.Movie](r.db).Order("id").Find(ctx)
}

func (r *movieRepoGorm) Update(movie *model.Movie) error {
	res := r.db.Save(movie)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *movieRepoGorm) Delete(id uint) error {
	ctx := context.Background()
	rows, err := gorm.G[model.Movie](r.db).Where("id = ?", id).Delete(ctx)
	if err != nil {
		return err
	}
	if rows == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
