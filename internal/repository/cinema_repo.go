package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/irankiai/cinema-admin/internal/model"
)

type CinemaRepo interface {
	WithTx(tx *gorm.DB) CinemaRepo
	Create(cinema *model.Cinema) error
	GetByID(id uint) (*model.Cinema, error)
	ListAll() ([]model.Cinema, error)
	Update(cinema *model.Cinema) error
	Delete(id uint) error
}

type cinemaRepoGorm struct {
	db *gorm.DB
}

var _ CinemaRepo = (*cinemaRepoGorm)(nil)

func NewCinemaRepoGorm(db *gorm.DB) *cinemaRepoGorm {
	return &cinemaRepoGorm{
		db: db,
	}
}

func (r *cinemaRepoGorm) WithTx(tx *gorm.DB) CinemaRepo {
	return &cinemaRepoGorm{
		db: tx,
	}
}

func (r *cinemaRepoGorm) Create(cinema *model.Cinema) error {
	ctx := context.Background()
	return gorm.G[model.Cinema](r.db).Create(ctx, cinema)
}

func (r *cinemaRepoGorm) GetByID(id uint) (*model.Cinema, error) {
	ctx := context.Background()
	cinema, err := gorm.G[model.Cinema](r.db).Where("id = ?", id).First(ctx)
	if err != nil {
		return nil, err
	}
	return &cinema, nil
}

func (r *cinemaRepoGorm) ListAll() ([]model.Cinema, error) {
	ctx := context.Background()
	return gorm.G[model.Cinema](r.db).Order("id").Find(ctx)
}

func (r *cinemaRepoGorm) Update(cinema *model.Cinema) error {
	res := r.db.Save(cinema)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *cinemaRepoGorm) Delete(id uint) error {
	ctx := context.Background()
	rows, err := gorm.G[model.Cinema](r.db).Where("id = ?", id).Delete(ctx)
	if err != nil {
		return err
	}
	if rows == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
