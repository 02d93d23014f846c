package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/irankiai/cinema-admin/internal/model"
)

type PersonalMovieRepo interface {
	WithTx(tx *gorm.DB) PersonalMovieRepo
	Create(entry *model.PersonalMovie) error
	GetByID(id uint) (*model.PersonalMovie, error)
	GetByUserAndMovie(userID, movieID uint) (*model.PersonalMovie, error)
	ListAll() ([]model.PersonalMovie, error)
	Update(entry *model.PersonalMovie) error
	Delete(id uint) error
	DeleteByMovieID(movieID uint) error
	DeleteByUserID(userID uint) error
}

type personalMovieRepoGorm struct {
	db *gorm.DB
}

var _ PersonalMovieRepo = (*personalMovieRepoGorm)(nil)

func NewPersonalMovieRepoGorm(db *gorm.DB) *personalMovieRepoGorm {
	return &personalMovieRepoGorm{
		db: db,
	}
}

func (r *personalMovieRepoGorm) WithTx(tx *gorm.DB) PersonalMovieRepo {
	return &personalMovieRepoGorm{
		db: tx,
	}
}

func (r *personalMovieRepoGorm) Create(entry *model.PersonalMovie) error {
	ctx := context.Background()
	return gorm.G[model.PersonalMovie](r.db).Create(ctx, entry)
}

func (r *personalMovieRepoGorm) GetByID(id uint) (*model.PersonalMovie, error) {
	ctx := context.Background()
	entry, err := gorm.G[model.PersonalMovie](r.db).Where("id = ?", id).First(ctx)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *personalMovieRepoGorm) GetByUserAndMovie(userID, movieID uint) (*model.PersonalMovie, error) {
	ctx := context.Background()
	entry, err := gorm.G[model.PersonalMovie](r.db).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		First(ctx)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *personalMovieRepoGorm) ListAll() ([]model.PersonalMovie, error) {
	ctx := context.Background()
	return gorm.G[model.PersonalMovie](r.db).Order("id").Find(ctx)
}

func (r *personalMovieRepoGorm) Update(entry *model.PersonalMovie) error {
	res := r.db.Save(entry)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *personalMovieRepoGorm) Delete(id uint) error {
	ctx := context.Background()
	rows, err := gorm.G[model.PersonalMovie](r.db).Where("id = ?", id).Delete(ctx)
	if err != nil {
		return err
	}
	if rows == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *personalMovieRepoGorm) DeleteByMovieID(movieID uint) error {
	ctx := context.Background()
	_, err := gorm.G[model.PersonalMovie](r.db).Where("movie_id = ?", movieID).Delete(ctx)
	return err
}

func (r *personalMovieRepoGorm) DeleteByUserID(userID uint) error {
	ctx := context.Background()
	_, err := gorm.G[model.PersonalMovie](r.db).Where("user_id = ?", userID).Delete(ctx)
	return err
}
