package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/irankiai/cinema-admin/internal/model"
)

type ScreeningRepo interface {
	WithTx(tx *gorm.DB) ScreeningRepo
	Create(screening *model.Screening) error
	GetByID(id uint) (*model.Screening, error)
	ListAll() ([]model.Screening, error)
	Update(screening *model.Screening) error
	Delete(id uint) error
	DeleteByCinemaID(cinemaID uint) error
	DecrementTickets(id uint) error
}

type screeningRepoGorm struct {
	db *gorm.DB
}

var _ ScreeningRepo = (*screeningRepoGorm)(nil)

func NewScreeningRepoGorm(db *gorm.DB) *screeningRepoGorm {
	return &screeningRepoGorm{
		db: db,
	}
}

func (r *screeningRepoGorm) WithTx(tx *gorm.DB) ScreeningRepo {
	return &screeningRepoGorm{
		db: tx,
	}
}

func (r *screeningRepoGorm) Create(screening *model.Screening) error {
	ctx := context.Background()
	return gorm.G[model.Screening](r.db).Create(ctx, screening)
}

func (r *screeningRepoGorm) GetByID(id uint) (*model.Screening, error) {
	ctx := context.Background()
	screening, err := gorm.G[model.Screening](r.db).Where("id = ?", id).First(ctx)
	if err != nil {
		return nil, err
	}
	return &screening, nil
}

func (r *screeningRepoGorm) ListAll() ([]model.Screening, error) {
	ctx := context.Background()
	return gorm.G[model.Screening](r.db).Order("id").Find(ctx)
}

func (r *screeningRepoGorm) Update(screening *model.Screening) error {
	res := r.db.Save(screening)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *screeningRepoGorm) Delete(id uint) error {
	ctx := context.Background()
	rows, err := gorm.G[model.Screening](r.db).Where("id = ?", id).Delete(ctx)
	if err != nil {
		return err
	}
	if rows == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *screeningRepoGorm) DeleteByCinemaID(cinemaID uint) error {
	ctx := context.Background()
	_, err := gorm.G[model.Screening](r.db).Where("cinema_id = ?", cinemaID).Delete(ctx)
	return err
}

// DecrementTickets is a single atomic update guarded against going below
// zero; a sold-out screening leaves the count untouched.
func (r *screeningRepoGorm) DecrementTickets(id uint) error {
	res := r.db.Model(&model.Screening{}).
		Where("id = ? AND ticket_count > 0", id).
		UpdateColumn("ticket_count", gorm.Expr("ticket_count - 1"))
	return res.Error
}
