package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/irankiai/cinema-admin/internal/model"
)

type AccountRepo interface {
	WithTx(tx *gorm.DB) AccountRepo
	Create(account *model.Account) error
	GetByID(id uint) (*model.Account, error)
	GetByEmail(email string) (*model.Account, error)
	Update(account *model.Account) error
	Delete(id uint) error
}

type accountRepoGorm struct {
	db *gorm.DB
}

var _ AccountRepo = (*accountRepoGorm)(nil)

func NewAccountRepoGorm(db *gorm.DB) *accountRepoGorm {
	return &accountRepoGorm{
		db: db,
	}
}

func (r *accountRepoGorm) WithTx(tx *gorm.DB) AccountRepo {
	return &accountRepoGorm{
		db: tx,
	}
}

func (r *accountRepoGorm) Create(account *model.Account) error {
	ctx := context.Background()
	return gorm.G[model.Account](r.db).Create(ctx, account)
}

func (r *accountRepoGorm) GetByID(id uint) (*model.Account, error) {
	ctx := context.Background()
	account, err := gorm.G[model.Account](r.db).Where("id = ?", id).First(ctx)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepoGorm) GetByEmail(email string) (*model.Account, error) {
	ctx := context.Background()
	account, err := gorm.G[model.Account](r.db).Where("email = ?", email).First(ctx)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepoGorm) Update(account *model.Account) error {
	res := r.db.Save(account)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *accountRepoGorm) Delete(id uint) error {
	ctx := context.Background()
	rows, err := gorm.G[model.Account](r.db).Where("id = ?", id).Delete(ctx)
	if err != nil {
		return err
	}
	if rows == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
