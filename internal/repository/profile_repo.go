package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/irankiai/cinema-admin/internal/model"
)

type UserProfileRepo interface {
	WithTx(tx *gorm.DB) UserProfileRepo
	Create(profile *model.UserProfile) error
	GetByID(id uint) (*model.UserProfile, error)
	ListAll() ([]model.UserProfile, error)
	ListByCinemaID(cinemaID uint) ([]model.UserProfile, error)
	Update(profile *model.UserProfile) error
	Delete(id uint) error
	DeleteByCinemaID(cinemaID uint) error
}

type userProfileRepoGorm struct {
	db *gorm.DB
}

var _ UserProfileRepo = (*userProfileRepoGorm)(nil)

func NewUserProfileRepoGorm(db *gorm.DB) *userProfileRepoGorm {
	return &userProfileRepoGorm{
		db: db,
	}
}

func (r *userProfileRepoGorm) WithTx(tx *gorm.DB) UserProfileRepo {
	return &userProfileRepoGorm{
		db: tx,
	}
}

func (r *userProfileRepoGorm) Create(profile *model.UserProfile) error {
	ctx := context.Background()
	return gorm.G[model.UserProfile](r.db).Create(ctx, profile)
}

func (r *userProfileRepoGorm) GetByID(id uint) (*model.UserProfile, error) {
	ctx := context.Background()
	profile, err := gorm.G[model.UserProfile](r.db).Where("id = ?", id).First(ctx)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *userProfileRepoGorm) ListAll() ([]model.UserProfile, error) {
	ctx := context.Background()
	return gorm.G[model.UserProfile](r.db).Order("id").Find(ctx)
}

func (r *userProfileRepoGorm) ListByCinemaID(cinemaID uint) ([]model.UserProfile, error) {
	ctx := context.Background()
	return gorm.G[model.UserProfile](r.db).Where("cinema_id = ?", cinemaID).Order("id").Find(ctx)
}

// Update replaces every mutable field, including writing a NULL cinema_id
// when the profile is no longer a cinema worker.
func (r *userProfileRepoGorm) Update(profile *model.UserProfile) error {
	res := r.db.Model(&model.UserProfile{}).
		Where("id = ?", profile.ID).
		Select("username", "email", "description", "type", "cinema_id").
		Updates(map[string]any{
			"username":    profile.Username,
			"email":       profile.Email,
			"description": profile.Description,
			"type":        profile.Type,
			"cinema_id":   profile.CinemaID,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userProfileRepoGorm) Delete(id uint) error {
	ctx := context.Background()
	rows, err := gorm.G[model.UserProfile](r.db).Where("id = ?", id).Delete(ctx)
	if err != nil {
		return err
	}
	if rows == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userProfileRepoGorm) DeleteByCinemaID(cinemaID uint) error {
	ctx := context.Background()
	_, err := gorm.G[model.UserProfile](r.db).Where("cinema_id = ?", cinemaID).Delete(ctx)
	return err
}
