package domain

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/irankiai/cinema-admin/internal/identity"
	"github.com/irankiai/cinema-admin/internal/model"
	"github.com/irankiai/cinema-admin/internal/repository"
	"github.com/irankiai/cinema-admin/internal/service"
)

// UserInput carries the full replacement field set for admin-driven user
// writes. Password is optional on update.
type UserInput struct {
	Username    string
	Email       string
	Password    string
	Description string
	Type        model.UserType
	CinemaID    *uint
}

type UserService interface {
	Register(username, email, password string) (uint, string, error)
	SignIn(email, password string) (string, error)
	GetProfileByID(id uint) (*model.UserProfile, error)
	GetAllUsers() ([]model.UserProfile, error)
	CreateUser(in UserInput) (uint, error)
	UpdateUser(id uint, in UserInput) error
	DeleteUser(id uint) error
}

type userService struct {
	db             service.TxRunner
	profiles       repository.UserProfileRepo
	personalMovies repository.PersonalMovieRepo
	provider       *identity.Provider
	logger         *zap.Logger
}

var _ UserService = (*userService)(nil)

func NewUserService(db service.TxRunner, profileRepo repository.UserProfileRepo,
	personalMovieRepo repository.PersonalMovieRepo, provider *identity.Provider, logger *zap.Logger) *userService {
	return &userService{
		db:             db,
		profiles:       profileRepo,
		personalMovies: personalMovieRepo,
		provider:       provider,
		logger:         logger,
	}
}

// Register is the sign-up path: it creates the identity account and a
// profile with the type left unset, so the new principal is allowed nowhere
// until an admin assigns a role.
func (s *userService) Register(username, email, password string) (uint, string, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return 0, "", fmt.Errorf("%w: email and password are required", service.ErrValidation)
	}
	displayName := username
	if displayName == "" {
		displayName = email
	}
	id, err := s.provider.CreateAccount(email, password, displayName)
	if err != nil {
		return 0, "", err
	}
	profile := &model.UserProfile{
		ID:       id,
		Username: username,
		Email:    email,
	}
	if err := s.profiles.Create(profile); err != nil {
		return 0, "", err
	}
	token, err := s.provider.IssueToken(id)
	if err != nil {
		return 0, "", err
	}
	return id, token, nil
}

func (s *userService) SignIn(email, password string) (string, error) {
	token, err := s.provider.Authenticate(email, password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			return "", service.ErrUnauthenticated
		}
		return "", err
	}
	return token, nil
}

func (s *userService) GetProfileByID(id uint) (*model.UserProfile, error) {
	profile, err := s.profiles.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (s *userService) GetAllUsers() ([]model.UserProfile, error) {
	return s.profiles.ListAll()
}

func validateUserInput(in UserInput, requirePassword bool) error {
	if strings.TrimSpace(in.Email) == "" {
		return fmt.Errorf("%w: email is required", service.ErrValidation)
	}
	if requirePassword && in.Password == "" {
		return fmt.Errorf("%w: password is required", service.ErrValidation)
	}
	switch in.Type {
	case model.TypeAdmin, model.TypeUser:
	case model.TypeCinemaWorker:
		if in.CinemaID == nil {
			return fmt.Errorf("%w: cinemaWorker must have a cinemaId", service.ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unknown user type %q", service.ErrValidation, in.Type)
	}
	return nil
}

func (s *userService) CreateUser(in UserInput) (uint, error) {
	if err := validateUserInput(in, true); err != nil {
		return 0, err
	}
	displayName := in.Username
	if displayName == "" {
		displayName = in.Email
	}
	id, err := s.provider.CreateAccount(in.Email, in.Password, displayName)
	if err != nil {
		return 0, err
	}
	profile := &model.UserProfile{
		ID:          id,
		Username:    in.Username,
		Email:       in.Email,
		Description: in.Description,
		Type:        in.Type,
	}
	if in.Type == model.TypeCinemaWorker {
		profile.CinemaID = in.CinemaID
	}
	if err := s.profiles.Create(profile); err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateUser is a full-field replace of both the identity account and the
// profile. CinemaID is cleared whenever the type is not cinemaWorker.
func (s *userService) UpdateUser(id uint, in UserInput) error {
	if err := validateUserInput(in, false); err != nil {
		return err
	}
	if _, err := s.GetProfileByID(id); err != nil {
		return err
	}
	if err := s.provider.UpdateAccount(id, in.Email, in.Password, in.Username); err != nil {
		return err
	}
	profile := &model.UserProfile{
		ID:          id,
		Username:    in.Username,
		Email:       in.Email,
		Description: in.Description,
		Type:        in.Type,
	}
	if in.Type == model.TypeCinemaWorker {
		profile.CinemaID = in.CinemaID
	}
	return s.profiles.Update(profile)
}

// DeleteUser removes the profile and the user's personal entries in one
// transaction, then asks the provider to drop the identity account. A
// failed account removal is logged and not rolled back: the profile stays
// gone.
func (s *userService) DeleteUser(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.profiles.WithTx(tx).Delete(id); err != nil {
			return err
		}
		return s.personalMovies.WithTx(tx).DeleteByUserID(id)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return service.ErrNotFound
		}
		return err
	}

	if err := s.provider.DeleteAccount(id); err != nil && !errors.Is(err, service.ErrNotFound) {
		s.logger.Error("failed to remove identity account for deleted user",
			zap.Uint("user_id", id), zap.Error(err))
	}
	return nil
}
