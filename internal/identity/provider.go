// Package identity plays the identity-provider role: it owns sign-in
// accounts and access tokens. Profiles and roles live elsewhere; account
// removal here is deliberately not transactional with profile removal.
package identity

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/irankiai/cinema-admin/internal/model"
	"github.com/irankiai/cinema-admin/internal/repository"
	"github.com/irankiai/cinema-admin/internal/service"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Provider struct {
	accounts   repository.AccountRepo
	secret     string
	accessTTL  time.Duration
	bcryptCost int
}

func NewProvider(accounts repository.AccountRepo, secret string, accessTTL time.Duration, bcryptCost int) *Provider {
	return &Provider{
		accounts:   accounts,
		secret:     secret,
		accessTTL:  accessTTL,
		bcryptCost: bcryptCost,
	}
}

// CreateAccount registers a new sign-in identity and returns its id, which
// becomes the principal id everywhere else.
func (p *Provider) CreateAccount(email, password, displayName string) (uint, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.bcryptCost)
	if err != nil {
		return 0, err
	}
	account := &model.Account{
		Email:          email,
		HashedPassword: string(hash),
		DisplayName:    displayName,
	}
	if err := p.accounts.Create(account); err != nil {
		return 0, err
	}
	return account.ID, nil
}

// UpdateAccount replaces the credentials for an existing account. An empty
// password keeps the current one.
func (p *Provider) UpdateAccount(id uint, email, password, displayName string) error {
	account, err := p.accounts.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return service.ErrNotFound
		}
		return err
	}
	account.Email = email
	account.DisplayName = displayName
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), p.bcryptCost)
		if err != nil {
			return err
		}
		account.HashedPassword = string(hash)
	}
	return p.accounts.Update(account)
}

func (p *Provider) DeleteAccount(id uint) error {
	if err := p.accounts.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return service.ErrNotFound
		}
		return err
	}
	return nil
}

// Authenticate checks the credentials and issues an access token.
func (p *Provider) Authenticate(email, password string) (string, error) {
	account, err := p.accounts.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(account.HashedPassword), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	return NewAccessToken(p.secret, account.ID, p.accessTTL)
}

// IssueToken mints a token for an already-verified principal, used right
// after sign-up.
func (p *Provider) IssueToken(principalID uint) (string, error) {
	return NewAccessToken(p.secret, principalID, p.accessTTL)
}
