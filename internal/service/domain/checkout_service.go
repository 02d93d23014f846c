package domain

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/irankiai/cinema-admin/internal/model"
	"github.com/irankiai/cinema-admin/internal/mq"
	"github.com/irankiai/cinema-admin/internal/payment"
	"github.com/irankiai/cinema-admin/internal/repository"
	"github.com/irankiai/cinema-admin/internal/service"
)

// checkoutCurrency is what the hosted checkout charges in.
const checkoutCurrency = "eur"

// CheckoutGuard rejects a second concurrent session for the same principal
// and screening. Satisfied by cache.RedisCache.
type CheckoutGuard interface {
	AcquireCheckoutGuard(principalID, screeningID uint) (bool, error)
	ReleaseCheckoutGuard(principalID, screeningID uint) error
}

// TicketPublisher hands completed sales to the inventory workflow.
type TicketPublisher interface {
	PublishTicketSold(msg mq.TicketSoldMessage) error
}

type CheckoutService interface {
	CreateCheckoutSession(ctx context.Context, principalID, screeningID uint) (string, error)
	ConfirmCheckout(ctx context.Context, screeningID uint, sessionID string) error
}

type checkoutService struct {
	screenings repository.ScreeningRepo
	movies     repository.MovieRepo
	cinemas    repository.CinemaRepo
	guard      CheckoutGuard
	provider   payment.Provider
	publisher  TicketPublisher
}

var _ CheckoutService = (*checkoutService)(nil)

func NewCheckoutService(screeningRepo repository.ScreeningRepo, movieRepo repository.MovieRepo,
	cinemaRepo repository.CinemaRepo, guard CheckoutGuard, provider payment.Provider,
	publisher TicketPublisher) *checkoutService {
	return &checkoutService{
		screenings: screeningRepo,
		movies:     movieRepo,
		cinemas:    cinemaRepo,
		guard:      guard,
		provider:   provider,
		publisher:  publisher,
	}
}

// CreateCheckoutSession opens exactly one hosted payment session for the
// screening and returns its opaque handle. It records nothing and never
// touches ticket inventory; that happens only on confirmation.
func (s *checkoutService) CreateCheckoutSession(ctx context.Context, principalID, screeningID uint) (string, error) {
	if principalID == 0 {
		return "", service.ErrUnauthenticated
	}

	ok, err := s.guard.AcquireCheckoutGuard(principalID, screeningID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", service.ErrInFlight
	}
	defer s.guard.ReleaseCheckoutGuard(principalID, screeningID)

	screening, err := s.screenings.GetByID(screeningID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", service.ErrNotFound
		}
		return "", err
	}

	unitAmount := screening.PriceCents
	if unitAmount <= 0 {
		unitAmount = model.DefaultPriceCents
	}

	// Display names; a dangling movie or cinema reference leaves them blank.
	var movieTitle, cinemaName string
	if movie, err := s.movies.GetByID(screening.MovieID); err == nil {
		movieTitle = movie.Title
	}
	if cinema, err := s.cinemas.GetByID(screening.CinemaID); err == nil {
		cinemaName = cinema.Name
	}

	return s.provider.CreateSession(ctx, payment.LineItem{
		Name:        fmt.Sprintf("Ticket for %s", movieTitle),
		Description: fmt.Sprintf("%s - Hall %s", cinemaName, screening.Hall),
		Currency:    checkoutCurrency,
		UnitAmount:  int64(unitAmount),
	})
}

// ConfirmCheckout is the success-page return leg. The session id comes
// from the caller, so the provider is asked whether that session actually
// settled before the sale is published; an unpaid session decrements
// nothing.
func (s *checkoutService) ConfirmCheckout(ctx context.Context, screeningID uint, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("%w: sessionId is required", service.ErrValidation)
	}
	if _, err := s.screenings.GetByID(screeningID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return service.ErrNotFound
		}
		return err
	}
	paid, err := s.provider.SessionPaid(ctx, sessionID)
	if err != nil {
		return err
	}
	if !paid {
		return fmt.Errorf("%w: payment for session has not completed", service.ErrValidation)
	}
	return s.publisher.PublishTicketSold(mq.TicketSoldMessage{
		ScreeningID: screeningID,
		SessionID:   sessionID,
	})
}
