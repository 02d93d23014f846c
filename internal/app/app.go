package app

import (
	"github.com/irankiai/cinema-admin/config"
	"github.com/irankiai/cinema-admin/internal/cache"
	"github.com/irankiai/cinema-admin/internal/identity"
	"github.com/irankiai/cinema-admin/internal/model"
	"github.com/irankiai/cinema-admin/internal/mq"
	"github.com/irankiai/cinema-admin/internal/payment"
	"github.com/irankiai/cinema-admin/internal/repository"
	"github.com/irankiai/cinema-admin/internal/service/domain"
	"github.com/irankiai/cinema-admin/internal/service/workflow"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config

	DB     *gorm.DB
	Cache  *cache.RedisCache
	Logger *zap.Logger
	MQConn *amqp.Connection

	Profiles repository.UserProfileRepo
	Identity *identity.Provider

	MovieService         domain.MovieService
	GenreService         domain.GenreService
	CinemaService        domain.CinemaService
	UserService          domain.UserService
	ScreeningService     domain.ScreeningService
	PersonalMovieService domain.PersonalMovieService
	CheckoutService      domain.CheckoutService
	RecommendService     domain.RecommendService

	TicketWorkflow *workflow.TicketWorkflow
}

func New(cfg *config.Config, db *gorm.DB, redisCache *cache.RedisCache, logger *zap.Logger, mqConn *amqp.Connection) (*App, error) {
	movieRepo := repository.NewMovieRepoGorm(db)
	genreRepo := repository.NewGenreRepoGorm(db)
	cinemaRepo := repository.NewCinemaRepoGorm(db)
	screeningRepo := repository.NewScreeningRepoGorm(db)
	personalMovieRepo := repository.NewPersonalMovieRepoGorm(db)
	profileRepo := repository.NewUserProfileRepoGorm(db)
	accountRepo := repository.NewAccountRepoGorm(db)

	provider := identity.NewProvider(accountRepo, cfg.JWTSecret, cfg.AccessTTL, cfg.BcryptCost)
	stripeProvider := payment.NewStripeProvider(cfg.StripeSecret, cfg.CheckoutSuccessURL, cfg.CheckoutCancelURL)

	ticketProducer, err := mq.NewTicketProducer(mqConn)
	if err != nil {
		return nil, err
	}

	movieService := domain.NewMovieService(db, movieRepo, personalMovieRepo)
	genreService := domain.NewGenreService(genreRepo)
	cinemaService := domain.NewCinemaService(db, cinemaRepo, screeningRepo, profileRepo, provider, logger)
	userService := domain.NewUserService(db, profileRepo, personalMovieRepo, provider, logger)
	screeningService := domain.NewScreeningService(screeningRepo)
	personalMovieService := domain.NewPersonalMovieService(personalMovieRepo)
	checkoutService := domain.NewCheckoutService(screeningRepo, movieRepo, cinemaRepo, redisCache, stripeProvider, ticketProducer)
	recommendService := domain.NewRecommendService(personalMovieRepo, movieRepo)

	ticketWorkflow := workflow.NewTicketWorkflow(screeningRepo, logger)

	return &App{
		Config:               cfg,
		DB:                   db,
		Cache:                redisCache,
		Logger:               logger,
		MQConn:               mqConn,
		Profiles:             profileRepo,
		Identity:             provider,
		MovieService:         movieService,
		GenreService:         genreService,
		CinemaService:        cinemaService,
		UserService:          userService,
		ScreeningService:     screeningService,
		PersonalMovieService: personalMovieService,
		CheckoutService:      checkoutService,
		RecommendService:     recommendService,
		TicketWorkflow:       ticketWorkflow,
	}, nil
}

func (app *App) Init() error {
	if err := app.DB.AutoMigrate(
		&model.Account{},
		&model.UserProfile{},
		&model.Movie{},
		&model.Genre{},
		&model.Cinema{},
		&model.Screening{},
		&model.PersonalMovie{},
	); err != nil {
		return err
	}

	if err := mq.InitQueues(app.MQConn); err != nil {
		return err
	}

	return app.TicketWorkflow.Start(app.MQConn)
}

func (app *App) Close() error {
	sqlDB, err := app.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
