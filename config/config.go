package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/irankiai/cinema-admin/internal/util"
)

type Config struct {
	Addr        string
	DatabaseDSN string
	CacheURL    string
	MQURL       string

	JWTSecret      string
	AccessTTL      time.Duration
	BcryptCost     int
	RequestTimeout time.Duration

	StripeSecret       string
	CheckoutSuccessURL string
	CheckoutCancelURL  string
}

func LoadConfig() (*Config, error) {
	if err := util.LoadEnv(); err != nil {
		return nil, err
	}

	cfg := &Config{
		Addr:               os.Getenv("ADDR"),
		DatabaseDSN:        os.Getenv("DATABASE_DSN"),
		CacheURL:           os.Getenv("CACHE_URL"),
		MQURL:              os.Getenv("RABBIT_MQ_URL"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		StripeSecret:       os.Getenv("STRIPE_SECRET"),
		CheckoutSuccessURL: os.Getenv("CHECKOUT_SUCCESS_URL"),
		CheckoutCancelURL:  os.Getenv("CHECKOUT_CANCEL_URL"),
	}

	for name, v := range map[string]string{
		"DATABASE_DSN":  cfg.DatabaseDSN,
		"JWT_SECRET":    cfg.JWTSecret,
		"STRIPE_SECRET": cfg.StripeSecret,
	} {
		if v == "" {
			return nil, fmt.Errorf("missing required env var: %s", name)
		}
	}

	if cfg.Addr == "" {
		cfg.Addr = ":4000"
	}

	accessTTLMin, err := intEnv("ACCESS_TOKEN_TTL_MIN", 60)
	if err != nil {
		return nil, err
	}
	cfg.AccessTTL = time.Duration(accessTTLMin) * time.Minute

	cfg.BcryptCost, err = intEnv("BCRYPT_COST", 10)
	if err != nil {
		return nil, err
	}

	timeoutSec, err := intEnv("REQUEST_TIMEOUT_SEC", 10)
	if err != nil {
		return nil, err
	}
	cfg.RequestTimeout = time.Duration(timeoutSec) * time.Second

	return cfg, nil
}

func intEnv(name string, fallback int) (int, error) {
	s := os.Getenv(name)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid int for %s: %q", name, s)
	}
	return n, nil
}
