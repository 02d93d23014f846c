package util

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from a .env file when one exists. A missing file
// is not an error so that deployments can rely on real environment variables.
func LoadEnv() error {
	if err := godotenv.Load(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}
