package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
)

// EnvWithDotenv returns a lookup that consults the real environment first and
// falls back to the values declared in the .env file at path. A missing file
// is not an error; the real environment is then used as is.
func EnvWithDotenv(path string, getenv func(string) string) (func(string) string, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return getenv, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return getenv, nil
		}
		return getenv, err
	}
	return func(key string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return values[key]
	}, nil
}
