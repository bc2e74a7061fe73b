package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// DotEnvFile is the dotenv file [Load] reads from the working directory.
const DotEnvFile = ".env"

// WithDotEnv returns an [EnvReader] that answers from readEnv first and
// falls back to the variables declared in the dotenv file at path. A
// variable set in readEnv wins even when empty. A missing file is not an
// error; readEnv is then returned unchanged.
func WithDotEnv(readEnv EnvReader, path string) (EnvReader, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return readEnv, nil
		}
		return readEnv, fmt.Errorf("%w: %w", ErrReadingDotEnv, err)
	}

	fileEnv := MapEnv(vars)
	return func(name string) (string, bool) {
		if v, ok := readEnv(name); ok {
			return v, true
		}
		return fileEnv(name)
	}, nil
}
