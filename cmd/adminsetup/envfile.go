package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// updateEnvFile sets the given keys in the .env file at path, removes the
// keys listed in remove and writes the result back. A missing file is created.
// Comments in the original file are not preserved.
func updateEnvFile(path string, set map[string]string, remove ...string) error {
	env, err := godotenv.Read(path)
	if errors.Is(err, os.ErrNotExist) {
		env = map[string]string{}
	} else if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	for _, k := range remove {
		delete(env, k)
	}
	for k, v := range set {
		env[k] = v
	}

	if err := godotenv.Write(env, path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return os.Chmod(path, 0o600)
}
