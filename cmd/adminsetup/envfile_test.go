package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateEnvFile_SetsAndRemovesKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("MONGO_URL=mongodb://localhost:27017\nADMIN_PASSWORD=admin123\nJWT_SECRET=your-secret-key\n"), 0o600))

	err := updateEnvFile(path, map[string]string{
		"ADMIN_PASSWORD_HASH": "argon2id$v=19$m=65536,t=3,p=4$c2FsdA$aGFzaA",
		"JWT_SECRET":          "fresh",
	}, "ADMIN_PASSWORD")
	require.NoError(t, err)

	env, err := godotenv.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "mongodb://localhost:27017", env["MONGO_URL"])
	assert.Equal(t, "argon2id$v=19$m=65536,t=3,p=4$c2FsdA$aGFzaA", env["ADMIN_PASSWORD_HASH"])
	assert.Equal(t, "fresh", env["JWT_SECRET"])
	_, hasPlain := env["ADMIN_PASSWORD"]
	assert.False(t, hasPlain)
}

func TestUpdateEnvFile_CreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")

	require.NoError(t, updateEnvFile(path, map[string]string{"JWT_SECRET": "abc"}))

	env, err := godotenv.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "abc", env["JWT_SECRET"])

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
