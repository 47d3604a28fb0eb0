package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/devservices/backend/pkg/auth"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs rootCmd with args and stdin, restoring the package-level
// flag state afterwards.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out := new(bytes.Buffer)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(out)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		envFile = ".env"
		generate = false
		generateLen = defaultGenerateLen
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestHashCmd_PrintsVerifiableHash(t *testing.T) {
	out, err := execute(t, "s3cret-password\n", "hash")
	require.NoError(t, err)

	hash := strings.TrimSpace(out)
	assert.True(t, auth.IsPasswordHash(hash))
	ok, err := auth.VerifyPassword("s3cret-password", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHashCmd_EmptyInput(t *testing.T) {
	_, err := execute(t, "\n", "hash")
	assert.Error(t, err)
}

func TestSetPasswordCmd_Prompted(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")

	out, err := execute(t, "correct-horse\ncorrect-horse\n", "set-password", "--env-file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Restart the server")

	env, err := godotenv.Read(path)
	require.NoError(t, err)
	ok, err := auth.VerifyPassword("correct-horse", env["ADMIN_PASSWORD_HASH"])
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotEmpty(t, env["JWT_SECRET"])
}

func TestSetPasswordCmd_Mismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")

	_, err := execute(t, "correct-horse\nwrong-horse\n", "set-password", "--env-file", path)
	assert.ErrorIs(t, err, errPasswordMismatch)
}

func TestSetPasswordCmd_TooShort(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")

	_, err := execute(t, "short\nshort\n", "set-password", "--env-file", path)
	assert.ErrorContains(t, err, "at least 8 characters")
}

func TestSetPasswordCmd_Generate(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")

	out, err := execute(t, "", "set-password", "--generate", "--length", "20", "--env-file", path)
	require.NoError(t, err)

	var generated string
	for _, line := range strings.Split(out, "\n") {
		if p, ok := strings.CutPrefix(line, "Generated password: "); ok {
			generated = p
		}
	}
	require.Len(t, generated, 20)

	env, err := godotenv.Read(path)
	require.NoError(t, err)
	ok, err := auth.VerifyPassword(generated, env["ADMIN_PASSWORD_HASH"])
	require.NoError(t, err)
	assert.True(t, ok)
}
