package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// setEnv points the CLI at a scratch database.
func setEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("WEDDING_DB_PATH", filepath.Join(dir, "wedding.db"))
	t.Setenv("WEDDING_PASSWORD_PEPPER_FILE", filepath.Join(dir, "pepper"))
	t.Setenv("LOG_LEVEL", "error")
	return dir
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--env-file="}, args...))

	err := cmd.Execute()
	return buf.String(), err
}

func TestMigrate(t *testing.T) {
	dir := setEnv(t)

	out, err := run(t, "", "migrate")
	require.NoError(t, err)
	require.Contains(t, out, "is up to date")
	require.FileExists(t, filepath.Join(dir, "wedding.db"))

	_, err = run(t, "", "migrate")
	require.NoError(t, err, "migrating twice is a no-op")
}

func TestSeed(t *testing.T) {
	setEnv(t)

	_, err := run(t, "", "seed")
	require.ErrorContains(t, err, "--file is required")

	out, err := run(t, "", "seed", "--file", filepath.Join("testdata", "seed.yaml"))
	require.NoError(t, err)
	require.Contains(t, out, "7 created, 0 updated, settings true")

	out, err = run(t, "", "seed", "-f", filepath.Join("testdata", "seed.yaml"))
	require.NoError(t, err)
	require.Contains(t, out, "0 created, 7 updated")
}

func TestAdminCommands(t *testing.T) {
	setEnv(t)

	out, err := run(t, "correct-horse\n", "admin", "create", "--username", "Admin", "--email", "admin@example.com")
	require.NoError(t, err)
	require.Contains(t, out, "created admin admin")

	_, err = run(t, "", "admin", "create", "--username", "other", "--email", "other@example.com", "--password", "short")
	require.ErrorContains(t, err, "at least 8 characters")

	_, err = run(t, "", "admin", "create", "--username", "admin", "--email", "dup@example.com", "--password", "long-enough")
	require.ErrorContains(t, err, "already exists")

	out, err = run(t, "", "admin", "disable", "admin")
	require.NoError(t, err)
	require.Contains(t, out, "disabled admin admin")

	out, err = run(t, "", "admin", "enable", "admin")
	require.NoError(t, err)
	require.Contains(t, out, "enabled admin admin")

	_, err = run(t, "", "admin", "disable", "nobody")
	require.ErrorContains(t, err, "not found")
}

func TestHousekeep(t *testing.T) {
	setEnv(t)

	out, err := run(t, "", "housekeep")
	require.NoError(t, err)
	require.Contains(t, out, "deleted 0 expired sessions")
}
