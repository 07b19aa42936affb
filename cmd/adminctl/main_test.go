package main

import (
	"bytes"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"adminpanel/internal/passwd"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestOrderIDCmd(t *testing.T) {
	out, err := run(t, "order-id", "-n", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	for _, l := range lines {
		assert.Regexp(t, regexp.MustCompile(`^ORDER_\d+_\d{4}$`), l)
	}

	_, err = run(t, "order-id", "-n", "0")
	require.Error(t, err)
}

func TestPasswdCheckCmd(t *testing.T) {
	hash, err := passwd.Hash("admin123", bcrypt.MinCost)
	require.NoError(t, err)

	out, err := run(t, "passwd", "check", "--password", "admin123", "--hash", string(hash))
	require.NoError(t, err)
	assert.Equal(t, "match=true\n", out)

	out, err = run(t, "passwd", "check", "--password", "nope", "--hash", string(hash))
	require.NoError(t, err)
	assert.Equal(t, "match=false\n", out)

	_, err = run(t, "passwd", "check", "--password", "admin123", "--hash", "garbage")
	require.Error(t, err)

	_, err = run(t, "passwd", "check", "--password", "admin123")
	require.Error(t, err, "hash flag is required")
}

func TestPasswdHashCmd(t *testing.T) {
	out, err := run(t, "passwd", "hash", "--password", "s3cret", "--cost", "4")
	require.NoError(t, err)

	ok, err := passwd.Compare([]byte(strings.TrimSpace(out)), "s3cret")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestResolveDSN(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		t.Setenv("DATABASE_URI", "postgres://env/db")
		dsn, err := resolveDSN("postgres://flag/db")
		require.NoError(t, err)
		assert.Equal(t, "postgres://flag/db", dsn)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("DATABASE_URI", "postgres://env/db")
		dsn, err := resolveDSN("")
		require.NoError(t, err)
		assert.Equal(t, "postgres://env/db", dsn)
	})

	t.Run("default", func(t *testing.T) {
		t.Setenv("DATABASE_URI", "")
		require.NoError(t, os.Unsetenv("DATABASE_URI"))

		dsn, err := resolveDSN("")
		require.NoError(t, err)
		assert.Contains(t, dsn, "localhost:5432/adminpanel")
	})
}
