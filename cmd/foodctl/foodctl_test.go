package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const validLine = `{"firstname":"Иван","lastname":"Петров","phonenumber":"+79161234567","address":"Москва, ул. Тверская, 7","products":[{"product":1,"quantity":2}]}`

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestValidateOrders_JSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.jsonl")
	body := validLine + "\n" + `{"firstname":""}` + "\n\n" + validLine + "\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	stdout, stderr, err := run(t, "validate-orders", "--in", path)
	require.NoError(t, err)
	require.Contains(t, stderr, "2 valid / 1 invalid")
	require.Len(t, strings.Split(strings.TrimSpace(stdout), "\n"), 2)
}

func TestValidateOrders_InvalidJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "order.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"firstname":"Иван","products":[]}`), 0o600))

	_, stderr, err := run(t, "validate-orders", "--in", path)
	require.Error(t, err)
	require.Contains(t, stderr, "0 valid / 1 invalid")
	require.Contains(t, stderr, "#1: ")
}

func TestValidateOrders_UnknownFormat(t *testing.T) {
	_, _, err := run(t, "validate-orders", "--in", "x.json", "--format", "xml")
	require.ErrorContains(t, err, "unsupported format")
}

func TestValidateOrders_RequiresIn(t *testing.T) {
	_, _, err := run(t, "validate-orders")
	require.Error(t, err)
}

func TestMigrate_RejectsUnknownDirection(t *testing.T) {
	_, _, err := run(t, "migrate", "sideways")
	require.Error(t, err)
}

func TestGeocode_RequiresAddress(t *testing.T) {
	_, _, err := run(t, "geocode")
	require.Error(t, err)
}

func TestHashPassword(t *testing.T) {
	_, err := hashPassword("short")
	require.Error(t, err)

	hash, err := hashPassword("long-enough-secret")
	require.NoError(t, err)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("long-enough-secret")))
}
