package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/fjod/go_storefront/internal/config"
	"github.com/fjod/go_storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	cfg := &config.Config{
		CatalogSource: config.CatalogSQLite,
		CatalogDBPath: ":memory:",
	}

	cmd := NewRootCommand(cfg)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestCatalogCommand_Text(t *testing.T) {
	out, err := runCommand(t, "catalog")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "1\tLaptop\t$1200\tHigh performance laptop", lines[0])
}

func TestCatalogCommand_JSON_Static(t *testing.T) {
	out, err := runCommand(t, "catalog", "--catalog", "static", "--format", "json")
	require.NoError(t, err)

	var products []domain.Product
	require.NoError(t, json.Unmarshal([]byte(out), &products))
	require.Len(t, products, 3)
	assert.Equal(t, "Smartphone", products[2].Title)
}

func TestCatalogCommand_InvalidFormat(t *testing.T) {
	_, err := runCommand(t, "catalog", "--format", "yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestCatalogCommand_UnknownSource(t *testing.T) {
	_, err := runCommand(t, "catalog", "--catalog", "mongo")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("boom")))
	assert.Equal(t, ExitCommandError, GetExitCode(&ExitError{Code: ExitCommandError, Err: errors.New("bad flag")}))
}
