package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--seed", ""}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestStatsCommand(t *testing.T) {
	out, err := run(t, "stats", "payments")
	require.NoError(t, err)

	var summary map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, 180000.0, summary["total_amount"])
	assert.Equal(t, 1.0, summary["refunded_count"])
}

func TestStatsDashboard(t *testing.T) {
	out, err := run(t, "stats", "dashboard")
	require.NoError(t, err)
	assert.Contains(t, out, `"notifications"`)
}

func TestStatsUnknownCollection(t *testing.T) {
	_, err := run(t, "stats", "orders")
	assert.ErrorContains(t, err, "known: dashboard")
}

func TestExportPaymentsCSVToStdout(t *testing.T) {
	out, err := run(t, "export", "payments", "--status", "completed")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "거래ID,사용자,금액,결제방법,상태,결제일시,설명", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "TXN-20240302-002,이영희,100000,"))
}

func TestExportPaymentsFlagsFollowSchema(t *testing.T) {
	cmd, _, err := newRootCmd().Find([]string{"export", "payments"})
	require.NoError(t, err)
	for _, facet := range []string{"status", "method", "user"} {
		assert.NotNil(t, cmd.Flags().Lookup(facet), facet)
	}

	out, err := run(t, "export", "payments", "--user", "user-3")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "TXN-20240303-003,박민수,30000,"))
}

func TestExportPaymentsXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payments.xlsx")
	_, err := run(t, "export", "payments", "--format", "xlsx", "--out", path)
	require.NoError(t, err)

	book, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer book.Close()
	rows, err := book.GetRows("결제내역")
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}

func TestExportRejectsBadFormat(t *testing.T) {
	_, err := run(t, "export", "payments", "--format", "pdf")
	assert.Error(t, err)

	_, err = run(t, "export", "payments", "--format", "xlsx")
	assert.Error(t, err)
}

func TestExportWithSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.toml")
	fixture := "[[payments]]\nid = \"p\"\ntransaction_id = \"T-1\"\nuser_name = \"a\"\namount = 10\nstatus = \"pending\"\n"
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o600))

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--seed", path, "export", "payments"})
	require.NoError(t, root.Execute())
	assert.Len(t, strings.Split(strings.TrimRight(out.String(), "\n"), "\n"), 2)
}

func TestSSNMask(t *testing.T) {
	out, err := run(t, "ssn", "mask", "900101-2234567")
	require.NoError(t, err)
	assert.Equal(t, "900101-2*******\tfemale\n", out)

	out, err = run(t, "ssn", "mask", "900101-2234567", "--gender", "male")
	require.NoError(t, err)
	assert.Equal(t, "900101-2*******\tmale\n", out)

	out, err = run(t, "ssn", "mask", "9001")
	require.NoError(t, err)
	assert.Equal(t, "9001\tunknown\n", out)

	_, err = run(t, "ssn", "mask", "900101-2234567", "--gender", "other")
	assert.Error(t, err)
}

func TestServeHasPortFlag(t *testing.T) {
	flag := newServeCmd().Flags().Lookup("port")
	require.NotNil(t, flag)
	assert.Equal(t, "", flag.DefValue)
}
