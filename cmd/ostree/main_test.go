package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func emptyConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ostree.yaml")
	require.NoError(t, os.WriteFile(path, []byte("color: never\n"), 0o600))
	return path
}

func TestBuildCommandReportsRanks(t *testing.T) {
	out, err := execute(t, "", "build", "--config", emptyConfig(t),
		"--query", "17", "--query", "16",
		"15", "10", "20", "8", "12", "17", "25")
	require.NoError(t, err)
	require.Contains(t, out, "invariants: OK")
	require.Contains(t, out, "elements: 7  distinct: 7")
	// query row for 17: contained, count 1, rank 5, neighbours 15 and 20
	require.Regexp(t, `17\s*│\s*true\s*│\s*1\s*│\s*5\s*│\s*15\s*│\s*20`, out)
	require.Regexp(t, `16\s*│\s*false\s*│\s*0\s*│\s*5\s*│\s*15\s*│\s*17`, out)
}

func TestBuildCommandReadsStdin(t *testing.T) {
	out, err := execute(t, "pear\napple\n\npear\nfig\n", "build", "--config", emptyConfig(t),
		"--strings", "--dups")
	require.NoError(t, err)
	require.Contains(t, out, "elements: 4  distinct: 3")
	require.Regexp(t, `pear\s*│\s*2\s*│\s*3`, out)
}

func TestBuildCommandRejectsNonIntegers(t *testing.T) {
	_, err := execute(t, "", "build", "--config", emptyConfig(t), "1", "two")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not an integer")
}

func TestBuildCommandEmptyInput(t *testing.T) {
	out, err := execute(t, "", "build", "--config", emptyConfig(t))
	require.NoError(t, err)
	require.Contains(t, out, msgEmptyTree)
}

func TestDotCommand(t *testing.T) {
	out, err := execute(t, "", "dot", "--config", emptyConfig(t), "2", "1", "3")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "strict digraph {"))
	require.Equal(t, 2+4, strings.Count(out, "->"))
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ostree.yaml")
	content := "duplicates: true\nstrings: true\nqueries: [a, b]\ncolor: always\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	require.True(t, cfg.Duplicates)
	require.True(t, cfg.Strings)
	require.Equal(t, []string{"a", "b"}, cfg.Queries)
	require.Equal(t, colorAlways, cfg.Color)
}

func TestLoadConfigRejectsColorMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ostree.yaml")
	require.NoError(t, os.WriteFile(path, []byte("color: rainbow\n"), 0o600))

	_, err := LoadConfig(path, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported color mode")
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("OSTREE_DUPLICATES", "true")
	cfg, err := LoadConfig(emptyConfig(t), nil)
	require.NoError(t, err)
	require.True(t, cfg.Duplicates)
}

func TestReadKeysPrefersArguments(t *testing.T) {
	keys, err := readKeys([]string{"x"}, strings.NewReader("y\nz\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"x"}, keys)
	keys, err = readKeys(nil, strings.NewReader(" y \n\nz\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"y", "z"}, keys)
}

func TestSetupColorFollowsWriter(t *testing.T) {
	saved := color.NoColor
	defer func() { color.NoColor = saved }()

	var buf bytes.Buffer
	setupColor(colorAuto, &buf)
	require.True(t, color.NoColor, "a buffer is not a terminal")
	setupColor(colorAlways, &buf)
	require.False(t, color.NoColor)
	setupColor(colorNever, os.Stdout)
	require.True(t, color.NoColor)

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	color.NoColor = false
	setupColor(colorAuto, f)
	require.True(t, color.NoColor, "a regular file is not a terminal")
}
