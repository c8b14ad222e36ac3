package app

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Tydus/wordleharmony/internal/combo"
	"github.com/Tydus/wordleharmony/internal/services/harmony"
	"github.com/Tydus/wordleharmony/internal/wordfile"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixtureWords = []string{
	"nymph", "fjord", "gucks", "vibex", "waltz",
	"brick", "glent", "jumpy", "vozhd", "waqfs",
	"bemix", "clunk", "grypt", "chunk", "gymps",
	"blond", "crwth", "fight", "women", "gawky", "quick", "dwarf", "glyph", "verbs",
}

func writeWords(t *testing.T, name string, lines []string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	data := []byte(strings.Join(lines, "\n") + "\n")

	if wordfile.Detect(name) == wordfile.CompressionGzip {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		_, err := zw.Write(data)
		require.NoError(t, err)
		require.NoError(t, zw.Close())
		data = buf.Bytes()
	}

	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	// cobra falls back to os.Args when args is nil
	if args == nil {
		args = []string{}
	}

	var stdout, stderr bytes.Buffer
	cmd := New()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestExecute_SingleSolution(t *testing.T) {
	path := writeWords(t, "words.txt", []string{"Nymph", "fjord\r", "gucks", "vibex", "waltz", "hello", "toolong", "waltz"})

	stdout, stderr, err := execute(t, "-w", path)
	require.NoError(t, err)

	assert.Equal(t, "fjord gucks nymph vibex waltz\n", stdout)
	assert.Contains(t, stderr, "words loaded")
	assert.Contains(t, stderr, "rejected=2")
	assert.Contains(t, stderr, "duplicates=1")
	assert.Contains(t, stderr, "solutions=1")
}

func TestExecute_Strategies(t *testing.T) {
	path := writeWords(t, "words.txt.gz", fixtureWords)

	want := []string{
		"bemix clunk grypt vozhd waqfs",
		"brick glent jumpy vozhd waqfs",
		"chunk fjord gymps vibex waltz",
		"fjord gucks nymph vibex waltz",
	}

	for _, strategy := range []string{"flat", "partitioned", "partitioned-with-reuse"} {
		t.Run(strategy, func(t *testing.T) {
			stdout, _, err := execute(t, "-w", path, "--strategy", strategy, "--workers", "3", "--per-line", "2")
			require.NoError(t, err)

			lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
			require.Len(t, lines, 2)

			var got []string
			for _, line := range lines {
				got = append(got, strings.Split(line, "  ")...)
			}
			assert.ElementsMatch(t, want, got)
		})
	}
}

func TestExecute_Coverage(t *testing.T) {
	path := writeWords(t, "words.txt", fixtureWords)

	stdout, _, err := execute(t, "-w", path, "--coverage", "26")
	require.NoError(t, err)
	assert.Empty(t, stdout)
}

func TestExecute_Verbose(t *testing.T) {
	path := writeWords(t, "words.txt", fixtureWords)

	_, stderr, err := execute(t, "-w", path, "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, "msg=bucket")
}

func TestExecute_Errors(t *testing.T) {
	words := writeWords(t, "words.txt", fixtureWords)

	capped := filepath.Join(t.TempDir(), "capped.yaml")
	require.NoError(t, os.WriteFile(capped, []byte("harmony:\n  per_arity_output_cap:\n    3: 1\n"), 0o600))

	tests := []struct {
		name string
		args []string
		want error
	}{
		{name: "no word file", args: nil, want: wordfile.ErrNoPath},
		{name: "missing word file", args: []string{"-w", filepath.Join(t.TempDir(), "nope.txt")}, want: os.ErrNotExist},
		{name: "unknown strategy", args: []string{"-w", words, "--strategy", "zigzag"}, want: harmony.ErrUnknownStrategy},
		{name: "negative workers", args: []string{"-w", words, "--workers", "-1"}, want: harmony.ErrInvalidConfig},
		{name: "missing config", args: []string{"-w", words, "-c", filepath.Join(t.TempDir(), "nope.yaml")}, want: os.ErrNotExist},
		{name: "capacity", args: []string{"-w", words, "-c", capped}, want: combo.ErrCapacityExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			require.ErrorIs(t, err, tt.want)
			assert.Empty(t, stdout)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)

	path := filepath.Join(t.TempDir(), "config.yaml")
	yml := `
logger:
  level: warn
  is_json: true
harmony:
  strategy: partitioned-with-reuse
  workers: 8
  coverage: 24
  progress_period: 1s
  per_arity_output_cap:
    2: 1000
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	cfg, err = loadConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.True(t, cfg.Logger.IsJSON)
	assert.Equal(t, harmony.StrategyReuse, cfg.Harmony.Strategy)
	assert.Equal(t, 8, cfg.Harmony.Workers)
	assert.Equal(t, 24, cfg.Harmony.Coverage)
	assert.Equal(t, time.Second, cfg.Harmony.ProgressPeriod)
	assert.Equal(t, 1000, cfg.Harmony.Cap(2))
	assert.Equal(t, harmony.DefaultOutputCap, cfg.Harmony.Cap(5), "unset arities keep the default cap")
	assert.Equal(t, harmony.DefaultMaxCatalogSize, cfg.Harmony.MaxCatalogSize)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "no logger", mutate: func(c *Config) { c.Logger = nil }, wantErr: true},
		{name: "bad level", mutate: func(c *Config) { c.Logger.Level = "loud" }, wantErr: true},
		{name: "no harmony", mutate: func(c *Config) { c.Harmony = nil }, wantErr: true},
		{name: "bad coverage", mutate: func(c *Config) { c.Harmony.Coverage = 27 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)

			if tt.wantErr {
				assert.Error(t, cfg.Validate())
			} else {
				assert.NoError(t, cfg.Validate())
			}
		})
	}
}
