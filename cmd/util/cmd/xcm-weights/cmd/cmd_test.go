package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/Bullrich/polkadot-fellows-runtimes/xcm/weights"
	"github.com/Bullrich/polkadot-fellows-runtimes/xcm/weights/kusama"
)

const (
	kusamaResultSet = "../../../../../xcm/weights/gen/testdata/kusama_generic.yaml"
	kusamaGenerated = "../../../../../xcm/weights/kusama/generic.go"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	stdout, _, err := executeCapture(t, args...)
	return stdout, err
}

func executeCapture(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestErrorsAreReturnedNotPrinted(t *testing.T) {
	stdout, stderr, err := executeCapture(t, "show", "--instruction", "teleport_everything")
	require.Error(t, err)
	assert.Empty(t, stdout)
	assert.NotContains(t, stderr, "teleport_everything")
	assert.NotContains(t, stderr, "Error:")
}

func showJSON(t *testing.T, args ...string) []weightRow {
	t.Helper()
	out, err := execute(t, append([]string{"show", "--format", "json"}, args...)...)
	require.NoError(t, err)

	var rows []weightRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	return rows
}

func TestGenerate(t *testing.T) {
	t.Run("reproduces the kusama table", func(t *testing.T) {
		output := filepath.Join(t.TempDir(), "generic.go")
		_, err := execute(t, "generate", "--input", kusamaResultSet, "--output", output, "--package", "kusama")
		require.NoError(t, err)

		generated, err := os.ReadFile(output)
		require.NoError(t, err)
		expected, err := os.ReadFile(kusamaGenerated)
		require.NoError(t, err)
		assert.Equal(t, string(expected), string(generated))
	})

	t.Run("requires input and output", func(t *testing.T) {
		_, err := execute(t, "generate", "--input", kusamaResultSet)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "output")
	})

	t.Run("missing input file", func(t *testing.T) {
		dir := t.TempDir()
		output := filepath.Join(dir, "generic.go")
		_, err := execute(t, "generate", "--input", filepath.Join(dir, "missing.yaml"), "--output", output)
		require.Error(t, err)
		assert.NoFileExists(t, output)
	})

	t.Run("invalid result set writes nothing", func(t *testing.T) {
		dir := t.TempDir()
		input := filepath.Join(dir, "results.yaml")
		require.NoError(t, os.WriteFile(input, []byte("weights:\n  - name: not_an_instruction\n"), 0o644))

		output := filepath.Join(dir, "generic.go")
		_, err := execute(t, "generate", "--input", input, "--output", output)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not_an_instruction")
		assert.NoFileExists(t, output)
	})
}

func TestShow(t *testing.T) {
	t.Run("defaults to the kusama table on rocksdb", func(t *testing.T) {
		rows := showJSON(t)
		require.Len(t, rows, len(kusama.Records))

		assert.Equal(t, weightRow{
			Instruction: "report_holding",
			RefTime:     610_000_000,
			ProofSize:   3676,
			BaseTime:    35_000_000,
			Reads:       7,
			Writes:      4,
		}, rows[0])
	})

	t.Run("single instruction by either name", func(t *testing.T) {
		for _, name := range []string{"report_holding", "ReportHolding"} {
			rows := showJSON(t, "--instruction", name)
			require.Len(t, rows, 1)
			assert.Equal(t, "report_holding", rows[0].Instruction)
		}
	})

	t.Run("unknown instruction", func(t *testing.T) {
		_, err := execute(t, "show", "--instruction", "teleport_everything")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "teleport_everything")
	})

	t.Run("paritydb flag", func(t *testing.T) {
		rows := showJSON(t, "--instruction", "report_holding", "--db-backend", "paritydb")
		assert.Equal(t, uint64(291_000_000), rows[0].RefTime)
	})

	t.Run("backend from environment", func(t *testing.T) {
		t.Setenv("XCM_WEIGHTS_DB_BACKEND", "paritydb")
		rows := showJSON(t, "--instruction", "report_holding")
		assert.Equal(t, uint64(291_000_000), rows[0].RefTime)
	})

	t.Run("flag overrides environment", func(t *testing.T) {
		t.Setenv("XCM_WEIGHTS_DB_BACKEND", "paritydb")
		rows := showJSON(t, "--instruction", "report_holding", "--db-backend", "rocksdb")
		assert.Equal(t, uint64(610_000_000), rows[0].RefTime)
	})

	t.Run("custom backend from config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		cfg := strings.Join([]string{
			"db-backend: custom",
			"db-read-ref-time: 1",
			"db-read-proof-size: 10",
			"db-write-ref-time: 2",
			"db-write-proof-size: 0",
		}, "\n")
		require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))

		rows := showJSON(t, "--config", path, "--instruction", "report_holding")
		assert.Equal(t, uint64(35_000_000+7*1+4*2), rows[0].RefTime)
		assert.Equal(t, uint64(3676+7*10), rows[0].ProofSize)
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := execute(t, "show", "--db-backend", "leveldb")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "leveldb")
	})

	t.Run("result set input matches compiled table", func(t *testing.T) {
		assert.Equal(t, showJSON(t), showJSON(t, "--input", kusamaResultSet))
	})

	t.Run("text output", func(t *testing.T) {
		out, err := execute(t, "show")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, len(kusama.Records)+1)
		assert.Equal(t, []string{"INSTRUCTION", "REF_TIME", "PROOF_SIZE", "BASE_TIME", "READS", "WRITES"}, strings.Fields(lines[0]))
		assert.Equal(t, []string{"report_holding", "610000000", "3676", "35000000", "7", "4"}, strings.Fields(lines[1]))
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := execute(t, "show", "--format", "xml")
		require.Error(t, err)
	})
}

func TestProvenance(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		out, err := execute(t, "provenance")
		require.NoError(t, err)

		var p weights.Provenance
		require.NoError(t, yaml.UnmarshalStrict([]byte(out), &p))
		assert.Equal(t, kusama.Provenance, p)
	})

	t.Run("header", func(t *testing.T) {
		out, err := execute(t, "provenance", "--format", "header", "--input", kusamaResultSet)
		require.NoError(t, err)
		assert.Equal(t, kusama.Provenance.Header()+"\n", out)
	})

	t.Run("invalid log level", func(t *testing.T) {
		_, err := execute(t, "provenance", "--loglevel", "loud")
		require.Error(t, err)
	})
}
