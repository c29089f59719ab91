package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jepsenhq/chronos/anomaly"
	"github.com/jepsenhq/chronos/checker"
	"github.com/jepsenhq/chronos/history"
	"github.com/jepsenhq/chronos/op"
	"github.com/jepsenhq/chronos/store"
	"github.com/stretchr/testify/require"
)

func TestWriteRunProducesExpectedLayout(t *testing.T) {
	dir := t.TempDir()

	h := history.Index([]op.Operation{
		{Process: op.ClientProcess(0), Type: op.Invoke, Value: op.Txn(op.Write("x", 1))},
		{Process: op.ClientProcess(0), Type: op.Ok, Value: op.Txn(op.Write("x", 1))},
	})

	verdict := checker.Result{
		Valid: checker.Invalid,
		SubResults: map[string]checker.Result{
			"transactional": {
				Valid: checker.Invalid,
				Anomalies: []anomaly.Witness{
					{Kind: anomaly.G1a, Key: "x", Value: 1, OpIndex: 1, Writer: 0},
				},
			},
		},
	}

	require.NoError(t, store.WriteRun(dir, h, verdict))

	require.FileExists(t, filepath.Join(dir, "history.jsonl"))
	require.FileExists(t, filepath.Join(dir, "results.json"))

	witnessPath := filepath.Join(dir, "anomalies", "G1a", "1.txt")
	require.FileExists(t, witnessPath)

	content, err := os.ReadFile(witnessPath)
	require.NoError(t, err)
	require.Contains(t, string(content), "x=1")

	require.NoDirExists(t, filepath.Join(dir, "plots"))
}

func TestWriteRunWithNoAnomaliesWritesNoAnomaliesDir(t *testing.T) {
	dir := t.TempDir()
	h := history.Index(nil)
	require.NoError(t, store.WriteRun(dir, h, checker.Result{Valid: checker.Valid}))
	require.NoDirExists(t, filepath.Join(dir, "anomalies"))
}
