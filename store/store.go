// File: store.go
// Role: WriteRun, the single entry point assembling history.jsonl,
// results.json, and anomalies/<type>/<n>.txt from one completed checker
// run, spec.md §6 "Persisted state layout."
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jepsenhq/chronos/anomaly"
	"github.com/jepsenhq/chronos/checker"
	"github.com/jepsenhq/chronos/history"
	"github.com/jepsenhq/chronos/wire"
)

// WriteRun creates dir (and any missing parents) and writes history.jsonl,
// results.json, and one anomalies/<kind>/<n>.txt per witness found anywhere
// in verdict's SubResults tree (or directly in verdict.Anomalies, for a
// leaf Result). plots/ is never created: report rendering is out of scope.
func WriteRun(dir string, h history.History, verdict checker.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("store: create run dir %s: %w", dir, err)
	}

	if err := writeHistory(dir, h); err != nil {
		return err
	}
	if err := writeResults(dir, verdict); err != nil {
		return err
	}
	if err := writeAnomalies(dir, verdict); err != nil {
		return err
	}
	return nil
}

func writeHistory(dir string, h history.History) error {
	f, err := os.Create(filepath.Join(dir, "history.jsonl"))
	if err != nil {
		return fmt.Errorf("store: create history.jsonl: %w", err)
	}
	defer f.Close()
	if err := wire.EncodeJSONL(f, h); err != nil {
		return fmt.Errorf("store: write history.jsonl: %w", err)
	}
	return nil
}

func writeResults(dir string, verdict checker.Result) error {
	f, err := os.Create(filepath.Join(dir, "results.json"))
	if err != nil {
		return fmt.Errorf("store: create results.json: %w", err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(verdict); err != nil {
		return fmt.Errorf("store: write results.json: %w", err)
	}
	return nil
}

func writeAnomalies(dir string, verdict checker.Result) error {
	counts := make(map[anomaly.Kind]int)
	for _, w := range collectWitnesses(verdict) {
		counts[w.Kind]++
		n := counts[w.Kind]
		kindDir := filepath.Join(dir, "anomalies", string(w.Kind))
		if err := os.MkdirAll(kindDir, 0o755); err != nil {
			return fmt.Errorf("store: create anomalies/%s: %w", w.Kind, err)
		}
		path := filepath.Join(kindDir, fmt.Sprintf("%d.txt", n))
		if err := os.WriteFile(path, []byte(anomaly.Explain(w)+"\n"), 0o644); err != nil {
			return fmt.Errorf("store: write %s: %w", path, err)
		}
	}
	return nil
}

// collectWitnesses walks verdict's SubResults tree (composed checkers nest
// one level, since Compose's own Checker never calls itself recursively)
// and flattens every witness found, in a deterministic order: a leaf's own
// Anomalies first, then each SubResults entry in sorted key order.
func collectWitnesses(r checker.Result) []anomaly.Witness {
	out := append([]anomaly.Witness(nil), r.Anomalies...)
	for _, name := range sortedKeys(r.SubResults) {
		out = append(out, collectWitnesses(r.SubResults[name])...)
	}
	return out
}

func sortedKeys(m map[string]checker.Result) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}
