// File: jsonl.go
// Role: the JSON-lines codec of spec.md §6: one op per line, exact
// round-trip of numeric type and list structure.
package wire

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jepsenhq/chronos/history"
	"github.com/jepsenhq/chronos/op"
)

// EncodeJSONL writes h as one JSON object per line.
func EncodeJSONL(w io.Writer, h history.History) error {
	enc := json.NewEncoder(w)
	for _, o := range h.All() {
		if err := enc.Encode(toWireOp(o)); err != nil {
			return fmt.Errorf("wire: encode op %d: %w", o.Index, err)
		}
	}
	return nil
}

// DecodeJSONL reads a JSON-lines stream back into a history.History, via
// history.Index (so Index fields are reassigned densely rather than
// trusted from the wire — a defensive re-validation, not a lossy step,
// since a correctly encoded stream's indices are already dense).
func DecodeJSONL(r io.Reader) (history.History, error) {
	var ops []op.Operation
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var w wireOp
		if err := json.Unmarshal(line, &w); err != nil {
			return history.History{}, fmt.Errorf("wire: decode line: %w", err)
		}
		ops = append(ops, w.toOp())
	}
	if err := sc.Err(); err != nil {
		return history.History{}, fmt.Errorf("wire: scan: %w", err)
	}
	return history.Index(ops), nil
}
