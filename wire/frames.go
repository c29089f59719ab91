// File: frames.go
// Role: the length-prefixed binary codec of spec.md §6: each op.Operation
// gob-encoded, prefixed with its byte length as a fixed-width uint32
// (encoding/binary), so a reader can frame the stream without scanning for
// delimiters.
package wire

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"io"

	"github.com/jepsenhq/chronos/history"
	"github.com/jepsenhq/chronos/op"
)

// EncodeFrames writes h as a sequence of length-prefixed gob frames, one
// per operation.
func EncodeFrames(w io.Writer, h history.History) error {
	for _, o := range h.All() {
		var buf bytes.Buffer
		if err := gob.NewEncoder(&buf).Encode(toWireOp(o)); err != nil {
			return fmt.Errorf("wire: gob-encode op %d: %w", o.Index, err)
		}
		if buf.Len() > int(^uint32(0)) {
			return fmt.Errorf("wire: op %d frame too large (%d bytes)", o.Index, buf.Len())
		}
		if err := binary.Write(w, binary.BigEndian, uint32(buf.Len())); err != nil {
			return fmt.Errorf("wire: write frame length for op %d: %w", o.Index, err)
		}
		if _, err := w.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("wire: write frame body for op %d: %w", o.Index, err)
		}
	}
	return nil
}

// DecodeFrames reads a length-prefixed gob frame stream back into a
// history.History. It returns an error wrapping io.ErrUnexpectedEOF if a
// length prefix is read but the body is truncated.
func DecodeFrames(r io.Reader) (history.History, error) {
	var ops []op.Operation
	for {
		var length uint32
		if err := binary.Read(r, binary.BigEndian, &length); err != nil {
			if err == io.EOF {
				break
			}
			return history.History{}, fmt.Errorf("wire: read frame length: %w", err)
		}
		body := make([]byte, length)
		if _, err := io.ReadFull(r, body); err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return history.History{}, fmt.Errorf("wire: read frame body: %w", err)
		}
		var w wireOp
		if err := gob.NewDecoder(bytes.NewReader(body)).Decode(&w); err != nil {
			return history.History{}, fmt.Errorf("wire: gob-decode frame: %w", err)
		}
		ops = append(ops, w.toOp())
	}
	return history.Index(ops), nil
}
