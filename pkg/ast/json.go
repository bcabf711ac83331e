package ast

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// MarshalJSON encodes the canonical form of n. Map keys are sorted, so
// equal trees encode to identical bytes.
func MarshalJSON(n Node) ([]byte, error) {
	data, err := json.Marshal(ToMap(n))
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", Tag(n), err)
	}
	return data, nil
}

// UnmarshalJSON decodes a node from its canonical JSON form.
func UnmarshalJSON(data []byte) (Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode node: %w", err)
	}
	if m == nil {
		return nil, nil
	}
	return FromMap(m)
}

// MarshalStmts encodes a statement list as a JSON array.
func MarshalStmts(stmts []*RawStmt) ([]byte, error) {
	items := make([]any, len(stmts))
	for i, s := range stmts {
		items[i] = ToMap(s)
	}
	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode statements: %w", err)
	}
	return data, nil
}
