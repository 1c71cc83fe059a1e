// SPDX-License-Identifier: MIT
//
// File: codec.go
// Role: JSON and YAML encoding of Record, plus the "edges" alias on read.

package nodelink

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphcore/core"
)

// UnmarshalJSON decodes a Record, taking "edges" when "links" is absent.
func (r *Record) UnmarshalJSON(b []byte) error {
	type plain Record
	var aux struct {
		plain
		Edges []Link `json:"edges"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*r = Record(aux.plain)
	if r.Links == nil {
		r.Links = aux.Edges
	}

	return nil
}

// UnmarshalYAML decodes a Record, taking "edges" when "links" is absent.
func (r *Record) UnmarshalYAML(value *yaml.Node) error {
	type plain Record
	var aux struct {
		plain `yaml:",inline"`
		Edges []Link `yaml:"edges"`
	}
	if err := value.Decode(&aux); err != nil {
		return err
	}
	*r = Record(aux.plain)
	if r.Links == nil {
		r.Links = aux.Edges
	}

	return nil
}

// WriteJSON encodes g as an indented node-link JSON document and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(g *core.Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ToRecord(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	return nil
}

// ReadJSON decodes a node-link JSON document from r into a new graph.
// Decoding and validation failures wrap ErrMalformed. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*core.Graph, error) {
	var rec Record
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrMalformed, err)
	}

	return FromRecord(rec)
}

// WriteYAML encodes g as a node-link YAML document and writes it to w.
func WriteYAML(g *core.Graph, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ToRecord(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	return enc.Close()
}

// ReadYAML decodes a node-link YAML document from r into a new graph.
// Decoding and validation failures wrap ErrMalformed. ReadYAML does not close r.
func ReadYAML(r io.Reader) (*core.Graph, error) {
	var rec Record
	if err := yaml.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrMalformed, err)
	}

	return FromRecord(rec)
}
