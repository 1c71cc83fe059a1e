// SPDX-License-Identifier: MIT

package nodelink

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ID is a node reference in a document. It is always written as a string;
// integer ids written by other tools are accepted and kept as their
// decimal text.
type ID string

// UnmarshalJSON accepts a JSON string or integer.
func (id *ID) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)

		return nil
	}
	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("node id %s: want string or integer", b)
	}
	*id = ID(strconv.FormatInt(n, 10))

	return nil
}

// UnmarshalYAML accepts a string or integer scalar.
func (id *ID) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: node id must be a scalar", value.Line)
	}
	switch value.ShortTag() {
	case "!!str":
		*id = ID(value.Value)
	case "!!int":
		var n int64
		if err := value.Decode(&n); err != nil {
			return err
		}
		*id = ID(strconv.FormatInt(n, 10))
	default:
		return fmt.Errorf("line %d: node id %q: want string or integer", value.Line, value.Value)
	}

	return nil
}
