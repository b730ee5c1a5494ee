package list

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// String renders the list as "[e1, e2, ..., en]", formatting each element with
// the default format of the fmt package. An empty list renders as "[]".
func (l List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for p := l.head; p != nil; p = p.rest {
		if p != l.head {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, p.first)
	}
	sb.WriteByte(']')
	return sb.String()
}

type marshalError struct {
	index int
	cause error
}

func (err *marshalError) Error() string {
	return fmt.Sprintf("element %d: %s", err.index, err.cause)
}

func (err *marshalError) Unwrap() error { return err.cause }

// MarshalJSON encodes the list as a JSON array.
func (l List[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	index := 0
	for p := l.head; p != nil; p = p.rest {
		if index > 0 {
			buf.WriteByte(',')
		}
		elemBytes, err := json.Marshal(p.first)
		if err != nil {
			return nil, &marshalError{index, err}
		}
		buf.Write(elemBytes)
		index++
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON array into a new list and makes the receiver
// point to it. Lists sharing cells with the old value of the receiver are not
// affected. A JSON null decodes to an empty list.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	var elems []T
	if err := json.Unmarshal(data, &elems); err != nil {
		return err
	}
	*l = FromSlice(elems)
	return nil
}

// MarshalYAML encodes the list as a YAML sequence.
func (l List[T]) MarshalYAML() (any, error) {
	// A nil slice would be encoded as null.
	s := make([]T, 0)
	for p := l.head; p != nil; p = p.rest {
		s = append(s, p.first)
	}
	return s, nil
}

// UnmarshalYAML decodes a YAML sequence into a new list and makes the receiver
// point to it. A null node decodes to an empty list.
func (l *List[T]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.AliasNode {
		value = value.Alias
	}
	if value.Kind == yaml.ScalarNode && value.ShortTag() == "!!null" {
		*l = List[T]{}
		return nil
	}
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: cannot unmarshal %s into list", value.Line, value.ShortTag())
	}
	var b builder[T]
	for i, elemNode := range value.Content {
		var elem T
		if err := elemNode.Decode(&elem); err != nil {
			return &marshalError{i, err}
		}
		b.add(elem)
	}
	*l = b.finish(List[T]{})
	return nil
}
