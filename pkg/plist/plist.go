// Package plist implements the list tool subprogram, which loads lists from
// YAML or JSON documents, transforms them with persistent list operations and
// prints the result.
package plist

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
	"src.elv.sh/plist/pkg/errutil"
	"src.elv.sh/plist/pkg/logutil"
	"src.elv.sh/plist/pkg/persistent/list"
	"src.elv.sh/plist/pkg/prog"
	"src.elv.sh/plist/pkg/sys"
)

var logger = logutil.GetLogger("[plist] ")

// Program is the list tool subprogram.
type Program struct{}

// Run runs the subprogram.
func (Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	ops, err := parseOps(f.Op)
	if err != nil {
		return err
	}
	decode, err := decoderFor(f.Format)
	if err != nil {
		return err
	}

	var inputs []list.List[any]
	if len(args) == 0 {
		if sys.IsATTYFile(fds[0]) {
			return prog.BadUsage("no input files given and stdin is a terminal")
		}
		l, err := load("stdin", fds[0], decode)
		if err != nil {
			return err
		}
		inputs = append(inputs, l)
	} else {
		var errs []error
		for _, name := range args {
			l, err := loadFile(name, decode)
			errs = append(errs, err)
			inputs = append(inputs, l)
		}
		if err := errutil.Multi(errs...); err != nil {
			return err
		}
	}

	var v any = concatAll(inputs)
	for _, op := range ops {
		logger.Println("applying", op.name)
		v, err = op.apply(v.(list.List[any]))
		if err != nil {
			return err
		}
	}
	return write(fds[1], v, f.JSON)
}

type decoder func([]byte, any) error

func decoderFor(format string) (decoder, error) {
	switch format {
	case "yaml", "":
		return yaml.Unmarshal, nil
	case "json":
		return json.Unmarshal, nil
	default:
		return nil, prog.BadUsage(fmt.Sprintf("unknown format %q", format))
	}
}

func loadFile(name string, decode decoder) (list.List[any], error) {
	file, err := os.Open(name)
	if err != nil {
		return list.List[any]{}, err
	}
	defer file.Close()
	return load(name, file, decode)
}

func load(name string, r io.Reader, decode decoder) (list.List[any], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return list.List[any]{}, fmt.Errorf("%s: %w", name, err)
	}
	var l list.List[any]
	if err := decode(data, &l); err != nil {
		return list.List[any]{}, fmt.Errorf("%s: %w", name, err)
	}
	l = normalize(l)
	logger.Printf("loaded %d elements from %s", l.Len(), name)
	return l, nil
}

// normalize converts nested sequences, which the decoders produce as []any,
// into lists.
func normalize(l list.List[any]) list.List[any] {
	return list.Map(l, normalizeValue)
}

func normalizeValue(v any) any {
	if s, ok := v.([]any); ok {
		return normalize(list.FromSlice(s))
	}
	return v
}

// concatAll concatenates the lists from the last one, so that each input is
// copied at most once.
func concatAll(ls []list.List[any]) list.List[any] {
	var acc list.List[any]
	for i := len(ls) - 1; i >= 0; i-- {
		acc = list.Concat(ls[i], acc)
	}
	return acc
}

func write(w io.Writer, v any, asJSON bool) error {
	if asJSON {
		bs, err := json.Marshal(v)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", bs)
		return err
	}
	_, err := fmt.Fprintln(w, v)
	return err
}
