package plist

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"src.elv.sh/plist/pkg/persistent/hash"
	"src.elv.sh/plist/pkg/persistent/list"
	"src.elv.sh/plist/pkg/prog"
)

// op is an operation in the pipeline given to -op. Operations producing a
// scalar are terminal and may only appear last.
type op struct {
	name     string
	terminal bool
	apply    func(list.List[any]) (any, error)
}

var errEmpty = errors.New("list is empty")

var listOps = map[string]func(list.List[any]) list.List[any]{
	"reverse": list.Reverse[any],
	"tail": func(l list.List[any]) list.List[any] {
		tail, _ := l.Tail()
		return tail
	},
	"flatten": func(l list.List[any]) list.List[any] {
		return list.FlatMap(l, func(v any) list.List[any] {
			if sub, ok := v.(list.List[any]); ok {
				return sub
			}
			return list.Of(v)
		})
	},
	"dup": func(l list.List[any]) list.List[any] { return list.Concat(l, l) },
}

var scalarOps = map[string]func(list.List[any]) (any, error){
	"len": func(l list.List[any]) (any, error) { return l.Len(), nil },
	"head": func(l list.List[any]) (any, error) {
		v, ok := l.Head()
		if !ok {
			return nil, errEmpty
		}
		return v, nil
	},
	"hash": func(l list.List[any]) (any, error) { return hashList(l), nil },
}

// parseOps parses a comma-separated pipeline like "reverse,tail,get=1".
func parseOps(s string) ([]op, error) {
	if s == "" {
		return nil, nil
	}
	names := strings.Split(s, ",")
	ops := make([]op, len(names))
	for i, name := range names {
		o, err := parseOp(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		if o.terminal && i != len(names)-1 {
			return nil, prog.BadUsage(fmt.Sprintf("operation %s must be the last", o.name))
		}
		ops[i] = o
	}
	return ops, nil
}

func parseOp(name string) (op, error) {
	if f, ok := listOps[name]; ok {
		return op{name, false, func(l list.List[any]) (any, error) { return f(l), nil }}, nil
	}
	if f, ok := scalarOps[name]; ok {
		return op{name, true, f}, nil
	}
	if arg, ok := strings.CutPrefix(name, "get="); ok {
		i, err := strconv.Atoi(arg)
		if err != nil {
			return op{}, prog.BadUsage(fmt.Sprintf("bad index in %s", name))
		}
		return op{name, true, func(l list.List[any]) (any, error) {
			v, ok := l.Get(i)
			if !ok {
				return nil, list.OutOfRange{
					What: "index", ValidLow: 0, ValidHigh: l.Len() - 1,
					Actual: arg}
			}
			return v, nil
		}}, nil
	}
	return op{}, prog.BadUsage(fmt.Sprintf("unknown operation %q", name))
}

func hashList(l list.List[any]) uint32 {
	return list.Hash(l, hashValue)
}

func hashValue(v any) uint32 {
	switch v := v.(type) {
	case nil:
		return 0
	case bool:
		return hash.Bool(v)
	case int:
		return hash.Int(v)
	case float64:
		return hash.Float64(v)
	case string:
		return hash.String(v)
	case list.List[any]:
		return hashList(v)
	default:
		return hash.String(fmt.Sprint(v))
	}
}
