/*
Package builtins implements the commands the interpreter satisfies itself:
cd, ls, cwd, mkdir, rmdir, help and exit.
*/
package builtins

import (
	"github.com/AntonioJCosta/wasabi/internal/core/ports"
)

type registry struct {
	byName  map[string]ports.Builtin
	ordered []ports.Builtin
}

// NewRegistry builds the fixed builtin table. It panics if fs or out is nil.
// The returned registry is never modified afterwards.
func NewRegistry(fs ports.Filesystem, out ports.OutputSink) ports.BuiltinRegistry {
	if fs == nil {
		panic("filesystem cannot be nil")
	}
	if out == nil {
		panic("output sink cannot be nil")
	}

	r := &registry{byName: make(map[string]ports.Builtin)}
	for _, b := range []ports.Builtin{
		&cdBuiltin{fs: fs, out: out},
		&lsBuiltin{fs: fs, out: out},
		&cwdBuiltin{fs: fs, out: out},
		&mkdirBuiltin{fs: fs, out: out},
		&rmdirBuiltin{fs: fs, out: out},
		&helpBuiltin{out: out, list: r.Builtins},
		&exitBuiltin{},
	} {
		r.byName[b.Name()] = b
		r.ordered = append(r.ordered, b)
	}
	return r
}

// Lookup matches name exactly and case-sensitively.
func (r *registry) Lookup(name string) (ports.Builtin, bool) {
	b, ok := r.byName[name]
	return b, ok
}

func (r *registry) Builtins() []ports.Builtin {
	out := make([]ports.Builtin, len(r.ordered))
	copy(out, r.ordered)
	return out
}
