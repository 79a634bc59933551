package baseconv

import "sort"

// Registry is an immutable name to charset table. Registration returns a new
// Registry rather than mutating shared state, so a Registry captured by a
// codec can never change underneath it.
type Registry struct {
	m map[string]Charset
}

// NewRegistry returns a registry seeded with the standard charsets.
func NewRegistry() Registry {
	r := Registry{m: map[string]Charset{}}

	std := map[string]string{
		"base2":  StdBase2,
		"base8":  StdBase8,
		"base10": StdBase10,
		"base16": StdBase16,
		"base32": StdBase32,
		"base36": StdBase36,
		"base62": StdBase62,
		"base64": StdBase64,
		"base85": StdBase85,
	}

	for name, s := range std {
		// Standard charsets are duplicate free by construction.
		cs, err := NewCharset(s)
		if err != nil {
			panic(err)
		}
		r.m[name] = cs
	}

	return r
}

// With returns a copy of the registry with name bound to cs.
func (r Registry) With(name string, cs Charset) Registry {
	m := make(map[string]Charset, len(r.m)+1)
	for k, v := range r.m {
		m[k] = v
	}
	m[name] = cs

	return Registry{m: m}
}

// Get returns the charset registered under name.
func (r Registry) Get(name string) (Charset, bool) {
	cs, ok := r.m[name]

	return cs, ok
}

// Names returns the registered names in sorted order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r.m))
	for name := range r.m {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
