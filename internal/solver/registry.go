package solver

import (
	"fmt"
	"sort"
)

var methods = map[string]func() Method{
	"newton": func() Method { return NewNewton() },
	"bisect": func() Method { return NewBisect() },
	"hybrid": func() Method { return NewHybrid() },
}

// New returns the named method.
func New(name string) (Method, error) {
	fn, ok := methods[name]
	if !ok {
		return nil, fmt.Errorf("unknown solver method: %s", name)
	}
	return fn(), nil
}

// List returns the registered method names, sorted.
func List() []string {
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
