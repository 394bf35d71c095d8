// Package param parses the trailing "name=value" tokens off a cachesim
// CLI invocation into an ordered set with typed accessors.
package param

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Pair is one name=value token, in the order it appeared on the command
// line.
type Pair struct {
	Name  string
	Value string
}

// Set is an ordered, parsed collection of CLI parameter tokens.
type Set struct {
	pairs  []Pair
	values map[string]string
}

// Parse splits each of args on its first '=' into a Pair. A token with
// no '=' is reported as an error; Parse returns everything parsed
// successfully before the first bad token, plus the error.
func Parse(args []string) (*Set, error) {
	s := &Set{values: make(map[string]string, len(args))}
	for _, arg := range args {
		i := strings.IndexByte(arg, '=')
		if i < 0 {
			return s, errors.Errorf("param: malformed argument %q, want name=value", arg)
		}
		name, value := arg[:i], arg[i+1:]
		s.pairs = append(s.pairs, Pair{Name: name, Value: value})
		s.values[name] = value
	}
	return s, nil
}

// Pairs returns every parsed token, in argument order.
func (s *Set) Pairs() []Pair { return s.pairs }

// Uint64 parses name's value as a base-10 uint64.
func (s *Set) Uint64(name string) (uint64, error) {
	v, ok := s.values[name]
	if !ok {
		return 0, errors.Errorf("param: %q not set", name)
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "param: %q", name)
	}
	return n, nil
}

// Float64 parses name's value as a float64.
func (s *Set) Float64(name string) (float64, error) {
	v, ok := s.values[name]
	if !ok {
		return 0, errors.Errorf("param: %q not set", name)
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "param: %q", name)
	}
	return f, nil
}

// Summary renders the set as a comma-joined "name=value" list in
// argument order, or "-" if empty, for the CLI's one-line summary
// output.
func (s *Set) Summary() string {
	if len(s.pairs) == 0 {
		return "-"
	}
	parts := make([]string, len(s.pairs))
	for i, p := range s.pairs {
		parts[i] = p.Name + "=" + p.Value
	}
	return strings.Join(parts, ",")
}
