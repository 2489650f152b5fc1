package tree

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrEmptyPath reports an operation that needs at least one index.
	ErrEmptyPath = errors.New("empty path")
	// ErrInvalidPath reports an index that does not exist among its level's siblings.
	ErrInvalidPath = errors.New("invalid path")
)

// Path identifies a node by the sibling index taken at each depth, starting
// from the root set.
type Path []int

// Clone returns an independent copy of p. A nil path stays nil.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	dup := make(Path, len(p))
	copy(dup, p)
	return dup
}

// Equal reports whether both paths hold the same indices.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// Prefix returns a copy of the first n indices. n is clamped to the path length.
func (p Path) Prefix(n int) Path {
	if n < 0 {
		n = 0
	}
	if n > len(p) {
		n = len(p)
	}
	return p[:n].Clone()
}

// Append returns a new path with index appended.
func (p Path) Append(index int) Path {
	dup := make(Path, len(p), len(p)+1)
	copy(dup, p)
	return append(dup, index)
}

// Last returns the final index, or -1 for an empty path.
func (p Path) Last() int {
	if len(p) == 0 {
		return -1
	}
	return p[len(p)-1]
}

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, idx := range p {
		parts[i] = strconv.Itoa(idx)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Dotted renders the path as "0.1.2".
func (p Path) Dotted() string {
	parts := make([]string, len(p))
	for i, idx := range p {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, ".")
}

// ParsePath parses the dotted form produced by Dotted.
func ParsePath(s string) (Path, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, ErrEmptyPath
	}
	fields := strings.Split(trimmed, ".")
	p := make(Path, 0, len(fields))
	for i, field := range fields {
		idx, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("%w: component %d %q is not a number", ErrInvalidPath, i, field)
		}
		if idx < 0 {
			return nil, fmt.Errorf("%w: component %d is negative (%d)", ErrInvalidPath, i, idx)
		}
		p = append(p, idx)
	}
	return p, nil
}

// ChildrenAt returns the ordered children of the node at prefix. An empty
// prefix yields the roots themselves.
func ChildrenAt(roots []Item, prefix Path) ([]Item, error) {
	level := roots
	for depth, idx := range prefix {
		if idx < 0 || idx >= len(level) {
			return nil, fmt.Errorf("%w: index %d out of range at depth %d (%d siblings)", ErrInvalidPath, idx, depth, len(level))
		}
		children, ok := ChildrenOf(level[idx])
		if !ok {
			return nil, fmt.Errorf("%w: index %d at depth %d is not a branch", ErrInvalidPath, idx, depth)
		}
		level = children
	}
	return level, nil
}

// Resolve returns the item at path.
func Resolve(roots []Item, path Path) (Item, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	siblings, err := ChildrenAt(roots, path[:len(path)-1])
	if err != nil {
		return nil, err
	}
	idx := path[len(path)-1]
	if idx < 0 || idx >= len(siblings) {
		return nil, fmt.Errorf("%w: index %d out of range at depth %d (%d siblings)", ErrInvalidPath, idx, len(path)-1, len(siblings))
	}
	return siblings[idx], nil
}

// SiblingsOf returns the items sharing a parent with the node at path,
// including that node.
func SiblingsOf(roots []Item, path Path) ([]Item, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	if _, err := Resolve(roots, path); err != nil {
		return nil, err
	}
	return ChildrenAt(roots, path[:len(path)-1])
}
