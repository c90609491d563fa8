package promo

import (
	"errors"
	"slices"
	"strings"
)

var (
	ErrInvalidScope     = errors.New("scope must be either 'all' or 'specific'")
	ErrInvalidCode      = errors.New("promo code must not be blank")
	ErrInvalidReduction = errors.New("reduction cannot be negative")
	ErrInvalidMappedID  = errors.New("mapped ids must be positive")
)

type Scope string

const (
	ScopeAll      Scope = "all"
	ScopeSpecific Scope = "specific"
)

// NewScope treats an empty value as ScopeAll.
func NewScope(s string) (Scope, error) {
	switch Scope(strings.ToLower(strings.TrimSpace(s))) {
	case "", ScopeAll:
		return ScopeAll, nil
	case ScopeSpecific:
		return ScopeSpecific, nil
	default:
		return "", ErrInvalidScope
	}
}

func (s Scope) IsSpecific() bool {
	return s == ScopeSpecific
}

func (s Scope) String() string {
	return string(s)
}

// IDSet is a sorted, duplicate-free set of product or category ids.
// The zero value is an empty set.
type IDSet struct {
	ids []int64
}

func NewIDSet(ids []int64) IDSet {
	out := make([]int64, 0, len(ids))
	out = append(out, ids...)
	slices.Sort(out)
	return IDSet{ids: slices.Compact(out)}
}

func (s IDSet) Contains(id int64) bool {
	_, found := slices.BinarySearch(s.ids, id)
	return found
}

func (s IDSet) Len() int {
	return len(s.ids)
}

func (s IDSet) IsEmpty() bool {
	return len(s.ids) == 0
}

// Slice returns a copy; never nil.
func (s IDSet) Slice() []int64 {
	out := make([]int64, len(s.ids))
	copy(out, s.ids)
	return out
}

func (s IDSet) Validate() error {
	if len(s.ids) > 0 && s.ids[0] <= 0 {
		return ErrInvalidMappedID
	}
	return nil
}
