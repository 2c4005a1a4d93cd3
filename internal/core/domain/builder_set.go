package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// BuilderSet is an ordered collection of builders keyed by name.
// Names are unique; the host rejects duplicate builder registrations.
type BuilderSet struct {
	builders map[string]Builder
	order    []string
}

// NewBuilderSet creates a new empty BuilderSet.
func NewBuilderSet() *BuilderSet {
	return &BuilderSet{
		builders: make(map[string]Builder),
	}
}

// AddBuilder appends a builder to the set.
// It returns an error if a builder with the same name already exists.
func (s *BuilderSet) AddBuilder(b *Builder) error {
	if _, exists := s.builders[b.Name]; exists {
		return zerr.With(ErrDuplicateBuilder, "builder", b.Name)
	}
	s.builders[b.Name] = *b
	s.order = append(s.order, b.Name)
	return nil
}

// Get returns the builder registered under name.
func (s *BuilderSet) Get(name string) (Builder, bool) {
	b, ok := s.builders[name]
	return b, ok
}

// Len returns the number of builders in the set.
func (s *BuilderSet) Len() int {
	return len(s.order)
}

// Names returns the builder names in insertion order.
func (s *BuilderSet) Names() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// Walk returns an iterator that yields builders in insertion order.
func (s *BuilderSet) Walk() iter.Seq[Builder] {
	return func(yield func(Builder) bool) {
		for _, name := range s.order {
			if !yield(s.builders[name]) {
				return
			}
		}
	}
}
