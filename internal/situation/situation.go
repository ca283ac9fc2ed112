// Package situation builds the household request payloads sent to the
// microsimulation engine and defines the shape of its responses.
package situation

import (
	"bytes"
	"fmt"
)

// Compute is the protocol sentinel placed in a timeline to ask the engine to
// calculate a variable. It encodes as JSON null. It is distinct from a zero
// value and from an absent variable; no other sentinel exists.
var Compute any

// PeopleKey is the container that holds every person
const PeopleKey = "people"

// Situation is an ordered tree of entity containers: people first, then the
// country's group containers, then the optional sweep axes.
type Situation struct {
	People *Container
	Axes   [][]Axis

	groupKeys []string
	groups    map[string]*Container
}

// New returns an empty situation
func New() *Situation {
	return &Situation{
		People: newContainer(),
		groups: make(map[string]*Container),
	}
}

// AddContainer returns the group container for key, creating it if needed
func (s *Situation) AddContainer(key string) *Container {
	if key == PeopleKey {
		return s.People
	}
	if c, ok := s.groups[key]; ok {
		return c
	}
	c := newContainer()
	s.groups[key] = c
	s.groupKeys = append(s.groupKeys, key)
	return c
}

// Container returns a container by key, including "people"
func (s *Situation) Container(key string) (*Container, bool) {
	if key == PeopleKey {
		return s.People, true
	}
	c, ok := s.groups[key]
	return c, ok
}

// Entity returns the named instance inside a container
func (s *Situation) Entity(key, name string) (*Entity, bool) {
	c, ok := s.Container(key)
	if !ok {
		return nil, false
	}
	return c.Get(name)
}

// ContainerKeys lists every container key in encoding order
func (s *Situation) ContainerKeys() []string {
	return append([]string{PeopleKey}, s.groupKeys...)
}

// Validate checks that every name in a members list is a person
func (s *Situation) Validate() error {
	for _, key := range s.groupKeys {
		c := s.groups[key]
		for _, name := range c.Names() {
			e, _ := c.Get(name)
			for _, m := range e.Members {
				if _, ok := s.People.Get(m); !ok {
					return fmt.Errorf("%s[%q]: member %q is not in people", key, name, m)
				}
			}
		}
	}
	return nil
}

// MarshalJSON encodes the containers in order, followed by axes when set
func (s *Situation) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	if err := writeField(&buf, &first, PeopleKey, s.People); err != nil {
		return nil, err
	}
	for _, key := range s.groupKeys {
		if err := writeField(&buf, &first, key, s.groups[key]); err != nil {
			return nil, err
		}
	}
	if len(s.Axes) > 0 {
		if err := writeField(&buf, &first, "axes", s.Axes); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
