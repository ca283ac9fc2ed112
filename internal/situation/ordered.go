package situation

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// Timeline maps a 4-digit year to a value. A nil value is the Compute
// sentinel.
type Timeline map[string]any

// Entity is one named instance inside a container (a person, a tax unit, a
// household). Variables keep their insertion order when encoded.
type Entity struct {
	Members []string

	order     []string
	variables map[string]Timeline
}

// NewEntity creates an entity with the given members. People have no members.
func NewEntity(members ...string) *Entity {
	e := &Entity{variables: make(map[string]Timeline)}
	if len(members) > 0 {
		e.Members = append([]string(nil), members...)
	}
	return e
}

// Set stores an input value for a variable in a year
func (e *Entity) Set(variable, year string, value any) {
	tl, ok := e.variables[variable]
	if !ok {
		tl = make(Timeline)
		e.variables[variable] = tl
		e.order = append(e.order, variable)
	}
	tl[year] = value
}

// Request asks the engine to compute variable for year. It is a no-op when
// the entity already holds a value or placeholder for that year, so inputs
// are never overwritten and repeated requests inject once.
func (e *Entity) Request(variable, year string) bool {
	if tl, ok := e.variables[variable]; ok {
		if _, set := tl[year]; set {
			return false
		}
	}
	e.Set(variable, year, Compute)
	return true
}

// Get returns the timeline for a variable
func (e *Entity) Get(variable string) (Timeline, bool) {
	tl, ok := e.variables[variable]
	return tl, ok
}

// Variables lists variable names in insertion order
func (e *Entity) Variables() []string {
	return e.order
}

// MarshalJSON encodes members first, then variables in insertion order
func (e *Entity) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	if e.Members != nil {
		if err := writeField(&buf, &first, "members", e.Members); err != nil {
			return nil, err
		}
	}
	for _, name := range e.order {
		if err := writeField(&buf, &first, name, e.variables[name]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Container is an insertion-ordered set of named entities
type Container struct {
	names    []string
	entities map[string]*Entity
}

func newContainer() *Container {
	return &Container{entities: make(map[string]*Entity)}
}

// Add inserts or replaces a named entity and returns it
func (c *Container) Add(name string, e *Entity) *Entity {
	if _, ok := c.entities[name]; !ok {
		c.names = append(c.names, name)
	}
	c.entities[name] = e
	return e
}

// Get returns a named entity
func (c *Container) Get(name string) (*Entity, bool) {
	e, ok := c.entities[name]
	return e, ok
}

// Names lists entity names in insertion order
func (c *Container) Names() []string {
	return c.names
}

// Len returns the number of entities
func (c *Container) Len() int {
	return len(c.names)
}

// MarshalJSON encodes entities in insertion order
func (c *Container) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, name := range c.names {
		if err := writeField(&buf, &first, name, c.entities[name]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeField(buf *bytes.Buffer, first *bool, key string, value any) error {
	if !*first {
		buf.WriteByte(',')
	}
	*first = false

	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	v, err := json.Marshal(value)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
	return nil
}
