package statement

import (
	"strings"

	"github.com/pds-tools/odl/value"
)

// container is the shared ordered, identifier-keyed implementation
// backing Label, GroupStatements and ObjectStatements. Uniqueness and
// index semantics mirror pyds's Statements base class, re-expressed
// over a slice and a lookup map instead of a weak-value doubly linked
// list — labels are short, caller-owned trees, not a pool of
// short-lived parse nodes, so there is nothing here for a sync.Pool
// or a linked list to buy back.
type container struct {
	stmts []Statement
	keys  map[string]Statement
}

func newContainer() container {
	return container{keys: make(map[string]Statement)}
}

func (c *container) Len() int { return len(c.stmts) }

// maxIdentifierWidth returns the widest identifier among the held
// statements, no narrower than floor.
func (c *container) maxIdentifierWidth(floor int) int {
	w := floor
	for _, s := range c.stmts {
		if n := len(s.Identifier()); n > w {
			w = n
		}
	}
	return w
}

// clampInsertIndex reproduces pyds's insert-index clamping:
// `max(0, len+index) if index < 0 else min(len, index)`.
func clampInsertIndex(n, index int) int {
	if index < 0 {
		index = n + index
		if index < 0 {
			index = 0
		}
		return index
	}
	if index > n {
		return n
	}
	return index
}

// resolveAccessIndex reproduces pyds's get/pop index resolution:
// `len+index if index < 0 else index`, then bounds-checked.
func resolveAccessIndex(n, index int) (int, error) {
	if index < 0 {
		index += n
	}
	if index < 0 || index >= n {
		return 0, value.NewValidationError("index %d out of range [0,%d)", index, n)
	}
	return index, nil
}

func (c *container) insert(index int, stmt Statement) error {
	key := stmt.Identifier()
	if _, exists := c.keys[key]; exists {
		return value.NewValidationError("statement with identifier %q already exists", key)
	}
	idx := clampInsertIndex(len(c.stmts), index)
	c.stmts = append(c.stmts, nil)
	copy(c.stmts[idx+1:], c.stmts[idx:])
	c.stmts[idx] = stmt
	c.keys[key] = stmt
	return nil
}

func (c *container) append(stmt Statement) error {
	return c.insert(len(c.stmts), stmt)
}

func (c *container) get(index int) (Statement, error) {
	idx, err := resolveAccessIndex(len(c.stmts), index)
	if err != nil {
		return nil, err
	}
	return c.stmts[idx], nil
}

func (c *container) pop(index int) (Statement, error) {
	idx, err := resolveAccessIndex(len(c.stmts), index)
	if err != nil {
		return nil, err
	}
	stmt := c.stmts[idx]
	c.stmts = append(c.stmts[:idx], c.stmts[idx+1:]...)
	delete(c.keys, stmt.Identifier())
	return stmt, nil
}

func (c *container) contains(key string) bool {
	_, ok := c.keys[strings.ToUpper(key)]
	return ok
}

func (c *container) getByKey(key string) (Statement, bool) {
	s, ok := c.keys[strings.ToUpper(key)]
	return s, ok
}

// setByKey replaces, in place, the statement sharing stmt's
// identifier, or appends stmt if no such identifier is held yet.
func (c *container) setByKey(stmt Statement) error {
	key := stmt.Identifier()
	if old, exists := c.keys[key]; exists {
		for i, s := range c.stmts {
			if s == old {
				c.stmts[i] = stmt
				break
			}
		}
		c.keys[key] = stmt
		return nil
	}
	return c.append(stmt)
}

func (c *container) statements() []Statement {
	cp := make([]Statement, len(c.stmts))
	copy(cp, c.stmts)
	return cp
}

func checkCompositeStatement(stmt Statement) error {
	switch stmt.(type) {
	case *Attribute, *Group, *Object:
		return nil
	default:
		return value.NewValidationError("statement is not an Attribute, Group or Object")
	}
}

// buildCompositeStatement dispatches on v's runtime type the way
// pyds's Statements.__setitem__ does: a Value becomes an Attribute, a
// *GroupStatements becomes a Group, an *ObjectStatements becomes an
// Object.
func buildCompositeStatement(key string, v any) (Statement, error) {
	switch val := v.(type) {
	case value.Value:
		return NewAttribute(key, val, true)
	case *GroupStatements:
		return NewGroup(key, val, true)
	case *ObjectStatements:
		return NewObject(key, val, true)
	default:
		return nil, value.NewValidationError("value of type %T is not a Value, GroupStatements or ObjectStatements", v)
	}
}

// Label represents a full PDS label: an ordered, identifier-keyed
// sequence of Attribute, Group and Object statements, serialized with
// a trailing `END ` line (spec.md §4.3).
type Label struct {
	container
}

// NewLabel constructs an empty Label.
func NewLabel() *Label {
	return &Label{container: newContainer()}
}

// Insert places stmt at index (Python-style negative/out-of-range
// clamping), rejecting a duplicate (case-insensitive) identifier.
func (l *Label) Insert(index int, stmt Statement) error {
	if err := checkCompositeStatement(stmt); err != nil {
		return err
	}
	return l.container.insert(index, stmt)
}

func (l *Label) Append(stmt Statement) error { return l.Insert(l.Len(), stmt) }

func (l *Label) Get(index int) (Statement, error) { return l.container.get(index) }

func (l *Label) Pop(index int) (Statement, error) { return l.container.pop(index) }

func (l *Label) Contains(key string) bool { return l.container.contains(key) }

func (l *Label) GetByKey(key string) (Statement, bool) { return l.container.getByKey(key) }

// SetByKey builds the statement flavor matching v's runtime type
// (value.Value → Attribute; *GroupStatements → Group;
// *ObjectStatements → Object) and replaces the statement sharing its
// identifier in place, or appends it.
func (l *Label) SetByKey(key string, v any) error {
	stmt, err := buildCompositeStatement(key, v)
	if err != nil {
		return err
	}
	return l.container.setByKey(stmt)
}

// Statements returns a snapshot of the label's statements in order.
func (l *Label) Statements() []Statement { return l.container.statements() }

func (l *Label) String() string {
	width := l.maxIdentifierWidth(10)
	parts := make([]string, 0, len(l.stmts))
	for _, s := range l.stmts {
		parts = append(parts, s.format("", width))
	}
	return strings.Join(parts, "\r\n") + "\r\nEND "
}

// GroupStatements is the container held by a Group: only Attribute
// statements are admitted, enforced statically by Insert's parameter
// type (stronger than pyds's runtime isinstance check).
type GroupStatements struct {
	container
}

// NewGroupStatements constructs an empty GroupStatements.
func NewGroupStatements() *GroupStatements {
	return &GroupStatements{container: newContainer()}
}

func (g *GroupStatements) Insert(index int, attr *Attribute) error {
	return g.container.insert(index, attr)
}

func (g *GroupStatements) Append(attr *Attribute) error { return g.Insert(g.Len(), attr) }

func (g *GroupStatements) Get(index int) (Statement, error) { return g.container.get(index) }

func (g *GroupStatements) Pop(index int) (Statement, error) { return g.container.pop(index) }

func (g *GroupStatements) Contains(key string) bool { return g.container.contains(key) }

func (g *GroupStatements) GetByKey(key string) (Statement, bool) { return g.container.getByKey(key) }

// SetByKey builds an Attribute from key and v and replaces the
// attribute sharing its identifier in place, or appends it.
func (g *GroupStatements) SetByKey(key string, v value.Value) error {
	attr, err := NewAttribute(key, v, true)
	if err != nil {
		return err
	}
	return g.container.setByKey(attr)
}

// Statements returns a snapshot of the group's attributes in order.
func (g *GroupStatements) Statements() []Statement { return g.container.statements() }

func (g *GroupStatements) String() string {
	width := g.maxIdentifierWidth(0)
	var parts []string
	for _, s := range g.stmts {
		parts = append(parts, s.format("", width))
	}
	return strings.Join(parts, "\r\n")
}

// ObjectStatements is the container held by an Object: Attribute,
// Group and Object statements are all admitted.
type ObjectStatements struct {
	container
}

// NewObjectStatements constructs an empty ObjectStatements.
func NewObjectStatements() *ObjectStatements {
	return &ObjectStatements{container: newContainer()}
}

func (o *ObjectStatements) Insert(index int, stmt Statement) error {
	if err := checkCompositeStatement(stmt); err != nil {
		return err
	}
	return o.container.insert(index, stmt)
}

func (o *ObjectStatements) Append(stmt Statement) error { return o.Insert(o.Len(), stmt) }

func (o *ObjectStatements) Get(index int) (Statement, error) { return o.container.get(index) }

func (o *ObjectStatements) Pop(index int) (Statement, error) { return o.container.pop(index) }

func (o *ObjectStatements) Contains(key string) bool { return o.container.contains(key) }

func (o *ObjectStatements) GetByKey(key string) (Statement, bool) { return o.container.getByKey(key) }

// SetByKey builds the statement flavor matching v's runtime type and
// replaces the statement sharing its identifier in place, or appends it.
func (o *ObjectStatements) SetByKey(key string, v any) error {
	stmt, err := buildCompositeStatement(key, v)
	if err != nil {
		return err
	}
	return o.container.setByKey(stmt)
}

// Statements returns a snapshot of the object's statements in order.
func (o *ObjectStatements) Statements() []Statement { return o.container.statements() }

func (o *ObjectStatements) String() string {
	width := o.maxIdentifierWidth(10)
	var parts []string
	for _, s := range o.stmts {
		parts = append(parts, s.format("", width))
	}
	return strings.Join(parts, "\r\n")
}
