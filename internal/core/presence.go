package core

// Binding records the identity a client currently holds and, for
// room-scoped presence, which room it belongs to.
type Binding struct {
	Name string
	Room string
}

// Presence maps live clients to their current identity. A client holds at
// most one binding at a time; binding again replaces the previous one.
// Unbind is idempotent so disconnect cleanup can run unconditionally.
//
// Two implementations exist: RoomPresence scopes identities to rooms and
// allows duplicate names, Directory keeps a flat process-wide namespace
// for point-to-point routing. The composition root picks one.
//
// Implementations are not safe for concurrent use; the hub serializes
// access.
type Presence interface {
	Bind(c *Client, b Binding) error
	Unbind(c *Client) (Binding, bool)
	Lookup(c *Client) (Binding, bool)
	ByName(name string) (*Client, bool)
	Names() []string
}

// RoomPresence is the room-scoped variant. Names need not be unique.
type RoomPresence struct {
	bound map[*Client]Binding
	order []*Client
}

// NewRoomPresence constructs an empty room-scoped directory.
func NewRoomPresence() *RoomPresence {
	return &RoomPresence{bound: make(map[*Client]Binding)}
}

func (p *RoomPresence) Bind(c *Client, b Binding) error {
	if _, ok := p.bound[c]; !ok {
		p.order = append(p.order, c)
	}
	p.bound[c] = b
	return nil
}

func (p *RoomPresence) Unbind(c *Client) (Binding, bool) {
	b, ok := p.bound[c]
	if !ok {
		return Binding{}, false
	}
	delete(p.bound, c)
	p.dropOrder(c)
	return b, true
}

func (p *RoomPresence) Lookup(c *Client) (Binding, bool) {
	b, ok := p.bound[c]
	return b, ok
}

// ByName returns the earliest-bound client holding name.
func (p *RoomPresence) ByName(name string) (*Client, bool) {
	for _, c := range p.order {
		if p.bound[c].Name == name {
			return c, true
		}
	}
	return nil, false
}

// Names lists bound identities in bind order; duplicates appear as-is.
func (p *RoomPresence) Names() []string {
	names := make([]string, 0, len(p.order))
	for _, c := range p.order {
		names = append(names, p.bound[c].Name)
	}
	return names
}

func (p *RoomPresence) dropOrder(c *Client) {
	for i, other := range p.order {
		if other == c {
			p.order = append(p.order[:i], p.order[i+1:]...)
			return
		}
	}
}

// Directory is the flat variant: one process-wide namespace of unique
// identities, used for point-to-point routing.
type Directory struct {
	bound  map[*Client]Binding
	byName map[string]*Client
	order  []*Client
}

// NewDirectory constructs an empty flat directory.
func NewDirectory() *Directory {
	return &Directory{
		bound:  make(map[*Client]Binding),
		byName: make(map[string]*Client),
	}
}

// Bind registers c under b.Name. Fails with ErrNameTaken when the name is
// held by a different live client; rebinding the same client/name pair is
// a no-op. Rebinding a client under a new name releases the old one.
func (d *Directory) Bind(c *Client, b Binding) error {
	if holder, taken := d.byName[b.Name]; taken && holder != c {
		return ErrNameTaken
	}
	prev, rebind := d.bound[c]
	if rebind && prev.Name != b.Name {
		delete(d.byName, prev.Name)
	}
	if !rebind {
		d.order = append(d.order, c)
	}
	d.bound[c] = b
	d.byName[b.Name] = c
	return nil
}

func (d *Directory) Unbind(c *Client) (Binding, bool) {
	b, ok := d.bound[c]
	if !ok {
		return Binding{}, false
	}
	delete(d.bound, c)
	delete(d.byName, b.Name)
	for i, other := range d.order {
		if other == c {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	return b, true
}

func (d *Directory) Lookup(c *Client) (Binding, bool) {
	b, ok := d.bound[c]
	return b, ok
}

func (d *Directory) ByName(name string) (*Client, bool) {
	c, ok := d.byName[name]
	return c, ok
}

// Names lists registered identities in bind order.
func (d *Directory) Names() []string {
	names := make([]string, 0, len(d.order))
	for _, c := range d.order {
		names = append(names, d.bound[c].Name)
	}
	return names
}
