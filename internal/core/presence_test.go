package core

import "testing"

func TestRoomPresenceBindLookupUnbind(t *testing.T) {
	p := NewRoomPresence()
	c := NewClient("c1")

	if _, ok := p.Lookup(c); ok {
		t.Fatal("expected no binding for fresh client")
	}

	if err := p.Bind(c, Binding{Name: "alice", Room: "r1"}); err != nil {
		t.Fatalf("bind: %v", err)
	}
	b, ok := p.Lookup(c)
	if !ok || b.Name != "alice" || b.Room != "r1" {
		t.Fatalf("unexpected binding: %+v (ok=%v)", b, ok)
	}

	// Rebinding overwrites; a client holds one binding at a time.
	if err := p.Bind(c, Binding{Name: "alice", Room: "r2"}); err != nil {
		t.Fatalf("rebind: %v", err)
	}
	if b, _ = p.Lookup(c); b.Room != "r2" {
		t.Fatalf("rebind did not overwrite: %+v", b)
	}

	prev, ok := p.Unbind(c)
	if !ok || prev.Room != "r2" {
		t.Fatalf("unexpected unbind result: %+v (ok=%v)", prev, ok)
	}
	// Unbind is idempotent.
	if _, ok = p.Unbind(c); ok {
		t.Fatal("second unbind should report no binding")
	}
}

func TestRoomPresenceAllowsDuplicateNames(t *testing.T) {
	p := NewRoomPresence()
	c1 := NewClient("c1")
	c2 := NewClient("c2")

	if err := p.Bind(c1, Binding{Name: "alice", Room: "r1"}); err != nil {
		t.Fatalf("bind c1: %v", err)
	}
	if err := p.Bind(c2, Binding{Name: "alice", Room: "r2"}); err != nil {
		t.Fatalf("bind c2: %v", err)
	}

	// ByName resolves to the earliest-bound holder.
	if c, ok := p.ByName("alice"); !ok || c != c1 {
		t.Fatalf("expected c1, got %v (ok=%v)", c, ok)
	}
	if names := p.Names(); !sameUsers(names, []string{"alice", "alice"}) {
		t.Fatalf("unexpected names: %v", names)
	}
}

func TestDirectoryRejectsTakenName(t *testing.T) {
	d := NewDirectory()
	c1 := NewClient("c1")
	c2 := NewClient("c2")

	if err := d.Bind(c1, Binding{Name: "alice"}); err != nil {
		t.Fatalf("bind c1: %v", err)
	}
	if err := d.Bind(c2, Binding{Name: "alice"}); err != ErrNameTaken {
		t.Fatalf("expected ErrNameTaken, got %v", err)
	}
	// Same client, same name: idempotent.
	if err := d.Bind(c1, Binding{Name: "alice"}); err != nil {
		t.Fatalf("idempotent rebind: %v", err)
	}
}

func TestDirectoryRenameReleasesOldName(t *testing.T) {
	d := NewDirectory()
	c1 := NewClient("c1")
	c2 := NewClient("c2")

	if err := d.Bind(c1, Binding{Name: "alice"}); err != nil {
		t.Fatalf("bind: %v", err)
	}
	if err := d.Bind(c1, Binding{Name: "alicia"}); err != nil {
		t.Fatalf("rename: %v", err)
	}

	// The old name is free again.
	if err := d.Bind(c2, Binding{Name: "alice"}); err != nil {
		t.Fatalf("bind released name: %v", err)
	}
	if names := d.Names(); !sameUsers(names, []string{"alicia", "alice"}) {
		t.Fatalf("unexpected names: %v", names)
	}
}

func TestDirectoryUnbindFreesName(t *testing.T) {
	d := NewDirectory()
	c1 := NewClient("c1")
	c2 := NewClient("c2")

	if err := d.Bind(c1, Binding{Name: "alice"}); err != nil {
		t.Fatalf("bind: %v", err)
	}
	if _, ok := d.Unbind(c1); !ok {
		t.Fatal("expected binding to be released")
	}
	if _, ok := d.ByName("alice"); ok {
		t.Fatal("expected name lookup to miss after unbind")
	}
	if err := d.Bind(c2, Binding{Name: "alice"}); err != nil {
		t.Fatalf("rebind freed name: %v", err)
	}
	// Unbind of a client with no binding is a no-op, not an error.
	if _, ok := d.Unbind(c1); ok {
		t.Fatal("second unbind should report no binding")
	}
}
