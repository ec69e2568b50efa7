package core

import "testing"

func TestRegistryAllocatesUniqueIDs(t *testing.T) {
	reg := NewRegistry()

	a := reg.Create("")
	b := reg.Create("")
	if a == "" || b == "" {
		t.Fatalf("expected non-empty ids, got %q and %q", a, b)
	}
	if a == b {
		t.Fatalf("expected distinct ids, got %q twice", a)
	}
	if reg.Len() != 2 {
		t.Fatalf("expected 2 rooms, got %d", reg.Len())
	}
}

func TestRegistryRoomLifecycle(t *testing.T) {
	reg := NewRegistry()
	id := reg.Create("")

	users, err := reg.Join(id, "alice")
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	if !sameUsers(users, []string{"alice"}) {
		t.Fatalf("unexpected members: %v", users)
	}

	users, err = reg.Join(id, "bob")
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	if !sameUsers(users, []string{"alice", "bob"}) {
		t.Fatalf("unexpected members: %v", users)
	}

	users, alive := reg.Leave(id, "alice")
	if !alive || !sameUsers(users, []string{"bob"}) {
		t.Fatalf("unexpected members after leave: %v (alive=%v)", users, alive)
	}

	// Last member out deletes the room entirely.
	if _, alive = reg.Leave(id, "bob"); alive {
		t.Fatal("expected room to be gone after last leave")
	}
	if members := reg.Members(id); len(members) != 0 {
		t.Fatalf("expected empty members for deleted room, got %v", members)
	}
	if _, err := reg.Join(id, "carol"); err != ErrRoomNotFound {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
}

func TestRegistryJoinUnknownRoom(t *testing.T) {
	reg := NewRegistry()

	if _, err := reg.Join("ghost", "alice"); err != ErrRoomNotFound {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
	// Leave on an unknown room is a silent no-op.
	if _, alive := reg.Leave("ghost", "alice"); alive {
		t.Fatal("expected no-op leave on unknown room")
	}
}

func TestRegistryRejoinIsIdempotent(t *testing.T) {
	reg := NewRegistry()
	id := reg.Create("")

	if _, err := reg.Join(id, "alice"); err != nil {
		t.Fatalf("join: %v", err)
	}
	users, err := reg.Join(id, "alice")
	if err != nil {
		t.Fatalf("rejoin: %v", err)
	}
	if !sameUsers(users, []string{"alice"}) {
		t.Fatalf("rejoin duplicated the member: %v", users)
	}
}

func TestRegistryCreateWithSuppliedIDOverwrites(t *testing.T) {
	reg := NewRegistry()

	id := reg.Create("lobby")
	if id != "lobby" {
		t.Fatalf("expected supplied id verbatim, got %q", id)
	}
	if _, err := reg.Join("lobby", "alice"); err != nil {
		t.Fatalf("join: %v", err)
	}

	reg.Create("lobby")
	if members := reg.Members("lobby"); len(members) != 0 {
		t.Fatalf("expected fresh room after overwrite, got %v", members)
	}
}
