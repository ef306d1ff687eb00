package favorites

import "testing"

func TestToggleIsSelfInverse(t *testing.T) {
	store := NewStore()

	if !store.Toggle(3) {
		t.Error("first toggle = false, want true (added)")
	}
	if !store.IsFavorite(3) {
		t.Error("product 3 not a favorite after first toggle")
	}

	if store.Toggle(3) {
		t.Error("second toggle = true, want false (removed)")
	}
	if store.IsFavorite(3) {
		t.Error("product 3 still a favorite after second toggle")
	}
	if store.Count() != 0 {
		t.Errorf("count = %d, want 0", store.Count())
	}
}

func TestListKeepsInsertionOrder(t *testing.T) {
	store := NewStore()
	store.Toggle(5)
	store.Toggle(1)
	store.Toggle(3)

	want := []int{5, 1, 3}
	got := store.List()
	if len(got) != len(want) {
		t.Fatalf("list length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("list[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestToggleRemovalPreservesOrderOfRest(t *testing.T) {
	store := NewStore()
	store.Toggle(5)
	store.Toggle(1)
	store.Toggle(3)

	store.Toggle(1)

	got := store.List()
	if len(got) != 2 || got[0] != 5 || got[1] != 3 {
		t.Errorf("list = %v, want [5 3]", got)
	}
}

func TestIsFavoriteUnknownID(t *testing.T) {
	store := NewStore()

	if store.IsFavorite(42) {
		t.Error("empty store reported a favorite")
	}
}
