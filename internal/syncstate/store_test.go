package syncstate

import (
	"slices"
	"testing"
)

func cloneInts(v []int) []int { return slices.Clone(v) }

func push(n int) func([]int) []int {
	return func(v []int) []int { return append(v, n) }
}

func remove(n int) func([]int) []int {
	return func(v []int) []int {
		return slices.DeleteFunc(v, func(x int) bool { return x == n })
	}
}

func TestMutateCommit(t *testing.T) {
	s := NewStore([]int{1}, cloneInts)

	tk := s.Mutate(push(2), nil)
	if got := s.Get(); !slices.Equal(got, []int{1, 2}) {
		t.Fatalf("after Mutate = %v", got)
	}
	if s.Pending() != 1 {
		t.Errorf("Pending() = %d", s.Pending())
	}
	s.Commit(tk)
	if s.Pending() != 0 {
		t.Errorf("Pending() after Commit = %d", s.Pending())
	}
	if s.Rollback(tk) {
		t.Error("a committed mutation cannot be rolled back")
	}
}

func TestRollbackRestoresSnapshot(t *testing.T) {
	s := NewStore([]int{1}, cloneInts)

	tk := s.Mutate(push(2), nil)
	if !s.Rollback(tk) {
		t.Fatal("Rollback() = false")
	}
	if got := s.Get(); !slices.Equal(got, []int{1}) {
		t.Errorf("after Rollback = %v", got)
	}
}

func TestRollbackUnderNewerMutation(t *testing.T) {
	s := NewStore([]int{}, cloneInts)

	first := s.Mutate(push(1), remove(1))
	_ = s.Mutate(push(2), remove(2))

	// The older mutation fails while the newer one is still pending: the
	// snapshot would erase 2, so only 1 is undone.
	if !s.Rollback(first) {
		t.Fatal("Rollback() = false")
	}
	if got := s.Get(); !slices.Equal(got, []int{2}) {
		t.Errorf("after Rollback = %v, want [2]", got)
	}

	noUndo := s.Mutate(push(3), nil)
	_ = s.Mutate(push(4), nil)
	if s.Rollback(noUndo) {
		t.Error("without undo a superseded rollback should leave the value alone")
	}
}

func TestRollbackKeepsCommittedNewerMutation(t *testing.T) {
	s := NewStore([]int{}, cloneInts)

	slow := s.Mutate(push(1), remove(1))
	fast := s.Mutate(push(2), remove(2))
	s.Commit(fast)

	s.Rollback(slow)
	if got := s.Get(); !slices.Equal(got, []int{2}) {
		t.Errorf("after Rollback = %v, want [2]", got)
	}
}

func TestRollbackKeepsNewerServerState(t *testing.T) {
	tests := []struct {
		name  string
		apply func(s *Store[[]int])
		want  []int
	}{
		{
			name: "fetch begun after the mutation",
			apply: func(s *Store[[]int]) { s.Reconcile(s.BeginFetch(), []int{1, 5}) },
			want: []int{1, 5},
		},
		{
			name:  "set after the mutation",
			apply: func(s *Store[[]int]) { s.Set([]int{1, 6}) },
			want:  []int{1, 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore([]int{1}, cloneInts)
			tk := s.Mutate(push(2), remove(2))
			tt.apply(s)

			if s.Rollback(tk) {
				t.Error("Rollback() = true, want the server value kept")
			}
			if got := s.Get(); !slices.Equal(got, tt.want) {
				t.Errorf("after Rollback = %v, want %v", got, tt.want)
			}
			if s.Pending() != 0 {
				t.Errorf("Pending() = %d, want 0", s.Pending())
			}
		})
	}
}

func TestSnapshotsDoNotAlias(t *testing.T) {
	s := NewStore(make([]int, 1, 8), cloneInts)
	tk := s.Mutate(func(v []int) []int { v[0] = 9; return v }, nil)
	s.Rollback(tk)
	if got := s.Get(); got[0] != 0 {
		t.Errorf("snapshot was mutated through a shared backing array: %v", got)
	}
}

func TestReconcileDropsStaleFetches(t *testing.T) {
	s := NewStore([]int{}, cloneInts)

	// A poll leaves before the user acts and returns after
	slow := s.BeginFetch()
	s.Mutate(push(7), nil)
	if s.Reconcile(slow, []int{}) {
		t.Error("a fetch that began before the mutation must not overwrite it")
	}
	if got := s.Get(); !slices.Equal(got, []int{7}) {
		t.Errorf("value = %v, want optimistic [7]", got)
	}

	fresh := s.BeginFetch()
	if !s.Reconcile(fresh, []int{7}) {
		t.Error("a fetch begun after the mutation should apply")
	}

	// Out-of-order responses: the later request wins
	older := s.BeginFetch()
	newer := s.BeginFetch()
	if !s.Reconcile(newer, []int{7, 8}) {
		t.Fatal("newer fetch rejected")
	}
	if s.Reconcile(older, []int{7}) {
		t.Error("older fetch applied after a newer one")
	}
	if got := s.Get(); !slices.Equal(got, []int{7, 8}) {
		t.Errorf("value = %v", got)
	}
}

func TestSet(t *testing.T) {
	s := NewStore(0, nil)
	tok := s.BeginFetch()
	s.Set(5)
	if s.Reconcile(tok, 3) {
		t.Error("fetch begun before Set should be stale")
	}
	if s.Get() != 5 {
		t.Errorf("Get() = %d", s.Get())
	}
}
