package mwtree

import (
	"math/rand"
	"sort"
	"strconv"
	"testing"
)

// How to run:
//   - Deterministic randomized property test:
//     go test ./mwtree -run TestInsertRandomizedProperty -count=1
//   - Fuzz test for this file:
//     go test ./mwtree -run '^$' -fuzz FuzzInsertRandomizedProperty -fuzztime=10s
//   - Replay a specific saved failing input:
//     go test ./mwtree -run 'FuzzInsertRandomizedProperty/<id>'

func sortedDistinct(model map[int]bool) []int {
	out := make([]int, 0, len(model))
	for v := range model {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

func assertTreeMatchesModel(t *testing.T, tree *Tree[int], model map[int]bool) {
	t.Helper()

	want := sortedDistinct(model)
	got := collect(t, tree)
	if !equalInts(got, want) {
		t.Fatalf("model mismatch: got=%v want=%v", got, want)
	}
	if tree.Len() != len(want) {
		t.Fatalf("length mismatch: got=%d want=%d", tree.Len(), len(want))
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("invariants violated: %v", err)
	}
}

func runRandomInsertSequence(t *testing.T, seed uint64, steps int) {
	t.Helper()
	r := rand.New(rand.NewSource(int64(seed)))
	capacity := r.Intn(5) + 1
	tree := newIntTree(t, capacity)
	model := make(map[int]bool, steps)

	for i := 0; i < steps; i++ {
		v := r.Intn(steps * 2)
		_, inserted, err := tree.Insert(v)
		if err != nil {
			t.Fatalf("Insert(%d) failed: %v", v, err)
		}
		if inserted == model[v] {
			t.Fatalf("Insert(%d): inserted=%v but model presence=%v", v, inserted, model[v])
		}
		model[v] = true

		probe := r.Intn(steps * 2)
		c, err := tree.Find(probe)
		if err != nil {
			t.Fatalf("Find(%d) failed: %v", probe, err)
		}
		if model[probe] {
			got, err := c.Item()
			if err != nil || got != probe {
				t.Fatalf("Find(%d): got (%d, %v)", probe, got, err)
			}
		} else if !c.Equal(tree.End()) {
			t.Fatalf("Find(%d) should miss and return End", probe)
		}
	}
	assertTreeMatchesModel(t, tree, model)

	// A clone must stay in sync with a copied model while the original and
	// the clone diverge.
	cloned, err := tree.Clone()
	if err != nil {
		t.Fatalf("Clone failed: %v", err)
	}
	clonedModel := make(map[int]bool, len(model))
	for v := range model {
		clonedModel[v] = true
	}
	for i := 0; i < 16; i++ {
		v := steps*2 + r.Intn(64)
		if r.Intn(2) == 0 {
			if _, _, err := tree.Insert(v); err != nil {
				t.Fatalf("Insert into original failed: %v", err)
			}
			model[v] = true
		} else {
			if _, _, err := cloned.Insert(v); err != nil {
				t.Fatalf("Insert into clone failed: %v", err)
			}
			clonedModel[v] = true
		}
	}
	assertTreeMatchesModel(t, tree, model)
	assertTreeMatchesModel(t, cloned, clonedModel)

	moved, err := tree.Move()
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	assertTreeMatchesModel(t, moved, model)
}

func TestInsertRandomizedProperty(t *testing.T) {
	seeds := []uint64{1, 2, 3, 7, 42, 99, 31337, 123456789}
	for _, seed := range seeds {
		t.Run("seed_"+strconv.FormatUint(seed, 10), func(t *testing.T) {
			runRandomInsertSequence(t, seed, 120)
		})
	}
}

func FuzzInsertRandomizedProperty(f *testing.F) {
	f.Add(uint64(1), uint8(32))
	f.Add(uint64(7), uint8(64))
	f.Add(uint64(42), uint8(96))
	f.Fuzz(func(t *testing.T, seed uint64, steps uint8) {
		runRandomInsertSequence(t, seed, int(steps%120)+1)
	})
}
