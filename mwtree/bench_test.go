package mwtree

import "testing"

func BenchmarkInsertShuffled(b *testing.B) {
	tree, err := NewOrdered[int](DefaultCapacity)
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// LCG shuffle keeps the benchmark allocation-free outside the tree.
		if _, _, err := tree.Insert(int(uint32(i) * 2654435761)); err != nil {
			b.Fatalf("Insert failed: %v", err)
		}
	}
}

func BenchmarkFind(b *testing.B) {
	tree, err := NewOrdered[int](DefaultCapacity)
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	for i := 0; i < 4096; i++ {
		if _, _, err := tree.Insert(int(uint32(i) * 2654435761)); err != nil {
			b.Fatalf("Insert failed: %v", err)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tree.Find(int(uint32(i%4096) * 2654435761)); err != nil {
			b.Fatalf("Find failed: %v", err)
		}
	}
}
