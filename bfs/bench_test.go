package bfs_test

import (
	"testing"

	"github.com/katalvlaran/dcntopo/bfs"
	"github.com/katalvlaran/dcntopo/builder"
	"github.com/katalvlaran/dcntopo/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain of N switches.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g := chain(b, N)

	b.ReportAllocs()
	b.SetBytes(int64(N + N - 1))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkBFS_Jellyfish runs BFS from a server of a 512-switch fabric.
func BenchmarkBFS_Jellyfish(b *testing.B) {
	g, err := builder.NewJellyfish(1024, 512, 12, builder.WithSeed(1))
	if err != nil {
		b.Fatalf("NewJellyfish: %v", err)
	}
	start := g.Servers()[0]

	b.ReportAllocs()
	b.SetBytes(int64(g.NodeCount() + g.EdgeCount()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, start)
	}
}

// BenchmarkBFS_HookOverhead measures the cost of all three hooks being set.
func BenchmarkBFS_HookOverhead(b *testing.B) {
	g, err := builder.NewFatTree(16)
	if err != nil {
		b.Fatalf("NewFatTree: %v", err)
	}
	var visits int
	opts := []bfs.Option{
		bfs.WithOnEnqueue(func(core.NodeID, int) {}),
		bfs.WithOnDequeue(func(core.NodeID, int) {}),
		bfs.WithOnVisit(func(core.NodeID, int) error { visits++; return nil }),
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0, opts...)
	}
	_ = visits
}
