package bfs_test

import (
	"testing"

	"github.com/katalvlaran/lvlabel/bfs"
	"github.com/katalvlaran/lvlabel/builder"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g := mustBuild(b, builder.Path(N))

	b.ReportAllocs()
	b.SetBytes(int64(g.Order() + g.Size()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkBFS_Grid runs BFS on a 100×100 grid from a corner.
func BenchmarkBFS_Grid(b *testing.B) {
	g := mustBuild(b, builder.Grid(100, 100))

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkWithin_Wheel measures the distance-3 ring extraction used by the
// L(3,2,1) verifier.
func BenchmarkWithin_Wheel(b *testing.B) {
	g := mustBuild(b, builder.Wheel(64))

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.Within(g, 3)
	}
}
