// Package transform_test provides benchmarks for applying and inverting
// composed transformation chains.
package transform_test

import (
	"testing"

	"github.com/katalvlaran/coordspace/coord"
	"github.com/katalvlaran/coordspace/transform"
)

// sinks to defeat dead-code elimination
var (
	sinkP coord.Point
	sinkT transform.Transformation
)

func BenchmarkComplete_Apply(b *testing.B) {
	b.ReportAllocs()
	tr, err := transform.Complete(sourceConfig(), targetConfig())
	if err != nil {
		b.Fatal(err)
	}
	p := coord.Point{X: 2065, Y: 539}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkP = tr.Apply(p)
	}
}

func BenchmarkComplete_Inverse(b *testing.B) {
	b.ReportAllocs()
	tr, err := transform.Complete(sourceConfig(), targetConfig())
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkT = tr.Inverse()
	}
}

func BenchmarkNestedIFrame_Apply(b *testing.B) {
	b.ReportAllocs()
	tr, err := transform.NewNestedIFrame([]coord.Point{
		{X: 50, Y: 100}, {X: 20, Y: 30}, {X: 10, Y: 15},
	})
	if err != nil {
		b.Fatal(err)
	}
	p := coord.Point{X: 200, Y: 300}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkP = tr.Apply(p)
	}
}
