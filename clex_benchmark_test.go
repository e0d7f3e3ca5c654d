package clex

import (
	"os"
	"testing"
)

// Benchmark data - a small C source exercising every rule category.
var benchmarkSource, _ = os.ReadFile("testfile/sample.c")

// BenchmarkScan measures the performance of tokenizing a C file.
func BenchmarkScan(b *testing.B) {
	if benchmarkSource == nil {
		b.Skip("Cannot read benchmark data file")
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Scan(benchmarkSource)
	}
}

// BenchmarkBuildTree measures shape-tree construction over a pre-scanned stream.
func BenchmarkBuildTree(b *testing.B) {
	if benchmarkSource == nil {
		b.Skip("Cannot read benchmark data file")
	}
	tokens, _ := Scan(benchmarkSource)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BuildTree(tokens)
	}
}

// BenchmarkDiff measures a self-comparison, the all-equal fast path.
func BenchmarkDiff(b *testing.B) {
	if benchmarkSource == nil {
		b.Skip("Cannot read benchmark data file")
	}
	tokens, _ := Scan(benchmarkSource)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Diff(tokens, tokens)
	}
}

// BenchmarkAnalyze measures the end-to-end pipeline.
func BenchmarkAnalyze(b *testing.B) {
	if benchmarkSource == nil {
		b.Skip("Cannot read benchmark data file")
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Analyze(benchmarkSource)
	}
}
