package bigint_test

import (
	"testing"

	"github.com/katalvlaran/vecxify/bigint"
	"github.com/katalvlaran/vecxify/internal/randgen"
)

var sinkInt bigint.Int

func benchOperands(digits int) (bigint.Int, bigint.Int) {
	r := randgen.New(7)
	a := bigint.MustParse("1" + randgen.Decimal(r, digits)[1:])
	b := bigint.MustParse("9" + randgen.Decimal(r, digits)[1:])

	return a, b
}

func BenchmarkAdd_100(b *testing.B) {
	x, y := benchOperands(100)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkInt = x.Add(y)
	}
}

func BenchmarkMul_100(b *testing.B) {
	x, y := benchOperands(100)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkInt = x.Mul(y)
	}
}

func BenchmarkParse(b *testing.B) {
	s := "-123456789012345678901234567890123456789"
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkInt, _ = bigint.Parse(s)
	}
}
