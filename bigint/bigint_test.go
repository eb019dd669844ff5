// Package bigint_test contains unit and property tests for bigint.Int.
package bigint_test

import (
	"encoding/json"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecxify/bigint"
	"github.com/katalvlaran/vecxify/internal/randgen"
)

// oracle converts an Int to math/big through its canonical text.
func oracle(t *testing.T, x bigint.Int) *big.Int {
	t.Helper()
	b, ok := new(big.Int).SetString(x.String(), 10)
	require.True(t, ok, "oracle parse %q", x.String())

	return b
}

func TestParse_RoundTrip(t *testing.T) {
	for _, s := range []string{
		"0", "1", "-1", "9", "10", "-10", "12309", "-987654321",
		"100000000000000000000000000000000000000001",
		"-340282366920938463463374607431768211456",
	} {
		t.Run(s, func(t *testing.T) {
			x, err := bigint.Parse(s)
			require.NoError(t, err)
			require.Equal(t, s, x.String())
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, s := range []string{
		"", "-", "-0", "00", "01", "-01", "+1", "1a", " 1", "1 ", "1.0", "1_000", "--1", "0-",
	} {
		t.Run(s, func(t *testing.T) {
			_, err := bigint.Parse(s)
			require.ErrorIs(t, err, bigint.ErrInvalidFormat)
		})
	}
}

func TestMustParse_Panics(t *testing.T) {
	require.Panics(t, func() { bigint.MustParse("-0") })
	require.NotPanics(t, func() { bigint.MustParse("-5") })
}

func TestFromDigit(t *testing.T) {
	for c := byte('0'); c <= '9'; c++ {
		x, err := bigint.FromDigit(c)
		require.NoError(t, err)
		require.Equal(t, string(c), x.String())
	}
	for _, c := range []byte{'-', 'a', ' ', '/', ':'} {
		_, err := bigint.FromDigit(c)
		require.ErrorIs(t, err, bigint.ErrInvalidFormat)
	}
}

func TestFromInt64(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{-7, "-7"},
		{math.MaxInt64, "9223372036854775807"},
		{math.MinInt64, "-9223372036854775808"},
	}
	for _, tc := range cases {
		x := bigint.FromInt64(tc.in)
		require.Equal(t, tc.want, x.String())
		require.True(t, x.Equal(bigint.MustParse(tc.want)))
	}
	require.Equal(t, 0, bigint.FromInt64(0).Sign())
}

func TestZeroValue(t *testing.T) {
	var z bigint.Int
	require.True(t, z.IsZero())
	require.False(t, z.Bool())
	require.Equal(t, "0", z.String())
	require.True(t, z.Equal(bigint.Zero()))
	require.True(t, z.Add(bigint.FromInt64(5)).Equal(bigint.FromInt64(5)))
	require.Equal(t, 1, z.Len())
}

func TestAddSub(t *testing.T) {
	cases := []struct{ a, b, sum, diff string }{
		{"0", "0", "0", "0"},
		{"1", "-1", "0", "2"},
		{"-1", "1", "0", "-2"},
		{"999", "1", "1000", "998"},
		{"1000", "-1", "999", "1001"},
		{"-1000", "1", "-999", "-1001"},
		{"123456789", "987654321", "1111111110", "-864197532"},
		{"-50", "-70", "-120", "20"},
		{"100", "100", "200", "0"},
	}
	for _, tc := range cases {
		t.Run(tc.a+"_"+tc.b, func(t *testing.T) {
			a, b := bigint.MustParse(tc.a), bigint.MustParse(tc.b)
			require.Equal(t, tc.sum, a.Add(b).String())
			require.Equal(t, tc.diff, a.Sub(b).String())
		})
	}
}

func TestNeg_ZeroStaysNonNegative(t *testing.T) {
	z := bigint.Zero().Neg()
	require.Equal(t, 0, z.Sign())
	require.Equal(t, "0", z.String())
	require.True(t, z.Equal(bigint.MustParse("0")))

	require.Equal(t, "-42", bigint.FromInt64(42).Neg().String())
	require.Equal(t, "42", bigint.FromInt64(-42).Neg().String())
	require.Equal(t, "42", bigint.FromInt64(-42).Abs().String())
}

func TestMul(t *testing.T) {
	cases := []struct{ a, b, want string }{
		{"0", "0", "0"},
		{"0", "-5", "0"},
		{"-5", "0", "0"},
		{"12", "12", "144"},
		{"-12", "12", "-144"},
		{"-12", "-12", "144"},
		{"99999", "99999", "9999800001"},
		{"123456789", "1000", "123456789000"},
		{"1000", "123456789", "123456789000"},
		{"340282366920938463463374607431768211456", "-2", "-680564733841876926926749214863536422912"},
	}
	for _, tc := range cases {
		t.Run(tc.a+"x"+tc.b, func(t *testing.T) {
			got := bigint.MustParse(tc.a).Mul(bigint.MustParse(tc.b))
			require.Equal(t, tc.want, got.String())
		})
	}
}

func TestMod(t *testing.T) {
	cases := []struct{ a, d, want string }{
		{"7", "3", "1"},
		{"6", "3", "0"},
		{"-7", "3", "2"},
		{"-6", "3", "0"},
		{"7", "-3", "1"},
		{"-7", "-3", "2"},
		{"0", "5", "0"},
		{"2", "5", "2"},
		{"-2", "5", "3"},
		{"1000", "7", "6"},
	}
	for _, tc := range cases {
		t.Run(tc.a+"%"+tc.d, func(t *testing.T) {
			got, err := bigint.MustParse(tc.a).Mod(bigint.MustParse(tc.d))
			require.NoError(t, err)
			require.Equal(t, tc.want, got.String())
		})
	}
}

func TestMod_ByZero(t *testing.T) {
	_, err := bigint.FromInt64(10).Mod(bigint.Zero())
	require.ErrorIs(t, err, bigint.ErrDivisionUndefined)

	z := bigint.FromInt64(-10)
	err = z.ModAssign(bigint.Int{})
	require.ErrorIs(t, err, bigint.ErrDivisionUndefined)
	require.Equal(t, "-10", z.String(), "receiver must be untouched on error")

	require.NoError(t, z.ModAssign(bigint.FromInt64(4)))
	require.Equal(t, "2", z.String())
}

func TestMod_RangeProperty(t *testing.T) {
	r := randgen.New(2024)
	for i := 0; i < 200; i++ {
		a := bigint.FromInt64(int64(r.Intn(2001) - 1000))
		d := bigint.FromInt64(int64(r.Intn(41) - 20))
		if d.IsZero() {
			continue
		}
		got, err := a.Mod(d)
		require.NoError(t, err)
		require.True(t, got.GreaterOrEqual(bigint.Zero()), "%s mod %s = %s", a, d, got)
		require.True(t, got.Less(d.Abs()), "%s mod %s = %s", a, d, got)

		// a - got must be a multiple of d
		want := new(big.Int).Mod(oracle(t, a), new(big.Int).Abs(oracle(t, d)))
		require.Equal(t, want.String(), got.String())
	}
}

func TestCmp(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"0", "0", 0},
		{"-1", "0", -1},
		{"0", "-1", 1},
		{"5", "10", -1},
		{"10", "5", 1},
		{"-5", "-10", 1},
		{"-10", "-5", -1},
		{"123", "124", -1},
		{"-123", "-124", 1},
		{"-1", "1", -1},
		{"42", "42", 0},
	}
	for _, tc := range cases {
		a, b := bigint.MustParse(tc.a), bigint.MustParse(tc.b)
		require.Equal(t, tc.want, a.Cmp(b), "%s cmp %s", tc.a, tc.b)
		require.Equal(t, tc.want, bigint.Compare(a, b))
		require.Equal(t, tc.want == 0, a.Equal(b))
		require.Equal(t, tc.want < 0, a.Less(b))
		require.Equal(t, tc.want <= 0, a.LessOrEqual(b))
		require.Equal(t, tc.want > 0, a.Greater(b))
		require.Equal(t, tc.want >= 0, a.GreaterOrEqual(b))
	}
}

func TestBool(t *testing.T) {
	require.False(t, bigint.MustParse("0").Bool())
	require.True(t, bigint.MustParse("-3").Bool())
	require.True(t, bigint.MustParse("3").Bool())
}

// Scenario: 100 * 100 + 2309 == 12309.
func TestScenario_MulThenAdd(t *testing.T) {
	a := bigint.MustParse("100")
	a = a.Mul(bigint.MustParse("100"))
	a = a.Add(bigint.MustParse("2309"))
	require.True(t, a.Equal(bigint.MustParse("12309")))
}

// Scenario: copy then reassign; the copy keeps its value.
func TestScenario_CopyThenAssign(t *testing.T) {
	a := bigint.MustParse("1")
	b := a
	require.NoError(t, a.SetString("2"))
	require.True(t, a.Equal(bigint.MustParse("2")))
	require.True(t, b.Equal(bigint.MustParse("1")))

	// failed assignment leaves the receiver alone
	require.ErrorIs(t, a.SetString("-0"), bigint.ErrInvalidFormat)
	require.Equal(t, "2", a.String())
}

func TestProperties_AgainstMathBig(t *testing.T) {
	r := randgen.New(31337)
	for i := 0; i < 300; i++ {
		a := bigint.MustParse(randgen.Decimal(r, 30))
		b := bigint.MustParse(randgen.Decimal(r, 30))
		c := bigint.MustParse(randgen.Decimal(r, 8))
		ab, bb := oracle(t, a), oracle(t, b)

		require.Equal(t, new(big.Int).Add(ab, bb).String(), a.Add(b).String())
		require.Equal(t, new(big.Int).Sub(ab, bb).String(), a.Sub(b).String())
		require.Equal(t, new(big.Int).Mul(ab, bb).String(), a.Mul(b).String())
		require.Equal(t, ab.Cmp(bb), a.Cmp(b))

		// commutativity, additive inverse, associativity
		require.True(t, a.Add(b).Equal(b.Add(a)))
		require.True(t, a.Add(a.Neg()).Equal(bigint.MustParse("0")))
		require.True(t, a.Mul(b).Mul(c).Equal(a.Mul(b.Mul(c))))
	}
}

// TestSum_OrderIndependent adds the same operands in shuffled orders and
// expects one total.
func TestSum_OrderIndependent(t *testing.T) {
	r := randgen.New(404)
	terms := make([]bigint.Int, 40)
	want := new(big.Int)
	for i := range terms {
		terms[i] = bigint.MustParse(randgen.Decimal(r, 25))
		want.Add(want, oracle(t, terms[i]))
	}

	for round := 0; round < 10; round++ {
		randgen.Shuffle(terms, randgen.Derive(r, uint64(round)))
		sum := bigint.Zero()
		for _, x := range terms {
			sum = sum.Add(x)
		}
		require.Equal(t, want.String(), sum.String(), "round %d", round)
	}
}

func TestText_JSONRoundTrip(t *testing.T) {
	type payload struct {
		N bigint.Int `json:"n"`
	}
	in := payload{N: bigint.MustParse("-123456789012345678901234567890")}
	raw, err := json.Marshal(in)
	require.NoError(t, err)
	require.JSONEq(t, `{"n":"-123456789012345678901234567890"}`, string(raw))

	var out payload
	require.NoError(t, json.Unmarshal(raw, &out))
	require.True(t, in.N.Equal(out.N))

	err = json.Unmarshal([]byte(`{"n":"007"}`), &out)
	require.ErrorIs(t, err, bigint.ErrInvalidFormat)
}
