package bigint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidDecimal(t *testing.T) {
	for s, want := range map[string]bool{
		"0": true, "7": true, "-7": true, "10": true, "-1234567890": true,
		"": false, "-": false, "-0": false, "00": false, "01": false, "+1": false, "1-": false,
	} {
		require.Equal(t, want, validDecimal(s), "validDecimal(%q)", s)
	}
}

func TestMagnitudeHelpers(t *testing.T) {
	require.Equal(t, "1000", addMagnitudes("999", "1"))
	require.Equal(t, "1000", addMagnitudes("1", "999"))
	require.Equal(t, "0", addMagnitudes("0", "0"))

	require.Equal(t, "0", subMagnitudes("12345", "12345"))
	require.Equal(t, "1", subMagnitudes("1000", "999"))
	require.Equal(t, "991", subMagnitudes("1000", "9"))

	require.Equal(t, "0", mulDigit("12345", 0))
	require.Equal(t, "111105", mulDigit("12345", 9))

	require.Equal(t, "12000", shiftDecimal("12", 3))
	require.Equal(t, "0", shiftDecimal("0", 3))
	require.Equal(t, "12", shiftDecimal("12", 0))

	require.Equal(t, "0", trimLeadingZeros([]byte("0000")))
	require.Equal(t, "120", trimLeadingZeros([]byte("00120")))

	require.Equal(t, -1, cmpMagnitude("99", "100"))
	require.Equal(t, 1, cmpMagnitude("101", "100"))
	require.Equal(t, 0, cmpMagnitude("100", "100"))
}

func TestDigitConversions_Panic(t *testing.T) {
	require.Panics(t, func() { digitValue('x') })
	require.Panics(t, func() { digitChar(10) })
	require.Panics(t, func() { digitChar(-1) })
	require.Panics(t, func() { mulDigit("1", 10) })
	require.Equal(t, 9, digitValue('9'))
	require.Equal(t, byte('0'), digitChar(0))
}

func TestZeroIsNeverNegative(t *testing.T) {
	require.Equal(t, Int{mag: "0"}, newInt("0", true))
	require.Equal(t, Int{mag: "0"}, newInt("", true))
	require.False(t, Zero().Neg().neg)
}
