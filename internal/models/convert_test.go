package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitCSV(t *testing.T) {
	require.Nil(t, SplitCSV(""))
	require.Nil(t, SplitCSV("   "))
	require.Equal(t, []string{"a"}, SplitCSV("a"))
	require.Equal(t, []string{"a", "b"}, SplitCSV("a, b"))
	require.Equal(t, []string{"a", "b"}, SplitCSV("a,,b,"))
}

func TestJoinCSV(t *testing.T) {
	require.Equal(t, "", JoinCSV(nil))
	require.Equal(t, "a,b", JoinCSV([]string{"a", "b"}))
}

func TestLenientCellParsing(t *testing.T) {
	require.Equal(t, 0, parseInt("not a number"))
	require.Equal(t, 7, parseInt(" 7 "))
	require.Equal(t, 0.0, parseFloat("x"))
	require.Equal(t, 2.5, parseFloat("2.5"))

	require.Nil(t, parseOptFloat(""))
	require.Nil(t, parseOptFloat("garbage"))
	v := parseOptFloat("9.75")
	require.NotNil(t, v)
	require.Equal(t, 9.75, *v)
}

func TestFloatFormattingDropsTrailingZeros(t *testing.T) {
	require.Equal(t, "10", formatFloat(10))
	require.Equal(t, "8.5", formatFloat(8.5))
	require.Equal(t, "", formatOptFloat(nil))
}

func TestTestTypeSameDay(t *testing.T) {
	require.True(t, TestTypeTest.SameDay())
	require.True(t, TestTypeQuiz.SameDay())
	require.False(t, TestTypeHomework.SameDay())
	require.False(t, TestTypeProject.SameDay())
}
