package password

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPassword(t *testing.T) {
	pw, err := NewPassword("Abc123!")
	require.NoError(t, err)

	assert.Equal(t, "Abc123!", pw.Value())
	assert.Equal(t, 7, pw.Length())
	assert.True(t, pw.ContainsUpper())
	assert.True(t, pw.ContainsLower())
	assert.True(t, pw.ContainsDigit())
	assert.True(t, pw.ContainsSymbol())
}

func TestNewPasswordEmptyAllowed(t *testing.T) {
	pw, err := NewPassword("")
	require.NoError(t, err)
	require.Zero(t, pw.Length())
	require.Equal(t, "", pw.Masked())
}

func TestNewPasswordInvalidUTF8(t *testing.T) {
	_, err := NewPassword("\xff\xfe")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestPasswordMasked(t *testing.T) {
	pw, err := NewPassword("secret")
	require.NoError(t, err)
	require.Equal(t, "******", pw.Masked())
}

func TestPasswordStringHidesValue(t *testing.T) {
	pw, err := NewPassword("hunter2")
	require.NoError(t, err)

	out := fmt.Sprintf("%v", pw)
	assert.NotContains(t, out, "hunter2")
	assert.Contains(t, out, "*******")
	assert.Contains(t, out, "length=7")
}

func TestPasswordLengthCountsCodePoints(t *testing.T) {
	// Multi-byte input is legal; it just falls outside every ASCII class.
	pw, err := NewPassword("héllo")
	require.NoError(t, err)
	require.Equal(t, 5, pw.Length())
}
