package assistant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitize_RemovesBannedChars(t *testing.T) {
	got := Sanitize(`hola <b>{inyección}</b> [x] \n`)
	for _, c := range bannedChars {
		require.NotContains(t, got, string(c))
	}
	require.Equal(t, "hola binyección/b x n", got)
}

func TestSanitize_Trims(t *testing.T) {
	require.Equal(t, "hola", Sanitize("   hola \n\t"))
}

func TestSanitize_CapsLength(t *testing.T) {
	long := strings.Repeat("a", 1200)
	got := Sanitize(long)
	require.Len(t, []rune(got), MaxPromptLen)
}

func TestSanitize_CapCountsRunesNotBytes(t *testing.T) {
	long := strings.Repeat("ñ", 600)
	got := Sanitize(long)
	require.Equal(t, MaxPromptLen, len([]rune(got)))
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"hola mundo",
		`<>{}[]\`,
		"  crea una tarea <llamada> pan  ",
		strings.Repeat("palabra ", 200),
		strings.Repeat("á", 700),
		"a" + strings.Repeat(" ", 499) + "b" + strings.Repeat("c", 300),
	}
	for _, in := range inputs {
		once := Sanitize(in)
		require.Equal(t, once, Sanitize(once), "input %q", in)
	}
}

func TestSanitize_EmptyAndWhitespaceOnly(t *testing.T) {
	require.Equal(t, "", Sanitize(""))
	require.Equal(t, "", Sanitize("   \n "))
	require.Equal(t, "", Sanitize("[]{}"))
}
