package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  comprar pan  \n"))

	got, err := GetSimpleText(r, "¿Qué tarea?", &out)

	require.NoError(t, err)
	assert.Equal(t, "comprar pan", got)
	assert.Contains(t, out.String(), "¿Qué tarea?")
}

func TestGetSimpleText_PartialLineOnEOF(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("sin salto de línea"))

	got, err := GetSimpleText(r, "", &out)

	require.NoError(t, err)
	assert.Equal(t, "sin salto de línea", got)
}

func TestGetPIN(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	readPassword = func(fd int) ([]byte, error) {
		return []byte("123456\n"), nil
	}

	var out bytes.Buffer
	pin, err := GetPIN(&out)

	require.NoError(t, err)
	assert.Equal(t, "123456", pin)
	assert.Contains(t, out.String(), "PIN")
}

func TestGetPIN_WipesRawBuffer(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	buf := []byte("123456")
	readPassword = func(fd int) ([]byte, error) {
		return buf, nil
	}

	var out bytes.Buffer
	_, err := GetPIN(&out)

	require.NoError(t, err)
	assert.Equal(t, make([]byte, len(buf)), buf, "the raw PIN bytes must be zeroed")
}
