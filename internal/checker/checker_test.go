package checker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pydoccheck/internal/extractor"
	"pydoccheck/internal/rules"
)

const sampleSource = `def good(a: int) -> int:
    """Adds one.

    Args:
        a (int): the operand

    Returns:
        int
    """
    return a + 1


def bad(a: int, b: str) -> int:
    return a


def noisy(a: int) -> int:
    return a
`

func newChecker(t *testing.T, opts Options) *Checker {
	t.Helper()
	c, err := New(opts)
	require.NoError(t, err)
	return c
}

func TestCheckSource(t *testing.T) {
	c := newChecker(t, Options{})

	fr, err := c.CheckSource("sample.py", []byte(sampleSource))
	require.NoError(t, err)

	t.Run("Counts", func(t *testing.T) {
		assert.Equal(t, "sample.py", fr.Path)
		assert.Equal(t, 3, fr.FunctionsChecked)
		assert.Equal(t, 5, fr.FindingsTotal)
	})

	t.Run("Only Functions With Findings Are Listed", func(t *testing.T) {
		require.Len(t, fr.Functions, 2)
		assert.Equal(t, "bad", fr.Functions[0].Name)
		assert.Equal(t, 13, fr.Functions[0].Line)
		assert.Equal(t, "noisy", fr.Functions[1].Name)
	})

	t.Run("Finding Kinds", func(t *testing.T) {
		var kinds []rules.Kind
		for _, f := range fr.Functions[0].Findings {
			kinds = append(kinds, f.Kind)
		}
		// bad: both params undocumented, return undocumented.
		assert.Equal(t, []rules.Kind{
			rules.MissingFromDocstring,
			rules.MissingFromDocstring,
			rules.ReturnTypeUndocumented,
		}, kinds)
	})
}

func TestCheckSource_IgnoredNamesStillCounted(t *testing.T) {
	c := newChecker(t, Options{IgnoredNames: map[string]bool{"bad": true, "noisy": true}})

	fr, err := c.CheckSource("sample.py", []byte(sampleSource))
	require.NoError(t, err)
	assert.Equal(t, 3, fr.FunctionsChecked, "ignored functions still count as checked")
	assert.Empty(t, fr.Functions)
	assert.Zero(t, fr.FindingsTotal)
}

func TestCheckSource_NoDocstringDoesNotCrash(t *testing.T) {
	c := newChecker(t, Options{})
	fr, err := c.CheckSource("x.py", []byte("def f(a: int) -> int:\n    return a\n"))
	require.NoError(t, err)
	require.Len(t, fr.Functions, 1)
	assert.Equal(t, rules.MissingFromDocstring, fr.Functions[0].Findings[0].Kind)
}

func TestCheckSource_ParseErrorSurfaces(t *testing.T) {
	c := newChecker(t, Options{})
	_, err := c.CheckSource("broken.py", []byte("def broken(:\n"))
	require.Error(t, err)
	assert.IsType(t, &extractor.ParseError{}, err)
}

func TestCheckSource_Deterministic(t *testing.T) {
	c := newChecker(t, Options{Verbose: true})
	first, err := c.CheckSource("sample.py", []byte(sampleSource))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := c.CheckSource("sample.py", []byte(sampleSource))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
