package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type target struct {
	size  int
	label string
}

func withSize(n int) Option[*target] {
	return New(func(t *target) error {
		if n <= 0 {
			return errors.New("size must be positive")
		}
		t.size = n

		return nil
	})
}

func withLabel(s string) Option[*target] {
	return NoError(func(t *target) { t.label = s })
}

func TestApply(t *testing.T) {
	tg := &target{}

	err := Apply(tg, withSize(8), withLabel("a"), withLabel("b"))
	require.NoError(t, err)
	require.Equal(t, 8, tg.size)
	require.Equal(t, "b", tg.label, "later options win")
}

func TestApply_StopsAtFirstError(t *testing.T) {
	tg := &target{}

	err := Apply(tg, withLabel("first"), withSize(0), withLabel("never"))
	require.EqualError(t, err, "size must be positive")
	require.Equal(t, "first", tg.label)
}

func TestApply_SkipsNil(t *testing.T) {
	tg := &target{}

	require.NoError(t, Apply(tg, nil, withSize(1)))
	require.Equal(t, 1, tg.size)
}
