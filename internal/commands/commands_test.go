package commands

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	args, ok := Parse("cmd structure --type hexagonal")
	require.True(t, ok)
	assert.Equal(t, []string{"structure", "--type", "hexagonal"}, args)

	args, ok = Parse("cmd   ")
	assert.True(t, ok)
	assert.Nil(t, args)

	_, ok = Parse("show me a cubic lattice")
	assert.False(t, ok)

	_, ok = Parse("CMD grid")
	assert.False(t, ok)
}

func TestExecute(t *testing.T) {
	reg := NewRegistry()
	fs := NewFlagSet("structure")
	typ := fs.String("type", "", "lattice type")
	var gotArgs []string
	reg.Register("structure", "set lattice type", fs, func(args []string) error {
		gotArgs = args
		return nil
	})
	reg.Register("fail", "always fails", nil, func([]string) error {
		return errors.New("boom")
	})

	require.NoError(t, reg.Execute([]string{"structure", "--type", "monoclinic", "extra"}))
	assert.Equal(t, "monoclinic", *typ)
	assert.Equal(t, []string{"extra"}, gotArgs)

	assert.EqualError(t, reg.Execute([]string{"fail"}), "boom")
	assert.ErrorContains(t, reg.Execute([]string{"nope"}), "unknown command")
	assert.ErrorContains(t, reg.Execute(nil), "missing subcommand")
	assert.ErrorContains(t, reg.Execute([]string{"structure", "--bogus"}), "structure:")
}

func TestHelp(t *testing.T) {
	reg := NewRegistry()
	reg.Register("b", "second", nil, func([]string) error { return nil })
	reg.Register("a", "first", nil, func([]string) error { return nil })

	assert.Equal(t, []string{"a", "b"}, reg.Names())
	assert.Equal(t, []string{"a: first", "b: second"}, reg.Help())
}
