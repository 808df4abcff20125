package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_CaseInsensitive(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterSimple("Load", "Load work", func(args []string) error { return nil })

	_, ok := reg.Lookup("load")
	assert.True(t, ok)
	_, ok = reg.Lookup("LOAD")
	assert.True(t, ok)
	_, ok = reg.Lookup("publish")
	assert.False(t, ok)
}

func TestRegistry_DuplicateLastWriteWins(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterSimple("Load", "first", func(args []string) error { return nil })
	reg.RegisterSimple("load", "second", func(args []string) error { return nil })

	assert.Equal(t, []string{"load"}, reg.Names())
	desc, ok := reg.Lookup("Load")
	require.True(t, ok)
	assert.Equal(t, "second", desc.Help)
}

func TestRegistry_NamesSorted(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterSimple("setupdb", "", func(args []string) error { return nil })
	reg.RegisterSimple("compensate", "", func(args []string) error { return nil })
	reg.RegisterSimple("progress", "", func(args []string) error { return nil })

	assert.Equal(t, []string{"compensate", "progress", "setupdb"}, reg.Names())
}
