package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntentGroup_AppendKeepsOrder(t *testing.T) {
	g := NewIntentGroup()
	g.Append("greet", "hello")
	g.Append("ask_stroke", "what is a stroke")
	g.Append("greet", "hello")

	assert.Equal(t, []string{"greet", "ask_stroke"}, g.Labels())
	assert.Equal(t, []string{"hello", "hello"}, g.Values("greet"))
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, 3, g.Total())
	assert.Equal(t, 2, g.Count("greet"))
	assert.True(t, g.Has("ask_stroke"))
	assert.False(t, g.Has("goodbye"))
}

func TestIntentGroup_ReturnsCopies(t *testing.T) {
	g := NewIntentGroup()
	g.Append("greet", "hello")

	labels := g.Labels()
	labels[0] = "changed"
	values := g.Values("greet")
	values[0] = "changed"

	assert.Equal(t, []string{"greet"}, g.Labels())
	assert.Equal(t, []string{"hello"}, g.Values("greet"))
}

func TestIntentGroup_Empty(t *testing.T) {
	g := NewIntentGroup()
	assert.Empty(t, g.Labels())
	assert.NotNil(t, g.Labels())
	assert.Empty(t, g.Values("missing"))
	assert.Equal(t, 0, g.Total())
}
