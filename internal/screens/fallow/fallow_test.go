package fallow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewShowsReason(t *testing.T) {
	s := New("Career Report", "The report needs a saved profile")

	v := s.View(60, 20)
	assert.Contains(t, v, "Nothing is growing in this bed yet")
	assert.Contains(t, v, "The report needs a saved profile")
	assert.Equal(t, "Career Report", s.Title())
}

func TestUpdateKeepsScreen(t *testing.T) {
	s := New("My Aptitudes", "")

	next, cmd := s.Update(nil)
	assert.Same(t, s, next)
	assert.Nil(t, cmd)
	assert.Len(t, s.KeyHints(), 1)
}
