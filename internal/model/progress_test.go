package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBumpWeakTopic(t *testing.T) {
	var p UserProgress

	p.BumpWeakTopic("Options")
	p.BumpWeakTopic("Options")
	p.BumpWeakTopic("Debt Securities")
	p.BumpWeakTopic("")

	assert.Equal(t, []WeakTopic{
		{Topic: "Options", MissCount: 2},
		{Topic: "Debt Securities", MissCount: 1},
	}, p.WeakTopics)
}

func TestParseChoiceLetter(t *testing.T) {
	for in, want := range map[string]ChoiceLetter{
		"A": ChoiceA, "b": ChoiceB, " c ": ChoiceC, "D": ChoiceD,
	} {
		got, ok := ParseChoiceLetter(in)
		assert.True(t, ok, "input %q", in)
		assert.Equal(t, want, got)
	}

	for _, in := range []string{"", "E", "AB", "1", "alpha"} {
		_, ok := ParseChoiceLetter(in)
		assert.False(t, ok, "input %q", in)
	}
}
