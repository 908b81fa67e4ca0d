package moderation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModerator_Censor_Masks_Plain_Match(t *testing.T) {
	req := require.New(t)
	moderator, err := NewModerator([]string{"idiot", "crap"}, '*')
	req.NoError(err)

	// When censoring a broadcast containing a blacklisted word
	out := moderator.Censor("What an idiot move")

	// Then only the match is masked
	req.Equal("What an ***** move", out)
}

func TestModerator_Censor_Is_Case_Insensitive(t *testing.T) {
	req := require.New(t)
	moderator, err := NewModerator([]string{"idiot"}, '*')
	req.NoError(err)

	out := moderator.Censor("IDIOT alert")

	req.Equal("***** alert", out)
}

func TestModerator_Censor_Defeats_Spacing_Tricks(t *testing.T) {
	req := require.New(t)
	moderator, err := NewModerator([]string{"idiot"}, '*')
	req.NoError(err)

	// When the word is split by punctuation and spaces
	out := moderator.Censor("what an i.d i-o.t move")

	// Then the span between first and last matched rune is masked
	req.NotContains(out, "i.d i-o.t")
	req.Contains(out, "what an ")
	req.Contains(out, " move")
}

func TestModerator_Censor_Leaves_Clean_Text_Untouched(t *testing.T) {
	req := require.New(t)
	moderator, err := NewModerator([]string{"idiot"}, '*')
	req.NoError(err)

	input := "Service resumes at 14:00 on line 7"
	req.Equal(input, moderator.Censor(input))
}

func TestModerator_Censor_Empty_Input(t *testing.T) {
	req := require.New(t)
	moderator, err := NewModerator([]string{"idiot"}, '*')
	req.NoError(err)

	req.Equal("", moderator.Censor(""))
	req.Equal("!!!", moderator.Censor("!!!"))
}
