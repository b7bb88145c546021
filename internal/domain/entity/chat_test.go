package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParticipantRole(t *testing.T) {
	chat := &Chat{UserID: "u1", ProviderID: "p1"}

	party, ok := chat.ParticipantRole("u1")
	assert.True(t, ok)
	assert.Equal(t, PartyUser, party)

	party, ok = chat.ParticipantRole("p1")
	assert.True(t, ok)
	assert.Equal(t, PartyProvider, party)

	_, ok = chat.ParticipantRole("stranger")
	assert.False(t, ok)

	// An empty id never matches, even against an unset party field.
	empty := &Chat{UserID: "u1"}
	_, ok = empty.ParticipantRole("")
	assert.False(t, ok)
}

func TestHasSystemMessage(t *testing.T) {
	chat := &Chat{Messages: []Message{
		{Text: "  fix my sink  ", System: true},
		{Text: "fix my sink", System: false},
	}}

	assert.True(t, chat.HasSystemMessage("fix my sink"))
	assert.True(t, chat.HasSystemMessage("  fix my sink"))
	assert.False(t, chat.HasSystemMessage("something else"))

	bare := &Chat{Messages: []Message{{Text: "fix my sink"}}}
	assert.False(t, bare.HasSystemMessage("fix my sink"), "non-system text does not count")
}

func TestReviewedFlags(t *testing.T) {
	chat := &Chat{UserReviewed: true}
	assert.True(t, chat.Reviewed(PartyUser))
	assert.False(t, chat.Reviewed(PartyProvider))
}
