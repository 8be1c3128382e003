package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterkuimelis/biolab/internal/log"
)

func TestAwardRegistry_SubmitOnce(t *testing.T) {
	r := NewAwardRegistry(DefaultRuleBook().Awards)

	result, award := r.Submit("  BestBio ")
	assert.Equal(t, CodeFound, result)
	require.NotNil(t, award)
	assert.Equal(t, "Best Bio Teacher", award.Name)

	result, award = r.Submit("bestbio")
	assert.Equal(t, CodeAlreadyFound, result)
	assert.Nil(t, award)

	assert.Equal(t, 1, r.FoundCount())
	assert.True(t, r.AnyFound())
}

func TestAwardRegistry_KeepsDeclarationOrder(t *testing.T) {
	r := NewAwardRegistry(DefaultRuleBook().Awards)
	var names []string
	for _, a := range r.Awards() {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"Weitzel's Wisdom", "Birthday Nobel", "Best Bio Teacher"}, names)
}

func TestSubmitCode_UnlocksExactlyOnce(t *testing.T) {
	g, logger := newTestGame(t)

	result, err := g.SubmitCode("YAY Mr.Weitzel")
	require.NoError(t, err)
	assert.Equal(t, CodeFound, result)
	assert.Equal(t, "✨ Discovered: Weitzel's Wisdom", g.State.LastAction)
	assert.True(t, g.Snapshot().Celebrate)

	result, err = g.SubmitCode("yay mr.weitzel")
	require.NoError(t, err)
	assert.Equal(t, CodeAlreadyFound, result)

	assert.Equal(t, []string{"Weitzel's Wisdom"}, g.State.Inventory)
	assert.Len(t, logger.EventsOfType(log.EventAwardFound), 1)
	assert.False(t, g.Snapshot().Celebrate, "celebration lasts one command")
}

func TestSubmitCode_UnrecognizedNeverMutates(t *testing.T) {
	g, logger := newTestGame(t)
	_, err := g.DrawCard()
	require.NoError(t, err)
	before := g.Snapshot()
	events := len(logger.Events())

	result, err := g.SubmitCode("open sesame")
	require.NoError(t, err)
	assert.Equal(t, CodeUnrecognized, result)
	assert.Equal(t, before, g.Snapshot())
	assert.Len(t, logger.Events(), events)
}

func TestNewGame_ResetsAwards(t *testing.T) {
	g, _ := newTestGame(t)
	_, err := g.SubmitCode("happybirthday")
	require.NoError(t, err)
	require.True(t, g.Snapshot().AnyAwardFound)

	g.NewGame()
	assert.False(t, g.Snapshot().AnyAwardFound)
	result, err := g.SubmitCode("happybirthday")
	require.NoError(t, err)
	assert.Equal(t, CodeFound, result)
}

func TestSnapshot_MasksHiddenAwards(t *testing.T) {
	g, _ := newTestGame(t)
	_, err := g.SubmitCode("bestbio")
	require.NoError(t, err)

	awards := g.Snapshot().Awards
	require.Len(t, awards, 3)
	assert.Equal(t, AwardView{Name: "???", Description: "Hidden award"}, awards[0])
	assert.Equal(t, "Best Bio Teacher", awards[2].Name)
	assert.True(t, awards[2].Found)
	assert.NotEmpty(t, awards[2].Image)
}
