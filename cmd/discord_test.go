package main

import (
	"context"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscordClient_Resolve_CancelledContext(t *testing.T) {
	s, err := discordgo.New("Bot test")
	require.NoError(t, err)
	client := discordClient{s: s}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	name, err := client.Resolve(ctx, "u1")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, name)
}
