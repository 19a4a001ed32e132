package main

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/nicholasngai/wordgame/internal/game"
)

// discordClient adapts a discordgo session to the bot's messenger and the
// renderer's name resolver.
type discordClient struct {
	s *discordgo.Session
}

func (c discordClient) Send(channelID, content string) (string, error) {
	m, err := c.s.ChannelMessageSend(channelID, content)
	if err != nil {
		return "", fmt.Errorf("send message to %s: %w", channelID, err)
	}
	return m.ID, nil
}

func (c discordClient) React(channelID, messageID, emoji string) error {
	if err := c.s.MessageReactionAdd(channelID, messageID, emoji); err != nil {
		return fmt.Errorf("react to %s: %w", messageID, err)
	}
	return nil
}

func (c discordClient) Resolve(ctx context.Context, id game.UserID) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	u, err := c.s.User(string(id))
	if err != nil {
		return "", fmt.Errorf("fetch user %s: %w", id, err)
	}
	return u.Username, nil
}
