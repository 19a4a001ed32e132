package main

import (
	"github.com/bwmarrin/discordgo"

	"github.com/nicholasngai/wordgame/internal/game"
)

func (b *bot) handleReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	if r.MessageReaction == nil || r.UserID == s.State.User.ID {
		return
	}
	b.store.ReactionAdd(toReaction(r.MessageReaction))
}

func (b *bot) handleReactionRemove(s *discordgo.Session, r *discordgo.MessageReactionRemove) {
	if r.MessageReaction == nil || r.UserID == s.State.User.ID {
		return
	}
	b.store.ReactionRemove(toReaction(r.MessageReaction))
}

func toReaction(r *discordgo.MessageReaction) game.Reaction {
	return game.Reaction{
		ChannelID: game.ChannelID(r.ChannelID),
		MessageID: game.MessageID(r.MessageID),
		UserID:    game.UserID(r.UserID),
		Emoji:     r.Emoji.Name,
	}
}
