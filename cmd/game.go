package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/nicholasngai/wordgame/internal/game"
	"github.com/nicholasngai/wordgame/internal/i18n"
)

func (b *bot) handleGame(cmd command) {
	sub := ""
	if len(cmd.args) > 1 {
		sub = strings.ToLower(cmd.args[1])
	}

	switch sub {
	case "status":
		b.gameStatus(cmd)
	case "start":
		b.gameStart(cmd)
	default:
		b.say(cmd, b.printer.Sprintf(i18n.Help, b.cfg.prefix))
	}
}

func (b *bot) gameStatus(cmd command) {
	status := b.store.StatusIn(game.ChannelID(cmd.channelID))
	if _, ok := b.say(cmd, b.replies.Status(context.Background(), status)); !ok {
		return
	}
	b.react(cmd, okEmoji)
}

func (b *bot) gameStart(cmd command) {
	result := b.store.StartIn(game.ChannelID(cmd.channelID))
	text := b.replies.StartResult(result)

	switch result {
	case game.Started:
		// Announce outside the store lock, then route reactions to it.
		announcementID, ok := b.say(cmd, text)
		if !ok {
			b.react(cmd, deadEmoji)
			return
		}
		b.store.Subscribe(game.MessageID(announcementID), game.ChannelID(cmd.channelID))

		log.WithFields(logrus.Fields{
			"channel": cmd.channelID,
			"message": announcementID,
		}).Debugln("New game created")

		// Give players something to click on.
		if err := b.client.React(cmd.channelID, announcementID, b.cfg.joinEmoji); err != nil {
			log.WithField("message", announcementID).Warnln("Error seeding join reaction:", err)
		}
		b.react(cmd, okEmoji)
	case game.AlreadyOngoing:
		log.WithField("channel", cmd.channelID).Debugln("User attempted to start game when one is ongoing")
		b.say(cmd, text)
		b.react(cmd, failEmoji)
	default:
		panic(fmt.Sprintf("unknown start result %v", result))
	}
}
