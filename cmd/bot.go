package main

import (
	"context"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/message"

	"github.com/nicholasngai/wordgame/internal/game"
	"github.com/nicholasngai/wordgame/internal/i18n"
)

// Reactions left on command messages.
const (
	okEmoji   = "✅"
	failEmoji = "❌"
	deadEmoji = "💀"
)

// messenger is the part of the chat platform the bot writes to.
type messenger interface {
	Send(channelID, content string) (messageID string, err error)
	React(channelID, messageID, emoji string) error
}

type botConfig struct {
	prefix    string
	joinEmoji string
	owners    map[string]bool
}

type renderer interface {
	Status(ctx context.Context, status game.Status) string
	StartResult(result game.StartResult) string
}

type bot struct {
	cfg      botConfig
	store    *game.Store
	client   messenger
	replies  renderer
	printer  *message.Printer
	quit     func()
	quitOnce sync.Once
}

// command is a chat message addressed to the bot.
type command struct {
	channelID string
	messageID string
	authorID  string
	args      []string
}

func newBot(cfg botConfig, store *game.Store, client messenger, replies renderer, printer *message.Printer, quit func()) *bot {
	return &bot{
		cfg:     cfg,
		store:   store,
		client:  client,
		replies: replies,
		printer: printer,
		quit:    quit,
	}
}

func (b *bot) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.ID == s.State.User.ID || m.Author.Bot {
		return
	}
	b.onMessage(m.ChannelID, m.ID, m.Author.ID, m.Content)
}

func (b *bot) onMessage(channelID, messageID, authorID, content string) {
	if !strings.HasPrefix(content, b.cfg.prefix) {
		return
	}
	args := strings.Fields(strings.TrimPrefix(content, b.cfg.prefix))
	if len(args) == 0 {
		return
	}

	cmd := command{
		channelID: channelID,
		messageID: messageID,
		authorID:  authorID,
		args:      args,
	}
	log.WithFields(logrus.Fields{
		"channel": channelID,
		"user":    authorID,
		"command": strings.Join(args, " "),
	}).Debugln("Received command")

	switch strings.ToLower(args[0]) {
	case "ping":
		b.say(cmd, b.printer.Sprintf(i18n.Pong))
	case "help":
		b.say(cmd, b.printer.Sprintf(i18n.Help, b.cfg.prefix))
	case "quit":
		b.handleQuit(cmd)
	case "game":
		b.handleGame(cmd)
	}
}

func (b *bot) handleQuit(cmd command) {
	if !b.cfg.owners[cmd.authorID] {
		log.WithField("user", cmd.authorID).Warnln("Non-owner attempted to quit")
		b.say(cmd, b.printer.Sprintf(i18n.QuitNotOwner))
		b.react(cmd, failEmoji)
		return
	}

	b.say(cmd, b.printer.Sprintf(i18n.QuitShuttingDown))
	b.react(cmd, okEmoji)
	b.quitOnce.Do(b.quit)
}

// say sends a message to the command's channel, logging failures.
func (b *bot) say(cmd command, content string) (string, bool) {
	id, err := b.client.Send(cmd.channelID, content)
	if err != nil {
		log.WithField("channel", cmd.channelID).Errorln("Error sending message:", err)
		return "", false
	}
	return id, true
}

// react reacts to the command message, logging failures.
func (b *bot) react(cmd command, emoji string) {
	if err := b.client.React(cmd.channelID, cmd.messageID, emoji); err != nil {
		log.WithFields(logrus.Fields{
			"channel": cmd.channelID,
			"message": cmd.messageID,
		}).Errorln("Error reacting to command:", err)
	}
}
