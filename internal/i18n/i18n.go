// Package i18n holds the bot's localized replies.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys.
const (
	StatusNoGame            = "status.no_game"
	StatusWaitingForPlayers = "status.waiting_for_players"
	StatusCurrentPlayers    = "status.current_players"
	StatusNobodyJoined      = "status.nobody_joined"
	StatusWaitingForVotes   = "status.waiting_for_votes"
	StartStarted            = "start.started"
	StartAlreadyOngoing     = "start.already_ongoing"
	Pong                    = "meta.pong"
	Help                    = "meta.help"
	QuitNotOwner            = "owner.quit_not_owner"
	QuitShuttingDown        = "owner.quit_shutting_down"
)

var supportedTags = []language.Tag{
	language.English,
	language.French,
}

var tagMatcher = language.NewMatcher(supportedTags)

// Default returns the default language tag.
func Default() language.Tag {
	return language.English
}

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Match returns the supported tag closest to value, or Default when value
// does not parse.
func Match(value string) language.Tag {
	parsed, err := language.Parse(value)
	if err != nil {
		return Default()
	}
	_, index, confidence := tagMatcher.Match(parsed)
	if confidence == language.No {
		return Default()
	}
	return supportedTags[index]
}

// Printer returns a message printer for the language closest to value.
func Printer(value string) *message.Printer {
	return message.NewPrinter(Match(value))
}
