package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, StatusNoGame, "No game is currently ongoing. You can start one with `%s`.")
	message.SetString(lang, StatusWaitingForPlayers, "A game has started, and I am waiting for players to join. If you want to play, react with %s on my previous message. %s")
	message.SetString(lang, StatusCurrentPlayers, "Current players: %s.")
	message.SetString(lang, StatusNobodyJoined, "Nobody joined yet.")
	message.SetString(lang, StatusWaitingForVotes, "A game is ongoing, and I am waiting for your votes by direct messages. To vote, follow the instructions I sent you by DM.")

	message.SetString(lang, StartStarted, "The game is starting. React with %s on this message if you want to take part. You can remove the emoji if you change your mind.")
	message.SetString(lang, StartAlreadyOngoing, "A game is already ongoing, you must `%s` it first.")

	message.SetString(lang, Pong, "Pong!")
	message.SetString(lang, Help, "Available commands:\n`%[1]sping` Replies with Pong.\n`%[1]sgame status` Prints the status of the game in the channel.\n`%[1]sgame start` Starts a game if none is ongoing.\n`%[1]squit` Shuts the bot down (owners only).")
	message.SetString(lang, QuitNotOwner, "Only the bot owners can do that.")
	message.SetString(lang, QuitShuttingDown, "Shutting down.")
}
