package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.French

	message.SetString(lang, StatusNoGame, "Il n'y a aucun jeu en cours actuellement. Vous pouvez en démarrer un avec `%s`.")
	message.SetString(lang, StatusWaitingForPlayers, "Un jeu a démarré, et j'attends actuellement que les joueurs s'inscrivent. Si vous voulez jouer, réagissez avec %s sur mon précédent message. %s")
	message.SetString(lang, StatusCurrentPlayers, "Sont actuellement inscrits : %s.")
	message.SetString(lang, StatusNobodyJoined, "Personne ne s'est encore inscrit.")
	message.SetString(lang, StatusWaitingForVotes, "Un jeu est en cours, et je suis en train d'attendre vos votes par message direct. Pour voter, suivez les instructions que je vous ai envoyées.")

	message.SetString(lang, StartStarted, "Le jeu démarre. Réagissez avec %s sur ce message pour participer. Vous pouvez également enlever l'emoji si vous changez d'avis.")
	message.SetString(lang, StartAlreadyOngoing, "Un jeu est déjà en cours. Vous devez l'arrêter avec `%s` avant de pouvoir le démarrer.")

	message.SetString(lang, Pong, "Pong !")
	message.SetString(lang, Help, "Commandes disponibles :\n`%[1]sping` Répond Pong.\n`%[1]sgame status` Affiche l'état du jeu dans le salon.\n`%[1]sgame start` Démarre un jeu si aucun n'est en cours.\n`%[1]squit` Arrête le bot (propriétaires uniquement).")
	message.SetString(lang, QuitNotOwner, "Seuls les propriétaires du bot peuvent faire ça.")
	message.SetString(lang, QuitShuttingDown, "Arrêt en cours.")
}
