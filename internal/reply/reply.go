// Package reply renders game store results as chat messages.
package reply

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/message"

	"github.com/nicholasngai/wordgame/internal/game"
	"github.com/nicholasngai/wordgame/internal/i18n"
)

// UnknownName is shown for players whose name could not be resolved.
const UnknownName = "?"

// maxLookups bounds the number of concurrent name lookups.
const maxLookups = 8

// Resolver looks up the display name of a user.
type Resolver interface {
	Resolve(ctx context.Context, id game.UserID) (string, error)
}

// Options holds the configurable parts of rendered messages.
type Options struct {
	Prefix    string
	JoinEmoji string
}

// Renderer turns store results into localized text.
type Renderer struct {
	printer  *message.Printer
	resolver Resolver
	opts     Options
	log      logrus.FieldLogger
}

func NewRenderer(printer *message.Printer, resolver Resolver, opts Options, log logrus.FieldLogger) *Renderer {
	return &Renderer{
		printer:  printer,
		resolver: resolver,
		opts:     opts,
		log:      log,
	}
}

// Status describes the game in a channel.
func (r *Renderer) Status(ctx context.Context, status game.Status) string {
	switch s := status.(type) {
	case game.NoGameStatus:
		return r.printer.Sprintf(i18n.StatusNoGame, r.opts.Prefix+"game start")
	case game.WaitingForPlayersStatus:
		playing := r.printer.Sprintf(i18n.StatusNobodyJoined)
		if len(s.Players) > 0 {
			names := r.names(ctx, s.Players)
			playing = r.printer.Sprintf(i18n.StatusCurrentPlayers, strings.Join(names, ", "))
		}
		return r.printer.Sprintf(i18n.StatusWaitingForPlayers, r.opts.JoinEmoji, playing)
	case game.WaitingForVotesStatus:
		return r.printer.Sprintf(i18n.StatusWaitingForVotes)
	default:
		panic(fmt.Sprintf("reply: unknown status %T", status))
	}
}

// StartResult describes the outcome of starting a game.
func (r *Renderer) StartResult(result game.StartResult) string {
	switch result {
	case game.Started:
		return r.printer.Sprintf(i18n.StartStarted, r.opts.JoinEmoji)
	case game.AlreadyOngoing:
		return r.printer.Sprintf(i18n.StartAlreadyOngoing, r.opts.Prefix+"game stop")
	default:
		panic(fmt.Sprintf("reply: unknown start result %v", result))
	}
}

// names resolves every player, keeping their order. Failed lookups are
// logged and rendered as UnknownName.
func (r *Renderer) names(ctx context.Context, players []game.UserID) []string {
	names := make([]string, len(players))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxLookups)
	for i, id := range players {
		i, id := i, id
		g.Go(func() error {
			name, err := r.resolver.Resolve(ctx, id)
			if err != nil {
				r.log.WithField("user", id).WithError(err).Warnln("Failed to fetch username")
				name = UnknownName
			}
			names[i] = name
			return nil
		})
	}
	_ = g.Wait()

	return names
}
