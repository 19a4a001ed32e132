package reply

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nicholasngai/wordgame/internal/game"
	"github.com/nicholasngai/wordgame/internal/i18n"
)

type mockResolver struct {
	mock.Mock
}

func (m *mockResolver) Resolve(ctx context.Context, id game.UserID) (string, error) {
	args := m.Called(id)
	return args.String(0), args.Error(1)
}

var testOptions = Options{Prefix: "!", JoinEmoji: "👍"}

func newTestRenderer(lang string, resolver Resolver) (*Renderer, *logtest.Hook) {
	logger, hook := logtest.NewNullLogger()
	return NewRenderer(i18n.Printer(lang), resolver, testOptions, logger), hook
}

func TestRenderer_Status(t *testing.T) {
	tests := []struct {
		name     string
		lang     string
		status   game.Status
		setup    func(r *mockResolver)
		expected string
	}{
		{
			name:     "no game",
			lang:     "en",
			status:   game.NoGameStatus{},
			expected: "No game is currently ongoing. You can start one with `!game start`.",
		},
		{
			name:   "waiting for players, nobody joined",
			lang:   "en",
			status: game.WaitingForPlayersStatus{Players: []game.UserID{}},
			expected: "A game has started, and I am waiting for players to join. " +
				"If you want to play, react with 👍 on my previous message. Nobody joined yet.",
		},
		{
			name:   "waiting for players",
			lang:   "en",
			status: game.WaitingForPlayersStatus{Players: []game.UserID{"1", "2"}},
			setup: func(r *mockResolver) {
				r.On("Resolve", game.UserID("1")).Return("alice", nil)
				r.On("Resolve", game.UserID("2")).Return("bob", nil)
			},
			expected: "A game has started, and I am waiting for players to join. " +
				"If you want to play, react with 👍 on my previous message. Current players: alice, bob.",
		},
		{
			name:     "waiting for votes",
			lang:     "en",
			status:   game.WaitingForVotesStatus{Players: []game.UserID{"1"}},
			expected: "A game is ongoing, and I am waiting for your votes by direct messages. To vote, follow the instructions I sent you by DM.",
		},
		{
			name:     "no game in french",
			lang:     "fr",
			status:   game.NoGameStatus{},
			expected: "Il n'y a aucun jeu en cours actuellement. Vous pouvez en démarrer un avec `!game start`.",
		},
		{
			name:   "waiting for players in french",
			lang:   "fr",
			status: game.WaitingForPlayersStatus{Players: []game.UserID{"1"}},
			setup: func(r *mockResolver) {
				r.On("Resolve", game.UserID("1")).Return("alice", nil)
			},
			expected: "Un jeu a démarré, et j'attends actuellement que les joueurs s'inscrivent. " +
				"Si vous voulez jouer, réagissez avec 👍 sur mon précédent message. Sont actuellement inscrits : alice.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := new(mockResolver)
			if tt.setup != nil {
				tt.setup(resolver)
			}
			r, _ := newTestRenderer(tt.lang, resolver)

			assert.Equal(t, tt.expected, r.Status(context.Background(), tt.status))
			resolver.AssertExpectations(t)
		})
	}
}

func TestRenderer_Status_ResolveFailure(t *testing.T) {
	resolver := new(mockResolver)
	resolver.On("Resolve", game.UserID("1")).Return("", errors.New("unknown user"))
	resolver.On("Resolve", game.UserID("2")).Return("bob", nil)
	r, hook := newTestRenderer("en", resolver)

	text := r.Status(context.Background(), game.WaitingForPlayersStatus{Players: []game.UserID{"1", "2"}})

	assert.Contains(t, text, "Current players: ?, bob.")
	entries := hook.AllEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, logrus.WarnLevel, entries[0].Level)
	assert.Equal(t, game.UserID("1"), entries[0].Data["user"])
}

func TestRenderer_Status_KeepsPlayerOrder(t *testing.T) {
	resolver := new(mockResolver)
	players := []game.UserID{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
	for _, id := range players {
		resolver.On("Resolve", id).Return("name-"+string(id), nil)
	}
	r, _ := newTestRenderer("en", resolver)

	names := r.names(context.Background(), players)

	require.Len(t, names, len(players))
	for i, id := range players {
		assert.Equal(t, "name-"+string(id), names[i])
	}
}

func TestRenderer_StartResult(t *testing.T) {
	tests := []struct {
		name     string
		lang     string
		result   game.StartResult
		expected string
	}{
		{
			name:     "started",
			lang:     "en",
			result:   game.Started,
			expected: "The game is starting. React with 👍 on this message if you want to take part. You can remove the emoji if you change your mind.",
		},
		{
			name:     "already ongoing",
			lang:     "en",
			result:   game.AlreadyOngoing,
			expected: "A game is already ongoing, you must `!game stop` it first.",
		},
		{
			name:     "already ongoing in french",
			lang:     "fr",
			result:   game.AlreadyOngoing,
			expected: "Un jeu est déjà en cours. Vous devez l'arrêter avec `!game stop` avant de pouvoir le démarrer.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestRenderer(tt.lang, new(mockResolver))
			assert.Equal(t, tt.expected, r.StartResult(tt.result))
		})
	}
}

func TestRenderer_UnknownVariantsPanic(t *testing.T) {
	r, _ := newTestRenderer("en", new(mockResolver))

	assert.Panics(t, func() { r.StartResult(game.StartResult(42)) })
	assert.Panics(t, func() { r.Status(context.Background(), nil) })
}
