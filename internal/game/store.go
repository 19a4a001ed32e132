package game

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// Store tracks the game state of every channel and routes reactions on
// announcement messages to the channel they belong to. It is safe for
// concurrent use.
type Store struct {
	joinEmoji string
	log       logrus.FieldLogger

	lock          sync.RWMutex
	states        map[ChannelID]State
	subscriptions map[MessageID]ChannelID
}

// NewStore returns an empty store. Only reactions with joinEmoji are routed.
func NewStore(joinEmoji string, log logrus.FieldLogger) *Store {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	return &Store{
		joinEmoji:     joinEmoji,
		log:           log,
		states:        make(map[ChannelID]State),
		subscriptions: make(map[MessageID]ChannelID),
	}
}

// JoinEmoji returns the emoji that signals intent to join a game.
func (s *Store) JoinEmoji() string {
	return s.joinEmoji
}

// StatusIn reports the game state of a channel. Unknown channels have no game.
func (s *Store) StatusIn(channelID ChannelID) Status {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return statusOf(s.stateIn(channelID))
}

// StartIn starts waiting for players in a channel with no game. Any other
// state is left untouched and AlreadyOngoing is returned.
func (s *Store) StartIn(channelID ChannelID) StartResult {
	s.lock.Lock()
	defer s.lock.Unlock()

	switch state := s.stateIn(channelID).(type) {
	case NoGame:
		s.states[channelID] = &WaitingForPlayers{Players: make(map[UserID]struct{})}
		s.log.WithField("channel", channelID).Debugln("Game started")
		return Started
	case *WaitingForPlayers, *WaitingForVotes:
		return AlreadyOngoing
	default:
		panic(fmt.Sprintf("game: unknown state %T", state))
	}
}

// Subscribe routes join reactions on an announcement message to a channel.
func (s *Store) Subscribe(messageID MessageID, channelID ChannelID) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.log.WithFields(logrus.Fields{
		"channel": channelID,
		"message": messageID,
	}).Traceln("Subscribed to reactions")
	s.subscriptions[messageID] = channelID
}

// Unsubscribe stops routing reactions on a message. Unknown ids are ignored.
func (s *Store) Unsubscribe(messageID MessageID) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.unsubscribe(messageID)
}

// ReactionAdd adds the reacting user to the game a subscribed announcement
// belongs to. A subscription whose channel no longer accepts players is
// dropped.
func (s *Store) ReactionAdd(r Reaction) {
	s.route(r, func(channelID ChannelID, players map[UserID]struct{}) {
		players[r.UserID] = struct{}{}
		s.log.WithFields(logrus.Fields{
			"channel": channelID,
			"user":    r.UserID,
		}).Debugln("User joined game")
	})
}

// ReactionRemove removes the user from the game when their join reaction is
// retracted. It follows the same routing rules as ReactionAdd.
func (s *Store) ReactionRemove(r Reaction) {
	s.route(r, func(channelID ChannelID, players map[UserID]struct{}) {
		delete(players, r.UserID)
		s.log.WithFields(logrus.Fields{
			"channel": channelID,
			"user":    r.UserID,
		}).Debugln("User left game")
	})
}

func (s *Store) route(r Reaction, apply func(ChannelID, map[UserID]struct{})) {
	if r.Emoji != s.joinEmoji {
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	s.log.WithFields(logrus.Fields{
		"message": r.MessageID,
		"user":    r.UserID,
	}).Traceln("Processing reaction")

	channelID, ok := s.subscriptions[r.MessageID]
	if !ok {
		return
	}

	switch state := s.stateIn(channelID).(type) {
	case *WaitingForPlayers:
		apply(channelID, state.Players)
	case NoGame, *WaitingForVotes:
		// Announcement no longer leads anywhere joinable.
		s.unsubscribe(r.MessageID)
	default:
		panic(fmt.Sprintf("game: unknown state %T", state))
	}
}

func (s *Store) unsubscribe(messageID MessageID) {
	if _, ok := s.subscriptions[messageID]; !ok {
		return
	}
	delete(s.subscriptions, messageID)
	s.log.WithField("message", messageID).Traceln("Unsubscribed from reactions")
}

// stateIn must be called with lock held.
func (s *Store) stateIn(channelID ChannelID) State {
	if state, ok := s.states[channelID]; ok {
		return state
	}
	return NoGame{}
}
