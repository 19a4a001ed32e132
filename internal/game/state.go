package game

import (
	"fmt"
	"sort"
)

// ChannelID, MessageID and UserID are opaque platform identifiers.
type (
	ChannelID string
	MessageID string
	UserID    string
)

// State is the per-channel game state. The set of implementations is closed.
type State interface {
	isState()
}

// NoGame means no game is running in the channel.
type NoGame struct{}

// WaitingForPlayers means an announcement is live and players may join.
type WaitingForPlayers struct {
	Players map[UserID]struct{}
}

// WaitingForVotes is the voting phase. Nothing transitions into it yet.
type WaitingForVotes struct {
	Players map[UserID]struct{}
	Word    string
}

func (NoGame) isState()             {}
func (*WaitingForPlayers) isState() {}
func (*WaitingForVotes) isState()   {}

// Status is a read-only view of a channel's State returned by Store.StatusIn.
type Status interface {
	isStatus()
}

type NoGameStatus struct{}

type WaitingForPlayersStatus struct {
	Players []UserID
}

type WaitingForVotesStatus struct {
	Players []UserID
}

func (NoGameStatus) isStatus()            {}
func (WaitingForPlayersStatus) isStatus() {}
func (WaitingForVotesStatus) isStatus()   {}

// StartResult is the outcome of Store.StartIn.
type StartResult int

const (
	Started StartResult = iota
	AlreadyOngoing
)

func (r StartResult) String() string {
	switch r {
	case Started:
		return "started"
	case AlreadyOngoing:
		return "already-ongoing"
	default:
		return fmt.Sprintf("StartResult(%d)", int(r))
	}
}

// Reaction is a reaction-add or reaction-remove event on any message.
type Reaction struct {
	ChannelID ChannelID
	MessageID MessageID
	UserID    UserID
	Emoji     string
}

func statusOf(state State) Status {
	switch s := state.(type) {
	case NoGame:
		return NoGameStatus{}
	case *WaitingForPlayers:
		return WaitingForPlayersStatus{Players: sortedPlayers(s.Players)}
	case *WaitingForVotes:
		return WaitingForVotesStatus{Players: sortedPlayers(s.Players)}
	default:
		panic(fmt.Sprintf("game: unknown state %T", state))
	}
}

func sortedPlayers(players map[UserID]struct{}) []UserID {
	ids := make([]UserID, 0, len(players))
	for id := range players {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
