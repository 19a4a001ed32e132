package main

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nicholasngai/wordgame/internal/game"
)

type mockMessenger struct {
	mock.Mock
}

func (m *mockMessenger) Send(channelID, content string) (string, error) {
	args := m.Called(channelID, content)
	return args.String(0), args.Error(1)
}

func (m *mockMessenger) React(channelID, messageID, emoji string) error {
	args := m.Called(channelID, messageID, emoji)
	return args.Error(0)
}

type mockResolver struct {
	mock.Mock
}

func (m *mockResolver) Resolve(ctx context.Context, id game.UserID) (string, error) {
	args := m.Called(id)
	return args.String(0), args.Error(1)
}
