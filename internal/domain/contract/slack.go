package contract

import "github.com/slack-go/slack"

//go:generate go run go.uber.org/mock/mockgen -destination=../../../mocks/slack_mock.go -package=mocks . SlackClient

// SlackClient defines the interface for Slack operations
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	// PostMessage sends a message to a Slack channel
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)
}
