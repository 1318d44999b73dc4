package advice

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ChatPath is the collaborator route for chat replies.
const ChatPath = "/api/chat"

// ChatRequest is a single user message.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatReply is the bot answer.
type ChatReply struct {
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// CannedChat is a Fetcher that answers chat messages with keyword-matched
// replies. It stands in for the chat backend.
type CannedChat struct {
	Now func() time.Time
}

var cannedReplies = []struct {
	keywords []string
	reply    string
}{
	{[]string{"sad", "depressed"}, "I'm sorry you're feeling down. Remember that it's okay to not be okay. Would you like to try some mood-lifting exercises?"},
	{[]string{"happy", "good"}, "I'm glad you're feeling good! Would you like some suggestions to maintain this positive mood?"},
	{[]string{"anxious", "worried"}, "I understand anxiety can be challenging. Let's try some deep breathing exercises together."},
}

const defaultReply = "Thank you for sharing. How else can I help you today?"

// Reply returns the canned answer for a message.
func Reply(message string) string {
	input := strings.ToLower(message)
	for _, r := range cannedReplies {
		for _, kw := range r.keywords {
			if strings.Contains(input, kw) {
				return r.reply
			}
		}
	}
	return defaultReply
}

// FetchAdvice answers ChatPath requests carrying a ChatRequest payload.
func (c CannedChat) FetchAdvice(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %s", ErrTimeout, req.Path)
		}
		return nil, err
	}
	if req.Path != ChatPath {
		return nil, fmt.Errorf("unsupported advice path: %s", req.Path)
	}

	var msg ChatRequest
	switch p := req.Payload.(type) {
	case ChatRequest:
		msg = p
	case *ChatRequest:
		msg = *p
	case string:
		msg.Message = p
	default:
		return nil, fmt.Errorf("unsupported chat payload: %T", req.Payload)
	}

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	body, err := json.Marshal(ChatReply{Text: Reply(msg.Message), Timestamp: now()})
	if err != nil {
		return nil, err
	}
	return &Response{Status: 200, Body: body}, nil
}

// Chat sends a message through f and returns the reply.
func Chat(ctx context.Context, f Fetcher, message string) (*ChatReply, error) {
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("empty chat message")
	}
	resp, err := f.FetchAdvice(ctx, Request{Path: ChatPath, Payload: ChatRequest{Message: message}})
	if err != nil {
		return nil, err
	}
	var reply ChatReply
	if err := resp.Decode(&reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Verify interface compliance
var _ Fetcher = CannedChat{}
