package zircond

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageRender(t *testing.T) {
	tests := []struct {
		name     string
		msg      Message
		expected string
	}{
		{
			name: "named command",
			msg: Message{
				Source:   "alice",
				Command:  CmdPrivMsg,
				Params:   []string{"#chat"},
				Trailing: "hello",
			},
			expected: ":alice PRIVMSG #chat :hello\r\n",
		},
		{
			name: "numeric with target and trailing",
			msg: Message{
				Source:   "127.0.0.1",
				Target:   "alice",
				Code:     NumericWelcome,
				Trailing: "Welcome, alice!",
			},
			expected: ":127.0.0.1 001 alice :Welcome, alice!\r\n",
		},
		{
			name: "numeric with extra params before trailing",
			msg: Message{
				Source:   "127.0.0.1",
				Target:   "alice",
				Code:     NumericNames,
				Params:   []string{"=", "#chat"},
				Trailing: "alice",
			},
			expected: ":127.0.0.1 353 alice = #chat :alice\r\n",
		},
		{
			name: "no trailing parameter",
			msg: Message{
				Source:  "alice",
				Command: CmdJoin,
				Params:  []string{"#chat"},
			},
			expected: ":alice JOIN #chat\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.msg.Render())
		})
	}
}

func TestMessageString(t *testing.T) {
	msg := Message{Source: "alice", Command: CmdJoin, Params: []string{"#chat"}}
	assert.Equal(t, ":alice JOIN #chat", msg.String())
}

func TestMessageScrub(t *testing.T) {
	msg := &Message{Source: "alice", Command: CmdJoin, Params: []string{"#chat"}, Trailing: "x"}
	msg.Scrub()
	assert.Equal(t, &Message{Params: []string{}}, msg)
}

func TestMessagePoolRoundTrip(t *testing.T) {
	msg := newMessage()
	msg.Source = "alice"
	msg.Command = CmdJoin
	msg.Params = append(msg.Params, "#chat")
	recycleMessage(msg)

	again := newMessage()
	assert.Empty(t, again.Source)
	assert.Empty(t, again.Command)
}
