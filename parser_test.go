package zircond

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{
			name:     "too many parameters",
			input:    "PRIVMSG 1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 16 :I am the client\r\n",
			expected: ErrTooManyParams,
		},
		{
			name:     "too small",
			input:    "abc",
			expected: ErrMessageTooShort,
		},
		{
			name:     "too long",
			input:    fmt.Sprint(strings.Repeat("a", MaxMsgLength), "\r\n"),
			expected: ErrMessageTooLong,
		},
		{
			name:     "all whitespace",
			input:    "     \r\n",
			expected: ErrEmptyLine,
		},
		{
			name:     "nick missing parameter",
			input:    "NICK\r\n",
			expected: ErrMissingParams,
		},
		{
			name:     "join missing parameter",
			input:    "JOIN\r\n",
			expected: ErrMissingParams,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			assert.Equal(t, tt.expected, err)
		})
	}
}

func TestParseNick(t *testing.T) {
	actions, err := Parse("NICK alice\r\n")
	assert.NoError(t, err)
	assert.Equal(t, []Action{{Kind: ActionSetNick, Nickname: "alice"}}, actions)
}

func TestParseUser(t *testing.T) {
	actions, err := Parse("USER alice 0 * :Alice A\r\n")
	assert.NoError(t, err)
	assert.Equal(t, []Action{{Kind: ActionSetNames, Username: "alice", Realname: "Alice A", ModeMask: "0", Unused: "*"}}, actions)
}

func TestParseUserDefaultsRealnameToUsername(t *testing.T) {
	actions, err := Parse("USER alice\r\n")
	assert.NoError(t, err)
	assert.Equal(t, "alice", actions[0].Realname)
}

func TestParseJoinSingle(t *testing.T) {
	actions, err := Parse("JOIN #chat\r\n")
	assert.NoError(t, err)
	assert.Equal(t, []Action{{Kind: ActionJoinChannel, Channel: "#chat"}}, actions)
}

func TestParseJoinMultipleWithKeys(t *testing.T) {
	actions, err := Parse("JOIN #a,#b,#c key1,key2\r\n")
	assert.NoError(t, err)
	assert.Equal(t, []Action{
		{Kind: ActionJoinChannel, Channel: "#a", Key: "key1"},
		{Kind: ActionJoinChannel, Channel: "#b", Key: "key2"},
		{Kind: ActionJoinChannel, Channel: "#c"},
	}, actions)
}

func TestParsePartMultipleWithReason(t *testing.T) {
	actions, err := Parse("PART #a,#b :goodbye\r\n")
	assert.NoError(t, err)
	assert.Equal(t, []Action{
		{Kind: ActionPartChannel, Channel: "#a", Reason: "goodbye"},
		{Kind: ActionPartChannel, Channel: "#b", Reason: "goodbye"},
	}, actions)
}

func TestParsePrivMsgToChannel(t *testing.T) {
	actions, err := Parse("PRIVMSG #chat :hello there\r\n")
	assert.NoError(t, err)
	assert.Equal(t, []Action{{Kind: ActionPrivateMessage, Target: "#chat", Text: "hello there"}}, actions)
}

func TestParsePing(t *testing.T) {
	actions, err := Parse("PING xyz\r\n")
	assert.NoError(t, err)
	assert.Equal(t, []Action{{Kind: ActionPong, Challenge: "xyz"}}, actions)
}

func TestParseUnknownCommand(t *testing.T) {
	actions, err := Parse("FROBNICATE foo\r\n")
	assert.NoError(t, err)
	assert.Equal(t, []Action{{Kind: ActionNone}}, actions)
}

func TestParseAcceptsAndDiscardsPrefixAndTags(t *testing.T) {
	actions, err := Parse("@id=1 :ignored PRIVMSG #chat :hi\r\n")
	assert.NoError(t, err)
	assert.Equal(t, []Action{{Kind: ActionPrivateMessage, Target: "#chat", Text: "hi"}}, actions)
}
