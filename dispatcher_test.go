package zircond

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// linesOf splits a stream's accumulated output into CRLF-terminated
// wire lines, dropping the final empty element.
func linesOf(stream *bytes.Buffer) []string {
	trimmed := strings.TrimSuffix(stream.String(), "\r\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\r\n")
}

// register drives a client through NICK then USER so it reaches
// StateRegistered, returning its stream.
func register(d *dispatcher, clientID int64, nick, username, realname string) *bytes.Buffer {
	stream := &bytes.Buffer{}
	d.handleUserConnect(Action{Kind: ActionUserConnect, ClientID: clientID, Stream: stream})
	d.handleSetNick(Action{ClientID: clientID, Stream: stream, Nickname: nick})
	d.handleSetNames(Action{ClientID: clientID, Stream: stream, Username: username, Realname: realname})
	return stream
}

// Scenario 1 (spec.md §8): NICK alice, USER alice 0 * :Alice A.
func TestRegistrationEmitsWelcomeSequenceOnce(t *testing.T) {
	d := newDispatcher("127.0.0.1", []string{"Zircond is open source!"}, nil, 10)
	stream := register(d, 1, "alice", "alice", "Alice A")

	lines := linesOf(stream)
	assert.Equal(t, []string{
		":127.0.0.1 001 alice :Welcome, alice!",
		":127.0.0.1 002 alice :Your host is 127.0.0.1, running Zircond.",
		":127.0.0.1 375 alice :127.0.0.1 Message of the day",
		":127.0.0.1 372 alice :- Zircond is open source!",
		":127.0.0.1 376 alice :End of MOTD.",
	}, lines)
}

// A repeated USER after registration has completed must not re-emit the
// welcome sequence (invariant 4, spec.md §8).
func TestWelcomeSequenceFiresExactlyOnce(t *testing.T) {
	d := newDispatcher("127.0.0.1", []string{"motd"}, nil, 10)
	stream := register(d, 1, "alice", "alice", "Alice A")
	stream.Reset()

	d.handleSetNames(Action{ClientID: 1, Stream: stream, Username: "alice", Realname: "Alice A"})

	assert.Empty(t, linesOf(stream))
}

// Scenario 2: alice registered, no one in #chat, then JOIN #chat.
func TestJoinEmptyChannel(t *testing.T) {
	d := newDispatcher("127.0.0.1", nil, nil, 10)
	stream := register(d, 1, "alice", "alice", "Alice A")
	stream.Reset()

	d.handleJoinChannel(Action{ClientID: 1, Stream: stream, Channel: "#chat"})

	assert.Equal(t, []string{
		":alice JOIN #chat",
		":127.0.0.1 353 alice = #chat :alice",
		":127.0.0.1 366 alice #chat :End of /NAMES list.",
	}, linesOf(stream))
}

// Scenario 3: alice already in #chat; bob registers and joins.
func TestSecondJoinBroadcasts(t *testing.T) {
	d := newDispatcher("127.0.0.1", nil, nil, 10)
	aliceStream := register(d, 1, "alice", "alice", "Alice A")
	d.handleJoinChannel(Action{ClientID: 1, Stream: aliceStream, Channel: "#chat"})
	aliceStream.Reset()

	bobStream := register(d, 2, "bob", "bob", "Bob B")
	bobStream.Reset()
	d.handleJoinChannel(Action{ClientID: 2, Stream: bobStream, Channel: "#chat"})

	assert.Equal(t, []string{":bob JOIN #chat"}, linesOf(aliceStream))
	assert.Equal(t, []string{
		":bob JOIN #chat",
		":127.0.0.1 353 bob = #chat :alice",
		":127.0.0.1 353 bob = #chat :bob",
		":127.0.0.1 366 bob #chat :End of /NAMES list.",
	}, linesOf(bobStream))
}

// Scenario 4: alice and bob in #chat; alice PRIVMSGs the channel.
func TestPrivateMessageToChannelFansOutExceptSender(t *testing.T) {
	d := newDispatcher("127.0.0.1", nil, nil, 10)
	aliceStream := register(d, 1, "alice", "alice", "Alice A")
	d.handleJoinChannel(Action{ClientID: 1, Stream: aliceStream, Channel: "#chat"})

	bobStream := register(d, 2, "bob", "bob", "Bob B")
	d.handleJoinChannel(Action{ClientID: 2, Stream: bobStream, Channel: "#chat"})

	aliceStream.Reset()
	bobStream.Reset()

	d.handlePrivateMessage(Action{ClientID: 1, Stream: aliceStream, Target: "#chat", Text: "hello"})

	assert.Empty(t, linesOf(aliceStream))
	assert.Equal(t, []string{":alice PRIVMSG #chat :hello"}, linesOf(bobStream))
}

// Scenario 5: alice registered; a second client attempts NICK alice.
func TestNicknameCollisionRejectsAndLeavesNickUnchanged(t *testing.T) {
	d := newDispatcher("127.0.0.1", nil, nil, 10)
	register(d, 1, "alice", "alice", "Alice A")

	secondStream := &bytes.Buffer{}
	d.handleUserConnect(Action{Kind: ActionUserConnect, ClientID: 2, Stream: secondStream})
	d.handleSetNick(Action{ClientID: 2, Stream: secondStream, Nickname: "alice"})

	assert.Equal(t, []string{
		":127.0.0.1 433 * alice :Nickname is already in use.",
	}, linesOf(secondStream))

	second := d.users.Find(2)
	assert.Equal(t, "", second.Nickname)
}

// Scenario 6: PART of a channel that doesn't exist.
func TestPartUnknownChannel(t *testing.T) {
	d := newDispatcher("127.0.0.1", nil, nil, 10)
	stream := register(d, 1, "alice", "alice", "Alice A")
	stream.Reset()

	d.handlePartChannel(Action{ClientID: 1, Stream: stream, Channel: "#nope"})

	assert.Equal(t, []string{
		":127.0.0.1 403 alice #nope :No such channel.",
	}, linesOf(stream))
}

// Scenario 7: PING xyz.
func TestPong(t *testing.T) {
	d := newDispatcher("127.0.0.1", nil, nil, 10)
	stream := register(d, 1, "alice", "alice", "Alice A")
	stream.Reset()

	d.handlePong(Action{ClientID: 1, Stream: stream, Challenge: "xyz"})

	assert.Equal(t, []string{":127.0.0.1 PONG 127.0.0.1 :xyz"}, linesOf(stream))
}

// Round-trip note from spec.md §8: a second PART of the same channel
// after a successful first PART yields ERR_NOTONCHANNEL.
func TestPartTwiceYieldsNotOnChannelSecondTime(t *testing.T) {
	d := newDispatcher("127.0.0.1", nil, nil, 10)
	stream := register(d, 1, "alice", "alice", "Alice A")
	d.handleJoinChannel(Action{ClientID: 1, Stream: stream, Channel: "#x"})
	stream.Reset()

	d.handlePartChannel(Action{ClientID: 1, Stream: stream, Channel: "#x"})
	firstPart := linesOf(stream)
	stream.Reset()

	d.handlePartChannel(Action{ClientID: 1, Stream: stream, Channel: "#x"})
	secondPart := linesOf(stream)

	assert.Equal(t, []string{":alice PART #x :alice"}, firstPart)
	assert.Equal(t, []string{":127.0.0.1 442 alice #x :You're not on that channel"}, secondPart)
}

// Disconnect must remove channel membership (Open Question 3).
func TestDisconnectRemovesChannelMembership(t *testing.T) {
	d := newDispatcher("127.0.0.1", nil, nil, 10)
	aliceStream := register(d, 1, "alice", "alice", "Alice A")
	d.handleJoinChannel(Action{ClientID: 1, Stream: aliceStream, Channel: "#chat"})

	d.handleDisconnect(Action{ClientID: 1})

	channel := d.channels.Find("#chat")
	assert.False(t, channel.Contains(1))
	assert.Nil(t, d.users.Find(1))
}
