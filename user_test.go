package zircond

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUserFresh(t *testing.T) {
	user := NewUser(1, "127.0.0.1", &bytes.Buffer{})
	assert.Equal(t, StateFresh, user.State)
	assert.False(t, user.Registered())
	assert.Equal(t, UnidentifiedNick, user.DisplayNick())
}

func TestUserObserveNickThenNames(t *testing.T) {
	user := NewUser(1, "127.0.0.1", &bytes.Buffer{})

	completed := user.ObserveNick("alice")
	assert.False(t, completed)
	assert.Equal(t, StateHasNick, user.State)

	completed = user.ObserveNames("alice", "Alice A")
	assert.True(t, completed)
	assert.Equal(t, StateRegistered, user.State)
	assert.True(t, user.Registered())
}

func TestUserObserveNamesThenNick(t *testing.T) {
	user := NewUser(1, "127.0.0.1", &bytes.Buffer{})

	completed := user.ObserveNames("alice", "Alice A")
	assert.False(t, completed)
	assert.Equal(t, StateHasNames, user.State)

	completed = user.ObserveNick("alice")
	assert.True(t, completed)
	assert.Equal(t, StateRegistered, user.State)
}

func TestUserObserveNickTwiceDoesNotReRegister(t *testing.T) {
	user := NewUser(1, "127.0.0.1", &bytes.Buffer{})
	user.ObserveNick("alice")
	user.ObserveNames("alice", "Alice A")
	assert.True(t, user.Registered())

	completed := user.ObserveNick("alice2")
	assert.False(t, completed)
	assert.Equal(t, StateRegistered, user.State)
	assert.Equal(t, "alice2", user.Nickname)
}

func TestUserHostmask(t *testing.T) {
	user := NewUser(1, "irc.example.org", &bytes.Buffer{})
	user.ObserveNick("alice")
	user.ObserveNames("aliceuser", "Alice A")
	assert.Equal(t, "alice!aliceuser@irc.example.org", user.Hostmask())
}
