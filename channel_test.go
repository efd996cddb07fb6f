package zircond

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChannelJoinIsIdempotent(t *testing.T) {
	channel := NewChannel("#chat")
	channel.JoinUser(1)
	channel.JoinUser(2)
	channel.JoinUser(1)

	assert.Equal(t, []int64{1, 2}, channel.Members())
}

func TestChannelPartRemovesOneOccurrence(t *testing.T) {
	channel := NewChannel("#chat")
	channel.JoinUser(1)
	channel.JoinUser(2)
	channel.PartUser(1)

	assert.Equal(t, []int64{2}, channel.Members())
	assert.False(t, channel.Contains(1))
}

func TestChannelPartAbsentMemberIsNoop(t *testing.T) {
	channel := NewChannel("#chat")
	channel.JoinUser(1)
	channel.PartUser(99)

	assert.Equal(t, []int64{1}, channel.Members())
}

func TestChannelEmpty(t *testing.T) {
	channel := NewChannel("#chat")
	assert.True(t, channel.Empty())
	channel.JoinUser(1)
	assert.False(t, channel.Empty())
	channel.PartUser(1)
	assert.True(t, channel.Empty())
}

func TestChannelTopic(t *testing.T) {
	channel := NewChannel("#chat")
	assert.Equal(t, "", channel.Topic())
	channel.SetTopic("welcome")
	assert.Equal(t, "welcome", channel.Topic())
}

func TestChannelMembersIsACopy(t *testing.T) {
	channel := NewChannel("#chat")
	channel.JoinUser(1)

	members := channel.Members()
	members[0] = 99

	assert.True(t, channel.Contains(1))
}
