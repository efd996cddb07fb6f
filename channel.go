/*
   Copyright (c) 2020, btnmasher
   All rights reserved.

   Redistribution and use in source and binary forms, with or without modification, are permitted provided that
   the following conditions are met:

   1. Redistributions of source code must retain the above copyright notice, this list of conditions and the
      following disclaimer.

   2. Redistributions in binary form must reproduce the above copyright notice, this list of conditions and
      the following disclaimer in the documentation and/or other materials provided with the distribution.

   3. Neither the name of the copyright holder nor the names of its contributors may be used to endorse or
      promote products derived from this software without specific prior written permission.

   THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS" AND ANY EXPRESS OR IMPLIED
   WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A
   PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE FOR
   ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED
   TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION)
   HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING
   NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
   POSSIBILITY OF SUCH DAMAGE.
*/

package zircond

// Channel represents an IRC channel. Membership is stored as client
// ids rather than *User pointers to avoid a reference cycle between
// users, channels, and streams; the dispatcher resolves a member to
// its User record via the UserRegistry at use time.
type Channel struct {
	name    string
	topic   string
	members []int64
}

// NewChannel initializes an empty channel with the given name.
func NewChannel(name string) *Channel {
	return &Channel{name: name}
}

// Name returns the channel's name.
func (channel *Channel) Name() string {
	return channel.name
}

// Topic returns the channel's topic, or "" if none has been set.
func (channel *Channel) Topic() string {
	return channel.topic
}

// SetTopic sets the channel's topic.
func (channel *Channel) SetTopic(new string) {
	channel.topic = new
}

// Members returns the ordered, duplicate-free view of client ids
// currently joined to the channel. The returned slice is owned by the
// caller; mutating it does not affect the channel.
func (channel *Channel) Members() []int64 {
	out := make([]int64, len(channel.members))
	copy(out, channel.members)
	return out
}

// Contains reports whether clientID is currently a member.
func (channel *Channel) Contains(clientID int64) bool {
	for _, id := range channel.members {
		if id == clientID {
			return true
		}
	}
	return false
}

// JoinUser appends clientID to the member list. Idempotent: joining
// an already-present member is a no-op.
func (channel *Channel) JoinUser(clientID int64) {
	if channel.Contains(clientID) {
		return
	}
	channel.members = append(channel.members, clientID)
}

// PartUser removes one occurrence of clientID from the member list.
// No-op if the client isn't a member.
func (channel *Channel) PartUser(clientID int64) {
	for i, id := range channel.members {
		if id == clientID {
			channel.members = append(channel.members[:i], channel.members[i+1:]...)
			return
		}
	}
}

// Empty reports whether the channel currently has no members. Channels
// are not garbage collected when empty (ChannelRegistry has no removal
// path), but this is useful for diagnostics.
func (channel *Channel) Empty() bool {
	return len(channel.members) == 0
}
