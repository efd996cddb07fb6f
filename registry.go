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

// UserRegistry maps client ids to user records. It is owned
// exclusively by the dispatcher; no synchronization is needed here
// because the dispatcher is the only goroutine that ever touches it.
type UserRegistry struct {
	byID   map[int64]*User
	byNick map[string]*User
}

// NewUserRegistry returns an empty user registry.
func NewUserRegistry() *UserRegistry {
	return &UserRegistry{
		byID:   make(map[int64]*User),
		byNick: make(map[string]*User),
	}
}

// Add registers a newly accepted user.
func (reg *UserRegistry) Add(user *User) {
	reg.byID[user.ClientID] = user
}

// Find returns the user with the given client id, or nil.
func (reg *UserRegistry) Find(clientID int64) *User {
	return reg.byID[clientID]
}

// FindByName returns the user with the given nickname, or nil.
// Comparison is case-sensitive (see the design note on nickname
// casefolding).
func (reg *UserRegistry) FindByName(nick string) *User {
	return reg.byNick[nick]
}

// Rename updates the nickname index for a user that has just had its
// Nickname field changed. Call after User.ObserveNick.
func (reg *UserRegistry) Rename(user *User, oldNick string) {
	if oldNick != "" {
		delete(reg.byNick, oldNick)
	}
	reg.byNick[user.Nickname] = user
}

// Disconnect removes a user from the registry. Reports whether the
// user was present.
func (reg *UserRegistry) Disconnect(clientID int64) bool {
	user, ok := reg.byID[clientID]
	if !ok {
		return false
	}
	delete(reg.byID, clientID)
	if user.Nickname != "" {
		delete(reg.byNick, user.Nickname)
	}
	return true
}

// ChannelRegistry maps channel names to channel records. Owned
// exclusively by the dispatcher, like UserRegistry.
type ChannelRegistry struct {
	byName map[string]*Channel
}

// NewChannelRegistry returns an empty channel registry.
func NewChannelRegistry() *ChannelRegistry {
	return &ChannelRegistry{byName: make(map[string]*Channel)}
}

// Add registers a newly created channel.
func (reg *ChannelRegistry) Add(channel *Channel) {
	reg.byName[channel.Name()] = channel
}

// Find returns the channel with the given name, or nil.
func (reg *ChannelRegistry) Find(name string) *Channel {
	return reg.byName[name]
}

// FindOrCreate returns the channel with the given name, creating and
// registering an empty one if it doesn't yet exist.
func (reg *ChannelRegistry) FindOrCreate(name string) *Channel {
	channel, ok := reg.byName[name]
	if ok {
		return channel
	}
	channel = NewChannel(name)
	reg.Add(channel)
	return channel
}

// RemoveMember removes clientID from every channel's member list. Used
// on disconnect to preserve the invariant that channel membership
// never outlives the owning user.
func (reg *ChannelRegistry) RemoveMember(clientID int64) {
	for _, channel := range reg.byName {
		channel.PartUser(clientID)
	}
}
