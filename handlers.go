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

// handleUserConnect registers a freshly accepted client. No reply is
// sent; the welcome sequence waits for registration to complete.
func (d *dispatcher) handleUserConnect(action Action) {
	user := NewUser(action.ClientID, d.host, action.Stream)
	d.users.Add(user)
}

// handleSetNick implements the SetNick handler contract (§4.E).
func (d *dispatcher) handleSetNick(action Action) {
	user := d.users.Find(action.ClientID)
	if user == nil {
		return
	}

	if existing := d.users.FindByName(action.Nickname); existing != nil && existing.ClientID != action.ClientID {
		ReplyNicknameInUse(action.Stream, d.host, user.Nickname, action.Nickname)
		return
	}

	oldNick := user.Nickname
	completed := user.ObserveNick(action.Nickname)
	d.users.Rename(user, oldNick)

	if completed {
		d.completeRegistration(user)
	}
}

// handleSetNames implements the UserSetNames handler contract (§4.E).
func (d *dispatcher) handleSetNames(action Action) {
	user := d.users.Find(action.ClientID)
	if user == nil {
		return
	}

	if action.ModeMask != "" && action.ModeMask != "0" {
		log.Debugf("irc: client %d sent a USER mode mask of %q, expected \"0\"", action.ClientID, action.ModeMask)
	}
	if action.Unused != "" && action.Unused != "*" {
		log.Debugf("irc: client %d sent a USER unused field of %q, expected \"*\"", action.ClientID, action.Unused)
	}

	completed := user.ObserveNames(action.Username, action.Realname)
	if completed {
		d.completeRegistration(user)
	}
}

// completeRegistration emits the welcome sequence exactly once, on
// the transition into StateRegistered, then runs autojoin.
func (d *dispatcher) completeRegistration(user *User) {
	ReplyWelcome(user.Stream, d.host, user.Nickname)
	ReplyYourHost(user.Stream, d.host, user.Nickname)
	ReplyMOTD(user.Stream, d.host, user.Nickname, d.motd)

	for _, channel := range d.autojoinChannels {
		d.handleJoinChannel(Action{
			Kind:     ActionJoinChannel,
			ClientID: user.ClientID,
			Stream:   user.Stream,
			Channel:  channel,
		})
	}
}

// handleJoinChannel implements the JoinChannel handler contract (§4.E).
// Channel keys are accepted but never enforced in this spec.
func (d *dispatcher) handleJoinChannel(action Action) {
	user := d.users.Find(action.ClientID)
	if user == nil {
		return
	}

	channel := d.channels.FindOrCreate(action.Channel)
	channel.JoinUser(action.ClientID)

	SendJoin(user.Stream, user.DisplayNick(), channel.Name())
	ReplyTopic(user.Stream, d.host, user.DisplayNick(), channel.Name(), channel.Topic())

	members := make([]string, 0, len(channel.Members()))
	for _, id := range channel.Members() {
		if member := d.users.Find(id); member != nil {
			members = append(members, member.DisplayNick())
		}
	}
	ReplyNames(user.Stream, d.host, user.DisplayNick(), channel.Name(), members)

	for _, id := range channel.Members() {
		if id == action.ClientID {
			continue
		}
		if member := d.users.Find(id); member != nil {
			SendJoin(member.Stream, user.DisplayNick(), channel.Name())
		}
	}
}

// handlePartChannel implements the PartChannel handler contract (§4.E).
func (d *dispatcher) handlePartChannel(action Action) {
	user := d.users.Find(action.ClientID)
	if user == nil {
		return
	}

	channel := d.channels.Find(action.Channel)
	if channel == nil {
		ReplyNoSuchChannel(user.Stream, d.host, user.DisplayNick(), action.Channel)
		return
	}

	if !channel.Contains(action.ClientID) {
		ReplyNotOnChannel(user.Stream, d.host, user.DisplayNick(), action.Channel)
		return
	}

	reason := action.Reason
	if reason == "" {
		reason = user.DisplayNick()
	}

	channel.PartUser(action.ClientID)

	SendPart(user.Stream, user.DisplayNick(), channel.Name(), reason)
	for _, id := range channel.Members() {
		if member := d.users.Find(id); member != nil {
			SendPart(member.Stream, user.DisplayNick(), channel.Name(), reason)
		}
	}
}

// handlePrivateMessage implements the PrivateMessage handler contract
// (§4.E). Unknown targets are silently dropped, per spec.
func (d *dispatcher) handlePrivateMessage(action Action) {
	user := d.users.Find(action.ClientID)
	if user == nil {
		return
	}

	if len(action.Target) > 0 && action.Target[0] == '#' {
		channel := d.channels.Find(action.Target)
		if channel == nil {
			return
		}
		for _, id := range channel.Members() {
			if id == action.ClientID {
				continue
			}
			if member := d.users.Find(id); member != nil {
				SendPrivMsg(member.Stream, user.DisplayNick(), action.Target, action.Text)
			}
		}
		return
	}

	target := d.users.FindByName(action.Target)
	if target == nil {
		return
	}
	SendPrivMsg(target.Stream, user.DisplayNick(), action.Target, action.Text)
}

// handlePong implements the Pong handler contract (§4.E).
func (d *dispatcher) handlePong(action Action) {
	user := d.users.Find(action.ClientID)
	if user == nil {
		return
	}
	SendPong(user.Stream, d.host, action.Challenge)
}

// handleChannelListUsers implements WHO for a single channel (§9 open
// question: implemented for real using NAMREPLY/ENDOFNAMES numerics,
// rather than dropped as out of scope).
func (d *dispatcher) handleChannelListUsers(action Action) {
	user := d.users.Find(action.ClientID)
	if user == nil {
		return
	}

	channel := d.channels.Find(action.Channel)
	if channel == nil {
		ReplyNoSuchChannel(user.Stream, d.host, user.DisplayNick(), action.Channel)
		return
	}

	members := make([]string, 0, len(channel.Members()))
	for _, id := range channel.Members() {
		if member := d.users.Find(id); member != nil {
			members = append(members, member.DisplayNick())
		}
	}
	ReplyNames(user.Stream, d.host, user.DisplayNick(), channel.Name(), members)
}

// handleDisconnect implements the Disconnect handler contract (§4.E).
// Channel membership is removed from every channel to preserve the
// invariant that membership never outlives the owning user (see the
// open question decision on disconnect cleanup).
func (d *dispatcher) handleDisconnect(action Action) {
	d.channels.RemoveMember(action.ClientID)
	d.users.Disconnect(action.ClientID)
}
