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

import (
	"bytes"
	"io"
)

// RegistrationState tracks a user's progress through the NICK/USER
// handshake. The dispatcher is the only thing that ever advances it.
type RegistrationState int

const (
	// StateFresh is a user who has sent neither NICK nor USER.
	StateFresh RegistrationState = iota
	// StateHasNick is a user who has sent NICK but not USER.
	StateHasNick
	// StateHasNames is a user who has sent USER but not NICK.
	StateHasNames
	// StateRegistered is a user who has sent both; the welcome
	// sequence fires exactly once, on the transition into this state.
	StateRegistered
)

// User holds all of the state the dispatcher tracks for one connected
// client. Unlike the teacher's original, this carries no mutex: the
// dispatcher is the sole goroutine that ever reads or mutates a User,
// so synchronization here would just be overhead.
type User struct {
	ClientID int64
	Nickname string
	Username string
	Realname string
	Hostname string

	State RegistrationState

	// Stream is the write side of the client's connection. The reader
	// goroutine holds its own reference for reading only; the
	// dispatcher is the sole writer.
	Stream io.Writer
}

// NewUser returns a freshly accepted, unregistered user.
func NewUser(clientID int64, hostname string, stream io.Writer) *User {
	return &User{
		ClientID: clientID,
		Hostname: hostname,
		State:    StateFresh,
		Stream:   stream,
	}
}

// DisplayNick returns the user's nickname, or the unidentified
// placeholder if NICK hasn't been observed yet.
func (user *User) DisplayNick() string {
	if user.Nickname == "" {
		return UnidentifiedNick
	}
	return user.Nickname
}

// Hostmask returns the full IRC hostmask: <nick>!<username>@<hostname>.
// Fields not yet set render as the unidentified placeholder or empty.
func (user *User) Hostmask() string {
	var buffer bytes.Buffer
	buffer.WriteString(user.DisplayNick())
	buffer.WriteByte('!')
	buffer.WriteString(user.Username)
	buffer.WriteByte('@')
	buffer.WriteString(user.Hostname)
	return buffer.String()
}

// ObserveNick advances the registration state machine after a NICK is
// recorded. Returns true if this transition completed registration.
func (user *User) ObserveNick(nickname string) (completedRegistration bool) {
	user.Nickname = nickname
	switch user.State {
	case StateFresh:
		user.State = StateHasNick
	case StateHasNames:
		user.State = StateRegistered
		return true
	}
	return false
}

// ObserveNames advances the registration state machine after a USER is
// recorded. Returns true if this transition completed registration.
func (user *User) ObserveNames(username, realname string) (completedRegistration bool) {
	user.Username = username
	user.Realname = realname
	switch user.State {
	case StateFresh:
		user.State = StateHasNames
	case StateHasNick:
		user.State = StateRegistered
		return true
	}
	return false
}

// Registered reports whether the NICK/USER handshake has completed.
func (user *User) Registered() bool {
	return user.State == StateRegistered
}
