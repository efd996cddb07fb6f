/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package zircond

import "io"

// ActionKind tags the variant carried by an Action. The dispatcher
// switches over this exhaustively; there is deliberately no open
// extension point here — new commands get a new Kind, not a registered
// callback, so the set of things the dispatcher can do stays closed
// and auditable in one place.
type ActionKind int

const (
	// ActionNone is produced for a line that parsed but named a command
	// this server doesn't implement. It is logged, never dispatched.
	ActionNone ActionKind = iota
	ActionUserConnect
	ActionSetNick
	ActionSetNames
	ActionJoinChannel
	ActionPartChannel
	ActionPrivateMessage
	ActionPong
	ActionChannelListUsers
	ActionDisconnect
)

// Action is the message passed from a connection reader to the
// dispatcher. One reader produces zero or more Actions per inbound
// line (JOIN/PART with several targets expand to one Action per
// target); the dispatcher consumes them one at a time.
type Action struct {
	Kind     ActionKind
	ClientID int64
	Stream   io.Writer

	Nickname string // SetNick
	Username string // SetNames
	Realname string // SetNames
	ModeMask string // SetNames: USER param[1], expected "0"
	Unused   string // SetNames: USER param[2], expected "*"

	Channel string // JoinChannel, PartChannel, ChannelListUsers
	Key     string // JoinChannel: channel key, accepted but not enforced

	Target  string // PrivateMessage: recipient nick or channel name
	Text    string // PrivateMessage: message body
	Reason  string // PartChannel: part reason, defaults to the caller's nick

	Challenge string // Pong: PING challenge token to echo back
}
