/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package zircond

// Command constants, an RFC 1459 subset. Parse handles NICK, USER,
// JOIN, PART, PRIVMSG, PING and WHO; QUIT and TOPIC are not handled
// and parse as ActionNone. PONG is only ever sent by the server.
const (
	CmdPrivMsg string = "PRIVMSG"
	CmdPing           = "PING"
	CmdPong           = "PONG"
	CmdJoin           = "JOIN"
	CmdPart           = "PART"
	CmdQuit           = "QUIT"
	CmdNick           = "NICK"
	CmdUser           = "USER"
	CmdWho            = "WHO"
	CmdTopic          = "TOPIC"
)
