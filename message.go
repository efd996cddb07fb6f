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
	"fmt"
	"strings"

	"github.com/SplittyDev/zircond/shared/itempool"
)

// Message is the response builder's output: one wire-format IRC line.
//
//	<message> = [':' <source> <SPACE>] <command> <params> <crlf>
//	<command> = <numeric> <target> | <name>
//	<params>  = (<SPACE> <param>)* [<SPACE> ':' <trailing>]
//
// A numeric reply always carries its target as the first parameter
// after the code; a named command does not.
type Message struct {
	Source   string   // usually the server host, or an originator's nick for relayed events.
	Target   string   // receiving client's nick, for numeric replies only.
	Command  string   // textual command name, e.g. "JOIN". Mutually exclusive with Code.
	Code     uint16   // three-digit numeric reply code. Mutually exclusive with Command.
	Params   []string // ordered non-trailing parameters.
	Trailing string   // last parameter; rendered with a leading ':' when non-empty.
}

// Scrub clears a Message back to its zero value so it can be recycled
// by the message pool. Satisfies itempool.ScrubbableItem.
func (msg *Message) Scrub() {
	msg.Source = ""
	msg.Target = ""
	msg.Command = ""
	msg.Code = 0
	msg.Params = msg.Params[:0]
	msg.Trailing = ""
}

// RenderBuffer returns the IRC-formatted byte buffer version of a message.
func (msg *Message) RenderBuffer() *bytes.Buffer {
	var buffer bytes.Buffer

	buffer.WriteByte(':')
	buffer.WriteString(msg.Source)
	buffer.WriteByte(' ')

	if msg.Code > 0 {
		fmt.Fprintf(&buffer, "%03d", msg.Code)
		buffer.WriteByte(' ')
		buffer.WriteString(msg.Target)
	} else {
		buffer.WriteString(msg.Command)
	}

	if len(msg.Params) > 0 {
		buffer.WriteByte(' ')
		buffer.WriteString(strings.Join(msg.Params, " "))
	}

	if msg.Trailing != "" {
		buffer.WriteByte(' ')
		buffer.WriteByte(':')
		buffer.WriteString(msg.Trailing)
	}

	buffer.WriteString("\r\n")

	return &buffer
}

// Render returns the IRC-formatted string version of a message.
func (msg *Message) Render() string {
	return msg.RenderBuffer().String()
}

// String satisfies fmt.Stringer, trimmed of its trailing CRLF for
// log-friendly output.
func (msg *Message) String() string {
	return strings.TrimRight(msg.Render(), "\r\n")
}

// msgPool holds a reference to the global Message object pool. Mirrors
// the teacher's bespoke MessagePool, rebuilt atop the generic, reusable
// shared/itempool.Pool.
var msgPool = itempool.New[*Message](MessagePoolWarmup, func() *Message {
	return &Message{Params: make([]string, 0, 4)}
})

func init() {
	msgPool.Warmup(MessagePoolWarmup)
}

// newMessage takes a Message from the pool.
func newMessage() *Message {
	return msgPool.New()
}

// recycleMessage returns a Message to the pool.
func recycleMessage(msg *Message) {
	msgPool.Recycle(msg)
}
