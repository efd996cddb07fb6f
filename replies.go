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

import "io"

// send renders msg, writes it to w, logs the outbound line, and
// returns the message to the pool. Every reply builder below funnels
// through this, mirroring the teacher's Conn.Write/write split without
// the write-queue goroutine this design doesn't need (see §5: the
// dispatcher is the sole writer and naturally serializes writes).
func send(w io.Writer, msg *Message) {
	defer recycleMessage(msg)

	buf := msg.RenderBuffer()
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Errorf("irc: error writing to client stream: %s", err)
		return
	}

	log.Infof("irc: [SERVER]->[CLIENT]: %s", msg.String())
}

// ReplyWelcome sends RPL_WELCOME (001).
func ReplyWelcome(w io.Writer, host, nick string) {
	msg := newMessage()
	msg.Source = host
	msg.Code = NumericWelcome
	msg.Target = nick
	msg.Trailing = "Welcome, " + nick + "!"
	send(w, msg)
}

// ReplyYourHost sends RPL_YOURHOST (002).
func ReplyYourHost(w io.Writer, host, nick string) {
	msg := newMessage()
	msg.Source = host
	msg.Code = NumericYourHost
	msg.Target = nick
	msg.Trailing = "Your host is " + host + ", running Zircond."
	send(w, msg)
}

// ReplyMOTD sends the MOTD start/line(s)/end sequence (375/372/376).
func ReplyMOTD(w io.Writer, host, nick string, lines []string) {
	start := newMessage()
	start.Source = host
	start.Code = NumericMOTDStart
	start.Target = nick
	start.Trailing = host + " Message of the day"
	send(w, start)

	for _, line := range lines {
		msg := newMessage()
		msg.Source = host
		msg.Code = NumericMOTD
		msg.Target = nick
		msg.Trailing = "- " + line
		send(w, msg)
	}

	end := newMessage()
	end.Source = host
	end.Code = NumericEndOfMOTD
	end.Target = nick
	end.Trailing = "End of MOTD."
	send(w, end)
}

// ReplyTopic sends RPL_TOPIC (332), only when the channel has one set.
func ReplyTopic(w io.Writer, host, nick, channel, topic string) {
	if topic == "" {
		return
	}
	msg := newMessage()
	msg.Source = host
	msg.Code = NumericTopic
	msg.Target = nick
	msg.Params = append(msg.Params, channel)
	msg.Trailing = topic
	send(w, msg)
}

// ReplyNames sends one RPL_NAMREPLY (353) per member followed by
// RPL_ENDOFNAMES (366). The spec calls for one reply per member rather
// than the teacher's line-batched form, since channel membership here
// is small and unprivileged (no mode prefixes to compute).
func ReplyNames(w io.Writer, host, nick, channel string, members []string) {
	for _, member := range members {
		msg := newMessage()
		msg.Source = host
		msg.Code = NumericNames
		msg.Target = nick
		msg.Params = append(msg.Params, "=", channel)
		msg.Trailing = member
		send(w, msg)
	}

	end := newMessage()
	end.Source = host
	end.Code = NumericEndOfNames
	end.Target = nick
	end.Params = append(end.Params, channel)
	end.Trailing = "End of /NAMES list."
	send(w, end)
}

// SendJoin relays a JOIN echo: ":<nick> JOIN <channel>".
func SendJoin(w io.Writer, nick, channel string) {
	msg := newMessage()
	msg.Source = nick
	msg.Command = CmdJoin
	msg.Params = append(msg.Params, channel)
	send(w, msg)
}

// SendPart relays a PART echo: ":<nick> PART <channel> :<reason>".
func SendPart(w io.Writer, nick, channel, reason string) {
	msg := newMessage()
	msg.Source = nick
	msg.Command = CmdPart
	msg.Params = append(msg.Params, channel)
	msg.Trailing = reason
	send(w, msg)
}

// SendPrivMsg relays a PRIVMSG: ":<srcNick> PRIVMSG <target> :<text>".
func SendPrivMsg(w io.Writer, srcNick, target, text string) {
	msg := newMessage()
	msg.Source = srcNick
	msg.Command = CmdPrivMsg
	msg.Params = append(msg.Params, target)
	msg.Trailing = text
	send(w, msg)
}

// SendPong replies to a client PING: ":<host> PONG <host> :<challenge>".
func SendPong(w io.Writer, host, challenge string) {
	msg := newMessage()
	msg.Source = host
	msg.Command = CmdPong
	msg.Params = append(msg.Params, host)
	msg.Trailing = challenge
	send(w, msg)
}

// ReplyNicknameInUse sends ERR_NICKNAMEINUSE (433).
func ReplyNicknameInUse(w io.Writer, host, currentNick, attemptedNick string) {
	msg := newMessage()
	msg.Source = host
	msg.Code = NumericNicknameInUse
	msg.Target = displayOrStar(currentNick)
	msg.Params = append(msg.Params, attemptedNick)
	msg.Trailing = ErrNicknameInUse.Error()
	send(w, msg)
}

// ReplyNotOnChannel sends ERR_NOTONCHANNEL (442).
func ReplyNotOnChannel(w io.Writer, host, nick, channel string) {
	msg := newMessage()
	msg.Source = host
	msg.Code = NumericNotOnChannel
	msg.Target = nick
	msg.Params = append(msg.Params, channel)
	msg.Trailing = ErrNotOnChannel.Error()
	send(w, msg)
}

// ReplyNoSuchChannel sends ERR_NOSUCHCHANNEL (403).
func ReplyNoSuchChannel(w io.Writer, host, nick, channel string) {
	msg := newMessage()
	msg.Source = host
	msg.Code = NumericNoSuchChannel
	msg.Target = nick
	msg.Params = append(msg.Params, channel)
	msg.Trailing = ErrNoSuchChannel.Error()
	send(w, msg)
}

func displayOrStar(nick string) string {
	if nick == "" {
		return "*"
	}
	return nick
}
