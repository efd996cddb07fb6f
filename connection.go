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
	"bufio"
	"io"
	"net"
)

// reader owns the read side of one client connection. It never
// touches the registries and never writes to another client's
// socket; its only job is to turn inbound lines into Actions and
// hand them to the dispatcher (see §4.F, §5).
type reader struct {
	clientID int64
	sock     net.Conn
	remAddr  string
	incoming *bufio.Scanner
	actions  chan<- Action
}

func newReader(clientID int64, sock net.Conn, actions chan<- Action) *reader {
	return &reader{
		clientID: clientID,
		sock:     sock,
		remAddr:  sock.RemoteAddr().String(),
		incoming: bufio.NewScanner(sock),
		actions:  actions,
	}
}

// serve runs the per-client read loop until EOF or a socket error,
// then closes the socket. It emits ActionUserConnect before reading
// anything and ActionDisconnect once the loop ends.
func (r *reader) serve() {
	defer r.sock.Close()

	log.Debugf("irc: accepted connection from [%s], assigned client id %d", r.remAddr, r.clientID)

	r.actions <- Action{Kind: ActionUserConnect, ClientID: r.clientID, Stream: r.sock}

	r.readLoop()

	log.Debugf("irc: connection closed for [%s]", r.remAddr)
	r.actions <- Action{Kind: ActionDisconnect, ClientID: r.clientID, Stream: r.sock}
}

func (r *reader) readLoop() {
	for r.incoming.Scan() {
		line := r.incoming.Text()
		log.Infof("irc: [%s]->[SERVER]: %s", r.remAddr, line)

		actions, err := Parse(line)
		if err != nil {
			log.Errorf("irc: error parsing message from [%s]: %s", r.remAddr, err)
			continue
		}

		for _, action := range actions {
			if action.Kind == ActionNone {
				log.Debugf("irc: [%s] sent an unrecognized command", r.remAddr)
				continue
			}
			action.ClientID = r.clientID
			action.Stream = r.sock
			r.actions <- action
		}
	}

	if err := r.incoming.Err(); err != nil && err != io.EOF {
		log.Errorf("irc: read error from [%s]: %s", r.remAddr, err)
	}
}
