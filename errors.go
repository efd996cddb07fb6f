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

// Error is a workaround to allow for immutable error strings
// which satisfy the error interface.
type Error string

func (err Error) Error() string {
	return string(err)
}

func (err Error) String() string {
	return string(err)
}

// Parse errors, returned by Parse. The connection that produced them
// keeps reading; only the offending line is dropped.
const (
	ErrMessageTooShort Error = "line too short to contain a command"
	ErrMessageTooLong  Error = "line exceeds the maximum message length"
	ErrEmptyLine       Error = "line contained only whitespace"
	ErrTooManyParams   Error = "too many parameters"
	ErrMissingParams   Error = "missing required parameters"
)

// Registry errors. UserRegistry and ChannelRegistry lookups report a
// miss by returning nil; nothing in this package returns these values.
const (
	ErrUserNotFound    Error = "no user with that client id"
	ErrChannelNotFound Error = "no channel with that name"
)

// Reply text carried in numeric error responses sent to clients.
const (
	ErrNicknameInUse Error = "Nickname is already in use."
	ErrNotOnChannel  Error = "You're not on that channel"
	ErrNoSuchChannel Error = "No such channel."
)

// ErrServerClosed is returned by Serve/ListenAndServe after a graceful
// shutdown completes.
const ErrServerClosed Error = "irc: server closed"
