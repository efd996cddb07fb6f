/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package zircond

// Limiter constants.
const (
	// Messages
	MaxMsgLength  int = 512
	MaxMsgParams      = 15
	MaxTagsLength int = 4096

	// Channels
	MaxChanLength  = 50
	MaxTopicLength = 400

	// Users
	MaxNickLength = 16

	// MessagePoolWarmup is the number of *Message values pre-allocated
	// into the shared message pool at startup.
	MessagePoolWarmup = 1000

	// ActionQueueLength is the default buffer depth of the dispatcher's
	// action channel.
	ActionQueueLength = 256
)

// DefaultListenAddress is used when no listen address is configured.
const DefaultListenAddress = "127.0.0.1:6667"

// DefaultHostname is used when no hostname is configured.
const DefaultHostname = "127.0.0.1"

// DefaultAutojoinChannel is joined automatically on registration when
// no autojoin list is configured.
const DefaultAutojoinChannel = "#chat"

// UnidentifiedNick is rendered in place of a nickname for a user that
// has not completed registration.
const UnidentifiedNick = "<unidentified>"
