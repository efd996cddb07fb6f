/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package zircond

// dispatcher is the single consumer of the action queue. It owns the
// user and channel registries outright; because nothing else ever
// touches them, no locking is required around registry operations
// within the dispatch loop (see the concurrency model: readers never
// touch the registries, they only produce Actions).
type dispatcher struct {
	host             string
	motd             []string
	autojoinChannels []string

	users    *UserRegistry
	channels *ChannelRegistry

	actions chan Action
}

func newDispatcher(host string, motd []string, autojoin []string, queueLen int) *dispatcher {
	return &dispatcher{
		host:             host,
		motd:             motd,
		autojoinChannels: autojoin,
		users:            NewUserRegistry(),
		channels:         NewChannelRegistry(),
		actions:          make(chan Action, queueLen),
	}
}

// run drains the action queue until it's closed (on graceful
// shutdown). This is the only goroutine that ever mutates d.users or
// d.channels.
func (d *dispatcher) run() {
	for action := range d.actions {
		d.dispatch(action)
	}
}

// dispatch applies a single action. Actions from a single reader
// arrive in the order they were produced; actions from different
// readers interleave arbitrarily, but every effect of one action is
// fully applied, in order, before the next action is considered.
func (d *dispatcher) dispatch(action Action) {
	switch action.Kind {
	case ActionUserConnect:
		d.handleUserConnect(action)
	case ActionSetNick:
		d.handleSetNick(action)
	case ActionSetNames:
		d.handleSetNames(action)
	case ActionJoinChannel:
		d.handleJoinChannel(action)
	case ActionPartChannel:
		d.handlePartChannel(action)
	case ActionPrivateMessage:
		d.handlePrivateMessage(action)
	case ActionPong:
		d.handlePong(action)
	case ActionChannelListUsers:
		d.handleChannelListUsers(action)
	case ActionDisconnect:
		d.handleDisconnect(action)
	case ActionNone:
		log.Debugf("irc: client %d sent an unrecognized command", action.ClientID)
	default:
		log.Errorf("irc: dispatcher received an action of unknown kind: %v", action.Kind)
	}
}
