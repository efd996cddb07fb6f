/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package zircond

import "strings"

// Parse takes one line of IRC-formatted text (CRLF already stripped by
// the caller) and produces the Action(s) it describes.
//
//	line    := ['@' tags ' '] [':' prefix ' '] command SP params
//	tags    := tag (';' tag)*
//	params  := (param SP)* [':' trailing]
//
// Tags and a client prefix are accepted per the grammar but discarded;
// this server never honors a client-supplied prefix. JOIN and PART
// expand a comma-separated channel list into one Action per channel,
// which is why Parse returns a slice rather than a single Action.
//
// A malformed or incomplete line returns an error and no actions; the
// caller logs it and continues reading from the connection. An
// unrecognized command yields a single ActionNone, which callers must
// not forward to the dispatcher.
func Parse(line string) ([]Action, error) {
	line = strings.TrimRight(line, "\r\n")

	if len(line) < 4 {
		return nil, ErrMessageTooShort
	}

	if len(line)+len("\r\n") > MaxMsgLength {
		return nil, ErrMessageTooLong
	}

	rest := strings.TrimSpace(line)
	if rest == "" {
		return nil, ErrEmptyLine
	}

	rest, ok := stripSegment(rest, '@')
	if !ok {
		return nil, ErrMessageTooShort
	}

	rest, ok = stripSegment(rest, ':')
	if !ok {
		return nil, ErrMessageTooShort
	}

	if rest == "" {
		return nil, ErrMessageTooShort
	}

	command, rest := splitToken(rest)
	command = strings.ToUpper(command)

	params, trailing, hasTrailing := splitParams(rest)
	if len(params) > MaxMsgParams {
		return nil, ErrTooManyParams
	}

	return buildActions(command, params, trailing, hasTrailing)
}

// stripSegment removes a leading tags ('@...') or prefix (':...')
// segment introduced by marker, returning the remainder of the line.
// If the line doesn't start with marker, it is returned unchanged. A
// segment with no terminating space is malformed.
func stripSegment(line string, marker byte) (string, bool) {
	if line == "" || line[0] != marker {
		return line, true
	}

	idx := strings.IndexByte(line, ' ')
	if idx == -1 {
		return "", false
	}

	return strings.TrimLeft(line[idx+1:], " "), true
}

// splitToken splits off the first whitespace-delimited token.
func splitToken(s string) (token, rest string) {
	idx := strings.IndexByte(s, ' ')
	if idx == -1 {
		return s, ""
	}
	return s[:idx], s[idx+1:]
}

// splitParams splits the parameter portion of a message into regular,
// whitespace-delimited params and an optional trailing parameter
// introduced by ':' that runs to the end of the line.
func splitParams(rest string) (params []string, trailing string, hasTrailing bool) {
	for {
		rest = strings.TrimLeft(rest, " ")
		if rest == "" {
			return
		}

		if rest[0] == ':' {
			trailing = rest[1:]
			hasTrailing = true
			return
		}

		var token string
		token, rest = splitToken(rest)
		params = append(params, token)
	}
}

// buildActions translates a parsed command and its parameters into the
// Action(s) the dispatcher understands.
func buildActions(command string, params []string, trailing string, hasTrailing bool) ([]Action, error) {
	switch command {
	case CmdNick:
		if len(params) < 1 {
			return nil, ErrMissingParams
		}
		return []Action{{Kind: ActionSetNick, Nickname: params[0]}}, nil

	case CmdUser:
		if len(params) < 1 {
			return nil, ErrMissingParams
		}
		action := Action{Kind: ActionSetNames, Username: params[0], Realname: userRealname(params, trailing, hasTrailing)}
		if len(params) >= 2 {
			action.ModeMask = params[1]
		}
		if len(params) >= 3 {
			action.Unused = params[2]
		}
		return []Action{action}, nil

	case CmdJoin:
		return joinActions(params)

	case CmdPart:
		return partActions(params, trailing)

	case CmdPrivMsg:
		if len(params) < 1 {
			return nil, ErrMissingParams
		}
		text := trailing
		if !hasTrailing && len(params) >= 2 {
			text = params[1]
		}
		return []Action{{Kind: ActionPrivateMessage, Target: params[0], Text: text}}, nil

	case CmdPing:
		challenge := trailing
		if !hasTrailing {
			if len(params) < 1 {
				return nil, ErrMissingParams
			}
			challenge = params[0]
		}
		return []Action{{Kind: ActionPong, Challenge: challenge}}, nil

	case CmdWho:
		channel := trailing
		if !hasTrailing {
			if len(params) < 1 {
				return nil, ErrMissingParams
			}
			channel = params[0]
		}
		return []Action{{Kind: ActionChannelListUsers, Channel: channel}}, nil

	default:
		return []Action{{Kind: ActionNone}}, nil
	}
}

// userRealname resolves the realname parameter of a USER command.
// Positions 2 and 3 (mode mask, unused field) are validated softly by
// the dispatcher's USER handler; this only extracts the name.
func userRealname(params []string, trailing string, hasTrailing bool) string {
	if hasTrailing {
		return trailing
	}
	if len(params) >= 4 {
		return params[3]
	}
	return params[0]
}

func joinActions(params []string) ([]Action, error) {
	if len(params) < 1 {
		return nil, ErrMissingParams
	}

	channels := strings.Split(params[0], ",")
	var keys []string
	if len(params) >= 2 {
		keys = strings.Split(params[1], ",")
	}

	actions := make([]Action, 0, len(channels))
	for i, name := range channels {
		if name == "" {
			continue
		}
		action := Action{Kind: ActionJoinChannel, Channel: name}
		if i < len(keys) {
			action.Key = keys[i]
		}
		actions = append(actions, action)
	}

	if len(actions) == 0 {
		return nil, ErrMissingParams
	}

	return actions, nil
}

func partActions(params []string, reason string) ([]Action, error) {
	if len(params) < 1 {
		return nil, ErrMissingParams
	}

	channels := strings.Split(params[0], ",")
	actions := make([]Action, 0, len(channels))
	for _, name := range channels {
		if name == "" {
			continue
		}
		actions = append(actions, Action{Kind: ActionPartChannel, Channel: name, Reason: reason})
	}

	if len(actions) == 0 {
		return nil, ErrMissingParams
	}

	return actions, nil
}
