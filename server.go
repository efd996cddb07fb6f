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
	"context"
	"fmt"
	"net"
	"sync/atomic"
	"time"

	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc"

	"github.com/SplittyDev/zircond/shared/concurrentmap"
	"github.com/SplittyDev/zircond/shared/logfmt"
)

// KeepAliveTimeout sets the TCP keep-alive period on accepted client
// connections.
const KeepAliveTimeout time.Duration = 2 * time.Minute

var log *logrus.Logger

// Server holds the configuration and listener state of an IRC server
// instance. Unlike the teacher's original, Server carries no mutex and
// no direct reference to the active connection/user/channel maps:
// that state belongs to the dispatcher, which is the sole goroutine
// that ever touches it.
type Server struct {
	hostname         string
	listenAddr       string
	autojoinChannels []string
	motd             []string

	logger           *logrus.Logger
	logLevel         logrus.Level
	defaultFormatter bool
	styledFormatter  bool

	shutdownCtx     context.Context
	shutdownTimeout time.Duration

	nextClientID int64
	conns        concurrentmap.ConcurrentMap[string, net.Conn]
	dispatcher   *dispatcher
	listener     net.Listener
}

// Option configures a Server at construction time.
type Option func(*Server) error

// WithHostname sets the server name advertised in replies.
func WithHostname(host string) Option {
	return func(s *Server) error {
		s.hostname = host
		return nil
	}
}

// WithListenAddress sets the TCP address the server binds to.
func WithListenAddress(addr string) Option {
	return func(s *Server) error {
		s.listenAddr = addr
		return nil
	}
}

// WithAutojoinChannels sets the channels a newly registered client is
// automatically joined to, in order.
func WithAutojoinChannels(channels ...string) Option {
	return func(s *Server) error {
		s.autojoinChannels = channels
		return nil
	}
}

// WithMOTD sets the static lines sent between RPL_MOTDSTART and
// RPL_ENDOFMOTD. Supplements the spec's welcome sequence with the
// original source's server-version/source-link MOTD content, rendered
// statically rather than fetched live (see the Non-goals on external
// MOTD integrations).
func WithMOTD(lines ...string) Option {
	return func(s *Server) error {
		s.motd = lines
		return nil
	}
}

// WithLogger sets the logrus.Logger instance the server logs through.
func WithLogger(logger *logrus.Logger) Option {
	return func(s *Server) error {
		s.logger = logger
		return nil
	}
}

// WithLogLevel sets the minimum logged level.
func WithLogLevel(level logrus.Level) Option {
	return func(s *Server) error {
		s.logLevel = level
		return nil
	}
}

// WithDefaultLogFormatter configures nested-field log output via
// nested-logrus-formatter.
func WithDefaultLogFormatter() Option {
	return func(s *Server) error {
		s.defaultFormatter = true
		return nil
	}
}

// WithStyledLogFormatter configures colorized, nested-field log output
// via the bundled logfmt formatter instead of the plain default.
func WithStyledLogFormatter() Option {
	return func(s *Server) error {
		s.styledFormatter = true
		return nil
	}
}

// WithGracefulShutdown arranges for Serve to stop accepting new
// connections and drain existing ones when ctx is canceled, allowing
// up to timeout for in-flight connections to close on their own.
func WithGracefulShutdown(ctx context.Context, timeout time.Duration) Option {
	return func(s *Server) error {
		s.shutdownCtx = ctx
		s.shutdownTimeout = timeout
		return nil
	}
}

var defaultMOTD = []string{
	"zircond - a small IRC daemon",
	"https://github.com/SplittyDev/zircond",
}

// NewServer constructs a Server from the given options, applying
// defaults for anything left unset.
func NewServer(opts ...Option) (*Server, error) {
	server := &Server{
		hostname:         DefaultHostname,
		listenAddr:       DefaultListenAddress,
		autojoinChannels: []string{DefaultAutojoinChannel},
		motd:             defaultMOTD,
		logLevel:         logrus.InfoLevel,
		conns:            concurrentmap.New[string, net.Conn](),
	}

	for _, opt := range opts {
		if err := opt(server); err != nil {
			return nil, fmt.Errorf("irc: invalid server option: %w", err)
		}
	}

	if server.logger == nil {
		server.logger = logrus.New()
	}
	server.logger.SetLevel(server.logLevel)

	switch {
	case server.styledFormatter:
		server.logger.SetFormatter(logfmt.New(logfmt.WithTimestampFormat(time.RFC3339)))
	case server.defaultFormatter:
		server.logger.SetFormatter(&nested.Formatter{TimestampFormat: time.RFC3339, HideKeys: true})
	}

	log = server.logger
	server.dispatcher = newDispatcher(server.hostname, server.motd, server.autojoinChannels, ActionQueueLength)

	return server, nil
}

// ListenAndServe binds to the configured address and serves until the
// listener closes or a graceful shutdown completes.
func (server *Server) ListenAndServe() error {
	listen, err := net.Listen("tcp4", server.listenAddr)
	if err != nil {
		return err
	}
	return server.Serve(tcpKeepAliveListener{listen.(*net.TCPListener)})
}

// Serve accepts connections from listen, handing each to its own
// reader goroutine along with a freshly assigned client id (§4.H).
func (server *Server) Serve(listen net.Listener) error {
	server.listener = listen
	defer listen.Close()

	log.Infof("irc: starting IRC server listener at local address [%s]", listen.Addr())

	wg := conc.NewWaitGroup()
	wg.Go(server.dispatcher.run)
	readers := conc.NewWaitGroup()

	if server.shutdownCtx != nil {
		go server.awaitShutdown()
	}

	var tempDelay time.Duration

	for {
		sock, err := listen.Accept()
		if err != nil {
			if server.shutdownCtx != nil && server.shutdownCtx.Err() != nil {
				break
			}

			if neterr, ok := err.(net.Error); ok && neterr.Temporary() {
				if tempDelay == 0 {
					tempDelay = 5 * time.Millisecond
				} else {
					tempDelay *= 2
				}
				if max := 1 * time.Second; tempDelay > max {
					tempDelay = max
				}
				log.Errorf("irc: error accepting connection: %v; retrying in %vms", err, tempDelay.Nanoseconds()/int64(time.Millisecond))
				time.Sleep(tempDelay)
				continue
			}

			readers.Wait()
			close(server.dispatcher.actions)
			wg.Wait()
			return err
		}

		tempDelay = 0

		clientID := atomic.AddInt64(&server.nextClientID, 1)
		remAddr := sock.RemoteAddr().String()
		server.conns.Set(remAddr, sock)

		clientReader := newReader(clientID, sock, server.dispatcher.actions)
		readers.Go(func() {
			defer server.conns.Delete(remAddr)
			clientReader.serve()
		})
	}

	readers.Wait()
	close(server.dispatcher.actions)
	wg.Wait()
	return ErrServerClosed
}

// awaitShutdown closes the listener and forces deadlines on every
// tracked connection once the shutdown context is canceled, bounding
// how long in-flight reads can block the shutdown.
func (server *Server) awaitShutdown() {
	<-server.shutdownCtx.Done()
	log.Info("irc: shutdown requested, closing listener")
	server.listener.Close()

	deadline := time.Now().Add(server.shutdownTimeout)
	server.conns.ForEach(func(_ string, conn net.Conn) error {
		conn.SetDeadline(deadline)
		return nil
	})
}

// tcpKeepAliveListener sets TCP keep-alive timeouts on accepted
// connections so dead sockets eventually go away.
type tcpKeepAliveListener struct {
	*net.TCPListener
}

func (listen tcpKeepAliveListener) Accept() (net.Conn, error) {
	conn, err := listen.AcceptTCP()
	if err != nil {
		return nil, err
	}
	conn.SetKeepAlive(true)
	conn.SetKeepAlivePeriod(KeepAliveTimeout)
	return conn, nil
}
