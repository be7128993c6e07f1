package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/obraunsdorf/playbook-creator/src/directors"
	"github.com/obraunsdorf/playbook-creator/src/helpers"
	"github.com/obraunsdorf/playbook-creator/src/pbcerrors"
	"github.com/obraunsdorf/playbook-creator/src/settings"

	"go.uber.org/zap"
)

// Server is the TCP host adapter: one text command per line, one response
// envelope per command.
type Server struct {
	Host              string
	Port              int
	Listener          net.Listener
	AuthEnabled       bool
	ResponseFormat    string
	IdleTimeout       time.Duration
	Version           string
	ActiveConnections map[string]*Connection
	mu                sync.Mutex
	wg                sync.WaitGroup
	running           bool
	session           *directors.SessionManager
	users             *directors.UserService
	logger            *zap.SugaredLogger
}

// Connection represents an active client connection
type Connection struct {
	ID         string
	Conn       net.Conn
	Reader     *bufio.Reader
	Writer     *bufio.Writer
	User       string
	Authorized bool
	LastActive time.Time
	Logger     *zap.SugaredLogger
}

// InitServer builds a server for config on top of an existing session.
// users may be nil when authentication is disabled.
func InitServer(config *settings.Arguments, session *directors.SessionManager, users *directors.UserService, logger *zap.SugaredLogger) (*Server, error) {
	if session == nil {
		return nil, errors.New("server requires a session")
	}
	if config.AuthEnabled && users == nil {
		return nil, errors.New("authentication enabled but no user service given")
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Server{
		Host:              config.Host,
		Port:              config.Port,
		AuthEnabled:       config.AuthEnabled,
		ResponseFormat:    config.ResponseFormat,
		IdleTimeout:       config.IdleTimeout,
		Version:           config.Version,
		ActiveConnections: make(map[string]*Connection),
		session:           session,
		users:             users,
		logger:            logger,
	}, nil
}

// Start begins listening for incoming connections
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("error starting server on %s: %w", addr, err)
	}

	s.mu.Lock()
	s.Listener = listener
	s.running = true
	s.mu.Unlock()

	s.logger.Infow("Playbook server listening", "addr", listener.Addr().String())

	go s.acceptConnections()

	return nil
}

// Addr returns the listening address once started.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Listener == nil {
		return nil
	}
	return s.Listener.Addr()
}

func (s *Server) isRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Stop closes the listener, then every open connection, and waits for the
// connection handlers to return.
func (s *Server) Stop() error {
	s.mu.Lock()
	s.running = false
	listener := s.Listener
	s.mu.Unlock()

	var err error
	if listener != nil {
		err = listener.Close()
	}

	s.mu.Lock()
	for _, conn := range s.ActiveConnections {
		conn.Conn.Close()
	}
	s.mu.Unlock()

	s.wg.Wait()

	s.logger.Info("Server shutdown complete")
	_ = s.logger.Sync()

	return err
}

// acceptConnections handles incoming connection requests
func (s *Server) acceptConnections() {
	for s.isRunning() {
		conn, err := s.Listener.Accept()
		if err != nil {
			if s.isRunning() {
				s.logger.Errorw("Error accepting connection", "error", err)
			}
			continue
		}

		s.logger.Infow("New connection received", "remoteAddr", conn.RemoteAddr().String())

		connection, ok := s.admitConnection(conn)
		if !ok {
			conn.Close()
			continue
		}
		go func() {
			defer s.wg.Done()
			s.serveConnection(connection)
		}()
	}
}

// admitConnection registers conn and counts its handler unless the server is
// stopping. Stop flips running under the same lock, so no handler is added
// once it has started waiting.
func (s *Server) admitConnection(conn net.Conn) (*Connection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil, false
	}
	connection := s.newConnection(conn)
	s.ActiveConnections[connection.ID] = connection
	s.wg.Add(1)
	return connection, true
}

// NewConnection registers conn and returns its session state. Connections
// start authorized when authentication is off.
func (s *Server) NewConnection(conn net.Conn) *Connection {
	connection := s.newConnection(conn)

	s.mu.Lock()
	s.ActiveConnections[connection.ID] = connection
	s.mu.Unlock()

	return connection
}

func (s *Server) newConnection(conn net.Conn) *Connection {
	connID := generateConnectionID()
	return &Connection{
		ID:         connID,
		Conn:       conn,
		Reader:     bufio.NewReader(conn),
		Writer:     bufio.NewWriter(conn),
		Authorized: !s.AuthEnabled,
		LastActive: time.Now(),
		Logger:     s.logger.With("connID", connID),
	}
}

func (s *Server) removeConnection(connection *Connection) {
	connection.Conn.Close()
	s.mu.Lock()
	delete(s.ActiveConnections, connection.ID)
	s.mu.Unlock()
	connection.Logger.Infow("Connection closed")
}

// handleConnection registers conn and serves it.
func (s *Server) handleConnection(conn net.Conn) {
	s.serveConnection(s.NewConnection(conn))
}

// serveConnection serves one client until it disconnects, sends QUIT or
// stays idle longer than IdleTimeout.
func (s *Server) serveConnection(connection *Connection) {
	conn := connection.Conn
	defer s.removeConnection(connection)

	welcome := fmt.Sprintf("Playbook Creator %s ready", s.Version)
	if s.AuthEnabled {
		welcome += ", authenticate with AUTH \"user\" \"password\""
	}
	if err := s.send(connection, successResponse(welcome, nil)); err != nil {
		connection.Logger.Warnw("Error sending welcome", "error", err)
		return
	}

	for {
		if s.IdleTimeout > 0 {
			_ = conn.SetReadDeadline(time.Now().Add(s.IdleTimeout))
		}

		line, err := connection.Reader.ReadString('\n')
		if err != nil {
			var netErr net.Error
			switch {
			case errors.As(err, &netErr) && netErr.Timeout():
				connection.Logger.Infow("Closing idle connection", "idle", s.IdleTimeout)
			case errors.Is(err, io.EOF), errors.Is(err, net.ErrClosed):
			default:
				connection.Logger.Warnw("Error reading from client", "error", err)
			}
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		connection.LastActive = time.Now()
		connection.Logger.Debugw("Received line", "line", line)

		response, quit := s.Dispatch(connection, line)
		if err := s.send(connection, response); err != nil {
			connection.Logger.Warnw("Error sending response", "error", err)
			return
		}
		if quit {
			return
		}
	}
}

// Dispatch runs one command line for connection. quit is true when the
// client asked to disconnect.
func (s *Server) Dispatch(connection *Connection, line string) (response Response, quit bool) {
	args, err := helpers.SplitArgs(line)
	if err != nil {
		return errorResponse(pbcerrors.InvalidInput("%v", err)), false
	}
	if len(args) == 0 {
		return errorResponse(pbcerrors.InvalidInput("empty command")), false
	}

	switch strings.ToUpper(args[0]) {
	case "QUIT":
		return successResponse("Bye", nil), true
	case "PING":
		return successResponse("PONG", nil), false
	case "AUTH":
		return s.authenticate(connection, args[1:]), false
	}

	if !connection.Authorized {
		return errorResponse(pbcerrors.ErrUnauthorized), false
	}

	var (
		message string
		result  any
	)
	if strings.ToUpper(args[0]) == "USER" {
		message, result, err = s.userCommand(connection, args[1:])
	} else {
		message, result, err = CommandDirector(s.session, args)
	}
	if err != nil {
		connection.Logger.Debugw("Command failed", "command", args[0], "error", err)
		return errorResponse(err), false
	}
	return successResponse(message, result), false
}

func (s *Server) authenticate(connection *Connection, params []string) Response {
	if !s.AuthEnabled {
		return successResponse("Authentication not required", nil)
	}
	if len(params) != 2 {
		return errorResponse(pbcerrors.InvalidInput(`usage: AUTH "user" "password"`))
	}

	user, err := s.users.Authenticate(params[0], params[1])
	if err != nil {
		connection.Authorized = false
		return errorResponse(err)
	}

	connection.Authorized = true
	connection.User = user.Username
	connection.Logger = connection.Logger.With("user", user.Username)
	connection.Logger.Infow("Client authenticated")
	return successResponse("Authentication successful", nil)
}

func (s *Server) send(connection *Connection, response Response) error {
	data, err := encodeResponse(s.ResponseFormat, response)
	if err != nil {
		connection.Logger.Errorw("Error encoding response", "error", err)
		data, err = encodeResponse(s.ResponseFormat, errorResponse(pbcerrors.Wrap(pbcerrors.CodeInternal, "failed to encode response", err)))
		if err != nil {
			return err
		}
	}
	if _, err := connection.Writer.Write(data); err != nil {
		return err
	}
	return connection.Writer.Flush()
}

func generateConnectionID() string {
	return "conn_" + helpers.GenerateUUID()
}
