package httpapi

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/trebuchet-org/treb-interact/internal/domain"
	"github.com/trebuchet-org/treb-interact/internal/domain/config"
	"github.com/trebuchet-org/treb-interact/internal/usecase"
)

//go:embed static/index.html
var staticFS embed.FS

var indexTemplate = template.Must(template.ParseFS(staticFS, "static/index.html"))

const (
	wsWriteTimeout  = 10 * time.Second
	shutdownTimeout = 5 * time.Second
)

// Server serves call forms over HTTP. Each browser tab owns a session holding one form controller.
type Server struct {
	cfg      *config.RuntimeConfig
	forms    *usecase.OpenForm
	accounts usecase.AccountResolver
	log      *slog.Logger

	sessions *sessionStore
	upgrader websocket.Upgrader
	router   *gin.Engine

	// base outlives individual requests so submissions keep running after the response
	base context.Context
}

// NewServer creates the HTTP form server
func NewServer(cfg *config.RuntimeConfig, forms *usecase.OpenForm, accounts usecase.AccountResolver, log *slog.Logger) *Server {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:      cfg,
		forms:    forms,
		accounts: accounts,
		log:      log.With("component", "httpapi"),
		sessions: newSessionStore(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		base: context.Background(),
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestID(), requestLogger(s.log))
	s.routes(router)
	s.router = router
	return s
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes(r *gin.Engine) {
	r.GET("/", s.handleIndex)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.GET("/modules", s.handleModules)
	api.GET("/accounts", s.handleAccounts)
	api.POST("/sessions", s.handleCreateSession)
	api.GET("/sessions/:id", s.withSession(s.handleGetSession))
	api.DELETE("/sessions/:id", s.handleDeleteSession)
	api.POST("/sessions/:id/actions", s.withSession(s.handleAction))
	api.POST("/sessions/:id/submit", s.withSession(s.handleSubmit))
	api.GET("/sessions/:id/status", s.withSession(s.handleStatusStream))
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully
func (s *Server) Serve(ctx context.Context, addr string) error {
	if err := s.forms.Connect(ctx); err != nil {
		return err
	}
	s.base = ctx

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.log.Info("serving call forms", "addr", ln.Addr().String())

	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.sessions.closeAll()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

func (s *Server) handleIndex(c *gin.Context) {
	data := struct {
		Module string
		Kind   string
		Kinds  []domain.InteractionType
	}{
		Module: s.cfg.Module,
		Kind:   string(s.cfg.Kind),
		Kinds:  domain.InteractionTypes(),
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := indexTemplate.Execute(c.Writer, data); err != nil {
		_ = c.Error(err)
	}
}

func (s *Server) handleModules(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"modules": s.forms.Modules()})
}

func (s *Server) handleAccounts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"accounts": s.accounts.Accounts()})
}

type createSessionRequest struct {
	Module string `json:"module"`
	Kind   string `json:"kind"`
}

func (s *Server) handleCreateSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	module := req.Module
	if module == "" {
		module = s.cfg.Module
	}
	kind := s.cfg.Kind
	if req.Kind != "" {
		parsed, ok := domain.ParseInteractionType(req.Kind)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown interaction kind %q", req.Kind)})
			return
		}
		kind = parsed
	}

	form, err := s.forms.Run(c.Request.Context(), usecase.OpenFormParams{Module: module, Kind: kind})
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, domain.ErrModuleNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	sess := newSession(form)
	s.sessions.add(sess)
	s.log.Debug("session created", "session", sess.id, "module", module, "kind", kind)
	c.JSON(http.StatusCreated, newSessionView(sess))
}

func (s *Server) withSession(h func(*gin.Context, *session)) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := s.sessions.get(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		h(c, sess)
	}
}

func (s *Server) handleGetSession(c *gin.Context, sess *session) {
	c.JSON(http.StatusOK, newSessionView(sess))
}

func (s *Server) handleDeleteSession(c *gin.Context) {
	if !s.sessions.remove(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// handleAction applies one form action. Unknown actions leave the form unchanged.
func (s *Server) handleAction(c *gin.Context, sess *session) {
	var req actionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if action, ok := req.toAction(sess.form); ok {
		sess.form.Dispatch(action)
	} else {
		s.log.Debug("ignoring action", "session", sess.id, "type", req.Type)
	}
	c.JSON(http.StatusOK, newSessionView(sess))
}

type submitRequest struct {
	Sender string `json:"sender"`
}

func (s *Server) handleSubmit(c *gin.Context, sess *session) {
	var req submitRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	sender := req.Sender
	if sender == "" {
		sender = s.cfg.Sender
	}

	var account domain.Account
	if sender != "" {
		resolved, err := s.accounts.Resolve(sender)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		account = resolved
	} else if !sess.form.State().Kind.ReadOnly() {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrSenderNotFound.Error()})
		return
	}

	sess.form.Submit(s.base, account)
	c.JSON(http.StatusAccepted, newSessionView(sess))
}

type statusMessage struct {
	Status string `json:"status"`
}

// handleStatusStream pushes every status update of the session over a websocket
func (s *Server) handleStatusStream(c *gin.Context, sess *session) {
	// Subscribe before the handshake completes so no update after it is missed
	updates := sess.subscribe()

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		sess.unsubscribe(updates)
		s.log.Warn("failed to upgrade websocket", "error", err)
		return
	}
	defer conn.Close()
	defer func() {
		// A page that closes its last stream has gone away
		if sess.unsubscribe(updates) == 0 && s.sessions.remove(sess.id) {
			s.log.Debug("dropped session after last stream closed", "session", sess.id)
		}
	}()

	// Drain reads so close frames from the client are processed
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if current := sess.form.Status(); current != "" {
		if err := s.writeStatus(conn, current); err != nil {
			return
		}
	}

	for {
		select {
		case text, ok := <-updates:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "session closed"),
					time.Now().Add(wsWriteTimeout))
				return
			}
			if err := s.writeStatus(conn, text); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					s.log.Debug("websocket write failed", "session", sess.id, "error", err)
				}
				return
			}
		case <-closed:
			return
		}
	}
}

func (s *Server) writeStatus(conn *websocket.Conn, text string) error {
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	return conn.WriteJSON(statusMessage{Status: text})
}
