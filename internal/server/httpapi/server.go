// Package httpapi exposes the authentication boundary over HTTP. Session
// tokens travel in an HttpOnly cookie; protected routes pass through an
// authentication gate that resolves the cookie into a user ID.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/connectly/authsvc/internal/logging"
	"github.com/connectly/authsvc/internal/server/config"
	"github.com/connectly/authsvc/internal/server/services"
)

type Server struct {
	address      string
	logger       logging.Logger
	auth         *services.AuthService
	avatars      *services.AvatarService
	jwtSecret    []byte
	cookieMaxAge time.Duration
	cookieSecure bool
}

func NewServer(cfg *config.Config, l logging.Logger, as *services.AuthService, av *services.AvatarService) (*Server, error) {
	return &Server{
		address:      cfg.EndpointAddrHTTP,
		logger:       l.With("module", "http_server"),
		auth:         as,
		avatars:      av,
		jwtSecret:    []byte(cfg.SecretKey),
		cookieMaxAge: cfg.CookieMaxAge,
		cookieSecure: cfg.CookieSecure,
	}, nil
}

// Handler builds the route table. Signout and the avatar routes sit behind
// the authentication gate; signup and signin are open by nature.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /signup", s.handleSignup)
	mux.HandleFunc("POST /signin", s.handleSignin)
	mux.Handle("POST /signout", s.authenticate(http.HandlerFunc(s.handleSignout)))

	mux.Handle("POST /profile/avatar-upload", s.authenticate(http.HandlerFunc(s.handleAvatarUploadURL)))
	mux.Handle("POST /profile/avatar", s.authenticate(http.HandlerFunc(s.handleSaveAvatar)))
	mux.Handle("GET /profile/avatar", s.authenticate(http.HandlerFunc(s.handleAvatarDownloadURL)))

	return mux
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
