// Package cli implements the interactive authctl client. It talks to the
// authentication server over HTTP and keeps the session cookie in an
// in-process cookie jar for the lifetime of the program.
package cli

import (
	"bufio"
	"context"
	"net/http"
	"net/http/cookiejar"
	"os"

	"github.com/connectly/authsvc/internal/client/config"
)

type App struct {
	config   *config.Config
	reader   *bufio.Reader
	client   *http.Client
	loggedIn bool
}

func NewApp(c *config.Config) (*App, error) {

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	return &App{
		config: c,
		reader: bufio.NewReader(os.Stdin),
		client: &http.Client{
			Jar:     jar,
			Timeout: c.RequestTimeout,
		},
	}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Main()
}

func (a *App) isLoggedIn() bool {
	return a.loggedIn
}
