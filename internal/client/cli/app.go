// Package cli implements the blogctl command-line client. It talks to the
// backend HTTP API: account registration, login and basic post management.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/blogkeeper/internal/client/api"
	"github.com/dmitrijs2005/blogkeeper/internal/client/config"
)

type App struct {
	config *config.Config
	client *api.Client
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		client: api.NewClient(c.ServerEndpointAddr, c.RequestTimeout),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

// Run dispatches the subcommand given on the command line.
func (a *App) Run(ctx context.Context, command string) error {
	switch command {
	case "register":
		return a.Register(ctx)
	case "login":
		return a.Login(ctx)
	case "post":
		return a.AddPost(ctx)
	case "list":
		return a.ListPosts(ctx)
	default:
		a.Usage()
		return fmt.Errorf("unknown command: %q", command)
	}
}

func (a *App) Usage() {
	fmt.Fprintln(a.out, "Usage: blogctl [flags] <command>")
	fmt.Fprintln(a.out, "Commands:")
	fmt.Fprintln(a.out, "  register   create a new account")
	fmt.Fprintln(a.out, "  login      obtain an access token")
	fmt.Fprintln(a.out, "  post       publish a new post (uses BLOGKEEPER_TOKEN)")
	fmt.Fprintln(a.out, "  list       list published posts (uses BLOGKEEPER_TOKEN)")
}

// token reads the access token from the environment. The post and list
// commands expect the token obtained via login to be exported as
// BLOGKEEPER_TOKEN.
func (a *App) token() (string, error) {
	token := os.Getenv("BLOGKEEPER_TOKEN")
	if token == "" {
		return "", fmt.Errorf("BLOGKEEPER_TOKEN is not set, run `blogctl login` first")
	}
	return token, nil
}
