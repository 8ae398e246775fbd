package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/blogkeeper/internal/client/cli"
	"github.com/dmitrijs2005/blogkeeper/internal/client/config"
)

// firstCommand returns the first non-flag argument. Flag arguments and their
// values are consumed by config.LoadConfig via flagx filtering.
func firstCommand(args []string) string {
	skip := false
	for _, a := range args {
		if skip {
			skip = false
			continue
		}
		if len(a) > 0 && a[0] == '-' {
			skip = true
			continue
		}
		return a
	}
	return ""
}

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)

	command := firstCommand(os.Args[1:])
	if command == "" {
		app.Usage()
		os.Exit(2)
	}

	if err := app.Run(ctx, command); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
