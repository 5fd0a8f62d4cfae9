package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/skilltrail/internal/app"
	"github.com/abhisek/skilltrail/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

// runServe opens the store, builds the service graph, and serves the
// HTTP API until interrupted.
func runServe(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}

	cfg := server.ConfigFromEnv()
	a, err := app.New(dbPath, cfg.Mode)
	if err != nil {
		return err
	}
	defer a.Close()

	a.Log.Info("store ready", "path", dbPath)

	srv := server.New(cfg, a.Log, server.Deps{
		Progress:  a.Progress,
		Quiz:      a.Quiz,
		Predict:   a.Predict,
		Recommend: a.Recommend,
		Sessions:  a.Store.SessionRepo(),
	})
	return srv.Run(cmd.Context())
}
