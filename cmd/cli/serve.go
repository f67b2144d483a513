package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/matthewfinger/solitaire-lightweight/server"
	"github.com/matthewfinger/solitaire-lightweight/store"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve games over HTTP and websockets",
	Long: `Serve deals games on POST /new and plays them over /ws?game_id=<id>.
GET /game/<id> returns the current table of a game.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		addr := cfg.Addr
		if cmd.Flags().Changed("addr") {
			addr, _ = cmd.Flags().GetString("addr")
		}

		s := server.NewServer(store.NewInMemoryGameStore(), server.ServerOpts{
			Layout:         cfg.GameLayout(),
			DragMode:       cfg.DragMode,
			Seed:           cfg.Seed,
			SessionIdle:    cfg.SessionIdle,
			AllowedOrigins: cfg.AllowedOrigins,
		})

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return server.Run(ctx, s, addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "address to listen on (default from config, :8000)")
}
