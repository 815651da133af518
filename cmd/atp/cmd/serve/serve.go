package serve

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"audio-transcript/cmd/atp/cmd/cli"
	"audio-transcript/internal/app"
)

const shutdownTimeout = 30 * time.Second

var (
	host string
	port int
)

func init() {
	Cmd.Flags().StringVar(&host, "host", "", "listen host, overrides server.host")
	Cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port, overrides server.port")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the transcript HTTP API",
	Long: `Run the transcript HTTP API.

- POST /api/v1/transcripts accepts a multipart MP3 upload
- GET /health, /metrics and /swagger/index.html are served alongside`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := cli.Load(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer opts.Logger.Sync()

		if host != "" {
			opts.Settings.Server.Host = host
		}
		if port != 0 {
			opts.Settings.Server.Port = port
		}
		if err := opts.Settings.Validate(); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv, err := app.InitializeServer(ctx, opts)
		if err != nil {
			opts.Logger.Error("failed to initialize server", zap.Error(err))
			return err
		}
		return srv.Run(ctx, shutdownTimeout)
	},
}
