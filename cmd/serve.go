// file: cmd/serve.go
// version: 1.0.0
// guid: a8d8c92e-a71c-496c-b411-2c3d6d6dd787

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jdfalk/iptc-organizer/internal/config"
	"github.com/jdfalk/iptc-organizer/internal/server"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Start the HTTP API. JPEG images are posted to /api/v1/inspect and
/api/v1/apply; the tag registry is served under /api/v1/tags and
Prometheus metrics under /metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := server.NewServer(config.AppConfig)
			if err != nil {
				return fmt.Errorf("failed to create server: %w", err)
			}
			return srv.Start(cmd.Context())
		},
	}

	// Add serve command specific flags
	cmd.Flags().String("host", "127.0.0.1", "host to bind the web server to")
	cmd.Flags().Int("port", 8484, "port to run the web server on")
	cmd.Flags().Int("rate-limit", 120, "requests per minute per client IP (0 disables)")
	viper.BindPFlag("server.host", cmd.Flags().Lookup("host"))
	viper.BindPFlag("server.port", cmd.Flags().Lookup("port"))
	viper.BindPFlag("server.requests_per_minute", cmd.Flags().Lookup("rate-limit"))
	return cmd
}
