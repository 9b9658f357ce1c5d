package cmd

import (
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ftahirops/gridmix/collector"
	"github.com/ftahirops/gridmix/logger"
)

func newMockAPICmd(g *globalFlags) *cobra.Command {
	var (
		addr      string
		accessLog bool
	)
	c := &cobra.Command{
		Use:   "mock-api",
		Short: "Serve a deterministic mock of the analytics API",
		Long: `Serve a deterministic mock of the analytics API over plain HTTP.

The dashboard defaults to https://localhost:7250/api, so point it at the mock
explicitly:

  gridmix mock-api &
  gridmix --api-url http://localhost:7250/api`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, g)
			if err != nil {
				return err
			}
			root, _, err := logger.Setup(logger.Options{Level: cfg.Log.Level, Console: true, Out: cmd.ErrOrStderr()})
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			var access io.Writer
			if accessLog {
				access = cmd.ErrOrStderr()
			}
			url := mockAPIURL(addr)
			fmt.Fprintf(cmd.OutOrStdout(), "mock API on %s\nconnect with: gridmix --api-url %s\n", url, url)
			return collector.NewMockAPI(time.Now, logger.New(root, "mockapi")).ListenAndServe(ctx, addr, access)
		},
	}
	c.Flags().StringVar(&addr, "addr", ":7250", "listen address")
	c.Flags().BoolVar(&accessLog, "access-log", false, "write an access log to stderr")
	return c
}

// mockAPIURL is the base URL a client on this machine uses to reach a mock
// listening on addr. Wildcard hosts become localhost.
func mockAPIURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://" + addr + collector.MockAPIPrefix
	}
	switch host {
	case "", "0.0.0.0", "::":
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port) + collector.MockAPIPrefix
}
