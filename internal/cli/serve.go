package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/remotetodo/internal/logging"
	"github.com/idilsaglam/remotetodo/internal/store/jsonstore"
	"github.com/idilsaglam/remotetodo/internal/todoserver"
)

func (a *App) serveCommand() *cobra.Command {
	var addr, data string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the development backend",
		Long: `Run an in-memory todo service speaking the same protocol as the hosted
one. Point the client at it with --api-url http://localhost:8080` + todoserver.BasePath + `.`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.cfg.Server.Addr
			}
			if data == "" {
				data = a.cfg.Server.DataFile
			}

			var snap todoserver.Snapshotter
			if data != "" {
				snap = jsonstore.New(data)
			}
			store, err := todoserver.NewMemoryStore(snap)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}

			fmt.Fprintf(a.out, "serving %s on %s\n", todoserver.BasePath, addr)
			return todoserver.Serve(cmd.Context(), addr, store, logging.Component("server"))
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().StringVar(&data, "data", "", "JSON snapshot file (default: memory only)")
	return cmd
}
