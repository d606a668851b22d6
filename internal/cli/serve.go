package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/shapeboard/pkg/errors"
	"github.com/matzehuels/shapeboard/pkg/server"
	"github.com/matzehuels/shapeboard/pkg/store"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr         string
		storeBackend string
		cacheBackend string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if addr != "" {
				c.Config.Server.Addr = addr
			}
			if storeBackend != "" {
				c.Config.Store.Backend = storeBackend
			}
			if cacheBackend != "" {
				c.Config.Cache.Backend = cacheBackend
			}

			runner, err := c.newRunner(ctx, false)
			if err != nil {
				return err
			}
			defer runner.Close()

			backend, err := c.newStore(ctx)
			if err != nil {
				return err
			}
			st := store.NewCachedStore(backend, runner.Cache, runner.Keyer, c.Logger)
			defer st.Close(context.Background())

			printKeyValue("listen", c.Config.Server.Addr)
			printKeyValue("store", c.Config.Store.Backend)
			printKeyValue("cache", c.Config.Cache.Backend)
			return server.New(runner, st, c.Logger).ListenAndServe(ctx, c.Config.Server.Addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :8080)")
	cmd.Flags().StringVar(&storeBackend, "store", "", "scene store: memory (default), mongo")
	cmd.Flags().StringVar(&cacheBackend, "cache", "", "artifact cache: none, file (default), memory, redis")
	return cmd
}

// newStore opens the configured scene store.
func (c *CLI) newStore(ctx context.Context) (store.Store, error) {
	cfg := c.Config.Store
	switch cfg.Backend {
	case StoreMemory, "":
		return store.NewMemoryStore(), nil
	case StoreMongo:
		c.Logger.Debug("connecting to mongo", "database", cfg.Database)
		st, err := store.NewMongoStore(ctx, store.MongoOptions{URI: cfg.MongoURI, Database: cfg.Database})
		if err != nil {
			return nil, err
		}
		return st, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidOptions,
			"unknown store backend %q (must be one of: memory, mongo)", cfg.Backend)
	}
}
