// Package cli expone los casos de uso del catálogo como comandos Cobra (catalogctl).
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/storage"
	"github.com/jhoicas/catalogo-api/pkg/config"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// ErrRejected se devuelve cuando una escritura tuvo violaciones (ya impresas en stderr).
var ErrRejected = errors.New("operación rechazada")

// Options dependencias del CLI. Si Stores viene inyectado (tests) no se abre ni se cierra
// almacenamiento; Open reemplaza a storage.Open.
type Options struct {
	Stores *storage.Stores
	Open   func(ctx context.Context, cfg *config.Config) (*storage.Stores, error)
}

type app struct {
	opts     Options
	v        *viper.Viper
	cfg      *config.Config
	log      *logger.Logger
	stores   *storage.Stores
	owned    bool
	products *usecase.ProductUseCase
	catalogs *usecase.CatalogUseCase
}

// NewRootCommand arma el árbol de comandos.
func NewRootCommand(opts Options) *cobra.Command {
	a := &app{opts: opts, v: viper.New()}

	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Administración del catálogo de productos",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromViper(a.v)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logger.New(logger.Config{Env: "development", Level: cfg.Log.Level, Out: cmd.ErrOrStderr()})
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.String("storage", config.StorageSQLite, "backend: memory|postgres|mongo|sqlite")
	flags.String("sqlite-dsn", "catalogo.db", "archivo SQLite o :memory:")
	flags.String("log-level", "warn", "nivel de log")

	_ = a.v.BindPFlag("STORAGE_DRIVER", flags.Lookup("storage"))
	_ = a.v.BindPFlag("SQLITE_DSN", flags.Lookup("sqlite-dsn"))
	_ = a.v.BindPFlag("LOG_LEVEL", flags.Lookup("log-level"))
	a.v.SetDefault("STORAGE_DRIVER", config.StorageSQLite)
	a.v.SetDefault("SQLITE_DSN", "catalogo.db")
	a.v.SetDefault("LOG_LEVEL", "warn")
	a.v.SetEnvPrefix("CATALOG")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(a.productsCommand(), a.catalogsCommand(), a.tokenCommand())
	closeAfterRun(root, a.close)
	return root
}

// closeAfterRun envuelve cada RunE para cerrar el almacenamiento al terminar, también
// cuando el comando falla (cobra omite PersistentPostRunE en ese caso).
func closeAfterRun(cmd *cobra.Command, closeFn func() error) {
	for _, sub := range cmd.Commands() {
		closeAfterRun(sub, closeFn)
	}
	run := cmd.RunE
	if run == nil {
		return
	}
	cmd.RunE = func(c *cobra.Command, args []string) error {
		err := run(c, args)
		if cerr := closeFn(); err == nil {
			err = cerr
		}
		return err
	}
}

// Execute corre el CLI con argumentos de os.Args.
func Execute() error {
	return NewRootCommand(Options{}).Execute()
}

// open abre el almacenamiento la primera vez que un comando lo necesita.
func (a *app) open(ctx context.Context) error {
	if a.products != nil {
		return nil
	}
	stores := a.opts.Stores
	if stores == nil {
		open := a.opts.Open
		if open == nil {
			open = storage.Open
		}
		var err error
		stores, err = open(ctx, a.cfg)
		if err != nil {
			return err
		}
		a.owned = true
	}
	a.stores = stores
	a.products = usecase.NewProductUseCase(stores.Products, a.log)
	a.catalogs = usecase.NewCatalogUseCase(stores.Catalogs, stores.Products, usecase.WithLogger(a.log))
	return nil
}

// close libera el almacenamiento abierto por el propio CLI.
func (a *app) close() error {
	if !a.owned || a.stores == nil {
		return nil
	}
	stores := a.stores
	a.stores, a.owned, a.products, a.catalogs = nil, false, nil, nil
	return stores.Close()
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// reject imprime una violación por línea en stderr.
func reject(cmd *cobra.Command, violations []string) error {
	for _, v := range violations {
		fmt.Fprintln(cmd.ErrOrStderr(), v)
	}
	return ErrRejected
}
