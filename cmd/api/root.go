package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd arma el CLI. Sin subcomando corre serve.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lost-found-pets",
		Short: "Estado local de mascotas perdidas y encontradas",
		Long: `lost-found-pets guarda los reportes, las mascotas propias, el perfil y los
filtros de búsqueda en un storage local (SQLite por defecto, Postgres con DB_DSN)
y los expone por HTTP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("config", "", "archivo de configuración (default ./lostfound.yaml o ~/lostfound.yaml)")

	serve := NewServeCmd()
	cmd.AddCommand(serve)
	cmd.AddCommand(NewVisibleCmd())

	// sin subcomando = serve
	cmd.RunE = serve.RunE

	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
