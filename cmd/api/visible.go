package main

import (
	"encoding/json"

	"lost-found-pets/internal/domain/posts"

	"github.com/spf13/cobra"
)

func NewVisibleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "visible",
		Short: "Imprime el listado visible con los filtros guardados",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			// logs a stderr para no mezclar con el JSON
			cfg.LogLevel = "warn"
			log := newLogger(cfg, cmd.ErrOrStderr())
			defer syncLogger(log)

			st, closeStorage, err := openStore(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer func() { _ = closeStorage() }()

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(posts.WithDistances(st.VisiblePosts(), st.UserLocation()))
		},
	}
	return cmd
}
