package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/catalogo-api/pkg/jwt"
)

// tokenCommand emite un JWT de desarrollo con el secreto de la configuración (CATALOG_JWT_SECRET).
func (a *app) tokenCommand() *cobra.Command {
	var user, role, secret string
	var minutes int
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emitir un token JWT de desarrollo",
		RunE: func(cmd *cobra.Command, args []string) error {
			if secret == "" {
				secret = a.cfg.JWT.Secret
			}
			if secret == "" {
				return errors.New("token: falta el secreto (--secret o CATALOG_JWT_SECRET)")
			}
			if minutes <= 0 {
				minutes = a.cfg.JWT.Expiration
			}
			tok, err := jwt.Generate(secret, user, role, a.cfg.JWT.Issuer, minutes)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&user, "user", "dev", "user id")
	cmd.Flags().StringVar(&role, "role", jwt.RoleAdmin, "admin | editor | viewer")
	cmd.Flags().StringVar(&secret, "secret", "", "secreto HS256 (por defecto JWT_SECRET)")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "minutos de validez")
	return cmd
}
