package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
)

func (a *app) catalogsCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "catalogs", Short: "Catálogos"}

	var productID string
	list := &cobra.Command{
		Use:   "list",
		Short: "Listar catálogos con sus productos",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.open(ctx); err != nil {
				return err
			}
			var (
				out []*dto.CatalogResponse
				err error
			)
			if productID != "" {
				out, err = a.catalogs.GetCatalogsByProductID(ctx, productID)
			} else {
				out, err = a.catalogs.GetCatalogs(ctx)
			}
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	list.Flags().StringVar(&productID, "product", "", "solo catálogos que contienen este producto")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Obtener catálogo por ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd.Context()); err != nil {
				return err
			}
			out, err := a.catalogs.GetCatalogByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}

	var in dto.CatalogRequest
	create := &cobra.Command{
		Use:   "create",
		Short: "Crear catálogo",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd.Context()); err != nil {
				return err
			}
			res, err := a.catalogs.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			if !res.OK() {
				return reject(cmd, res.Violations)
			}
			return printJSON(cmd.OutOrStdout(), dto.CreatedResponse{ID: res.Value})
		},
	}
	create.Flags().StringVar(&in.Title, "title", "", "título")
	create.Flags().StringSliceVar(&in.Products, "product", nil, "ID de producto (repetible o separado por comas)")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Eliminar catálogo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd.Context()); err != nil {
				return err
			}
			res, err := a.catalogs.Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !res.OK() {
				return reject(cmd, res.Violations)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "deleted")
			return nil
		},
	}

	cmd.AddCommand(list, get, create, del)
	return cmd
}
