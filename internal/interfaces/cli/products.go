package cli

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
)

func (a *app) productsCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "products", Short: "Productos"}

	// list
	var category, maxPrice string
	list := &cobra.Command{
		Use:   "list",
		Short: "Listar productos (opcionalmente por categoría o precio máximo)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.open(ctx); err != nil {
				return err
			}
			var (
				out []dto.ProductView
				err error
			)
			switch {
			case category != "":
				out, err = a.products.GetByCategory(ctx, category)
			case maxPrice != "":
				limit, perr := decimal.NewFromString(maxPrice)
				if perr != nil {
					return fmt.Errorf("--max-price inválido: %w", perr)
				}
				out, err = a.products.GetByPriceLimit(ctx, limit)
			default:
				out, err = a.products.GetAll(ctx)
			}
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	list.Flags().StringVar(&category, "category", "", "Generic | Electric | Fresh")
	list.Flags().StringVar(&maxPrice, "max-price", "", "precio máximo (inclusivo)")

	// get
	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Obtener producto por ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd.Context()); err != nil {
				return err
			}
			out, err := a.products.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}

	// create
	var (
		in       dto.CreateProductRequest
		price    string
		props    []string
		inactive bool
	)
	create := &cobra.Command{
		Use:   "create",
		Short: "Crear producto",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd.Context()); err != nil {
				return err
			}
			p, err := decimal.NewFromString(price)
			if err != nil {
				return fmt.Errorf("--price inválido: %w", err)
			}
			in.Price = p
			in.UniqueProperties, err = parseProps(props)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("inactive") {
				active := !inactive
				in.IsActive = &active
			}
			res, err := a.products.Create(cmd.Context(), in)
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
	create.Flags().StringVar(&in.Description, "description", "", "descripción")
	create.Flags().StringVar(&price, "price", "0", "precio")
	create.Flags().StringVar(&in.Category, "category", "Generic", "Generic | Electric | Fresh")
	create.Flags().StringArrayVar(&props, "prop", nil, "atributo Nombre=Valor (repetible)")
	create.Flags().BoolVar(&inactive, "inactive", false, "crear inactivo")

	// delete
	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Eliminar producto",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd.Context()); err != nil {
				return err
			}
			res, err := a.products.Delete(cmd.Context(), args[0])
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

func parseProps(raw []string) ([]dto.UniquePropertyDTO, error) {
	out := make([]dto.UniquePropertyDTO, 0, len(raw))
	for _, kv := range raw {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("--prop %q: se espera Nombre=Valor", kv)
		}
		out = append(out, dto.UniquePropertyDTO{Name: strings.TrimSpace(name), Value: value})
	}
	return out, nil
}
