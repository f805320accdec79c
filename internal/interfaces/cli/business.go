package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/acculer/ledger-pro/internal/application/dto"
)

func newBusinessCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "business",
		Short: "Directorio de negocios/cuentas",
	}

	cmd.AddCommand(
		newBusinessListCmd(app),
		newBusinessSearchCmd(app),
		newBusinessCreateCmd(app),
		newBusinessUpdateCmd(app),
		newBusinessDeleteCmd(app),
		newBusinessAddressCmd(app),
	)
	return cmd
}

func newBusinessListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lista el directorio, opcionalmente filtrado por estado",
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, _ := cmd.Flags().GetString("status")
			list, err := app.Directory.List(status)
			if err != nil {
				return err
			}
			return printJSON(list)
		},
	}
	cmd.Flags().String("status", "", "filtrar por estado: active | inactive")
	return cmd
}

func newBusinessSearchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Busca por nombre, contacto o email",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			list, err := app.Directory.Search(args[0])
			if err != nil {
				return err
			}
			return printJSON(list)
		},
	}
}

func newBusinessCreateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create -f <business.json>",
		Short: "Agrega un negocio al directorio",
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, _ := cmd.Flags().GetString("file")
			var in dto.SaveBusinessRequest
			if err := readRequest(file, &in); err != nil {
				return err
			}
			b, err := app.Directory.Create(in)
			if err != nil {
				return err
			}
			app.Log.Info().Str("id", b.ID).Str("name", b.Name).Msg("negocio agregado")
			return printJSON(b)
		},
	}
	cmd.Flags().StringP("file", "f", "-", "archivo JSON del negocio (- = stdin)")
	return cmd
}

func newBusinessUpdateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id> -f <business.json>",
		Short: "Edita un negocio del directorio",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			var in dto.SaveBusinessRequest
			if err := readRequest(file, &in); err != nil {
				return err
			}
			b, err := app.Directory.Update(args[0], in)
			if err != nil {
				return err
			}
			app.Log.Info().Str("id", b.ID).Msg("negocio actualizado")
			return printJSON(b)
		},
	}
	cmd.Flags().StringP("file", "f", "-", "archivo JSON del negocio (- = stdin)")
	return cmd
}

func newBusinessDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Elimina un negocio del directorio",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := app.Directory.Delete(args[0]); err != nil {
				return err
			}
			app.Log.Info().Str("id", args[0]).Msg("negocio eliminado")
			return nil
		},
	}
}

func newBusinessAddressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "address <name>",
		Short: "Muestra el bloque de dirección de un negocio por nombre exacto",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			lines, err := app.Directory.AddressBlock(args[0])
			if err != nil {
				return err
			}
			for _, l := range lines {
				fmt.Println(l)
			}
			return nil
		},
	}
}
