package cli

import (
	"github.com/spf13/cobra"

	"github.com/acculer/ledger-pro/internal/application/dto"
)

func newUsersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Usuarios del panel",
	}

	cmd.AddCommand(
		newUsersListCmd(app),
		newUsersSearchCmd(app),
		newUsersCreateCmd(app),
		newUsersUpdateCmd(app),
		newUsersDeleteCmd(app),
		newUsersSetStatusCmd(app, "activate", true),
		newUsersSetStatusCmd(app, "deactivate", false),
	)
	return cmd
}

func newUsersListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lista los usuarios",
		RunE: func(_ *cobra.Command, _ []string) error {
			list, err := app.Users.List()
			if err != nil {
				return err
			}
			return printJSON(list)
		},
	}
}

func newUsersSearchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Busca por nombre o email",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			list, err := app.Users.Search(args[0])
			if err != nil {
				return err
			}
			return printJSON(list)
		},
	}
}

func newUsersCreateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create -f <user.json>",
		Short: "Agrega un usuario; el email debe ser único",
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, _ := cmd.Flags().GetString("file")
			var in dto.SaveUserRequest
			if err := readRequest(file, &in); err != nil {
				return err
			}
			u, err := app.Users.Create(in)
			if err != nil {
				return err
			}
			app.Log.Info().Str("id", u.ID).Str("email", u.Email).Msg("usuario agregado")
			return printJSON(u)
		},
	}
	cmd.Flags().StringP("file", "f", "-", "archivo JSON del usuario (- = stdin)")
	return cmd
}

func newUsersUpdateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id> -f <user.json>",
		Short: "Edita un usuario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			var in dto.SaveUserRequest
			if err := readRequest(file, &in); err != nil {
				return err
			}
			u, err := app.Users.Update(args[0], in)
			if err != nil {
				return err
			}
			app.Log.Info().Str("id", u.ID).Msg("usuario actualizado")
			return printJSON(u)
		},
	}
	cmd.Flags().StringP("file", "f", "-", "archivo JSON del usuario (- = stdin)")
	return cmd
}

func newUsersDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Elimina un usuario",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := app.Users.Delete(args[0]); err != nil {
				return err
			}
			app.Log.Info().Str("id", args[0]).Msg("usuario eliminado")
			return nil
		},
	}
}

func newUsersSetStatusCmd(app *App, name string, active bool) *cobra.Command {
	short := "Desactiva un usuario"
	if active {
		short = "Activa un usuario"
	}
	return &cobra.Command{
		Use:   name + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			u, err := app.Users.SetStatus(args[0], active)
			if err != nil {
				return err
			}
			app.Log.Info().Str("id", u.ID).Str("status", u.Status).Msg("estado actualizado")
			return printJSON(u)
		},
	}
}
