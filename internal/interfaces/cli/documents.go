package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/acculer/ledger-pro/internal/application/dto"
)

func newDocumentsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "documents",
		Aliases: []string{"docs"},
		Short:   "Operaciones sobre el libro de documentos",
	}

	cmd.AddCommand(
		newDocumentsListCmd(app),
		newDocumentsSearchCmd(app),
		newDocumentsGetCmd(app),
		newDocumentsCreateCmd(app),
		newDocumentsEditCmd(app),
		newDocumentsConfirmCmd(app),
		newDocumentsCancelCmd(app),
		newDocumentsDeleteCmd(app),
		newDocumentsNextNumberCmd(app),
		newDocumentsRecalcCmd(app),
		newDocumentsPDFCmd(app),
		newDocumentsExportCmd(app),
	)
	return cmd
}

func kindFlag(cmd *cobra.Command) {
	cmd.Flags().String("kind", "quotation", "tipo de documento: quotation | invoice | bill")
}

func newDocumentsListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lista los documentos de un tipo en orden de inserción",
		RunE: func(cmd *cobra.Command, _ []string) error {
			kind, _ := cmd.Flags().GetString("kind")
			docs, err := app.Documents.List(kind)
			if err != nil {
				return err
			}
			return printJSON(docs)
		},
	}
	kindFlag(cmd)
	return cmd
}

func newDocumentsSearchCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Busca por substring sin distinguir mayúsculas",
		Long: `Busca sobre los campos del tipo: nombre del negocio y número para
cotizaciones y facturas; nombre del cliente y móvil para bills.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, _ := cmd.Flags().GetString("kind")
			docs, err := app.Documents.Search(kind, args[0])
			if err != nil {
				return err
			}
			return printJSON(docs)
		},
	}
	kindFlag(cmd)
	return cmd
}

func newDocumentsGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Muestra un documento por ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			doc, err := app.Documents.Get(args[0])
			if err != nil {
				return err
			}
			return printJSON(doc)
		},
	}
}

func newDocumentsCreateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create -f <request.json>",
		Short: "Crea un documento; el consecutivo se asigna al guardar",
		Example: `  ledger documents create -f quotation.json
  cat bill.json | ledger documents create -f -`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, _ := cmd.Flags().GetString("file")
			var in dto.CreateDocumentRequest
			if err := readRequest(file, &in); err != nil {
				return err
			}
			doc, err := app.Documents.Create(in)
			if err != nil {
				return err
			}
			app.Log.Info().Str("id", doc.ID).Str("number", doc.Number).Msg("documento creado")
			return printJSON(doc)
		},
	}
	cmd.Flags().StringP("file", "f", "-", "archivo JSON del alta (- = stdin)")
	return cmd
}

func newDocumentsEditCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id> -f <patch.json>",
		Short: "Prepara una edición; nada se guarda hasta confirmar",
		Long: `Fusiona los campos enviados sobre el registro guardado y deja la edición
en espera. Imprime el token y la vista previa del resultado; confirme con
"documents confirm <token>" o descártela con "documents cancel <token>".
El número del documento nunca cambia al editar.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			var in dto.UpdateDocumentRequest
			if err := readRequest(file, &in); err != nil {
				return err
			}
			pending, err := app.Documents.StageUpdate(args[0], in)
			if err != nil {
				return err
			}
			app.Log.Info().Str("id", args[0]).Str("token", pending.Token).Msg("edición en espera de confirmación")
			return printJSON(pending)
		},
	}
	cmd.Flags().StringP("file", "f", "-", "archivo JSON de la edición (- = stdin)")
	return cmd
}

func newDocumentsConfirmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "confirm <token>",
		Short: "Confirma una edición pendiente y la escribe al libro",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			doc, err := app.Documents.ConfirmUpdate(args[0])
			if err != nil {
				return err
			}
			app.Log.Info().Str("id", doc.ID).Msg("edición confirmada")
			return printJSON(doc)
		},
	}
}

func newDocumentsCancelCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <token>",
		Short: "Descarta una edición pendiente; el registro guardado queda intacto",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := app.Documents.CancelUpdate(args[0]); err != nil {
				return err
			}
			app.Log.Info().Str("token", args[0]).Msg("edición descartada")
			return nil
		},
	}
}

func newDocumentsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Elimina un documento del libro (irreversible)",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := app.Documents.Delete(args[0]); err != nil {
				return err
			}
			app.Log.Info().Str("id", args[0]).Msg("documento eliminado")
			return nil
		},
	}
}

func newDocumentsNextNumberCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "next-number",
		Short: "Vista previa del próximo consecutivo (no lo reserva)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			kind, _ := cmd.Flags().GetString("kind")
			fiscalYear, _ := cmd.Flags().GetString("fiscal-year")
			number, err := app.Documents.PreviewNumber(kind, fiscalYear)
			if err != nil {
				return err
			}
			fmt.Println(number)
			return nil
		},
	}
	kindFlag(cmd)
	cmd.Flags().String("fiscal-year", "", `año fiscal "YYYY-YYYY"`)
	_ = cmd.MarkFlagRequired("fiscal-year")
	return cmd
}

func newDocumentsRecalcCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recalc -f <items.json>",
		Short: "Deriva montos y total de un juego de líneas sin guardar nada",
		RunE: func(cmd *cobra.Command, _ []string) error {
			kind, _ := cmd.Flags().GetString("kind")
			file, _ := cmd.Flags().GetString("file")
			var items []dto.DocumentItemRequest
			if err := readRequest(file, &items); err != nil {
				return err
			}
			preview, err := app.Documents.Recalculate(kind, items)
			if err != nil {
				return err
			}
			return printJSON(preview)
		},
	}
	kindFlag(cmd)
	cmd.Flags().StringP("file", "f", "-", "archivo JSON con las líneas (- = stdin)")
	return cmd
}

func newDocumentsPDFCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pdf <id>",
		Short: "Genera la descarga en PDF de un documento",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("out")
			if dir == "" {
				dir = app.ExportDir
			}
			data, filename, err := app.PDF.DownloadDocumentPDF(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			path := filepath.Join(dir, filename)
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("escribir %q: %w", path, err)
			}
			app.Log.Info().Str("file", path).Int("bytes", len(data)).Msg("pdf generado")
			fmt.Println(path)
			return nil
		},
	}
	cmd.Flags().StringP("out", "o", "", "directorio destino (default: EXPORT_DIR)")
	return cmd
}

func newDocumentsExportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Exporta el listado de un tipo a XLSX",
		RunE: func(cmd *cobra.Command, _ []string) error {
			kind, _ := cmd.Flags().GetString("kind")
			dir, _ := cmd.Flags().GetString("out")
			if dir == "" {
				dir = app.ExportDir
			}
			data, filename, err := app.Export.ExportDocumentList(kind)
			if err != nil {
				return err
			}
			path := filepath.Join(dir, filename)
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("escribir %q: %w", path, err)
			}
			app.Log.Info().Str("file", path).Int("bytes", len(data)).Msg("xlsx generado")
			fmt.Println(path)
			return nil
		},
	}
	kindFlag(cmd)
	cmd.Flags().StringP("out", "o", "", "directorio destino (default: EXPORT_DIR)")
	return cmd
}
