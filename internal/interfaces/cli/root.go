// Package cli capa de presentación: subcomandos de cobra sobre los casos de
// uso del libro. No hay transporte de red; todo corre en el proceso local.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/acculer/ledger-pro/internal/application/directory"
	"github.com/acculer/ledger-pro/internal/application/ledger"
	"github.com/acculer/ledger-pro/internal/application/usecase"
	"github.com/acculer/ledger-pro/pkg/logger"
)

// App agrupa las dependencias ya construidas que consumen los subcomandos.
type App struct {
	Documents *ledger.DocumentUseCase
	PDF       *ledger.PDFUseCase
	Export    *ledger.ExportUseCase
	Directory *directory.BusinessUseCase
	Users     *usecase.UserUseCase
	Log       *logger.Logger
	ExportDir string
}

// NewRootCmd arma el árbol de comandos.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "ledger",
		Short: "Libro de documentos: cotizaciones, facturas y bills",
		Long: `ledger administra un libro de documentos en memoria: cotizaciones y
facturas con consecutivo por año fiscal, bills por dimensiones, directorio
de negocios y usuarios del panel. Los montos siempre se derivan de las
líneas; las ediciones requieren confirmación explícita.`,
		SilenceUsage: true,
	}

	root.AddCommand(newDocumentsCmd(app))
	root.AddCommand(newBusinessCmd(app))
	root.AddCommand(newUsersCmd(app))
	return root
}

// Execute corre el árbol de comandos y termina el proceso si falla.
func Execute(app *App) {
	if err := NewRootCmd(app).Execute(); err != nil {
		app.Log.Error().Err(err).Msg("comando fallido")
		os.Exit(1)
	}
}

// printJSON imprime el resultado con sangría a stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// readRequest carga un JSON de archivo ("-" = stdin) en dst.
func readRequest(path string, dst any) error {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("leer %q: %w", path, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("parsear %q: %w", path, err)
	}
	return nil
}
