package main

import (
	"github.com/acculer/ledger-pro/internal/application/directory"
	"github.com/acculer/ledger-pro/internal/application/ledger"
	"github.com/acculer/ledger-pro/internal/application/usecase"
	infraexcel "github.com/acculer/ledger-pro/internal/infrastructure/excel"
	"github.com/acculer/ledger-pro/internal/infrastructure/memory"
	infrapdf "github.com/acculer/ledger-pro/internal/infrastructure/pdf"
	"github.com/acculer/ledger-pro/internal/interfaces/cli"
	"github.com/acculer/ledger-pro/pkg/config"
	"github.com/acculer/ledger-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Debug().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	docRepo := memory.NewDocumentRepo()
	businessRepo := memory.NewBusinessRepo()
	userRepo := memory.NewUserRepo()

	if cfg.Ledger.Seed {
		if err := memory.Seed(docRepo, businessRepo, userRepo); err != nil {
			log.Fatal().Err(err).Msg("cargar datos de demostración")
		}
	}

	pdfGen := infrapdf.NewMarotoPDFGenerator(cfg.Ledger.Currency)
	xlsxExporter := infraexcel.NewExcelizeExporter(cfg.Ledger.Currency)

	documentUC := ledger.NewDocumentUseCase(docRepo, cfg.Ledger.Currency)
	pdfUC := ledger.NewPDFUseCase(docRepo, businessRepo, pdfGen)
	exportUC := ledger.NewExportUseCase(docRepo, xlsxExporter)
	businessUC := directory.NewBusinessUseCase(businessRepo)
	userUC := usecase.NewUserUseCase(userRepo)

	cli.Execute(&cli.App{
		Documents: documentUC,
		PDF:       pdfUC,
		Export:    exportUC,
		Directory: businessUC,
		Users:     userUC,
		Log:       log,
		ExportDir: cfg.Export.Dir,
	})
}
