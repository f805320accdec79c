package config

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	Ledger LedgerConfig
	Export ExportConfig
	Log    LogConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LedgerConfig parámetros del libro de documentos.
type LedgerConfig struct {
	Currency   string // símbolo antepuesto a los montos mostrados
	FiscalYear string // año fiscal por defecto de los consecutivos, "YYYY-YYYY"
	Seed       bool   // cargar los datos de demostración al arrancar
}

// ExportConfig destino de las descargas de PDF/XLSX.
type ExportConfig struct {
	Dir string
}

// LogConfig nivel del logger.
type LogConfig struct {
	Level string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, LEDGER_CURRENCY, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "ledger-pro"),
		},
		Ledger: LedgerConfig{
			Currency:   getString(v, "LEDGER_CURRENCY", "₹"),
			FiscalYear: getString(v, "LEDGER_FISCAL_YEAR", "2024-2025"),
			Seed:       getBool(v, "LEDGER_SEED", true),
		},
		Export: ExportConfig{
			Dir: getString(v, "EXPORT_DIR", "."),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case bool:
			return v.GetBool(key)
		case string:
			b, err := strconv.ParseBool(v.GetString(key))
			if err != nil {
				return def
			}
			return b
		default:
			return v.GetBool(key)
		}
	}
	return def
}
