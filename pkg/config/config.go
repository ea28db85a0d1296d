package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Backends soportados como sistema de registro de usuarios.
// Un despliegue usa uno u otro, nunca ambos a la vez.
const (
	UsersBackendFile   = "file"
	UsersBackendSheets = "sheets"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	HTTP   HTTPConfig
	Users  UsersConfig
	Sheets SheetsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// UsersConfig selecciona el almacén de usuarios y la ruta del archivo JSON.
type UsersConfig struct {
	Backend  string // "file" o "sheets"
	FilePath string // ruta a usuarios.json cuando Backend == "file"
}

// SheetsConfig configuración del endpoint remoto (Apps Script) de usuarios.
type SheetsConfig struct {
	URL            string // URL del Web App desplegado; vacío = backend sheets no disponible
	TimeoutSeconds int
	RefetchDelayMS int // espera antes de re-leer la lista tras un update remoto
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, USERS_BACKEND, etc.
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

	// Bind de variables de entorno (Viper las lee automáticamente si AutomaticEnv está activo)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "negocio-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		Users: UsersConfig{
			Backend:  getString(v, "USERS_BACKEND", UsersBackendFile),
			FilePath: getString(v, "USERS_FILE", "data/usuarios.json"),
		},
		Sheets: SheetsConfig{
			URL:            getString(v, "SHEETS_API_URL", ""),
			TimeoutSeconds: getInt(v, "SHEETS_TIMEOUT_SECONDS", 15),
			RefetchDelayMS: getInt(v, "SHEETS_REFETCH_DELAY_MS", 700),
		},
	}

	if cfg.Users.Backend != UsersBackendFile && cfg.Users.Backend != UsersBackendSheets {
		return nil, fmt.Errorf("USERS_BACKEND inválido: %q (use %q o %q)",
			cfg.Users.Backend, UsersBackendFile, UsersBackendSheets)
	}
	if cfg.Users.Backend == UsersBackendSheets && cfg.Sheets.URL == "" {
		return nil, fmt.Errorf("USERS_BACKEND=sheets requiere SHEETS_API_URL")
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
