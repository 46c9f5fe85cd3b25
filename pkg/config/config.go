package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	MeloAPI MeloAPIConfig
	Company CompanyConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env         string // development, staging, production
	Name        string
	LogLevel    string
	SwaggerFile string
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

// MeloAPIConfig apunta a la API REST remota donde viven usuarios, obras, pedidos, etc.
type MeloAPIConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// Timeout devuelve el timeout por petición como time.Duration.
func (c MeloAPIConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Validate comprueba que la URL base sea absoluta (http/https).
func (c MeloAPIConfig) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("config: MELO_API_BASE_URL inválida: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("config: MELO_API_BASE_URL debe ser http(s), recibido %q", c.BaseURL)
	}
	return nil
}

// CompanyConfig membrete impreso en el PDF del pedido de compra.
type CompanyConfig struct {
	Name    string
	Address string
	CNPJ    string
	Phone   string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, MELO_API_BASE_URL, etc.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile igual que Load pero con un archivo explícito (lo usa el CLI con --config).
func LoadFile(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: leer %s: %w", path, err)
		}
	} else {
		// Opcional: archivo .env o config.env
		v.SetConfigName(".env")
		v.SetConfigType("env")
		v.AddConfigPath(".")
		_ = v.ReadInConfig() // ignoramos error si no existe

		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		_ = v.ReadInConfig()
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:         getString(v, "APP_ENV", "development"),
			Name:        getString(v, "APP_NAME", "melo-compras"),
			LogLevel:    getString(v, "LOG_LEVEL", "info"),
			SwaggerFile: getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		MeloAPI: MeloAPIConfig{
			BaseURL:        strings.TrimRight(getString(v, "MELO_API_BASE_URL", "http://localhost:4000"), "/"),
			TimeoutSeconds: getInt(v, "MELO_API_TIMEOUT_SECONDS", 15),
		},
		Company: CompanyConfig{
			Name:    getString(v, "COMPANY_NAME", "Melo Engenharia"),
			Address: getString(v, "COMPANY_ADDRESS", "Av. Guadalajara, nº 04, loteamento parque residencial Nova Caruaru, bairro nova Caruaru."),
			CNPJ:    getString(v, "COMPANY_CNPJ", "26.914.893/0001-74"),
			Phone:   getString(v, "COMPANY_PHONE", "(81) 992762401"),
		},
	}

	if err := cfg.MeloAPI.Validate(); err != nil {
		return nil, err
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
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
