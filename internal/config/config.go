package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	Email    EmailConfig    `yaml:"email"`
	Storage  StorageConfig  `yaml:"storage"`
	Upload   UploadConfig   `yaml:"upload"`
	Seed     SeedConfig     `yaml:"seed"`
	Frontend FrontendConfig `yaml:"frontend"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	Env  string `yaml:"env"`
}

type DatabaseConfig struct {
	// Driver: postgres или mysql
	Driver string `yaml:"driver"`
	DSN    string `yaml:"url"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
	TTL    int    `yaml:"ttl"` // минуты
}

type EmailConfig struct {
	SMTPHost     string `yaml:"smtp_host"`
	SMTPPort     int    `yaml:"smtp_port"`
	SMTPUsername string `yaml:"smtp_user"`
	SMTPPassword string `yaml:"smtp_password"`
	FromEmail    string `yaml:"from_email"`
	FromName     string `yaml:"from_name"`
}

type StorageConfig struct {
	BasePath string `yaml:"base_path"` // каталог для загруженных фото
	BaseURL  string `yaml:"base_url"`  // публичный префикс, по умолчанию /uploads
}

type UploadConfig struct {
	MaxSize     int64    `yaml:"max_size"` // байты
	AllowedExts []string `yaml:"allowed_exts"`
}

// SeedConfig - данные первого супер-админа (создается при старте, если его нет)
type SeedConfig struct {
	AdminUsername string `yaml:"admin_username"`
	AdminEmail    string `yaml:"admin_email"`
	AdminPassword string `yaml:"admin_password"`
}

// FrontendConfig - настройки веб-фронтенда (cmd/frontend)
type FrontendConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	// Явный адрес API. Если пуст, используется runtime-конфиг и затем
	// дефолт по хосту (см. gateway.ResolveBaseURL).
	APIBaseURL string `yaml:"api_base_url"`
	// URL JSON-документа вида {"apiUrl": "..."}; опционально
	RuntimeConfigURL string `yaml:"runtime_config_url"`
	// Публичный адрес API для не-localhost окружения
	PublicAPIBaseURL string `yaml:"public_api_base_url"`
	SessionSecret    string `yaml:"session_secret"`
	CookieSecure     bool   `yaml:"cookie_secure"`
}

var AppConfig *Config

// LoadConfig загружает конфигурацию.
// Если задан DATABASE_URL - конфиг собирается из переменных окружения
// (режим тестов/контейнера), иначе читается yaml-файл из CONFIG_PATH.
func LoadConfig() {
	var cfg Config

	// .env подхватываем молча: локальная разработка
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	log.Println("Загрузка конфигурации из переменных окружения")

	cfg.Database.Driver = getEnvString("DATABASE_DRIVER", "postgres")
	cfg.Database.DSN = dbURL
	cfg.Server.Env = getEnvString("SERVER_ENV", "development")
	cfg.Server.Port = getEnvInt("SERVER_PORT", 8000)
	cfg.JWT.Secret = getEnvString("JWT_SECRET", "dev-secret-change-me")
	cfg.JWT.TTL = getEnvInt("JWT_TTL", 60*24)

	cfg.Seed.AdminUsername = getEnvString("ADMIN_USERNAME", "")
	cfg.Seed.AdminEmail = getEnvString("ADMIN_EMAIL", "")
	cfg.Seed.AdminPassword = getEnvString("ADMIN_PASSWORD", "")

	cfg.Frontend.Port = getEnvInt("FRONTEND_PORT", 3000)
	cfg.Frontend.APIBaseURL = getEnvString("API_BASE_URL", "")
	cfg.Frontend.RuntimeConfigURL = getEnvString("RUNTIME_CONFIG_URL", "")
	cfg.Frontend.PublicAPIBaseURL = getEnvString("PUBLIC_API_BASE_URL", "")
	cfg.Frontend.SessionSecret = getEnvString("SESSION_SECRET", cfg.JWT.Secret)

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "postgres"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 60 * 24
	}
	if cfg.Storage.BasePath == "" {
		cfg.Storage.BasePath = "./uploads"
	}
	if cfg.Storage.BaseURL == "" {
		cfg.Storage.BaseURL = "/uploads"
	}
	if cfg.Upload.MaxSize == 0 {
		cfg.Upload.MaxSize = 5 * 1024 * 1024 // 5MB, как в исходном API
	}
	if len(cfg.Upload.AllowedExts) == 0 {
		cfg.Upload.AllowedExts = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
	}
	if cfg.Frontend.Port == 0 {
		cfg.Frontend.Port = 3000
	}
	if cfg.Frontend.SessionSecret == "" {
		cfg.Frontend.SessionSecret = cfg.JWT.Secret
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}
