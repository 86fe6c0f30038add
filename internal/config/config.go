// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`
	App struct {
		Env         string `mapstructure:"env"`
		FrontendURL string `mapstructure:"frontend_url"`
	} `mapstructure:"app"`
	Auth struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"auth"`
	JWT struct {
		SecretKey       string `mapstructure:"secret_key"`
		ExpirationHours int    `mapstructure:"expiration_hours"`
	} `mapstructure:"jwt"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
	Mailer struct {
		Type string `mapstructure:"type"` // "ses", "smtp" or "log"
	} `mapstructure:"mailer"`
	SES  SESConfig  `mapstructure:"ses"`
	SMTP SMTPConfig `mapstructure:"smtp"`
	Gemini struct {
		GenerationModel string `mapstructure:"generation_model"`
		EmbeddingModel  string `mapstructure:"embedding_model"`
		// 利用者がキー未登録のときのフォールバック。空なら補完は利用者キー必須
		SystemAPIKey string `mapstructure:"system_api_key"`
	} `mapstructure:"gemini"`
	Quiz struct {
		DistractorCount int     `mapstructure:"distractor_count"`
		MinSimilarity   float64 `mapstructure:"min_similarity"`
		MaxSimilarity   float64 `mapstructure:"max_similarity"`
	} `mapstructure:"quiz"`
}

type SESConfig struct {
	Region          string `mapstructure:"region"`
	AuthType        string `mapstructure:"auth_type"` // "iam_role" or "static_credentials"
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	From            string `mapstructure:"from"`
}

type SMTPConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	From string `mapstructure:"from"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("auth.enabled", "AUTH_ENABLED")
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")
	viper.BindEnv("gemini.system_api_key", "GEMINI_API_KEY")
	viper.BindEnv("app.env", "APP_ENV")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	err := viper.Unmarshal(&Cfg)
	if err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.Server.Port == "" {
		log.Println("Server port not set, using default ':8080'")
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = DefaultLogLevel
	}
	if Cfg.JWT.ExpirationHours <= 0 {
		Cfg.JWT.ExpirationHours = DefaultJWTExpirationHours
	}
	if Cfg.Gemini.GenerationModel == "" {
		Cfg.Gemini.GenerationModel = DefaultGenerationModel
	}
	if Cfg.Gemini.EmbeddingModel == "" {
		Cfg.Gemini.EmbeddingModel = DefaultEmbeddingModel
	}
	if Cfg.Quiz.DistractorCount <= 0 {
		Cfg.Quiz.DistractorCount = DefaultQuizDistractorCount
	}
	if Cfg.Quiz.MinSimilarity <= 0 {
		Cfg.Quiz.MinSimilarity = DefaultQuizMinSimilarity
	}
	if Cfg.Quiz.MaxSimilarity <= 0 {
		Cfg.Quiz.MaxSimilarity = DefaultQuizMaxSimilarity
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}

	if !viper.IsSet("auth.enabled") {
		log.Println("Auth enabled flag not set, defaulting to true (enabled)")
		Cfg.Auth.Enabled = true
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Auth Enabled: %t", Cfg.Auth.Enabled)

	return nil
}
