package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	StorageMongo  = "mongo"
	StorageMemory = "memory"

	placeholderSecret = "change-me"
)

type Config struct {
	Env      string
	Debug    bool
	Port     string
	MongoURI string
	MongoDB  string
	Storage  string

	JWTSecret     string
	JWTTTL        time.Duration
	ResetTokenTTL time.Duration

	Timezone                   string
	StaticDir                  string
	DefaultParticipantPassword string
	TempEmailDomain            string
	CORSOrigins                string
	FrontendURL                string

	SendgridAPIKey string
	MailFrom       string
	RollbarToken   string
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	v.SetDefault("ENV", "dev")
	v.SetDefault("DEBUG", false)
	v.SetDefault("PORT", "8000")
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DB", "mddrc")
	v.SetDefault("STORAGE", StorageMongo)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_TTL", 7*24*time.Hour)
	v.SetDefault("RESET_TOKEN_TTL", time.Hour)
	v.SetDefault("TIMEZONE", "Asia/Kuala_Lumpur")
	v.SetDefault("STATIC_DIR", "./static")
	v.SetDefault("DEFAULT_PARTICIPANT_PASSWORD", "mddrc1")
	v.SetDefault("TEMP_EMAIL_DOMAIN", "temp.mddrc.local")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("FRONTEND_URL", "http://localhost:3000")
	v.SetDefault("SENDGRID_API_KEY", "")
	v.SetDefault("MAIL_FROM", "noreply@mddrc.com.my")
	v.SetDefault("ROLLBAR_TOKEN", "")

	v.AutomaticEnv()
	return v
}

// LoadConfig reads .env (when present) and the process environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Println("Error loading .env file:", err)
	}
	return fromViper(newViper())
}

func fromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Env:                        strings.ToLower(v.GetString("ENV")),
		Debug:                      v.GetBool("DEBUG"),
		Port:                       v.GetString("PORT"),
		MongoURI:                   v.GetString("MONGO_URI"),
		MongoDB:                    v.GetString("MONGO_DB"),
		Storage:                    strings.ToLower(v.GetString("STORAGE")),
		JWTSecret:                  v.GetString("JWT_SECRET"),
		JWTTTL:                     v.GetDuration("JWT_TTL"),
		ResetTokenTTL:              v.GetDuration("RESET_TOKEN_TTL"),
		Timezone:                   v.GetString("TIMEZONE"),
		StaticDir:                  v.GetString("STATIC_DIR"),
		DefaultParticipantPassword: v.GetString("DEFAULT_PARTICIPANT_PASSWORD"),
		TempEmailDomain:            v.GetString("TEMP_EMAIL_DOMAIN"),
		CORSOrigins:                v.GetString("CORS_ORIGINS"),
		FrontendURL:                v.GetString("FRONTEND_URL"),
		SendgridAPIKey:             v.GetString("SENDGRID_API_KEY"),
		MailFrom:                   v.GetString("MAIL_FROM"),
		RollbarToken:               v.GetString("ROLLBAR_TOKEN"),
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.JWTSecret == "" || c.JWTSecret == placeholderSecret {
		return errors.New("JWT_SECRET is required")
	}
	switch c.Storage {
	case StorageMongo:
		if c.MongoURI == "" || c.MongoDB == "" {
			return errors.New("MONGO_URI and MONGO_DB are required")
		}
	case StorageMemory:
	default:
		return errors.Errorf("unknown STORAGE %q", c.Storage)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return errors.Wrapf(err, "TIMEZONE %q", c.Timezone)
	}
	return nil
}
