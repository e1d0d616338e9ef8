package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from the environment file.
type Config struct {
	ServerAddress  string        `mapstructure:"SERVER_ADDRESS"`
	PostgresConn   string        `mapstructure:"POSTGRES_CONN"`
	MigrationURL   string        `mapstructure:"MIGRATION_URL"`
	SMTPHost       string        `mapstructure:"SMTP_HOST"`
	SMTPPort       string        `mapstructure:"SMTP_PORT"`
	SMTPUsername   string        `mapstructure:"SMTP_USERNAME"`
	SMTPPassword   string        `mapstructure:"SMTP_PASSWORD"`
	FromEmail      string        `mapstructure:"FROM_EMAIL"`
	SMSAPIURL      string        `mapstructure:"SMS_API_URL"`
	SMSAPIToken    string        `mapstructure:"SMS_API_TOKEN"`
	SMSSender      string        `mapstructure:"SMS_SENDER"`
	ETendersAPIURL string        `mapstructure:"ETENDERS_API_URL"`
	NotifyTimeout  time.Duration `mapstructure:"NOTIFY_TIMEOUT"`
}

// LoadConfig loads the configuration from the app.env file at the given path.
func LoadConfig(path string) (cfg Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	err = viper.ReadInConfig()
	if err != nil {
		return
	}
	if err = viper.Unmarshal(&cfg); err != nil {
		return
	}

	if cfg.NotifyTimeout == 0 {
		cfg.NotifyTimeout = 10 * time.Second
	}
	return
}
