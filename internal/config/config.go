package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	MongoDB    MongoDBConfig
	JWT        JWTConfig
	Paystack   PaystackConfig
	SMS        SMSConfig
	Cloudinary CloudinaryConfig
	Sheets     SheetsConfig
	Jobs       JobsConfig
	LogLevel   string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         string
	AllowedHosts []string
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string
	Database string
}

// JWTConfig holds JWT-specific configuration
type JWTConfig struct {
	Secret    string
	ExpiresIn int
}

// PaystackConfig holds payment gateway configuration
type PaystackConfig struct {
	BaseURL   string
	SecretKey string
	MockAPI   bool
}

// SMSConfig holds SMS gateway configuration
type SMSConfig struct {
	MNotify        MNotifyConfig
	MockSMSGateway bool
}

// MNotifyConfig holds mNotify gateway configuration
type MNotifyConfig struct {
	BaseURL  string
	APIKey   string
	SenderID string
}

// CloudinaryConfig holds image storage configuration
type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

// SheetsConfig holds report export configuration
type SheetsConfig struct {
	CredentialsFile string
	SpreadsheetID   string
	SheetName       string
}

// JobsConfig holds cron expressions for the scheduled jobs
type JobsConfig struct {
	PaymentPollCron string
	ReportCron      string
	ReminderCron    string
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine, environment variables take over
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults() {
	viper.SetDefault("Server.Port", "4000")
	viper.SetDefault("Server.AllowedHosts", []string{"localhost:3000"})
	viper.SetDefault("MongoDB.URI", "mongodb://localhost:27017")
	viper.SetDefault("MongoDB.Database", "fl-admin")
	viper.SetDefault("JWT.ExpiresIn", 24*60*60) // 24 hours
	viper.SetDefault("LogLevel", "info")
	viper.SetDefault("Paystack.BaseURL", "https://api.paystack.co")
	viper.SetDefault("Paystack.MockAPI", true)
	viper.SetDefault("SMS.MNotify.BaseURL", "https://api.mnotify.com/api")
	viper.SetDefault("SMS.MNotify.SenderID", "FLAdmin")
	viper.SetDefault("SMS.MockSMSGateway", true)
	viper.SetDefault("Cloudinary.Folder", "mobilisation")
	viper.SetDefault("Sheets.SheetName", "BussingSummary")
	viper.SetDefault("Jobs.PaymentPollCron", "0 */2 * * *")
	viper.SetDefault("Jobs.ReportCron", "0 6 * * MON")
	viper.SetDefault("Jobs.ReminderCron", "0 18 * * SAT")
}
