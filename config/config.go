package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Sender    SenderConfig    `mapstructure:"sender"`
	SMTP      SMTPConfig      `mapstructure:"smtp"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	OpenAI    OpenAIConfig    `mapstructure:"openai"`
	Firebase  FirebaseConfig  `mapstructure:"firebase"`
}

type ServerConfig struct {
	AppVersion   string        `mapstructure:"app_version"`
	Host         string        `mapstructure:"host"`
	Port         string        `mapstructure:"port"`
	Timeout      time.Duration `mapstructure:"timeout"`
	Idle_timeout time.Duration `mapstructure:"idle_timeout"`
	Mode         string        `mapstructure:"mode"`
}

// SenderConfig is the approved sender identity stamped on every outgoing message.
type SenderConfig struct {
	Name    string `mapstructure:"name"`
	Address string `mapstructure:"address"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`

	// PasswordFile holds the relay secret; it is read once at startup
	// and the process refuses to start without it.
	PasswordFile string `mapstructure:"password_file"`
	Password     string `mapstructure:"-"`
}

type SchedulerConfig struct {
	TickInterval time.Duration `mapstructure:"tick_interval"`
	ReminderHour int           `mapstructure:"reminder_hour"`
}

type OpenAIConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
}

// FirebaseConfig is served verbatim to the frontend by the credentials endpoint.
type FirebaseConfig struct {
	APIKey            string `mapstructure:"api_key" json:"apiKey"`
	AuthDomain        string `mapstructure:"auth_domain" json:"authDomain"`
	ProjectID         string `mapstructure:"project_id" json:"projectId"`
	StorageBucket     string `mapstructure:"storage_bucket" json:"storageBucket"`
	MessagingSenderID string `mapstructure:"messaging_sender_id" json:"messagingSenderId"`
	AppID             string `mapstructure:"app_id" json:"appId"`
	MeasurementID     string `mapstructure:"measurement_id" json:"measurementId"`
}

func LoadConfig() (*viper.Viper, error) {

	viperInstance := viper.New()

	viperInstance.AddConfigPath("./config")
	viperInstance.SetConfigName("config")
	viperInstance.SetConfigType("yaml")

	err := viperInstance.ReadInConfig()

	if err != nil {
		return nil, err
	}
	return viperInstance, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {

	var c Config

	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}

	if c.Scheduler.TickInterval <= 0 {
		c.Scheduler.TickInterval = 5 * time.Second
	}
	if c.Scheduler.ReminderHour <= 0 {
		c.Scheduler.ReminderHour = 9
	}
	if c.OpenAI.MaxTokens <= 0 {
		c.OpenAI.MaxTokens = 4096
	}
	if c.OpenAI.Temperature <= 0 {
		c.OpenAI.Temperature = 0.7
	}

	password, err := ReadSecretFile(c.SMTP.PasswordFile)
	if err != nil {
		return nil, fmt.Errorf("could not read SMTP password file: %w", err)
	}
	c.SMTP.Password = password

	return &c, nil
}

// ReadSecretFile returns the first line of the file, trimmed of whitespace.
func ReadSecretFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("secret file %s is empty", path)
	}
	return strings.TrimSpace(scanner.Text()), nil
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
