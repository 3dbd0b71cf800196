package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultConfidenceThreshold = 0.85

type Config struct {
	Project     ProjectConfig     `yaml:"project"`
	HTTP        HTTPConfig        `yaml:"http"`
	Storage     StorageConfig     `yaml:"storage"`
	Database    DatabaseConfig    `yaml:"database"`
	Redis       RedisConfig       `yaml:"redis"`
	RabbitMQ    RabbitMQConfig    `yaml:"rabbitmq"`
	Inference   InferenceConfig   `yaml:"inference"`
	Media       MediaConfig       `yaml:"media"`
	Classifier  ClassifierConfig  `yaml:"classifier"`
	Sweeper     SweeperConfig     `yaml:"sweeper"`
	Credentials CredentialsConfig `yaml:"credentials"`
	LogLevel    string            `yaml:"log_level"`
}

type ProjectConfig struct {
	Name      string `yaml:"name"`
	Version   string `yaml:"version"`
	APIPrefix string `yaml:"api_prefix"`
}

type HTTPConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes"`
	AllowOrigins    []string      `yaml:"allow_origins"`
}

type StorageConfig struct {
	Driver   string `yaml:"driver"` // "postgres" or "bolt"
	BoltPath string `yaml:"bolt_path"`
}

type DatabaseConfig struct {
	URL      string `yaml:"url"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns URL when set, otherwise a key/value connection string.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	URL       string        `yaml:"url"`
	StatusTTL time.Duration `yaml:"status_ttl"`
}

type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

type InferenceConfig struct {
	TextURL    string        `yaml:"text_url"`
	ImageURL   string        `yaml:"image_url"`
	TextModel  string        `yaml:"text_model"`
	ImageModel string        `yaml:"image_model"`
	APIToken   string        `yaml:"api_token"`
	ModelPath  string        `yaml:"model_path"`
	Timeout    time.Duration `yaml:"timeout"`
	Retry      RetryConfig   `yaml:"retry"`
}

type RetryConfig struct {
	MaxAttempts    int           `yaml:"max_attempts"`
	InitialBackoff time.Duration `yaml:"initial_backoff"`
	MaxBackoff     time.Duration `yaml:"max_backoff"`
}

type MediaConfig struct {
	FFProbePath string `yaml:"ffprobe_path"`
	TempDir     string `yaml:"temp_dir"`
}

type ClassifierConfig struct {
	ConfidenceThreshold float64 `yaml:"confidence_threshold"`
	Labels              Labels  `yaml:"labels"`
}

type Labels struct {
	Verified   string `yaml:"verified"`
	Suspicious string `yaml:"suspicious"`
	Fake       string `yaml:"fake"`
}

// Contains reports whether label is one of the configured labels.
func (l Labels) Contains(label string) bool {
	return label == l.Verified || label == l.Suspicious || label == l.Fake
}

type SweeperConfig struct {
	Enabled        bool          `yaml:"enabled"`
	Interval       time.Duration `yaml:"interval"`
	PendingTimeout time.Duration `yaml:"pending_timeout"`
	BatchSize      int           `yaml:"batch_size"`
}

// CredentialsConfig holds social media API keys. They are only loaded; no
// verification step calls those APIs yet.
type CredentialsConfig struct {
	TwitterAPIKey            string `yaml:"twitter_api_key"`
	TwitterAPISecret         string `yaml:"twitter_api_secret"`
	TwitterAccessToken       string `yaml:"twitter_access_token"`
	TwitterAccessTokenSecret string `yaml:"twitter_access_token_secret"`
}

// Load reads the YAML file at path (if it exists), expands ${VAR} references,
// applies environment overrides and fills defaults.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	// Zero is a valid threshold, so its default is seeded before decoding
	// instead of being filled in by setDefaults.
	cfg := Config{Classifier: ClassifierConfig{ConfidenceThreshold: DefaultConfidenceThreshold}}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyEnv() error {
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	setString("HTTP_ADDR", &c.HTTP.Addr)
	setString("LOG_LEVEL", &c.LogLevel)
	setString("STORAGE_DRIVER", &c.Storage.Driver)
	setString("DATABASE_URL", &c.Database.URL)
	setString("DATABASE_NAME", &c.Database.DBName)
	setString("REDIS_URL", &c.Redis.URL)
	setString("RABBITMQ_URL", &c.RabbitMQ.URL)
	setString("MODEL_PATH", &c.Inference.ModelPath)
	setString("INFERENCE_API_TOKEN", &c.Inference.APIToken)
	setString("INFERENCE_TEXT_URL", &c.Inference.TextURL)
	setString("INFERENCE_IMAGE_URL", &c.Inference.ImageURL)
	setString("LABEL_VERIFIED", &c.Classifier.Labels.Verified)
	setString("LABEL_SUSPICIOUS", &c.Classifier.Labels.Suspicious)
	setString("LABEL_FAKE", &c.Classifier.Labels.Fake)
	setString("TWITTER_API_KEY", &c.Credentials.TwitterAPIKey)
	setString("TWITTER_API_SECRET", &c.Credentials.TwitterAPISecret)
	setString("TWITTER_ACCESS_TOKEN", &c.Credentials.TwitterAccessToken)
	setString("TWITTER_ACCESS_TOKEN_SECRET", &c.Credentials.TwitterAccessTokenSecret)

	if v := os.Getenv("CONFIDENCE_THRESHOLD"); v != "" {
		threshold, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parse CONFIDENCE_THRESHOLD: %w", err)
		}
		c.Classifier.ConfidenceThreshold = threshold
	}

	return nil
}

func (c *Config) setDefaults() {
	if c.Project.Name == "" {
		c.Project.Name = "Plataforma de Verificação de Fatos"
	}
	if c.Project.Version == "" {
		c.Project.Version = "1.0.0"
	}
	if c.Project.APIPrefix == "" {
		c.Project.APIPrefix = "/api/v1"
	}
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = ":8000"
	}
	if c.HTTP.ReadTimeout == 0 {
		c.HTTP.ReadTimeout = 30 * time.Second
	}
	if c.HTTP.WriteTimeout == 0 {
		c.HTTP.WriteTimeout = 2 * time.Minute
	}
	if c.HTTP.ShutdownTimeout == 0 {
		c.HTTP.ShutdownTimeout = 10 * time.Second
	}
	if c.HTTP.MaxUploadBytes == 0 {
		c.HTTP.MaxUploadBytes = 100 << 20
	}
	if len(c.HTTP.AllowOrigins) == 0 {
		c.HTTP.AllowOrigins = []string{"*"}
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = "postgres"
	}
	if c.Storage.BoltPath == "" {
		c.Storage.BoltPath = "data/verifications.bolt"
	}
	if c.Database.URL == "" && c.Database.Host == "" {
		c.Database.Host = "localhost"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.DBName == "" {
		c.Database.DBName = "fact_checker"
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Redis.StatusTTL == 0 {
		c.Redis.StatusTTL = 10 * time.Minute
	}
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "fact_checker"
	}
	if c.RabbitMQ.RoutingKey == "" {
		c.RabbitMQ.RoutingKey = "verifications"
	}
	if c.RabbitMQ.QueueName == "" {
		c.RabbitMQ.QueueName = "verification_events"
	}
	if c.Inference.TextModel == "" {
		c.Inference.TextModel = "neuralmind/bert-base-portuguese-cased"
	}
	if c.Inference.ImageModel == "" {
		c.Inference.ImageModel = "microsoft/resnet-50"
	}
	if c.Inference.TextURL == "" {
		c.Inference.TextURL = "https://api-inference.huggingface.co/models/" + c.Inference.TextModel
	}
	if c.Inference.ImageURL == "" {
		c.Inference.ImageURL = "https://api-inference.huggingface.co/models/" + c.Inference.ImageModel
	}
	if c.Inference.ModelPath == "" {
		c.Inference.ModelPath = "models"
	}
	if c.Inference.Timeout == 0 {
		c.Inference.Timeout = 30 * time.Second
	}
	if c.Inference.Retry.MaxAttempts == 0 {
		c.Inference.Retry.MaxAttempts = 1
	}
	if c.Inference.Retry.InitialBackoff == 0 {
		c.Inference.Retry.InitialBackoff = 1 * time.Second
	}
	if c.Inference.Retry.MaxBackoff == 0 {
		c.Inference.Retry.MaxBackoff = 30 * time.Second
	}
	if c.Media.FFProbePath == "" {
		c.Media.FFProbePath = "ffprobe"
	}
	if c.Classifier.Labels.Verified == "" {
		c.Classifier.Labels.Verified = "Verificado"
	}
	if c.Classifier.Labels.Suspicious == "" {
		c.Classifier.Labels.Suspicious = "Suspeito"
	}
	if c.Classifier.Labels.Fake == "" {
		c.Classifier.Labels.Fake = "Falso"
	}
	if c.Sweeper.Interval == 0 {
		c.Sweeper.Interval = 5 * time.Minute
	}
	if c.Sweeper.PendingTimeout == 0 {
		c.Sweeper.PendingTimeout = 15 * time.Minute
	}
	if c.Sweeper.BatchSize == 0 {
		c.Sweeper.BatchSize = 100
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "postgres", "bolt":
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if t := c.Classifier.ConfidenceThreshold; t < 0 || t > 1 {
		return fmt.Errorf("confidence threshold %v out of range [0,1]", t)
	}
	return nil
}
