package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/KasumiMercury/primind-class-remind/internal/domain"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
	PubSub   PubSubConfig
	Push     PushConfig
	Reminder ReminderConfig
	Notifier NotifierConfig
}

type LogConfig struct {
	Level string
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	SlowThreshold   time.Duration
}

type PubSubConfig struct {
	NatsURL         string
	GCloudProjectID string
}

type PushConfig struct {
	VAPIDPublicKey  string
	VAPIDPrivateKey string
	Subscriber      string
	TTL             time.Duration
	Concurrency     int
	Window          domain.ReminderWindow
}

// Enabled reports whether both VAPID keys are configured.
func (c *PushConfig) Enabled() bool {
	return c.VAPIDPublicKey != "" && c.VAPIDPrivateKey != ""
}

type ReminderConfig struct {
	Location     *time.Location
	Window       domain.ReminderWindow
	TickInterval time.Duration
	WeekendRemap map[domain.Weekday]domain.Weekday
	URL          string
}

type NotifierConfig struct {
	UserID          string
	DayOverrideFile string
}

// LoadDotEnv loads DOTENV_PATH into the environment without overriding
// variables that are already set. It is a no-op when DOTENV_PATH is empty.
func LoadDotEnv() error {
	path := os.Getenv("DOTENV_PATH")
	if path == "" {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	return nil
}

// Load reads the configuration shared by the server and the notifier.
// POSTGRES_DSN is required.
func Load() (*Config, error) {
	if err := LoadDotEnv(); err != nil {
		return nil, err
	}

	serverPort, err := strconv.Atoi(getEnv("SERVER_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	readTimeout, err := time.ParseDuration(getEnv("SERVER_READ_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(getEnv("SERVER_WRITE_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_WRITE_TIMEOUT: %w", err)
	}

	maxOpenConns, err := strconv.Atoi(getEnv("DB_MAX_OPEN_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_OPEN_CONNS: %w", err)
	}

	maxIdleConns, err := strconv.Atoi(getEnv("DB_MAX_IDLE_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_IDLE_CONNS: %w", err)
	}

	connMaxLifetime, err := time.ParseDuration(getEnv("DB_CONN_MAX_LIFETIME", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_CONN_MAX_LIFETIME: %w", err)
	}

	slowThreshold, err := time.ParseDuration(getEnv("DB_SLOW_THRESHOLD", "200ms"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_SLOW_THRESHOLD: %w", err)
	}

	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		return nil, errors.New("POSTGRES_DSN environment variable is required")
	}

	push, err := loadPush()
	if err != nil {
		return nil, err
	}

	reminder, err := loadReminder()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         serverPort,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
		},
		Database: DatabaseConfig{
			DSN:             dsn,
			MaxOpenConns:    maxOpenConns,
			MaxIdleConns:    maxIdleConns,
			ConnMaxLifetime: connMaxLifetime,
			SlowThreshold:   slowThreshold,
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		PubSub: PubSubConfig{
			NatsURL:         os.Getenv("NATS_URL"),
			GCloudProjectID: os.Getenv("GCLOUD_PROJECT_ID"),
		},
		Push:     push,
		Reminder: reminder,
		Notifier: NotifierConfig{
			UserID:          os.Getenv("NOTIFIER_USER_ID"),
			DayOverrideFile: getEnv("DAY_OVERRIDE_FILE", "day_overrides.yaml"),
		},
	}, nil
}

func loadPush() (PushConfig, error) {
	ttl, err := time.ParseDuration(getEnv("PUSH_TTL", "1h"))
	if err != nil {
		return PushConfig{}, fmt.Errorf("invalid PUSH_TTL: %w", err)
	}

	concurrency, err := strconv.Atoi(getEnv("PUSH_WORKER_CONCURRENCY", "4"))
	if err != nil {
		return PushConfig{}, fmt.Errorf("invalid PUSH_WORKER_CONCURRENCY: %w", err)
	}

	if concurrency <= 0 {
		return PushConfig{}, fmt.Errorf("invalid PUSH_WORKER_CONCURRENCY: must be positive, got %d", concurrency)
	}

	window, err := loadWindow("PUSH_WORKER", domain.PresetWorker)
	if err != nil {
		return PushConfig{}, err
	}

	return PushConfig{
		VAPIDPublicKey:  os.Getenv("VAPID_PUBLIC_KEY"),
		VAPIDPrivateKey: os.Getenv("VAPID_PRIVATE_KEY"),
		Subscriber:      getEnv("VAPID_SUBSCRIBER", "mailto:admin@example.com"),
		TTL:             ttl,
		Concurrency:     concurrency,
		Window:          window,
	}, nil
}

func loadReminder() (ReminderConfig, error) {
	loc, err := time.LoadLocation(getEnv("TIMEZONE", "Asia/Kolkata"))
	if err != nil {
		return ReminderConfig{}, fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	window, err := loadWindow("REMINDER", domain.PresetClient)
	if err != nil {
		return ReminderConfig{}, err
	}

	tick, err := time.ParseDuration(getEnv("REMINDER_TICK_INTERVAL", "1m"))
	if err != nil {
		return ReminderConfig{}, fmt.Errorf("invalid REMINDER_TICK_INTERVAL: %w", err)
	}

	if tick <= 0 {
		return ReminderConfig{}, fmt.Errorf("invalid REMINDER_TICK_INTERVAL: must be positive, got %s", tick)
	}

	remap := map[domain.Weekday]domain.Weekday{}

	for key, from := range map[string]domain.Weekday{
		"WEEKEND_REMAP_SATURDAY": domain.Saturday,
		"WEEKEND_REMAP_SUNDAY":   domain.Sunday,
	} {
		v := os.Getenv(key)
		if v == "" {
			continue
		}

		to, err := domain.NewWeekday(v)
		if err != nil {
			return ReminderConfig{}, fmt.Errorf("invalid %s: %w", key, err)
		}

		remap[from] = to
	}

	return ReminderConfig{
		Location:     loc,
		Window:       window,
		TickInterval: tick,
		WeekendRemap: remap,
		URL:          getEnv("REMINDER_URL", "/timetable"),
	}, nil
}

// loadWindow reads <prefix>_PRESET and lets <prefix>_LOOKAHEAD and
// <prefix>_TOLERANCE override the preset's values.
func loadWindow(prefix string, defaultPreset domain.WindowPreset) (domain.ReminderWindow, error) {
	presetKey := prefix + "_PRESET"

	window, err := domain.PresetWindow(domain.WindowPreset(getEnv(presetKey, string(defaultPreset))))
	if err != nil {
		return domain.ReminderWindow{}, fmt.Errorf("invalid %s: %w", presetKey, err)
	}

	lookahead := window.Lookahead()
	if v := os.Getenv(prefix + "_LOOKAHEAD"); v != "" {
		if lookahead, err = time.ParseDuration(v); err != nil {
			return domain.ReminderWindow{}, fmt.Errorf("invalid %s_LOOKAHEAD: %w", prefix, err)
		}
	}

	tolerance := window.Tolerance()
	if v := os.Getenv(prefix + "_TOLERANCE"); v != "" {
		if tolerance, err = time.ParseDuration(v); err != nil {
			return domain.ReminderWindow{}, fmt.Errorf("invalid %s_TOLERANCE: %w", prefix, err)
		}
	}

	window, err = domain.NewReminderWindow(lookahead, tolerance)
	if err != nil {
		return domain.ReminderWindow{}, fmt.Errorf("invalid %s window: %w", prefix, err)
	}

	return window, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
