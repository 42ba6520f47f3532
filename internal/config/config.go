package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Стратегии выдачи номеров отслеживания
const (
	TrackingIDSequence = "sequence"
	TrackingIDRandom   = "random"
)

// Pricing содержит тарифы и надбавки в рупиях
type Pricing struct {
	RateRegular        int64
	RateExpress        int64
	RateSameDay        int64
	InsuranceSurcharge int64
	InterCitySurcharge int64
	CityMatch          string // exact или normalized
}

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress     string        // Адрес и порт запуска сервиса
	DatabaseURI    string        // URI подключения к БД
	DBMaxConns     int32         // Размер пула соединений, 0 = значение pgxpool
	CarrierAddress string        // Адрес API отслеживания перевозчика, пусто = воркер выключен
	CarrierTimeout time.Duration // Таймаут запроса к перевозчику
	JWTSecret      string        // Секретный ключ для JWT
	JWTTokenTTL    time.Duration // Время жизни JWT токена
	LogLevel       string        // Уровень логирования

	// Worker Pool конфигурация
	WorkerPoolSize     int
	WorkerQueueSize    int
	WorkerScanInterval time.Duration

	Pricing Pricing

	SignupCredit       int64         // Стартовый кредит при регистрации
	MaxTopUp           int64         // Максимум одного пополнения, 0 = без ограничения
	SessionTTL         time.Duration // Время жизни неактивной сессии
	TrackingCacheTTL   time.Duration
	TrackingIDStrategy string

	RedisAddr    string   // Пусто = кэш в памяти процесса
	KafkaBrokers []string // Пусто = события пишутся в лог
	KafkaTopic   string

	RateLimit float64 // Запросов в секунду с одного IP, 0 = без ограничения
	RateBurst int

	MinPasswordLength int
}

// Load загружает конфигурацию из .env файла, флагов и переменных окружения
// Приоритет: env переменные > .env > флаги > дефолтные значения
func Load() (*Config, error) {
	return LoadFrom(os.Args[1:])
}

// LoadFrom загружает конфигурацию с заданными аргументами командной строки
func LoadFrom(args []string) (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	cfg := defaults()

	flags := flag.NewFlagSet("shipexpress", flag.ContinueOnError)
	flags.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "address and port to run server")
	flags.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	flags.StringVar(&cfg.CarrierAddress, "r", "", "carrier tracking API address")
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("config: failed to parse flags: %w", err)
	}

	var errs []error
	lookupString("RUN_ADDRESS", &cfg.RunAddress)
	lookupString("DATABASE_URI", &cfg.DatabaseURI)
	lookupString("CARRIER_ADDRESS", &cfg.CarrierAddress)
	lookupString("JWT_SECRET", &cfg.JWTSecret)
	lookupString("LOG_LEVEL", &cfg.LogLevel)
	lookupString("CITY_MATCH", &cfg.Pricing.CityMatch)
	lookupString("TRACKING_ID_STRATEGY", &cfg.TrackingIDStrategy)
	lookupString("REDIS_ADDR", &cfg.RedisAddr)
	lookupString("KAFKA_TOPIC", &cfg.KafkaTopic)

	if brokers, ok := os.LookupEnv("KAFKA_BROKERS"); ok {
		cfg.KafkaBrokers = splitList(brokers)
	}

	errs = append(errs,
		lookupInt("WORKER_POOL_SIZE", &cfg.WorkerPoolSize),
		lookupInt("WORKER_QUEUE_SIZE", &cfg.WorkerQueueSize),
		lookupInt("MIN_PASSWORD_LENGTH", &cfg.MinPasswordLength),
		lookupInt("RATE_BURST", &cfg.RateBurst),
		lookupInt32("DB_MAX_CONNS", &cfg.DBMaxConns),
		lookupDuration("WORKER_SCAN_INTERVAL", &cfg.WorkerScanInterval),
		lookupDuration("CARRIER_TIMEOUT", &cfg.CarrierTimeout),
		lookupDuration("JWT_TOKEN_TTL", &cfg.JWTTokenTTL),
		lookupDuration("SESSION_TTL", &cfg.SessionTTL),
		lookupDuration("TRACKING_CACHE_TTL", &cfg.TrackingCacheTTL),
		lookupInt64("RATE_REGULAR", &cfg.Pricing.RateRegular),
		lookupInt64("RATE_EXPRESS", &cfg.Pricing.RateExpress),
		lookupInt64("RATE_SAMEDAY", &cfg.Pricing.RateSameDay),
		lookupInt64("INSURANCE_SURCHARGE", &cfg.Pricing.InsuranceSurcharge),
		lookupInt64("INTERCITY_SURCHARGE", &cfg.Pricing.InterCitySurcharge),
		lookupInt64("SIGNUP_CREDIT", &cfg.SignupCredit),
		lookupInt64("MAX_TOPUP", &cfg.MaxTopUp),
		lookupFloat("RATE_LIMIT", &cfg.RateLimit),
	)

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		RunAddress:         ":8080",
		CarrierTimeout:     10 * time.Second,
		JWTSecret:          "default-secret-key-change-in-production",
		JWTTokenTTL:        24 * time.Hour,
		LogLevel:           "info",
		WorkerPoolSize:     3,
		WorkerQueueSize:    100,
		WorkerScanInterval: 10 * time.Second,
		Pricing: Pricing{
			RateRegular:        8000,
			RateExpress:        15000,
			RateSameDay:        25000,
			InsuranceSurcharge: 5000,
			InterCitySurcharge: 2000,
			CityMatch:          "exact",
		},
		MaxTopUp:           1_000_000,
		SessionTTL:         30 * time.Minute,
		TrackingCacheTTL:   30 * time.Second,
		TrackingIDStrategy: TrackingIDSequence,
		KafkaTopic:         "shipment.authorized",
		RateLimit:          20,
		RateBurst:          40,
		MinPasswordLength:  6,
	}
}

func (c *Config) validate() error {
	if c.DatabaseURI == "" {
		return fmt.Errorf("database URI is required (use -d flag or DATABASE_URI env)")
	}

	if c.Pricing.RateRegular <= 0 || c.Pricing.RateExpress <= 0 || c.Pricing.RateSameDay <= 0 {
		return fmt.Errorf("config: tier rates must be positive")
	}
	if c.Pricing.InsuranceSurcharge < 0 || c.Pricing.InterCitySurcharge < 0 {
		return fmt.Errorf("config: surcharges must not be negative")
	}

	switch c.Pricing.CityMatch {
	case "exact", "normalized":
	default:
		return fmt.Errorf("config: unknown CITY_MATCH %q", c.Pricing.CityMatch)
	}

	switch c.TrackingIDStrategy {
	case TrackingIDSequence, TrackingIDRandom:
	default:
		return fmt.Errorf("config: unknown TRACKING_ID_STRATEGY %q", c.TrackingIDStrategy)
	}

	if c.DBMaxConns < 0 {
		return fmt.Errorf("config: DB_MAX_CONNS must not be negative")
	}
	if c.SignupCredit < 0 || c.MaxTopUp < 0 {
		return fmt.Errorf("config: SIGNUP_CREDIT and MAX_TOPUP must not be negative")
	}
	if c.WorkerPoolSize <= 0 || c.WorkerQueueSize <= 0 || c.WorkerScanInterval <= 0 {
		return fmt.Errorf("config: worker pool settings must be positive")
	}

	return nil
}

// loadDotEnv читает файл из CONFIG_FILE или .env в текущем каталоге.
// Уже заданные переменные окружения не перезаписываются.
func loadDotEnv() error {
	if path, ok := os.LookupEnv("CONFIG_FILE"); ok {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("config: failed to load %s: %w", path, err)
		}
		return nil
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: failed to load .env: %w", err)
	}
	return nil
}

func lookupString(key string, dst *string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

func lookupInt(key string, dst *int) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("config: invalid %s %q: %w", key, v, err)
	}
	*dst = n
	return nil
}

func lookupInt32(key string, dst *int32) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return fmt.Errorf("config: invalid %s %q: %w", key, v, err)
	}
	*dst = int32(n)
	return nil
}

func lookupInt64(key string, dst *int64) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fmt.Errorf("config: invalid %s %q: %w", key, v, err)
	}
	*dst = n
	return nil
}

func lookupFloat(key string, dst *float64) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("config: invalid %s %q: %w", key, v, err)
	}
	*dst = f
	return nil
}

func lookupDuration(key string, dst *time.Duration) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("config: invalid %s %q: %w", key, v, err)
	}
	*dst = d
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
