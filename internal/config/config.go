package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress string // Адрес и порт запуска сервиса
	LogLevel   string // Уровень логирования

	// Симулятор API
	SimulatorMinDelay    time.Duration // Минимальная задержка ответа
	SimulatorMaxDelay    time.Duration // Максимальная задержка ответа
	SimulatorFailureRate float64       // Вероятность искусственной ошибки

	// Живые уведомления
	RealTimeInterval        time.Duration // Период проверки новых уведомлений
	RealTimePushProbability float64       // Вероятность уведомления за период

	OrdersPageLimit int // Размер страницы заказов по умолчанию

	// Worker Pool конфигурация
	WorkerPoolSize         int           // Количество воркеров
	WorkerQueueSize        int           // Размер очереди операций
	MetricsRefreshInterval time.Duration // Интервал автообновления метрик, 0 отключает
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		RunAddress:              ":8080",
		LogLevel:                "info",
		SimulatorMinDelay:       500 * time.Millisecond,
		SimulatorMaxDelay:       1500 * time.Millisecond,
		SimulatorFailureRate:    0,
		RealTimeInterval:        10 * time.Second,
		RealTimePushProbability: 0.3,
		OrdersPageLimit:         10,
		WorkerPoolSize:          3,
		WorkerQueueSize:         100,
		MetricsRefreshInterval:  0,
	}
}

// Load загружает конфигурацию из .env, флагов командной строки и переменных окружения
// Приоритет: env переменные > флаги > дефолтные значения
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return Parse(os.Args[1:], os.LookupEnv)
}

// Parse разбирает аргументы и окружение поверх значений по умолчанию
func Parse(args []string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	flags := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	flags.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "address and port to run server")
	flags.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	flags.DurationVar(&cfg.SimulatorMinDelay, "min-delay", cfg.SimulatorMinDelay, "minimum simulated API delay")
	flags.DurationVar(&cfg.SimulatorMaxDelay, "max-delay", cfg.SimulatorMaxDelay, "maximum simulated API delay")
	flags.Float64Var(&cfg.SimulatorFailureRate, "failure-rate", cfg.SimulatorFailureRate, "simulated API failure probability")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	// Переменные окружения имеют приоритет над флагами
	if v, ok := lookupEnv("RUN_ADDRESS"); ok {
		cfg.RunAddress = v
	}

	if v, ok := lookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"SIMULATOR_MIN_DELAY", &cfg.SimulatorMinDelay},
		{"SIMULATOR_MAX_DELAY", &cfg.SimulatorMaxDelay},
		{"REALTIME_INTERVAL", &cfg.RealTimeInterval},
		{"METRICS_REFRESH_INTERVAL", &cfg.MetricsRefreshInterval},
	}
	for _, d := range durations {
		v, ok := lookupEnv(d.key)
		if !ok {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", d.key, err)
		}
		*d.dst = parsed
	}

	rates := []struct {
		key string
		dst *float64
	}{
		{"SIMULATOR_FAILURE_RATE", &cfg.SimulatorFailureRate},
		{"REALTIME_PUSH_PROBABILITY", &cfg.RealTimePushProbability},
	}
	for _, r := range rates {
		v, ok := lookupEnv(r.key)
		if !ok {
			continue
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", r.key, err)
		}
		*r.dst = parsed
	}

	// Размеры принимаются только положительными, иначе остается значение по умолчанию
	sizes := []struct {
		key string
		dst *int
	}{
		{"ORDERS_PAGE_LIMIT", &cfg.OrdersPageLimit},
		{"WORKER_POOL_SIZE", &cfg.WorkerPoolSize},
		{"WORKER_QUEUE_SIZE", &cfg.WorkerQueueSize},
	}
	for _, s := range sizes {
		if v, ok := lookupEnv(s.key); ok {
			if size, err := strconv.Atoi(v); err == nil && size > 0 {
				*s.dst = size
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность параметров
func (c *Config) Validate() error {
	if c.RunAddress == "" {
		return fmt.Errorf("run address is required (use -a flag or RUN_ADDRESS env)")
	}

	if c.SimulatorMinDelay < 0 || c.SimulatorMaxDelay < 0 {
		return fmt.Errorf("simulator delays must be non-negative")
	}

	if c.SimulatorMinDelay > c.SimulatorMaxDelay {
		return fmt.Errorf("simulator min delay %s exceeds max delay %s", c.SimulatorMinDelay, c.SimulatorMaxDelay)
	}

	if !validRate(c.SimulatorFailureRate) {
		return fmt.Errorf("simulator failure rate must be in [0, 1], got %v", c.SimulatorFailureRate)
	}

	if !validRate(c.RealTimePushProbability) {
		return fmt.Errorf("real-time push probability must be in [0, 1], got %v", c.RealTimePushProbability)
	}

	if c.RealTimeInterval <= 0 {
		return fmt.Errorf("real-time interval must be positive")
	}

	if c.MetricsRefreshInterval < 0 {
		return fmt.Errorf("metrics refresh interval must be non-negative")
	}

	return nil
}

// validRate проверяет, что вероятность лежит в [0, 1]; NaN недопустим
func validRate(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}
