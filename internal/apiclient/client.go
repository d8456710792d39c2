package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"sync"
	"time"

	"github.com/avc/analytics-dashboard/internal/domain"
	"go.uber.org/zap"
)

const baseURL = "http://simulator.local/api"

// APIError представляет любую неуспешную операцию клиента
type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

type errorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Success bool            `json:"success"`
}

var (
	_ domain.DashboardAPI     = (*Client)(nil)
	_ domain.OrdersAPI        = (*Client)(nil)
	_ domain.NotificationsAPI = (*Client)(nil)
)

// Config содержит параметры клиента
type Config struct {
	Transport               TransportConfig
	RealTimeInterval        time.Duration // Интервал проверки живых уведомлений
	RealTimePushProbability float64       // Вероятность уведомления на каждом тике
}

// Client реализует domain.DashboardAPI, domain.OrdersAPI и domain.NotificationsAPI
type Client struct {
	httpClient *http.Client
	cfg        Config
	logger     *zap.Logger

	mu  sync.Mutex
	rnd *rand.Rand
}

// New создает клиент, обслуживающий запросы через handler в памяти процесса
func New(handler http.Handler, cfg Config, logger *zap.Logger) *Client {
	seed := uint64(time.Now().UnixNano())
	return NewWithRand(handler, cfg, rand.New(rand.NewPCG(seed, seed>>1)), logger)
}

// NewWithRand создает клиент с заданным генератором случайных чисел
func NewWithRand(handler http.Handler, cfg Config, rnd *rand.Rand, logger *zap.Logger) *Client {
	transportRnd := rand.New(rand.NewPCG(rnd.Uint64(), rnd.Uint64()))
	return &Client{
		httpClient: &http.Client{
			Transport: NewTransport(handler, cfg.Transport, transportRnd),
		},
		cfg:    cfg,
		logger: logger,
		rnd:    rnd,
	}
}

// do выполняет запрос и декодирует поле data конверта в out
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return &APIError{Message: fmt.Sprintf("api client: failed to encode request: %v", err), Status: http.StatusBadRequest, Err: err}
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, baseURL+path, reader)
	if err != nil {
		return &APIError{Message: fmt.Sprintf("api client: failed to create request: %v", err), Status: http.StatusInternalServerError, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("api request", zap.String("method", method), zap.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Message: err.Error(), Status: http.StatusInternalServerError, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var env envelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			return &APIError{Message: fmt.Sprintf("api client: failed to decode response: %v", err), Status: http.StatusInternalServerError, Err: err}
		}
		if out == nil || len(env.Data) == 0 {
			return nil
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &APIError{Message: fmt.Sprintf("api client: failed to decode data: %v", err), Status: http.StatusInternalServerError, Err: err}
		}
		return nil

	default:
		var e errorBody
		if err := json.NewDecoder(resp.Body).Decode(&e); err != nil || e.Message == "" {
			e.Message = fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
		}
		return &APIError{Message: e.Message, Status: resp.StatusCode}
	}
}

// chance возвращает true с вероятностью p
func (c *Client) chance(p float64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rnd.Float64() < p
}
