package apiclient

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"
)

// SimulatedFailureMessage возвращается при искусственном сбое сети
const SimulatedFailureMessage = "simulated network failure"

// TransportConfig содержит параметры симуляции сети
type TransportConfig struct {
	MinDelay    time.Duration // Минимальная задержка ответа
	MaxDelay    time.Duration // Максимальная задержка ответа (не включительно)
	FailureRate float64       // Вероятность сбоя запроса, от 0 до 1
}

// Transport реализует http.RoundTripper, обслуживая запросы in-process
// через handler после случайной задержки
type Transport struct {
	handler http.Handler
	cfg     TransportConfig

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewTransport создает новый Transport
func NewTransport(handler http.Handler, cfg TransportConfig, rnd *rand.Rand) *Transport {
	return &Transport{
		handler: handler,
		cfg:     cfg,
		rnd:     rnd,
	}
}

// RoundTrip выполняет запрос с задержкой и возможным сбоем
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	delay, fail := t.roll()

	if delay > 0 {
		timer := time.NewTimer(delay)
		select {
		case <-req.Context().Done():
			timer.Stop()
			if req.Body != nil {
				req.Body.Close()
			}
			return nil, req.Context().Err()
		case <-timer.C:
		}
	}

	rec := httptest.NewRecorder()
	if fail {
		rec.Header().Set("Content-Type", "application/json")
		rec.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(rec).Encode(errorBody{
			Message: SimulatedFailureMessage,
			Status:  http.StatusServiceUnavailable,
		})
	} else {
		rec = t.serve(req)
	}
	if req.Body != nil {
		req.Body.Close()
	}

	resp := rec.Result()
	resp.Request = req
	return resp, nil
}

// serve выполняет запрос через handler; паника обработчика превращается в 500
func (t *Transport) serve(req *http.Request) (rec *httptest.ResponseRecorder) {
	rec = httptest.NewRecorder()
	defer func() {
		if p := recover(); p != nil {
			rec = httptest.NewRecorder()
			rec.Header().Set("Content-Type", "application/json")
			rec.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(rec).Encode(errorBody{
				Message: fmt.Sprintf("simulator panic: %v", p),
				Status:  http.StatusInternalServerError,
			})
		}
	}()
	t.handler.ServeHTTP(rec, req)
	return rec
}

func (t *Transport) roll() (time.Duration, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delay := t.cfg.MinDelay
	if spread := t.cfg.MaxDelay - t.cfg.MinDelay; spread > 0 {
		delay += time.Duration(t.rnd.Int64N(int64(spread)))
	}
	fail := t.cfg.FailureRate > 0 && t.rnd.Float64() < t.cfg.FailureRate
	return delay, fail
}
