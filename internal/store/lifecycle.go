package store

// Phase представляет фазу асинхронной операции
type Phase int

const (
	PhasePending Phase = iota
	PhaseFulfilled
	PhaseRejected
)

func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseFulfilled:
		return "fulfilled"
	case PhaseRejected:
		return "rejected"
	}
	return "unknown"
}

// Outcome представляет результат одной фазы асинхронной операции.
// RequestID связывает pending с его завершением; пустой RequestID
// отключает проверку устаревания.
type Outcome[T any] struct {
	Phase     Phase
	RequestID string
	Value     T
	Err       string
}

// Pending создает outcome фазы pending
func Pending[T any](requestID string) Outcome[T] {
	return Outcome[T]{Phase: PhasePending, RequestID: requestID}
}

// Fulfilled создает outcome успешного завершения
func Fulfilled[T any](requestID string, value T) Outcome[T] {
	return Outcome[T]{Phase: PhaseFulfilled, RequestID: requestID, Value: value}
}

// Rejected создает outcome неуспешного завершения
func Rejected[T any](requestID string, message string) Outcome[T] {
	return Outcome[T]{Phase: PhaseRejected, RequestID: requestID, Err: message}
}

// loadable содержит общие для слайсов поля жизненного цикла
type loadable struct {
	IsLoading bool   `json:"isLoading"`
	Error     string `json:"error"`
}

func (l *loadable) begin() {
	l.IsLoading = true
	l.Error = ""
}

func (l *loadable) succeed() {
	l.IsLoading = false
}

func (l *loadable) fail(message string) {
	l.IsLoading = false
	l.Error = message
}

// stale сообщает, что завершение относится к устаревшему запросу
func stale(latest, requestID string) bool {
	return requestID != "" && latest != "" && requestID != latest
}
