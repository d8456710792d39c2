package store

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ErrStoreClosed возвращается при dispatch в остановленный store
var ErrStoreClosed = errors.New("store is closed")

// Action представляет изменение состояния. Реализации определены
// только в этом пакете, поэтому dispatch остается единственным
// способом изменить состояние.
type Action interface {
	Type() string
	apply(s *State, now time.Time)
}

// State представляет полное дерево состояния
type State struct {
	Dashboard     DashboardState     `json:"dashboard"`
	Orders        OrdersState        `json:"orders"`
	Notifications NotificationsState `json:"notifications"`
	Search        SearchState        `json:"search"`
}

// InitialState возвращает начальное состояние всех слайсов
func InitialState(now time.Time) State {
	return State{
		Dashboard:     initialDashboard(),
		Orders:        initialOrders(now),
		Notifications: initialNotifications(now),
		Search:        initialSearch(),
	}
}

func (s State) clone() State {
	return State{
		Dashboard:     s.Dashboard.clone(),
		Orders:        s.Orders.clone(),
		Notifications: s.Notifications.clone(),
		Search:        s.Search.clone(),
	}
}

// Reduce применяет действие к копии состояния и возвращает результат
func Reduce(state State, action Action, now time.Time) State {
	next := state.clone()
	action.apply(&next, now)
	return next
}

// Reset возвращает все слайсы к начальному состоянию
type Reset struct{}

func (Reset) Type() string { return "store/reset" }

func (Reset) apply(s *State, now time.Time) {
	*s = InitialState(now)
}

// Listener вызывается после применения каждого действия.
// Вызов происходит в горутине store, поэтому listener не должен
// вызывать Dispatch синхронно.
type Listener func(action Action)

type envelope struct {
	action  Action
	applied chan struct{}
}

// Option настраивает Store
type Option func(*Store)

// WithClock задает источник времени для временных меток
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLogger задает логгер
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// Store хранит дерево состояния и применяет действия в одной горутине
type Store struct {
	mu    sync.RWMutex
	state State

	actions chan envelope
	done    chan struct{}
	stopped chan struct{}
	once    sync.Once

	listenersMu  sync.Mutex
	listeners    map[int]Listener
	nextListener int

	now    func() time.Time
	logger *zap.Logger
}

// New создает store с начальным состоянием и запускает цикл обработки
func New(opts ...Option) *Store {
	s := &Store{
		actions:   make(chan envelope),
		done:      make(chan struct{}),
		stopped:   make(chan struct{}),
		listeners: make(map[int]Listener),
		now:       time.Now,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state = InitialState(s.now())

	go s.run()

	return s
}

// Dispatch передает действие в цикл обработки и ждет его применения
func (s *Store) Dispatch(action Action) error {
	env := envelope{action: action, applied: make(chan struct{})}

	select {
	case s.actions <- env:
	case <-s.done:
		return ErrStoreClosed
	}

	<-env.applied
	return nil
}

// Close останавливает цикл обработки
func (s *Store) Close() {
	s.once.Do(func() {
		close(s.done)
	})
	<-s.stopped
}

// Closed сообщает, остановлен ли цикл обработки
func (s *Store) Closed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

func (s *Store) run() {
	defer close(s.stopped)

	for {
		select {
		case <-s.done:
			return
		case env := <-s.actions:
			s.apply(env.action)
			close(env.applied)
		}
	}
}

func (s *Store) apply(action Action) {
	s.mu.Lock()
	action.apply(&s.state, s.now())
	s.mu.Unlock()

	s.logger.Debug("action applied", zap.String("type", action.Type()))

	s.listenersMu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.listenersMu.Unlock()

	for _, l := range listeners {
		l(action)
	}
}

// Subscribe регистрирует listener и возвращает функцию отписки
func (s *Store) Subscribe(l Listener) func() {
	s.listenersMu.Lock()
	id := s.nextListener
	s.nextListener++
	s.listeners[id] = l
	s.listenersMu.Unlock()

	return func() {
		s.listenersMu.Lock()
		delete(s.listeners, id)
		s.listenersMu.Unlock()
	}
}

// State возвращает копию всего дерева состояния
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Dashboard возвращает копию слайса дашборда
func (s *Store) Dashboard() DashboardState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Dashboard.clone()
}

// Orders возвращает копию слайса заказов
func (s *Store) Orders() OrdersState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Orders.clone()
}

// Notifications возвращает копию слайса уведомлений
func (s *Store) Notifications() NotificationsState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Notifications.clone()
}

// Search возвращает копию слайса поиска
func (s *Store) Search() SearchState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Search.clone()
}

// Select применяет селектор к текущему состоянию под блокировкой чтения.
// Селектор не должен сохранять ссылки на срезы состояния.
func Select[T any](s *Store, selector func(State) T) T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return selector(s.state)
}
