package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/avc/analytics-dashboard/internal/domain"
	"github.com/avc/analytics-dashboard/internal/store"
	"github.com/avc/analytics-dashboard/internal/view"
	"github.com/avc/analytics-dashboard/internal/worker"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// StateStore определяет методы хранилища, используемые хендлерами
type StateStore interface {
	Dispatch(action store.Action) error
	State() store.State
	Dashboard() store.DashboardState
	Orders() store.OrdersState
	Notifications() store.NotificationsState
	Search() store.SearchState
}

// Submitter ставит асинхронные операции в очередь
type Submitter interface {
	Submit(job worker.Job) error
}

// StoreHandler обслуживает чтение состояния, производные представления
// и запуск операций над хранилищем
type StoreHandler struct {
	store         StateStore
	dashboard     DashboardService
	orders        OrdersService
	notifications NotificationsService
	pool          Submitter
	controls      *view.Controls
	logger        *zap.Logger
}

// NewStoreHandler создает новый StoreHandler
func NewStoreHandler(
	st StateStore,
	dashboard DashboardService,
	orders OrdersService,
	notifications NotificationsService,
	pool Submitter,
	controls *view.Controls,
	logger *zap.Logger,
) *StoreHandler {
	return &StoreHandler{
		store:         st,
		dashboard:     dashboard,
		orders:        orders,
		notifications: notifications,
		pool:          pool,
		controls:      controls,
		logger:        logger,
	}
}

func (h *StoreHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

// dispatch синхронно применяет действие и возвращает обновленный слайс
func (h *StoreHandler) dispatch(w http.ResponseWriter, action store.Action, slice func() any) {
	if err := h.store.Dispatch(action); err != nil {
		h.logger.Error("failed to dispatch action", zap.String("type", action.Type()), zap.Error(err))
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}
	h.writeJSON(w, http.StatusOK, slice())
}

// State возвращает все дерево состояния
func (h *StoreHandler) State(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.State())
}

// Dashboard возвращает слайс дашборда
func (h *StoreHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.Dashboard())
}

// Orders возвращает слайс заказов
func (h *StoreHandler) Orders(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.Orders())
}

// Notifications возвращает слайс уведомлений
func (h *StoreHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.Notifications())
}

// Search возвращает слайс поиска
func (h *StoreHandler) Search(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.Search())
}

// Reset возвращает хранилище к начальному состоянию
func (h *StoreHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, store.Reset{}, func() any { return h.store.State() })
}

// OrdersViewResponse представляет производный список заказов
type OrdersViewResponse struct {
	Orders []domain.Order             `json:"orders"`
	Sort   view.Sort[view.OrderField] `json:"sort"`
	Term   string                     `json:"term"`
}

// OrdersView возвращает отфильтрованную и отсортированную страницу заказов.
// Без параметра sort используется сохраненная сортировка таблицы.
func (h *StoreHandler) OrdersView(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	sort := h.controls.Orders()
	if raw := query.Get("sort"); raw != "" {
		field, err := view.ParseOrderField(raw)
		if err != nil {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		dir, ok := parseDirection(query.Get("dir"))
		if !ok {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		sort = view.Sort[view.OrderField]{Field: field, Direction: dir}
	}

	state := h.store.State()
	q := view.OrderQuery{
		LocalTerm:  query.Get("q"),
		GlobalTerm: state.Search.GlobalSearchTerm,
		Sort:       sort,
	}

	term := q.LocalTerm
	if term == "" {
		term = q.GlobalTerm
	}

	h.writeJSON(w, http.StatusOK, OrdersViewResponse{
		Orders: view.Orders(state.Orders.Orders, q),
		Sort:   sort,
		Term:   term,
	})
}

// ProductsViewResponse представляет производный список товаров
type ProductsViewResponse struct {
	Products []domain.Product             `json:"products"`
	Sort     view.Sort[view.ProductField] `json:"sort"`
}

// ProductsView возвращает отфильтрованный и отсортированный список топ-товаров
func (h *StoreHandler) ProductsView(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	sort := h.controls.Products()
	if raw := query.Get("sort"); raw != "" {
		field, err := view.ParseProductField(raw)
		if err != nil {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		dir, ok := parseDirection(query.Get("dir"))
		if !ok {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		sort = view.Sort[view.ProductField]{Field: field, Direction: dir}
	}

	state := h.store.State()
	h.writeJSON(w, http.StatusOK, ProductsViewResponse{
		Products: view.Products(state.Dashboard.TopProducts, view.ProductQuery{
			GlobalTerm: state.Search.GlobalSearchTerm,
			Sort:       sort,
		}),
		Sort: sort,
	})
}

// parseDirection разбирает направление; пустое значение означает asc
func parseDirection(raw string) (view.Direction, bool) {
	if raw == "" {
		return view.Ascending, true
	}
	dir, err := view.ParseDirection(raw)
	if err != nil {
		return view.Unsorted, false
	}
	return dir, true
}

type sortRequest struct {
	Field string `json:"field"`
}

// ToggleOrdersSort переключает сортировку таблицы заказов
func (h *StoreHandler) ToggleOrdersSort(w http.ResponseWriter, r *http.Request) {
	var req sortRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	field, err := view.ParseOrderField(req.Field)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	h.writeJSON(w, http.StatusOK, h.controls.ToggleOrders(field))
}

// ToggleProductsSort переключает сортировку таблицы товаров
func (h *StoreHandler) ToggleProductsSort(w http.ResponseWriter, r *http.Request) {
	var req sortRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	field, err := view.ParseProductField(req.Field)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	h.writeJSON(w, http.StatusOK, h.controls.ToggleProducts(field))
}

// PatchMetrics частично обновляет метрики без запроса к API
func (h *StoreHandler) PatchMetrics(w http.ResponseWriter, r *http.Request) {
	var patch domain.MetricsPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	h.dispatch(w, store.UpdateMetrics{Patch: patch}, func() any { return h.store.Dashboard() })
}

// ClearDashboardError сбрасывает ошибку дашборда
func (h *StoreHandler) ClearDashboardError(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, store.ClearDashboardError{}, func() any { return h.store.Dashboard() })
}

type pageRequest struct {
	Page int `json:"page"`
}

// SetCurrentPage устанавливает текущую страницу заказов
func (h *StoreHandler) SetCurrentPage(w http.ResponseWriter, r *http.Request) {
	var req pageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Page < 1 {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	h.dispatch(w, store.SetCurrentPage{Page: req.Page}, func() any { return h.store.Orders() })
}

type selectRequest struct {
	ID *string `json:"id"`
}

// SetSelectedOrder выбирает заказ из загруженной страницы; id null снимает выбор
func (h *StoreHandler) SetSelectedOrder(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var selected *domain.Order
	if req.ID != nil {
		for _, o := range h.store.Orders().Orders {
			if o.ID == *req.ID {
				selected = &o
				break
			}
		}
		if selected == nil {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
	}

	h.dispatch(w, store.SetSelectedOrder{Order: selected}, func() any { return h.store.Orders() })
}

// ClearOrdersError сбрасывает ошибку заказов
func (h *StoreHandler) ClearOrdersError(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, store.ClearOrdersError{}, func() any { return h.store.Orders() })
}

// ClearNotificationsError сбрасывает ошибку уведомлений
func (h *StoreHandler) ClearNotificationsError(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, store.ClearNotificationsError{}, func() any { return h.store.Notifications() })
}

type termRequest struct {
	Term string `json:"term"`
}

// SetSearchTerm устанавливает глобальный поисковый запрос
func (h *StoreHandler) SetSearchTerm(w http.ResponseWriter, r *http.Request) {
	var req termRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	h.dispatch(w, store.SetGlobalSearchTerm{Term: req.Term}, func() any { return h.store.Search() })
}

// AddSearchHistory добавляет запрос в историю поиска
func (h *StoreHandler) AddSearchHistory(w http.ResponseWriter, r *http.Request) {
	var req termRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	h.dispatch(w, store.AddToSearchHistory{Term: req.Term}, func() any { return h.store.Search() })
}

// ClearSearchHistory очищает историю поиска
func (h *StoreHandler) ClearSearchHistory(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, store.ClearSearchHistory{}, func() any { return h.store.Search() })
}

// ClearSearch сбрасывает запрос и результаты, история сохраняется
func (h *StoreHandler) ClearSearch(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, store.ClearSearch{}, func() any { return h.store.Search() })
}

type loadingRequest struct {
	Loading bool `json:"loading"`
}

// SetDashboardLoading устанавливает флаг загрузки дашборда
func (h *StoreHandler) SetDashboardLoading(w http.ResponseWriter, r *http.Request) {
	var req loadingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	h.dispatch(w, store.SetDashboardLoading{Loading: req.Loading}, func() any { return h.store.Dashboard() })
}

// SetOrdersLoading устанавливает флаг загрузки заказов
func (h *StoreHandler) SetOrdersLoading(w http.ResponseWriter, r *http.Request) {
	var req loadingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	h.dispatch(w, store.SetOrdersLoading{Loading: req.Loading}, func() any { return h.store.Orders() })
}

// MarkNotificationReadLocal отмечает уведомление прочитанным без запроса к API
func (h *StoreHandler) MarkNotificationReadLocal(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, store.MarkAsRead{ID: chi.URLParam(r, "id")}, func() any { return h.store.Notifications() })
}

// MarkAllNotificationsReadLocal отмечает все уведомления прочитанными без запроса к API
func (h *StoreHandler) MarkAllNotificationsReadLocal(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, store.MarkAllAsRead{}, func() any { return h.store.Notifications() })
}

type connectionRequest struct {
	Connected bool `json:"connected"`
}

// SetRealTimeConnection устанавливает флаг живого подключения
func (h *StoreHandler) SetRealTimeConnection(w http.ResponseWriter, r *http.Request) {
	var req connectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	h.dispatch(w, store.SetRealTimeConnection{Connected: req.Connected}, func() any { return h.store.Notifications() })
}

type resultsRequest struct {
	Results []store.SearchResult `json:"results"`
}

// SetSearchResults заменяет результаты поиска
func (h *StoreHandler) SetSearchResults(w http.ResponseWriter, r *http.Request) {
	var req resultsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	h.dispatch(w, store.SetSearchResults{Results: req.Results}, func() any { return h.store.Search() })
}

type searchingRequest struct {
	Searching bool `json:"searching"`
}

// SetIsSearching устанавливает флаг активного поиска
func (h *StoreHandler) SetIsSearching(w http.ResponseWriter, r *http.Request) {
	var req searchingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	h.dispatch(w, store.SetIsSearching{Searching: req.Searching}, func() any { return h.store.Search() })
}

// queryPositive читает положительное целое из query; 0 при отсутствии
func queryPositive(r *http.Request, key string) (int, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, false
	}
	return v, true
}
