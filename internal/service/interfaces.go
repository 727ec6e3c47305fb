package service

import (
	"context"
	"time"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"

	"github.com/shopspring/decimal"
)

type CatalogRepository interface {
	ListDishes(ctx context.Context, q domain.DishQuery) ([]domain.Dish, int, error)
	GetDish(ctx context.Context, id int) (*domain.Dish, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	DishesByIDs(ctx context.Context, ids []int) ([]domain.Dish, error)
	DishesByTags(ctx context.Context, tags []string, limit int) ([]domain.Dish, error)
	PopularDishes(ctx context.Context, limit int) ([]domain.Dish, error)
	TopRatedDishes(ctx context.Context, limit int) ([]domain.Dish, error)
	DishesInCategories(ctx context.Context, categoryIDs, excludeIDs []int, limit int) ([]domain.Dish, error)
}

type HistoryRepository interface {
	RecentOrders(ctx context.Context, userID, limit int) ([]domain.Order, error)
	CoPurchasedDishIDs(ctx context.Context, userID int, seedDishIDs, excludeIDs []int, limit int) ([]int, error)
}

type FeedbackRepository interface {
	SaveFeedback(ctx context.Context, fb domain.Feedback) error
}

type WeatherProvider interface {
	Current(ctx context.Context) (*domain.Weather, error)
}

// OrderStore runs order mutations inside a single database transaction.
type OrderStore interface {
	InTx(ctx context.Context, fn func(tx OrderTx) error) error
	GetOrder(ctx context.Context, id int) (*domain.Order, error)
	ListUserOrders(ctx context.Context, userID int, status domain.OrderStatus, limit, offset int) ([]domain.Order, int, error)
	SaveQRCode(ctx context.Context, orderID int, qr []byte) error
	GetQRCode(ctx context.Context, orderID int) ([]byte, error)
}

type OrderTx interface {
	InsertOrder(ctx context.Context, order *domain.Order) error
	LockOrder(ctx context.Context, id int) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id int, status domain.OrderStatus) error
	MarkOrderPaid(ctx context.Context, id int) error
	MembershipTx
}

type MembershipTx interface {
	AddLifetimeSpend(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Membership, error)
	UpdateTier(ctx context.Context, userID int, tier domain.Tier, memberSince time.Time) error
}

type ReviewRepository interface {
	HasDeliveredPurchase(ctx context.Context, userID, dishID, orderID int) (bool, error)
	DeliveredOrderIDs(ctx context.Context, userID, dishID int) ([]int, error)
	ReviewedOrderIDs(ctx context.Context, userID, dishID int) ([]int, error)
	InsertReview(ctx context.Context, review *domain.Review) (float64, error)
	ListDishReviews(ctx context.Context, dishID, limit, offset int) ([]domain.Review, int, error)
}

type ReviewCache interface {
	ReviewMarkerKey(userID, dishID, orderID int) string
	Exists(ctx context.Context, key string) (bool, error)
	SetMarker(ctx context.Context, key string) error
}

type PopularityCache interface {
	TopToday(ctx context.Context, day time.Time, limit int) ([]domain.DishAnalytics, error)
}

type PopularityRepository interface {
	TopOrderedOn(ctx context.Context, day time.Time, limit int) ([]domain.DishAnalytics, error)
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, msg domain.KafkaMessage) error
	PublishReviewEvent(ctx context.Context, msg domain.KafkaMessage) error
}

type RecommendationServiceInterface interface {
	TimeBased(ctx context.Context, limit int, at HourRequest) (*TimeBasedResult, error)
	Personal(ctx context.Context, userID, limit int) (*PersonalResult, error)
	WeatherBased(ctx context.Context, limit int) (*WeatherResult, error)
	Smart(ctx context.Context, userID, limit int, at HourRequest) (*SmartResult, error)
	RecordFeedback(ctx context.Context, fb domain.Feedback) error
}

type OrderServiceInterface interface {
	Create(ctx context.Context, userID int, req domain.CreateOrderRequest) (*domain.CreateOrderResult, error)
	UpdateStatus(ctx context.Context, orderID int, status domain.OrderStatus) (*domain.StatusUpdateResult, error)
	Get(ctx context.Context, userID, orderID int) (*OrderView, error)
	ListMine(ctx context.Context, userID int, status domain.OrderStatus, page, pageSize int) (*OrderPage, error)
	QRCode(ctx context.Context, userID, orderID int) ([]byte, error)
}

type ComboServiceInterface interface {
	Quote(ctx context.Context, req ComboRequest) (*domain.ComboBundle, error)
	Suggestions(ctx context.Context) (*ComboSuggestions, error)
}

type CatalogServiceInterface interface {
	List(ctx context.Context, q domain.DishQuery) ([]domain.Dish, int, error)
	Get(ctx context.Context, id int) (*domain.Dish, error)
	Categories(ctx context.Context) ([]domain.Category, error)
	TrendingToday(ctx context.Context, limit int) ([]domain.DishAnalytics, error)
}

type ReviewServiceInterface interface {
	Create(ctx context.Context, review *domain.Review, explicitOrder bool) error
	ListDishReviews(ctx context.Context, dishID, limit, offset int) ([]domain.Review, int, error)
}

var (
	_ RecommendationServiceInterface = (*RecommendationService)(nil)
	_ OrderServiceInterface          = (*OrderService)(nil)
	_ ComboServiceInterface          = (*ComboService)(nil)
	_ CatalogServiceInterface        = (*CatalogService)(nil)
	_ ReviewServiceInterface         = (*ReviewService)(nil)
)
