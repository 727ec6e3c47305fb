package service

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"

	"go.uber.org/zap"
)

const maxCommentLength = 1000

type ReviewService struct {
	repository ReviewRepository
	cache      ReviewCache
	publisher  EventPublisher
	logger     *zap.Logger
}

func NewReviewService(repository ReviewRepository, cache ReviewCache, publisher EventPublisher, logger *zap.Logger) *ReviewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReviewService{
		repository: repository,
		cache:      cache,
		publisher:  publisher,
		logger:     logger,
	}
}

// Create stores a review for a dish the user received. Without an explicit
// order the most recent delivered, not yet reviewed order is used.
func (s *ReviewService) Create(ctx context.Context, review *domain.Review, explicitOrder bool) error {
	if review.Rating < 1 || review.Rating > 5 {
		return domain.Invalid("rating", "must be between 1 and 5")
	}
	if utf8.RuneCountInString(review.Comment) > maxCommentLength {
		return domain.Invalid("comment", fmt.Sprintf("must be at most %d characters", maxCommentLength))
	}

	if explicitOrder {
		ok, err := s.repository.HasDeliveredPurchase(ctx, review.UserID, review.DishID, review.OrderID)
		if err != nil {
			return fmt.Errorf("failed to validate order: %w", err)
		}
		if !ok {
			return domain.Invalid("order_id", "order is not delivered or does not contain this dish")
		}
	} else {
		orderID, err := s.nextReviewableOrder(ctx, review.UserID, review.DishID)
		if err != nil {
			return err
		}
		review.OrderID = orderID
	}

	var markerKey string
	if s.cache != nil {
		markerKey = s.cache.ReviewMarkerKey(review.UserID, review.DishID, review.OrderID)
		exists, err := s.cache.Exists(ctx, markerKey)
		if err != nil {
			s.logger.Warn("review marker lookup failed", zap.String("key", markerKey), zap.Error(err))
		}
		if exists {
			return fmt.Errorf("review already exists for this order: %w", domain.ErrConflict)
		}
	}

	avg, err := s.repository.InsertReview(ctx, review)
	if err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.SetMarker(ctx, markerKey); err != nil {
			s.logger.Warn("review marker write failed", zap.String("key", markerKey), zap.Error(err))
		}
	}

	if s.publisher != nil {
		err := s.publisher.PublishReviewEvent(ctx, domain.KafkaMessage{
			Type:      domain.EventNewReview,
			DishID:    review.DishID,
			OrderID:   review.OrderID,
			UserID:    review.UserID,
			Rating:    review.Rating,
			Timestamp: time.Now(),
		})
		if err != nil {
			s.logger.Error("failed to publish review event", zap.Int("dish_id", review.DishID), zap.Error(err))
		}
	}
	s.logger.Debug("review stored", zap.Int("dish_id", review.DishID), zap.Float64("rating_avg", avg))
	return nil
}

func (s *ReviewService) nextReviewableOrder(ctx context.Context, userID, dishID int) (int, error) {
	delivered, err := s.repository.DeliveredOrderIDs(ctx, userID, dishID)
	if err != nil {
		return 0, fmt.Errorf("failed to load delivered orders: %w", err)
	}
	if len(delivered) == 0 {
		return 0, domain.Invalid("dish_id", "only delivered purchases can be reviewed")
	}
	reviewed, err := s.repository.ReviewedOrderIDs(ctx, userID, dishID)
	if err != nil {
		return 0, fmt.Errorf("failed to load reviewed orders: %w", err)
	}
	done := make(map[int]struct{}, len(reviewed))
	for _, id := range reviewed {
		done[id] = struct{}{}
	}
	for _, id := range delivered {
		if _, ok := done[id]; !ok {
			return id, nil
		}
	}
	return 0, fmt.Errorf("every purchase of this dish is already reviewed: %w", domain.ErrConflict)
}

func (s *ReviewService) ListDishReviews(ctx context.Context, dishID, limit, offset int) ([]domain.Review, int, error) {
	if limit <= 0 || limit > maxListLimit {
		limit = DefaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.repository.ListDishReviews(ctx, dishID, limit, offset)
}
