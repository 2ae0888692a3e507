package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"farmshop/domain/catalog"
	"farmshop/domain/order"
	"farmshop/domain/shipping"
	apperrors "farmshop/pkg/errors"
	"farmshop/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Calculator computes line-item prices and shipping fees. It has no side
// effects: it only reads products and delivery offerings. An optional
// redis client caches product rows; every cache path is nil-safe so the
// calculator works without redis.
type Calculator struct {
	products    catalog.Repository
	shipping    shipping.Repository
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewCalculator(products catalog.Repository, shippingRepo shipping.Repository) *Calculator {
	return &Calculator{
		products: products,
		shipping: shippingRepo,
		cacheTTL: time.Minute,
	}
}

// SetRedisClient enables the product read-through cache.
func (c *Calculator) SetRedisClient(client *redis.Client, ttl time.Duration) {
	c.redisClient = client
	if ttl > 0 {
		c.cacheTTL = ttl
	}
}

// PriceLineItem returns unit price times quantity for the given product.
func (c *Calculator) PriceLineItem(ctx context.Context, productID string, quantity int) (float64, error) {
	product, err := c.getProductWithCache(ctx, productID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			return 0, apperrors.ProductNotFound(productID)
		}
		return 0, err
	}
	return product.Price * float64(quantity), nil
}

// ShippingFee returns the fixed price of the pickup or home-delivery
// offering identified by shippingID, depending on mode.
func (c *Calculator) ShippingFee(ctx context.Context, shippingID string, mode order.DeliveryMode) (float64, error) {
	switch mode {
	case order.ModeHomeDelivery:
		delivery, err := c.shipping.FindHomeDelivery(ctx, shippingID)
		if err != nil {
			if errors.Is(err, shipping.ErrHomeDeliveryNotFound) {
				return 0, apperrors.ShippingNotFound(shippingID)
			}
			return 0, err
		}
		return delivery.Price, nil
	case order.ModePickup:
		pickup, err := c.shipping.FindPickup(ctx, shippingID)
		if err != nil {
			if errors.Is(err, shipping.ErrPickupNotFound) {
				return 0, apperrors.ShippingNotFound(shippingID)
			}
			return 0, err
		}
		return pickup.Price, nil
	default:
		return 0, apperrors.Validation("unknown delivery mode")
	}
}

func (c *Calculator) getProductWithCache(ctx context.Context, productID string) (*catalog.Product, error) {
	cacheKey := fmt.Sprintf("product:%s", productID)

	if c.redisClient != nil {
		cached, err := c.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var product catalog.Product
			if err := json.Unmarshal([]byte(cached), &product); err == nil {
				return &product, nil
			}
		}
	}

	product, err := c.products.FindProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if c.redisClient != nil {
		if data, err := json.Marshal(product); err == nil {
			if err := c.redisClient.Set(ctx, cacheKey, data, c.cacheTTL).Err(); err != nil {
				logger.Warn("failed to cache product", zap.String("product_id", productID), zap.Error(err))
			}
		}
	}

	return product, nil
}
