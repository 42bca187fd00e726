package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/resorcera/course_api/dto"
	"github.com/resorcera/course_api/middleware"
	"github.com/resorcera/course_api/shared"
	log "github.com/sirupsen/logrus"
)

// RateLimitPolicy is a fixed window quota attached to a route.
type RateLimitPolicy struct {
	Name        string
	MaxRequests int
	Window      time.Duration
}

var (
	PolicyGeneralRead       = RateLimitPolicy{Name: "general_read", MaxRequests: 100, Window: 15 * time.Minute}
	PolicyCourseCreate      = RateLimitPolicy{Name: "course_create", MaxRequests: 10, Window: 15 * time.Minute}
	PolicyCourseUpdate      = RateLimitPolicy{Name: "course_update", MaxRequests: 20, Window: 15 * time.Minute}
	PolicyCourseDelete      = RateLimitPolicy{Name: "course_delete", MaxRequests: 10, Window: 15 * time.Minute}
	PolicyCourseInteraction = RateLimitPolicy{Name: "course_interaction", MaxRequests: 30, Window: 15 * time.Minute}
	PolicyUpload            = RateLimitPolicy{Name: "upload_pdf", MaxRequests: 5, Window: 15 * time.Minute}
	PolicyContact           = RateLimitPolicy{Name: "contact", MaxRequests: 5, Window: 60 * time.Minute}
	PolicyAdminLogin        = RateLimitPolicy{Name: "admin_login", MaxRequests: 10, Window: 15 * time.Minute}
)

const (
	RateLimitStoreMemory   = "memory"
	RateLimitStoreRedis    = "redis"
	RateLimitStorePostgres = "postgres"
)

const RATE_LIMIT_SVC = "rate_limit_svc"

// RateLimitService counts requests per client and policy in fixed windows.
// Entries are keyed rate_limit:<policy>:<client>, so each policy keeps its own
// quota for a client and exhausting one leaves the others untouched.
//
// Check holds mu across the read, compare and write of an entry, so within one
// process two requests from the same client can never both take the last slot.
// With a store shared between instances the same race exists across processes
// and the limit is approximate by up to one request per extra instance.
type RateLimitService struct {
	appContext.DefaultService

	storeKind string
	store     RateLimitStore
	now       func() time.Time

	mu sync.Mutex
}

func NewRateLimitService(store RateLimitStore, now func() time.Time) *RateLimitService {
	if now == nil {
		now = time.Now
	}
	return &RateLimitService{store: store, now: now}
}

func (svc *RateLimitService) Id() string {
	return RATE_LIMIT_SVC
}

func (svc *RateLimitService) Configure(ctx *appContext.Context) error {
	svc.storeKind = strings.ToLower(strings.TrimSpace(os.Getenv("RATE_LIMIT_STORE")))
	if svc.storeKind == "" {
		svc.storeKind = RateLimitStoreMemory
	}
	if svc.now == nil {
		svc.now = time.Now
	}
	return svc.DefaultService.Configure(ctx)
}

func (svc *RateLimitService) Start() error {
	if svc.store != nil {
		return nil
	}

	switch svc.storeKind {
	case RateLimitStoreMemory:
		svc.store = NewMemoryRateLimitStore()
	case RateLimitStoreRedis:
		redisSvc, ok := svc.Service(REDIS_SVC).(*RedisService)
		if !ok || redisSvc.GetClient() == nil {
			return fmt.Errorf("RATE_LIMIT_STORE=redis requires the redis service")
		}
		svc.store = NewRedisRateLimitStore(redisSvc.GetClient())
	case RateLimitStorePostgres:
		pgSvc, ok := svc.Service(POSTGRES_SVC).(*PostgresService)
		if !ok {
			return fmt.Errorf("RATE_LIMIT_STORE=postgres requires the postgres service")
		}
		svc.store = NewGormRateLimitStore(pgSvc.RateLimits())
	default:
		return fmt.Errorf("unknown RATE_LIMIT_STORE %q", svc.storeKind)
	}

	log.WithField("store", svc.storeKind).Info("Rate limiter started")
	return nil
}

func (svc *RateLimitService) Shutdown() {}

func rateLimitKey(policy RateLimitPolicy, clientKey string) string {
	return "rate_limit:" + policy.Name + ":" + clientKey
}

// Check admits or rejects one request from clientKey under policy. A rejection
// is returned as *shared.RateLimitError and does not consume quota.
func (svc *RateLimitService) Check(ctx context.Context, clientKey string, policy RateLimitPolicy) (dto.RateLimitInfo, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	now := svc.now()
	key := rateLimitKey(policy, clientKey)

	if err := svc.store.SweepExpired(ctx, now); err != nil {
		log.WithFields(log.Fields{"policy": policy.Name, "error": err.Error()}).Warn("Rate limit sweep failed")
	}

	entry, err := svc.store.Get(ctx, key)
	if err != nil {
		return svc.failOpen(policy, clientKey, now, err)
	}

	if entry == nil || now.After(entry.ResetAt) {
		fresh := RateLimitEntry{Count: 1, ResetAt: now.Add(policy.Window)}
		if err := svc.store.Set(ctx, key, fresh); err != nil {
			return svc.failOpen(policy, clientKey, now, err)
		}
		return svc.admitted(policy, fresh), nil
	}

	if entry.Count >= policy.MaxRequests {
		recordRateLimitDecision(policy.Name, false)
		return dto.RateLimitInfo{
			Allowed:   false,
			Limit:     policy.MaxRequests,
			Remaining: 0,
			ResetAt:   entry.ResetAt,
		}, shared.NewRateLimitError(policy.Name, policy.MaxRequests, entry.ResetAt)
	}

	entry.Count++
	if err := svc.store.Set(ctx, key, *entry); err != nil {
		return svc.failOpen(policy, clientKey, now, err)
	}
	return svc.admitted(policy, *entry), nil
}

func (svc *RateLimitService) admitted(policy RateLimitPolicy, entry RateLimitEntry) dto.RateLimitInfo {
	recordRateLimitDecision(policy.Name, true)
	remaining := policy.MaxRequests - entry.Count
	if remaining < 0 {
		remaining = 0
	}
	return dto.RateLimitInfo{
		Allowed:   true,
		Limit:     policy.MaxRequests,
		Remaining: remaining,
		ResetAt:   entry.ResetAt,
	}
}

// failOpen admits the request when the store cannot be reached.
func (svc *RateLimitService) failOpen(policy RateLimitPolicy, clientKey string, now time.Time, err error) (dto.RateLimitInfo, error) {
	log.WithFields(log.Fields{
		"policy": policy.Name,
		"client": clientKey,
		"error":  err.Error(),
	}).Error("Rate limit store unavailable, admitting request")

	recordRateLimitDecision(policy.Name, true)
	return dto.RateLimitInfo{
		Allowed:   true,
		Limit:     policy.MaxRequests,
		Remaining: policy.MaxRequests,
		ResetAt:   now.Add(policy.Window),
	}, nil
}

// RateLimit returns a fiber middleware enforcing policy per client key.
func (svc *RateLimitService) RateLimit(policy RateLimitPolicy) fiber.Handler {
	return func(c *fiber.Ctx) error {
		info, err := svc.Check(c.UserContext(), middleware.ClientKey(c), policy)
		middleware.SetRateLimitHeaders(c, info)
		if err != nil {
			var rlErr *shared.RateLimitError
			if errors.As(err, &rlErr) {
				retryAfter := int(math.Ceil(rlErr.RetryAfter(svc.now()).Seconds()))
				c.Set(fiber.HeaderRetryAfter, strconv.Itoa(retryAfter))
			}
			return err
		}
		return c.Next()
	}
}
