package usecase

import (
	"sync"
	"time"

	"github.com/prasetya/kumpul/internal/pkg/logger"
	"github.com/prasetya/kumpul/internal/pkg/models"
	"github.com/prasetya/kumpul/internal/pkg/retry"
	"github.com/prasetya/kumpul/services/location"
)

// LocationUC implements the location use case interface
type LocationUC struct {
	cfg          *models.Config
	locationRepo location.LocationRepo
	locationGW   location.LocationGW
	retrier      *retry.Retrier

	// Per-user write serialization. Concurrent updates for the same user
	// must not interleave between the consent read and the store write;
	// updates for different users stay independent.
	lockMu    sync.Mutex
	userLocks map[string]*sync.Mutex
}

// NewLocationUC creates a new location use case
func NewLocationUC(
	cfg *models.Config,
	locationRepo location.LocationRepo,
	locationGW location.LocationGW,
) *LocationUC {
	// Bounded backoff for the history append, which rides on a live-path
	// request and must not stall it for long.
	retryCfg := retry.Config{
		MaxRetries:    2,
		BaseDelay:     20 * time.Millisecond,
		MaxDelay:      200 * time.Millisecond,
		Multiplier:    2.0,
		Jitter:        true,
		RetryableFunc: func(err error) bool { return true },
	}

	return &LocationUC{
		cfg:          cfg,
		locationRepo: locationRepo,
		locationGW:   locationGW,
		retrier:      retry.New(retryCfg, logger.GetGlobalLogger()),
		userLocks:    make(map[string]*sync.Mutex),
	}
}

func (uc *LocationUC) userLock(userID string) *sync.Mutex {
	uc.lockMu.Lock()
	defer uc.lockMu.Unlock()

	lock, ok := uc.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		uc.userLocks[userID] = lock
	}
	return lock
}
