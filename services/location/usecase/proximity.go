package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/prasetya/kumpul/internal/pkg/logger"
	"github.com/prasetya/kumpul/internal/pkg/models"
	"github.com/prasetya/kumpul/internal/utils"
	"github.com/prasetya/kumpul/services/location"
)

// NearbyUsers returns visibility-filtered users around the viewer's own live
// position, nearest first with user id as the tiebreak. The geo index only
// yields candidates; consent and freshness are re-checked per user here, so
// a lapsed share never leaks through a stale index entry.
func (uc *LocationUC) NearbyUsers(ctx context.Context, viewerID string, radiusMeters float64) ([]*models.NearbyUser, error) {
	radius, err := uc.clampRadius(radiusMeters)
	if err != nil {
		return nil, err
	}

	viewer, err := uc.locationRepo.GetLiveLocation(ctx, viewerID)
	if errors.Is(err, location.ErrNotFound) {
		return nil, location.ErrLocationUnknown
	}
	if err != nil {
		return nil, err
	}

	candidates, err := uc.locationRepo.NearbyCandidates(ctx, viewer.Latitude, viewer.Longitude, radius)
	if err != nil {
		return nil, err
	}

	results := []*models.NearbyUser{}
	for _, candidate := range candidates {
		if candidate.UserID == viewerID {
			continue
		}

		live, err := uc.locationRepo.GetLiveLocation(ctx, candidate.UserID)
		if errors.Is(err, location.ErrNotFound) {
			continue // index entry outlived the record
		}
		if err != nil {
			return nil, err
		}

		visible, err := uc.CanView(ctx, viewerID, live)
		if err != nil {
			logger.Warn("Visibility check failed, excluding user",
				logger.String("viewer_id", viewerID),
				logger.String("target_id", candidate.UserID),
				logger.Err(err))
			continue
		}
		if !visible {
			continue
		}

		// The index search and this recompute use slightly different Earth
		// radii, so boundary hits can land just outside the asked range.
		dist := utils.Distance(viewer.Latitude, viewer.Longitude, live.Latitude, live.Longitude)
		if dist > radius {
			continue
		}

		results = append(results, &models.NearbyUser{
			UserID:    live.UserID,
			Distance:  dist,
			LastSeen:  live.UpdatedAt,
			IsAtEvent: live.IsAtEvent,
			EventID:   live.EventID,
		})
	}

	uc.hydrateProfiles(ctx, results)
	sortNearby(results)
	return results, nil
}

// EventLocations returns everyone currently sharing into an event, with
// distance measured from the venue. The viewer must either share into the
// event themselves or host it.
func (uc *LocationUC) EventLocations(ctx context.Context, viewerID, eventID string) ([]*models.NearbyUser, error) {
	if eventID == "" {
		return nil, location.NewValidationError("event_id", "required")
	}

	event, err := uc.locationGW.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if event.HostID != viewerID {
		viewer, err := uc.locationRepo.GetLiveLocation(ctx, viewerID)
		if errors.Is(err, location.ErrNotFound) {
			return nil, location.ErrForbidden
		}
		if err != nil {
			return nil, err
		}
		if !sharingActive(viewer, time.Now()) || viewer.EventID != eventID {
			return nil, location.ErrForbidden
		}
	}

	roster, err := uc.locationRepo.EventRoster(ctx, eventID)
	if err != nil {
		return nil, err
	}

	results := []*models.NearbyUser{}
	for _, userID := range roster {
		if userID == viewerID {
			continue
		}

		live, err := uc.locationRepo.GetLiveLocation(ctx, userID)
		if errors.Is(err, location.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if !sharingActive(live, time.Now()) || live.EventID != eventID {
			continue
		}

		results = append(results, &models.NearbyUser{
			UserID:    live.UserID,
			Distance:  utils.Distance(event.VenueLatitude, event.VenueLongitude, live.Latitude, live.Longitude),
			LastSeen:  live.UpdatedAt,
			IsAtEvent: live.IsAtEvent,
			EventID:   live.EventID,
		})
	}

	uc.hydrateProfiles(ctx, results)
	sortNearby(results)
	return results, nil
}

func (uc *LocationUC) clampRadius(radiusMeters float64) (float64, error) {
	if radiusMeters < 0 {
		return 0, location.NewValidationError("radius", "must not be negative")
	}
	if radiusMeters == 0 {
		return uc.cfg.Location.DefaultRadiusMeters, nil
	}
	if radiusMeters > uc.cfg.Location.MaxRadiusMeters {
		return uc.cfg.Location.MaxRadiusMeters, nil
	}
	return radiusMeters, nil
}

// hydrateProfiles annotates results with names and avatars, best effort. A
// profile outage degrades the payload, it does not fail the query.
func (uc *LocationUC) hydrateProfiles(ctx context.Context, results []*models.NearbyUser) {
	if len(results) == 0 {
		return
	}

	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.UserID)
	}

	profiles, err := uc.locationGW.GetUserProfiles(ctx, ids)
	if err != nil {
		logger.Warn("Failed to load user profiles", logger.Err(err))
		return
	}

	for _, r := range results {
		if p, ok := profiles[r.UserID]; ok {
			r.Name = p.FullName
			r.ImageURL = p.ImageURL
		}
	}
}

func sortNearby(results []*models.NearbyUser) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].Distance != results[j].Distance {
			return results[i].Distance < results[j].Distance
		}
		return results[i].UserID < results[j].UserID
	})
}
