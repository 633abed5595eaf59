package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/prasetya/kumpul/internal/pkg/constants"
	"github.com/prasetya/kumpul/internal/pkg/models"
	"github.com/prasetya/kumpul/services/location"
)

// UpsertLiveLocation overwrites the user's single live record and keeps the
// geo index in line with it: only actively sharing users are indexed, so a
// radius scan never surfaces someone whose consent has lapsed at write time.
func (r *LocationRepo) UpsertLiveLocation(ctx context.Context, loc *models.LiveLocation) error {
	key := fmt.Sprintf(constants.KeyLiveLocation, loc.UserID)

	// The event roster tracks who currently shares into which event; a user
	// switching events has to leave the old roster first.
	prevEvent, err := r.redisClient.HGet(ctx, key, constants.FieldEventID)
	if err != nil && err != redis.Nil {
		return fmt.Errorf("failed to read previous event: %w", err)
	}

	fields := map[string]interface{}{
		constants.FieldLatitude:     strconv.FormatFloat(loc.Latitude, 'f', -1, 64),
		constants.FieldLongitude:    strconv.FormatFloat(loc.Longitude, 'f', -1, 64),
		constants.FieldAddress:      loc.Address,
		constants.FieldCity:         loc.City,
		constants.FieldState:        loc.State,
		constants.FieldCountry:      loc.Country,
		constants.FieldGeohash:      loc.Geohash,
		constants.FieldSharingLevel: string(loc.SharingLevel),
		constants.FieldEventID:      loc.EventID,
		constants.FieldIsAtEvent:    strconv.FormatBool(loc.IsAtEvent),
		constants.FieldUpdatedAt:    loc.UpdatedAt.Format(time.RFC3339Nano),
	}

	// Optional sensor fields overwrite or clear; a stale reading from the
	// previous record must not survive an update that omitted it.
	var missing []string
	setOptional := func(field string, v *float64) {
		if v != nil {
			fields[field] = strconv.FormatFloat(*v, 'f', -1, 64)
		} else {
			missing = append(missing, field)
		}
	}
	setOptional(constants.FieldAccuracy, loc.Accuracy)
	setOptional(constants.FieldHeading, loc.Heading)
	setOptional(constants.FieldSpeed, loc.Speed)
	setOptional(constants.FieldAltitude, loc.Altitude)
	setOptional(constants.FieldBattery, loc.BatteryLevel)

	if loc.SharingExpiresAt != nil {
		fields[constants.FieldSharingExpiresAt] = loc.SharingExpiresAt.Format(time.RFC3339Nano)
	} else {
		missing = append(missing, constants.FieldSharingExpiresAt)
	}

	if err := r.redisClient.HSet(ctx, key, fields); err != nil {
		return fmt.Errorf("failed to store live location: %w", err)
	}
	if len(missing) > 0 {
		if err := r.redisClient.HDel(ctx, key, missing...); err != nil {
			return fmt.Errorf("failed to clear stale location fields: %w", err)
		}
	}

	ttl := time.Duration(r.cfg.Location.LiveTTLHours) * time.Hour
	if err := r.redisClient.Expire(ctx, key, ttl); err != nil {
		return fmt.Errorf("failed to set live location TTL: %w", err)
	}

	if loc.IsActive {
		if err := r.redisClient.GeoAdd(ctx, constants.KeySharingGeo, loc.Longitude, loc.Latitude, loc.UserID); err != nil {
			return fmt.Errorf("failed to index location: %w", err)
		}
	} else {
		if err := r.redisClient.ZRem(ctx, constants.KeySharingGeo, loc.UserID); err != nil {
			return fmt.Errorf("failed to deindex location: %w", err)
		}
	}

	currentEvent := ""
	if loc.IsActive {
		currentEvent = loc.EventID
	}
	if prevEvent != "" && prevEvent != currentEvent {
		rosterKey := fmt.Sprintf(constants.KeyEventRoster, prevEvent)
		if err := r.redisClient.SRem(ctx, rosterKey, loc.UserID); err != nil {
			return fmt.Errorf("failed to leave event roster: %w", err)
		}
	}
	if currentEvent != "" {
		rosterKey := fmt.Sprintf(constants.KeyEventRoster, currentEvent)
		if err := r.redisClient.SAdd(ctx, rosterKey, loc.UserID); err != nil {
			return fmt.Errorf("failed to join event roster: %w", err)
		}
	}

	return nil
}

// GetLiveLocation loads the user's live record from the hot store.
func (r *LocationRepo) GetLiveLocation(ctx context.Context, userID string) (*models.LiveLocation, error) {
	key := fmt.Sprintf(constants.KeyLiveLocation, userID)

	data, err := r.redisClient.HGetAll(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load live location: %w", err)
	}
	if len(data) == 0 {
		return nil, location.ErrNotFound
	}

	return parseLiveLocation(userID, data)
}

// RemoveLiveLocation drops the user's live record, geo index entry and event
// roster membership.
func (r *LocationRepo) RemoveLiveLocation(ctx context.Context, userID string) error {
	key := fmt.Sprintf(constants.KeyLiveLocation, userID)

	prevEvent, err := r.redisClient.HGet(ctx, key, constants.FieldEventID)
	if err != nil && err != redis.Nil {
		return fmt.Errorf("failed to read previous event: %w", err)
	}

	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete live location: %w", err)
	}
	if err := r.redisClient.ZRem(ctx, constants.KeySharingGeo, userID); err != nil {
		return fmt.Errorf("failed to deindex location: %w", err)
	}
	if prevEvent != "" {
		rosterKey := fmt.Sprintf(constants.KeyEventRoster, prevEvent)
		if err := r.redisClient.SRem(ctx, rosterKey, userID); err != nil {
			return fmt.Errorf("failed to leave event roster: %w", err)
		}
	}
	return nil
}

// NearbyCandidates scans the geo index for users within the radius, nearest
// first. Results are raw index hits: visibility and freshness are the
// caller's problem.
func (r *LocationRepo) NearbyCandidates(ctx context.Context, lat, lng, radiusMeters float64) ([]*models.GeoCandidate, error) {
	hits, err := r.redisClient.GeoRadius(ctx, constants.KeySharingGeo, lng, lat, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("failed to query geo index: %w", err)
	}

	candidates := make([]*models.GeoCandidate, 0, len(hits))
	for _, hit := range hits {
		candidates = append(candidates, &models.GeoCandidate{
			UserID:    hit.Name,
			Latitude:  hit.Latitude,
			Longitude: hit.Longitude,
			Distance:  hit.Dist,
		})
	}
	return candidates, nil
}

// EventRoster returns the ids of users currently sharing into an event.
func (r *LocationRepo) EventRoster(ctx context.Context, eventID string) ([]string, error) {
	key := fmt.Sprintf(constants.KeyEventRoster, eventID)

	members, err := r.redisClient.SMembers(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load event roster: %w", err)
	}
	return members, nil
}

// GetBand returns the user's last observed distance band for an event. An
// unseen pair starts far, which arms arrival alerts from the first update.
func (r *LocationRepo) GetBand(ctx context.Context, userID, eventID string) (models.GeofenceBand, error) {
	key := fmt.Sprintf(constants.KeyGeofenceBand, userID)

	val, err := r.redisClient.HGet(ctx, key, eventID)
	if err == redis.Nil {
		return models.GeofenceBandFar, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load geofence band: %w", err)
	}
	return models.GeofenceBand(val), nil
}

// SetBand records the user's current distance band for an event.
func (r *LocationRepo) SetBand(ctx context.Context, userID, eventID string, band models.GeofenceBand) error {
	key := fmt.Sprintf(constants.KeyGeofenceBand, userID)

	if err := r.redisClient.HSet(ctx, key, map[string]interface{}{eventID: string(band)}); err != nil {
		return fmt.Errorf("failed to store geofence band: %w", err)
	}
	// Band state is only meaningful while the live record exists.
	ttl := time.Duration(r.cfg.Location.LiveTTLHours) * time.Hour
	if err := r.redisClient.Expire(ctx, key, ttl); err != nil {
		return fmt.Errorf("failed to set geofence band TTL: %w", err)
	}
	return nil
}

// ClearBand forgets the band for one event, e.g. when geofencing is disabled.
func (r *LocationRepo) ClearBand(ctx context.Context, userID, eventID string) error {
	key := fmt.Sprintf(constants.KeyGeofenceBand, userID)

	if err := r.redisClient.HDel(ctx, key, eventID); err != nil {
		return fmt.Errorf("failed to clear geofence band: %w", err)
	}
	return nil
}

func parseLiveLocation(userID string, data map[string]string) (*models.LiveLocation, error) {
	lat, err := strconv.ParseFloat(data[constants.FieldLatitude], 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt live location latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(data[constants.FieldLongitude], 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt live location longitude: %w", err)
	}

	loc := &models.LiveLocation{
		UserID:       userID,
		Latitude:     lat,
		Longitude:    lng,
		Address:      data[constants.FieldAddress],
		City:         data[constants.FieldCity],
		State:        data[constants.FieldState],
		Country:      data[constants.FieldCountry],
		Geohash:      data[constants.FieldGeohash],
		SharingLevel: models.SharingLevel(data[constants.FieldSharingLevel]),
		EventID:      data[constants.FieldEventID],
	}

	loc.Accuracy = parseOptionalFloat(data[constants.FieldAccuracy])
	loc.Heading = parseOptionalFloat(data[constants.FieldHeading])
	loc.Speed = parseOptionalFloat(data[constants.FieldSpeed])
	loc.Altitude = parseOptionalFloat(data[constants.FieldAltitude])
	loc.BatteryLevel = parseOptionalFloat(data[constants.FieldBattery])

	if v := data[constants.FieldIsAtEvent]; v != "" {
		loc.IsAtEvent, _ = strconv.ParseBool(v)
	}
	if v := data[constants.FieldSharingExpiresAt]; v != "" {
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			loc.SharingExpiresAt = &t
		}
	}
	if v := data[constants.FieldUpdatedAt]; v != "" {
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			loc.UpdatedAt = t
		}
	}

	return loc, nil
}

func parseOptionalFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
