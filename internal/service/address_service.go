package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"casamx/internal/ban"
	"casamx/internal/cache"
	apperrors "casamx/internal/errors"
	"casamx/internal/model"
	"casamx/internal/repository"
)

const suggestionCacheTTL = 15 * time.Minute

// metersPerDegree approximates one degree of latitude.
const metersPerDegree = 111320.0

// Selection is a BAN suggestion the caller chose to persist locally.
type Selection struct {
	Label      string
	PostalCode *string
	City       *string
	Lat        *float64
	Lng        *float64
}

// AddressResult is a local address enriched with an optional distance to a
// reference point.
type AddressResult struct {
	ID         uuid.UUID `json:"id"`
	Address    string    `json:"address"`
	PostalCode *string   `json:"postal_code,omitempty"`
	City       *string   `json:"city,omitempty"`
	Lat        *float64  `json:"lat,omitempty"`
	Lng        *float64  `json:"lng,omitempty"`
	DistanceM  *float64  `json:"distance_m,omitempty"`
}

// AddressService proxies BAN autocomplete and manages the local address
// index.
type AddressService interface {
	Autocomplete(ctx context.Context, query string, limit int) ([]ban.Suggestion, error)
	LogSelection(ctx context.Context, sel Selection) (*model.Address, error)
	Search(ctx context.Context, query string, limit int, lat, lng *float64) ([]AddressResult, error)
	Near(ctx context.Context, lat, lng float64, radiusM, limit int) ([]AddressResult, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Address, error)
}

type addressService struct {
	addresses repository.AddressRepository
	banClient ban.Client
	cache     *cache.Client
}

// NewAddressService creates the address service.
func NewAddressService(addresses repository.AddressRepository, banClient ban.Client, cacheClient *cache.Client) AddressService {
	return &addressService{
		addresses: addresses,
		banClient: banClient,
		cache:     cacheClient,
	}
}

func suggestionCacheKey(query string, limit int) string {
	return fmt.Sprintf("ban:q:%s:%d", strings.ToLower(strings.TrimSpace(query)), limit)
}

// Autocomplete serves BAN suggestions, caching each (query, limit) pair so
// repeated keystrokes don't hammer the upstream service.
func (s *addressService) Autocomplete(ctx context.Context, query string, limit int) ([]ban.Suggestion, error) {
	key := suggestionCacheKey(query, limit)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached []ban.Suggestion
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	suggestions, err := s.banClient.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(suggestions); err == nil {
		_ = s.cache.Set(ctx, key, payload, suggestionCacheTTL)
	}
	return suggestions, nil
}

// LogSelection persists a chosen suggestion into the local address index,
// reusing an existing row with the same (address, postal_code, city)
// signature.
func (s *addressService) LogSelection(ctx context.Context, sel Selection) (*model.Address, error) {
	label := strings.TrimSpace(sel.Label)
	if label == "" {
		return nil, fmt.Errorf("empty address label")
	}

	existing, err := s.addresses.FindBySignature(ctx, label, sel.PostalCode, sel.City)
	if err == nil {
		return existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("lookup address: %w", err)
	}

	address := &model.Address{
		Address:    label,
		PostalCode: sel.PostalCode,
		City:       sel.City,
		Lat:        sel.Lat,
		Lng:        sel.Lng,
	}
	if err := s.addresses.Create(ctx, address); err != nil {
		return nil, fmt.Errorf("create address: %w", err)
	}
	return address, nil
}

// Search matches the local index on address, city or postal code. When a
// reference point is given, results carry a distance and are sorted by it.
func (s *addressService) Search(ctx context.Context, query string, limit int, lat, lng *float64) ([]AddressResult, error) {
	pattern := "%" + strings.TrimSpace(query) + "%"
	addresses, err := s.addresses.SearchLike(ctx, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("search addresses: %w", err)
	}

	results := make([]AddressResult, 0, len(addresses))
	for _, a := range addresses {
		r := toResult(a)
		if lat != nil && lng != nil && a.Lat != nil && a.Lng != nil {
			d := distanceMeters(*lat, *lng, *a.Lat, *a.Lng)
			r.DistanceM = &d
		}
		results = append(results, r)
	}

	if lat != nil && lng != nil {
		sort.SliceStable(results, func(i, j int) bool {
			// rows without coordinates sort last
			if results[i].DistanceM == nil {
				return false
			}
			if results[j].DistanceM == nil {
				return true
			}
			return *results[i].DistanceM < *results[j].DistanceM
		})
	}
	return results, nil
}

// Near returns geocoded addresses within radiusM of the reference point,
// closest first.
func (s *addressService) Near(ctx context.Context, lat, lng float64, radiusM, limit int) ([]AddressResult, error) {
	// coarse bounding box, refined by the exact distance below
	latDelta := float64(radiusM) / metersPerDegree
	lngDelta := latDelta / math.Cos(lat*math.Pi/180)

	addresses, err := s.addresses.ListGeocodedWithin(ctx, lat-latDelta, lat+latDelta, lng-lngDelta, lng+lngDelta)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}

	results := make([]AddressResult, 0, len(addresses))
	for _, a := range addresses {
		d := distanceMeters(lat, lng, *a.Lat, *a.Lng)
		if d > float64(radiusM) {
			continue
		}
		r := toResult(a)
		r.DistanceM = &d
		results = append(results, r)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return *results[i].DistanceM < *results[j].DistanceM
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func (s *addressService) FindByID(ctx context.Context, id uuid.UUID) (*model.Address, error) {
	address, err := s.addresses.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrAddressNotFound
		}
		return nil, fmt.Errorf("find address: %w", err)
	}
	return address, nil
}

func toResult(a model.Address) AddressResult {
	return AddressResult{
		ID:         a.ID,
		Address:    a.Address,
		PostalCode: a.PostalCode,
		City:       a.City,
		Lat:        a.Lat,
		Lng:        a.Lng,
	}
}

// distanceMeters is an equirectangular approximation, plenty for sorting
// addresses at city scale.
func distanceMeters(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := lat1 - lat2
	dLng := (lng1 - lng2) * math.Cos(lat1*math.Pi/180)
	return metersPerDegree * math.Sqrt(dLat*dLat+dLng*dLng)
}
