package directory

import (
	"context"
	"fmt"
	"math/rand"
	"net/url"

	"github.com/aryanmangrule402/docassist/internal/doctors"
	"github.com/aryanmangrule402/docassist/internal/observability/metrics"
	"github.com/aryanmangrule402/docassist/internal/places"
	"github.com/aryanmangrule402/docassist/pkg/logging"
)

const (
	// supplementThreshold is the local-match count below which the places
	// API is consulted.
	supplementThreshold = 5
	// maxSupplementPlaces caps how many places results are considered.
	maxSupplementPlaces = 6
)

// PlacesSearcher is the external places-search dependency.
type PlacesSearcher interface {
	Search(ctx context.Context, query string) ([]places.Place, error)
}

// Service merges registered doctors with third-party clinic results.
type Service struct {
	doctors doctors.Repository
	search  PlacesSearcher
	logger  *logging.Logger
	metrics *metrics.Metrics
}

// NewService creates a discovery service. search may be nil when no places
// API key is configured; supplementation is then skipped.
func NewService(repo doctors.Repository, search PlacesSearcher, logger *logging.Logger, m *metrics.Metrics) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{doctors: repo, search: search, logger: logger, metrics: m}
}

// Search returns local matches (city exact, specialty substring) marked
// registered, supplemented from the places API when fewer than five local
// matches exist. Supplement failures are logged and swallowed; callers get
// whatever was collected.
func (s *Service) Search(ctx context.Context, specialty, city, query string) ([]Result, error) {
	local, err := s.doctors.SearchByCityAndSpecialty(ctx, city, specialty)
	if err != nil {
		return nil, fmt.Errorf("directory: local search: %w", err)
	}

	results := make([]Result, 0, len(local))
	seen := make(map[string]struct{}, len(local))
	for _, doc := range local {
		results = append(results, Result{
			ID:             doc.ID,
			Name:           doc.Name,
			Specialty:      doc.Specialty,
			HospitalName:   doc.HospitalName,
			Address:        doc.Address,
			City:           doc.City,
			Rating:         doc.Rating,
			GoogleMapsLink: doc.GoogleMapsLink,
			IsRegistered:   true,
		})
		seen[doc.HospitalName] = struct{}{}
	}

	if len(results) >= supplementThreshold || s.search == nil {
		return results, nil
	}

	q := fmt.Sprintf("%s in %s", specialty, city)
	if query != "" {
		q = fmt.Sprintf("%s for %s in %s", specialty, query, city)
	}

	found, err := s.search.Search(ctx, q)
	if err != nil {
		s.logger.Error("places search failed", "error", err, "query", q)
		return results, nil
	}

	if len(found) > maxSupplementPlaces {
		found = found[:maxSupplementPlaces]
	}

	added := 0
	for _, place := range found {
		title := place.Title
		if title == "" {
			title = "Unknown Clinic"
		}
		if _, dup := seen[title]; dup {
			continue
		}
		seen[title] = struct{}{}

		address := place.Address
		if address == "" {
			address = "Near " + city
		}
		rating := 4.0
		if place.Rating != nil {
			rating = *place.Rating
		}

		mapsQuery := place.Title
		if mapsQuery == "" {
			mapsQuery = "Clinic"
		}

		results = append(results, Result{
			// Transient id; collisions with real rows are tolerated.
			ID:             10000 + rand.Int63n(89999),
			Name:           specialty + " Specialist",
			Specialty:      specialty,
			HospitalName:   title,
			Address:        address,
			City:           city,
			Rating:         rating,
			GoogleMapsLink: "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(mapsQuery),
			IsRegistered:   false,
		})
		added++
	}
	s.metrics.ObserveSearchSupplement(added)

	return results, nil
}
