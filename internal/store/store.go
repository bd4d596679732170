package store

import (
	"context"
	"log"
	"sync"

	"github.com/jfcamacho/vuelacol/internal/models"
)

// Flag identifies one of the transient loading-overlay booleans.
type Flag int

const (
	FlagSearchingFlights Flag = iota
	FlagGeneratingFlights
	FlagNavigatingToCheckout
	FlagNavigatingToPayment
)

// Store holds one TripState per session. Every page of the flow reads and
// writes through it; mutations are serialized per store so a selection write
// is always visible to the very next read (last write wins).
//
// Live states are the source of truth while the process runs; every mutation
// is also written through to Persistence so the trip survives reloads.
type Store struct {
	mu      sync.Mutex
	states  map[string]*models.TripState
	persist Persistence
}

func New(persist Persistence) *Store {
	return &Store{
		states:  make(map[string]*models.TripState),
		persist: persist,
	}
}

// Get returns a snapshot of the session's state, creating it with defaults on
// first access.
func (s *Store) Get(ctx context.Context, sessionID string) *models.TripState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx, sessionID).Clone()
}

// UpdateSearchInfo shallow-merges a partial update into the search criteria.
// Changing the route, trip type or dates invalidates the generated catalog
// and both selections; keeping a flight that was chosen for a different
// search is the footgun this store refuses to carry.
func (s *Store) UpdateSearchInfo(ctx context.Context, sessionID string, req models.SearchUpdateRequest) (*models.TripState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.loadLocked(ctx, sessionID)
	merged := mergeSearchInfo(state.SearchInfo, req)

	if err := models.ValidateSearchInfo(merged); err != nil {
		return nil, err
	}

	if criteriaChanged(state.SearchInfo, merged) {
		state.GeneratedFlights = nil
		state.SelectedFlight = nil
		state.SelectedReturnFlight = nil
	}
	state.SearchInfo = merged

	s.persistLocked(ctx, sessionID, state)
	return state.Clone(), nil
}

// SetSelectedFlight stores the outbound leg snapshot. The selection is
// trusted as-is; it was denormalized out of the catalog by the caller.
func (s *Store) SetSelectedFlight(ctx context.Context, sessionID string, sel models.Selection) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.loadLocked(ctx, sessionID)
	state.SelectedFlight = &sel
	s.persistLocked(ctx, sessionID, state)
}

// SetSelectedReturnFlight stores the return leg snapshot.
func (s *Store) SetSelectedReturnFlight(ctx context.Context, sessionID string, sel models.Selection) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.loadLocked(ctx, sessionID)
	state.SelectedReturnFlight = &sel
	s.persistLocked(ctx, sessionID, state)
}

// SetGeneratedFlights memoizes a generation result for its route+date.
func (s *Store) SetGeneratedFlights(ctx context.Context, sessionID string, catalog models.GeneratedCatalog) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.loadLocked(ctx, sessionID)
	state.GeneratedFlights = &catalog
	s.persistLocked(ctx, sessionID, state)
}

// SetFlag toggles one loading-overlay flag.
func (s *Store) SetFlag(ctx context.Context, sessionID string, flag Flag, value bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.loadLocked(ctx, sessionID)
	switch flag {
	case FlagSearchingFlights:
		state.Flags.IsSearchingFlights = value
	case FlagGeneratingFlights:
		state.Flags.IsGeneratingFlights = value
	case FlagNavigatingToCheckout:
		state.Flags.IsNavigatingToCheckout = value
	case FlagNavigatingToPayment:
		state.Flags.IsNavigatingToPayment = value
	}
	s.persistLocked(ctx, sessionID, state)
}

// Reset discards the session's trip entirely.
func (s *Store) Reset(ctx context.Context, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.states, sessionID)
	if err := s.persist.Delete(ctx, sessionID); err != nil {
		log.Printf("store: delete %s failed: %v", sessionID, err)
	}
}

func (s *Store) loadLocked(ctx context.Context, sessionID string) *models.TripState {
	if state, ok := s.states[sessionID]; ok {
		return state
	}

	state, ok := s.persist.Load(ctx, sessionID)
	if ok {
		// Flags were persisted incidentally; a reload must never come
		// back stuck behind a loading overlay.
		state.Flags = models.Flags{}
	} else {
		state = models.NewTripState()
	}

	s.states[sessionID] = state
	return state
}

func (s *Store) persistLocked(ctx context.Context, sessionID string, state *models.TripState) {
	if err := s.persist.Save(ctx, sessionID, state); err != nil {
		log.Printf("store: persist %s failed: %v", sessionID, err)
	}
}

func mergeSearchInfo(info models.SearchInfo, req models.SearchUpdateRequest) models.SearchInfo {
	if req.TripType != nil {
		info.TripType = *req.TripType
		if info.TripType == models.TripTypeOneWay {
			info.EndDate = ""
		}
	}
	if req.Origin != nil {
		o := *req.Origin
		info.Origin = &o
	}
	if req.Destination != nil {
		d := *req.Destination
		info.Destination = &d
	}
	if req.StartDate != nil {
		info.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		info.EndDate = *req.EndDate
	}
	if req.Adults != nil {
		info.Adults = *req.Adults
	}
	if req.Children != nil {
		info.Children = *req.Children
	}
	if req.ChildAges != nil {
		info.ChildAges = append([]int(nil), (*req.ChildAges)...)
	}
	return info
}

func criteriaChanged(old, updated models.SearchInfo) bool {
	return locationCode(old.Origin) != locationCode(updated.Origin) ||
		locationCode(old.Destination) != locationCode(updated.Destination) ||
		old.TripType != updated.TripType ||
		old.StartDate != updated.StartDate ||
		old.EndDate != updated.EndDate
}

func locationCode(l *models.Location) string {
	if l == nil {
		return ""
	}
	return l.Code
}
