package memory

import (
	"fmt"
	"sync"
	"sync/atomic"

	"propshare/internal/adapters/observability"
	"propshare/internal/domain"
)

// Store keeps the listing collection as a chain of immutable snapshots. Writers are
// serialised by mu; readers load the current snapshot without locking.
type Store struct {
	mu   sync.Mutex
	snap atomic.Pointer[domain.Snapshot]
}

func New(listings []domain.Listing, sections []domain.LandingSection) *Store {
	ls := make([]domain.Listing, 0, len(listings))
	for _, l := range listings {
		ls = append(ls, l.Normalize().Clone())
	}
	ss := make([]domain.LandingSection, len(sections))
	copy(ss, sections)

	s := &Store{}
	s.snap.Store(&domain.Snapshot{Version: 1, Listings: ls, Sections: ss})
	observability.SetCatalogListings(len(ls))
	return s
}

// Snapshot returns a copy of the current snapshot; changing it does not reach the store.
func (s *Store) Snapshot() domain.Snapshot {
	cur := s.snap.Load()
	ss := make([]domain.LandingSection, len(cur.Sections))
	copy(ss, cur.Sections)
	return domain.Snapshot{Version: cur.Version, Listings: cloneAll(cur.Listings), Sections: ss}
}

// List returns copies of the current listings in store order.
func (s *Store) List() []domain.Listing { return cloneAll(s.snap.Load().Listings) }

func cloneAll(ls []domain.Listing) []domain.Listing {
	out := make([]domain.Listing, 0, len(ls))
	for _, l := range ls {
		out = append(out, l.Clone())
	}
	return out
}

func (s *Store) Get(id int64) (domain.Listing, error) {
	for _, l := range s.snap.Load().Listings {
		if l.ID == id {
			return l.Clone(), nil
		}
	}
	return domain.Listing{}, notFound(id)
}

func (s *Store) Create(l domain.Listing) (domain.Listing, error) {
	l = l.Normalize().Clone()
	if err := l.Validate(); err != nil {
		return domain.Listing{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cur := s.snap.Load()

	var maxID int64
	for _, x := range cur.Listings {
		if x.ID > maxID {
			maxID = x.ID
		}
	}
	l.ID = maxID + 1

	next := make([]domain.Listing, len(cur.Listings), len(cur.Listings)+1)
	copy(next, cur.Listings)
	next = append(next, l)
	s.commit(cur, next, cur.Sections)
	return l.Clone(), nil
}

func (s *Store) Update(id int64, l domain.Listing) (domain.Listing, error) {
	l = l.Normalize().Clone()
	l.ID = id
	if err := l.Validate(); err != nil {
		return domain.Listing{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cur := s.snap.Load()

	i := indexOf(cur.Listings, id)
	if i < 0 {
		return domain.Listing{}, notFound(id)
	}
	next := make([]domain.Listing, len(cur.Listings))
	copy(next, cur.Listings)
	next[i] = l
	s.commit(cur, next, cur.Sections)
	return l.Clone(), nil
}

func (s *Store) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := s.snap.Load()

	i := indexOf(cur.Listings, id)
	if i < 0 {
		return notFound(id)
	}
	next := make([]domain.Listing, 0, len(cur.Listings)-1)
	next = append(next, cur.Listings[:i]...)
	next = append(next, cur.Listings[i+1:]...)
	s.commit(cur, next, cur.Sections)
	return nil
}

func (s *Store) SetFeatured(id int64, featured bool) (domain.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := s.snap.Load()

	i := indexOf(cur.Listings, id)
	if i < 0 {
		return domain.Listing{}, notFound(id)
	}
	next := make([]domain.Listing, len(cur.Listings))
	copy(next, cur.Listings)
	next[i].IsFeatured = featured
	s.commit(cur, next, cur.Sections)
	return next[i].Clone(), nil
}

func (s *Store) UpdateSection(key string, p domain.SectionPatch) (domain.LandingSection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := s.snap.Load()

	i := -1
	for j, sec := range cur.Sections {
		if sec.SectionKey == key {
			i = j
			break
		}
	}
	if i < 0 {
		return domain.LandingSection{}, fmt.Errorf("section %q: %w", key, domain.ErrNotFound)
	}
	next := make([]domain.LandingSection, len(cur.Sections))
	copy(next, cur.Sections)
	if p.IsVisible != nil {
		next[i].IsVisible = *p.IsVisible
	}
	if p.Order != nil {
		next[i].Order = *p.Order
	}
	if err := domain.ValidateSections(next); err != nil {
		return domain.LandingSection{}, err
	}
	s.commit(cur, cur.Listings, next)
	return next[i], nil
}

// commit must be called with mu held.
func (s *Store) commit(cur *domain.Snapshot, listings []domain.Listing, sections []domain.LandingSection) {
	s.snap.Store(&domain.Snapshot{Version: cur.Version + 1, Listings: listings, Sections: sections})
	observability.SetCatalogListings(len(listings))
}

func indexOf(ls []domain.Listing, id int64) int {
	for i, l := range ls {
		if l.ID == id {
			return i
		}
	}
	return -1
}

func notFound(id int64) error {
	return fmt.Errorf("listing %d: %w", id, domain.ErrNotFound)
}
