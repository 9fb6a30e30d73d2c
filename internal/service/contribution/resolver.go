package contribution

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/suweldo-hr/suweldo-backend-go/internal/domain/contribution"
)

// CachingResolver resolves table versions by effective date and caches
// the result. Table resolution is read-only during a processing run, so
// one lookup per (kind, date) or (frequency, date) is enough for the
// whole batch.
type CachingResolver struct {
	repo contribution.TableRepository

	mu       sync.RWMutex
	brackets map[string]contribution.BracketTable
	taxes    map[string]contribution.TaxTable
}

func NewCachingResolver(repo contribution.TableRepository) *CachingResolver {
	return &CachingResolver{
		repo:     repo,
		brackets: make(map[string]contribution.BracketTable),
		taxes:    make(map[string]contribution.TaxTable),
	}
}

func cacheKey(a, b string) string { return a + "|" + b }

func (r *CachingResolver) Resolve(ctx context.Context, kind contribution.Kind, asOf time.Time) (contribution.BracketTable, error) {
	if !kind.Valid() {
		return contribution.BracketTable{}, contribution.ErrInvalidKind
	}

	key := cacheKey(string(kind), asOf.Format("2006-01-02"))
	r.mu.RLock()
	if table, ok := r.brackets[key]; ok {
		r.mu.RUnlock()
		return table, nil
	}
	r.mu.RUnlock()

	table, err := r.repo.GetBracketTable(ctx, kind, asOf)
	if err != nil {
		return contribution.BracketTable{}, fmt.Errorf("resolve %s table as of %s: %w", kind, asOf.Format("2006-01-02"), err)
	}

	r.mu.Lock()
	r.brackets[key] = table
	r.mu.Unlock()
	return table, nil
}

func (r *CachingResolver) ResolveTax(ctx context.Context, frequency contribution.PayFrequency, asOf time.Time) (contribution.TaxTable, error) {
	if !frequency.Valid() {
		return contribution.TaxTable{}, contribution.ErrInvalidFrequency
	}

	key := cacheKey(string(frequency), asOf.Format("2006-01-02"))
	r.mu.RLock()
	if table, ok := r.taxes[key]; ok {
		r.mu.RUnlock()
		return table, nil
	}
	r.mu.RUnlock()

	table, err := r.repo.GetTaxTable(ctx, frequency, asOf)
	if err != nil {
		return contribution.TaxTable{}, fmt.Errorf("resolve %s tax table as of %s: %w", frequency, asOf.Format("2006-01-02"), err)
	}

	r.mu.Lock()
	r.taxes[key] = table
	r.mu.Unlock()
	return table, nil
}

// Invalidate drops the cache, used after a new table version is
// published.
func (r *CachingResolver) Invalidate() {
	r.mu.Lock()
	r.brackets = make(map[string]contribution.BracketTable)
	r.taxes = make(map[string]contribution.TaxTable)
	r.mu.Unlock()
}

var _ contribution.Resolver = (*CachingResolver)(nil)
