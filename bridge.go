package founder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Store is a key/value store where each domain is persisted under its own
// key.
type Store interface {
	// Get returns the value stored under key, and false if there is none.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set overwrites the value stored under key.
	Set(ctx context.Context, key string, value []byte) error
}

// QuarantineKey returns the key under which the values of domain d that could
// not be loaded are kept.
func QuarantineKey(d Domain) string { return string(d) + ".quarantine" }

// Bridge mirrors a State into a Store.
type Bridge struct {
	store Store
	log   zerolog.Logger
}

// NewBridge returns a Bridge persisting into store.
func NewBridge(store Store, logger zerolog.Logger) *Bridge {
	return &Bridge{store: store, log: logger}
}

// HydrateReport counts, per domain, the records loaded and quarantined by
// Hydrate.
type HydrateReport struct {
	Loaded      map[Domain]int
	Quarantined map[Domain]int
}

// Clean reports whether no record was quarantined.
func (r HydrateReport) Clean() bool {
	for _, n := range r.Quarantined {
		if n > 0 {
			return false
		}
	}
	return true
}

// Hydrate replaces the records of each domain in domains, or of all domains if
// none is given, with the ones found in the store. It must be called once,
// before any change to s.
//
// A domain with no stored value stays empty. Stored records that cannot be
// decoded are moved to the domain's quarantine key, and the domain is written
// back without them. Only store faults and unknown domains are returned as
// errors.
func (b *Bridge) Hydrate(ctx context.Context, s *State, domains ...Domain) (HydrateReport, error) {
	if len(domains) == 0 {
		domains = Domains
	}
	report := HydrateReport{
		Loaded:      make(map[Domain]int),
		Quarantined: make(map[Domain]int),
	}
	for _, d := range domains {
		m, err := s.module(d)
		if err != nil {
			return report, err
		}
		raw, found, err := b.store.Get(ctx, string(d))
		if err != nil {
			return report, fmt.Errorf("could not read %s: %w", d, err)
		}
		if !found || len(bytes.TrimSpace(raw)) == 0 {
			b.log.Debug().Str("domain", string(d)).Msg("no stored records")
			continue
		}

		bad := m.hydrate(raw)
		report.Loaded[d] = m.Len()
		b.log.Debug().Str("domain", string(d)).Int("records", m.Len()).Msg("hydrated")
		if len(bad) == 0 {
			continue
		}

		report.Quarantined[d] = len(bad)
		for _, q := range bad {
			b.log.Warn().Str("domain", string(d)).Err(q.reason).Msg("record quarantined")
		}
		if err := b.quarantine(ctx, d, bad); err != nil {
			return report, err
		}
		// write the domain back so that the same records are not quarantined twice.
		if err := b.Persist(ctx, s, d); err != nil {
			return report, err
		}
	}
	return report, nil
}

// quarantine appends values to the quarantine key of d.
func (b *Bridge) quarantine(ctx context.Context, d Domain, bad []quarantined) error {
	key := QuarantineKey(d)
	var values []json.RawMessage
	raw, found, err := b.store.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("could not read %s: %w", key, err)
	}
	if found {
		if err := json.Unmarshal(raw, &values); err != nil {
			// not an array anymore, keep it as a single value.
			text, _ := json.Marshal(string(raw))
			values = []json.RawMessage{text}
		}
	}
	for _, q := range bad {
		values = append(values, q.raw)
	}
	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("could not encode %s: %w", key, err)
	}
	if err := b.store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("could not write %s: %w", key, err)
	}
	return nil
}

// Persist writes the full sequence of each domain in domains, or of all
// domains if none is given.
func (b *Bridge) Persist(ctx context.Context, s *State, domains ...Domain) error {
	if len(domains) == 0 {
		domains = Domains
	}
	var errs error
	for _, d := range domains {
		m, err := s.module(d)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		data, err := m.encode()
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("could not encode %s: %w", d, err))
			continue
		}
		if err := b.store.Set(ctx, string(d), data); err != nil {
			errs = errors.Join(errs, fmt.Errorf("could not write %s: %w", d, err))
			continue
		}
		b.log.Debug().Str("domain", string(d)).Int("records", m.Len()).Msg("persisted")
	}
	return errs
}

// Attach persists every change made to s. Persistence errors are returned by
// the method that made the change.
func (b *Bridge) Attach(ctx context.Context, s *State) {
	s.OnChange(func(d Domain) error { return b.Persist(ctx, s, d) })
}
