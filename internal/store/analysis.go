package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/jonathan/careerbridge/internal/types"
)

// SaveAnalysis persists a CV analysis snapshot, replacing any prior snapshot.
func (s *Store) SaveAnalysis(ctx context.Context, snapshot types.SavedAnalysis) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode analysis snapshot: %w", err)
	}
	return s.Put(ctx, KeySavedAnalysis, string(data))
}

// LoadAnalysis returns the saved analysis snapshot, or nil when none has been
// saved. A corrupt snapshot is treated as absent (logged, not surfaced).
func (s *Store) LoadAnalysis(ctx context.Context) (*types.SavedAnalysis, error) {
	raw, ok, err := s.Get(ctx, KeySavedAnalysis)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var snapshot types.SavedAnalysis
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		log.Printf("Saved analysis is corrupt, treating as absent: %v", err)
		return nil, nil
	}
	return &snapshot, nil
}
