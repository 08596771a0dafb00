package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/jonathan/careerbridge/internal/types"
)

// LoadProfile returns the persisted user profile.
//
// Missing, unreadable, or unparseable data falls back silently to the empty
// default profile: a broken store must never block the user from the app.
// The underlying problem is logged for diagnosis.
func (s *Store) LoadProfile(ctx context.Context) types.UserProfile {
	raw, ok, err := s.Get(ctx, KeyUserProfile)
	if err != nil {
		log.Printf("Profile load failed, using default: %v", err)
		return types.DefaultProfile()
	}
	if !ok {
		return types.DefaultProfile()
	}

	var profile types.UserProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		log.Printf("Stored profile is corrupt, using default: %v", err)
		return types.DefaultProfile()
	}
	if profile.Skills == nil {
		profile.Skills = []string{}
	}
	return profile
}

// SaveProfile persists the profile wholesale. Idempotent; no validation is
// performed here — that is the gate's and the profile page's job.
func (s *Store) SaveProfile(ctx context.Context, profile types.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	return s.Put(ctx, KeyUserProfile, string(data))
}
