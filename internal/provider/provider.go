// Package provider définit la source de données du classement et ses décorateurs.
package provider

import (
	"context"
	"errors"
	"fmt"

	model "github.com/MassBabyGeek/RankPro-backend/internal/models"
)

// ErrNotFound : le joueur n'a pas d'entrée de ligue (cas normal pour un joueur non classé)
var ErrNotFound = errors.New("league entry not found")

// ProviderError enveloppe une panne du provider (réseau, base, décodage)
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Wrap convertit err en *ProviderError. nil, ErrNotFound et les erreurs déjà
// enveloppées sont retournées telles quelles.
func Wrap(op string, err error) error {
	if err == nil || errors.Is(err, ErrNotFound) {
		return err
	}
	var pe *ProviderError
	if errors.As(err, &pe) {
		return err
	}
	return &ProviderError{Op: op, Err: err}
}

// IsUnavailable indique une panne du provider (à afficher comme "indisponible")
func IsUnavailable(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}

// Provider est la source asynchrone des snapshots. Les slices retournés sont
// des snapshots immuables : les appelants ne les modifient pas.
type Provider interface {
	GetDivisions(ctx context.Context) ([]model.Division, error)
	GetEntries(ctx context.Context, ratingType model.RatingType) ([]model.LeaderboardEntry, error)
	GetLeagueEntryForPlayer(ctx context.Context, playerID int) (model.LeaderboardEntry, error)
	// GetLadder1v1Stats : le filtre sur le nombre minimum de parties est déjà appliqué
	GetLadder1v1Stats(ctx context.Context) ([]model.RatingStat, error)
	// GetPlayerRating : ErrNotFound si le joueur n'a pas de rating de ce type
	GetPlayerRating(ctx context.Context, playerID int, ratingType model.RatingType) (model.RatingSnapshot, error)
	// GetDivisionEntries retourne les entrées de ligue des sous-divisions données
	GetDivisionEntries(ctx context.Context, majorIndex int, subIndexes []int) ([]model.LeaderboardEntry, error)
}
