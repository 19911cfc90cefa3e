// Package service contains the shared pool workflows
package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"wattpool/internal/core/normalize"
	"wattpool/internal/core/reference"
	perr "wattpool/internal/platform/errors"
	"wattpool/internal/platform/logger"
	"wattpool/internal/platform/net/http/bind"
	"wattpool/internal/services/entries/domain"
	"wattpool/internal/services/entries/repo"

	"github.com/google/uuid"
)

// Service defines the entries service contract
type Service interface {
	domain.ServicePort
}

// newID is a seam so tests can pin generated ids
var newID = uuid.NewString

// Svc implements the entries service
type Svc struct {
	Repo repo.Repo
	ref  *reference.Tables
}

// New constructs an entries service, a nil ref selects the built in tables
func New(r repo.Repo, ref *reference.Tables) *Svc {
	if r == nil {
		panic("entries.Service requires a non nil Repo")
	}
	if ref == nil {
		ref = reference.Defaults()
	}
	return &Svc{Repo: r, ref: ref}
}

// All returns one snapshot of the pool
func (s *Svc) All(ctx context.Context) ([]domain.Entry, error) {
	out, err := s.Repo.All(ctx)
	if err != nil {
		return nil, perr.Storage(err, "read entry pool")
	}
	return out, nil
}

// Get returns the public projection of one entry
func (s *Svc) Get(ctx context.Context, publicID string) (domain.Sanitized, error) {
	e, err := s.Repo.Get(ctx, strings.TrimSpace(publicID))
	if err != nil {
		return domain.Sanitized{}, perr.Storage(err, "get entry")
	}
	return e.Sanitize(), nil
}

// Create publishes a new entry with fresh ids
func (s *Svc) Create(ctx context.Context, in domain.Input) (domain.Keys, error) {
	if err := bind.Struct(in); err != nil {
		return domain.Keys{}, err
	}
	e, err := s.build(in)
	if err != nil {
		return domain.Keys{}, err
	}
	e.PublicID, e.PrivateID = newID(), newID()
	if err := s.Repo.Insert(ctx, e); err != nil {
		return domain.Keys{}, perr.Storage(err, "insert entry")
	}
	logger.C(ctx).Info().Str("public_id", e.PublicID).Str("region", e.Region).Int("appliances", len(e.Appliances)).Msg("entry published")
	return domain.Keys{PublicID: e.PublicID, PrivateID: e.PrivateID}, nil
}

// Replace swaps the contents of the entry owned by privateID, the public id is kept
func (s *Svc) Replace(ctx context.Context, privateID string, in domain.Input) (domain.Keys, error) {
	if err := bind.Struct(in); err != nil {
		return domain.Keys{}, err
	}
	privateID = strings.TrimSpace(privateID)
	if privateID == "" {
		return domain.Keys{}, perr.ErrNotFound
	}
	next, err := s.build(in)
	if err != nil {
		return domain.Keys{}, err
	}
	e, err := s.Repo.Replace(ctx, privateID, next)
	if err != nil {
		return domain.Keys{}, perr.Storage(err, "replace entry")
	}
	logger.C(ctx).Info().Str("public_id", e.PublicID).Msg("entry replaced")
	return domain.Keys{PublicID: e.PublicID, PrivateID: e.PrivateID}, nil
}

// Delete removes the entry owned by privateID
func (s *Svc) Delete(ctx context.Context, privateID string) error {
	privateID = strings.TrimSpace(privateID)
	if privateID == "" {
		return perr.ErrNotFound
	}
	if err := s.Repo.Delete(ctx, privateID); err != nil {
		return perr.Storage(err, "delete entry")
	}
	logger.C(ctx).Info().Msg("entry deleted")
	return nil
}

// Publish replaces the entry owned by privateID, or creates one when the id is
// empty or owns nothing; created reports which happened
func (s *Svc) Publish(ctx context.Context, privateID string, in domain.Input) (domain.Keys, bool, error) {
	if strings.TrimSpace(privateID) != "" {
		keys, err := s.Replace(ctx, privateID, in)
		if err == nil {
			return keys, false, nil
		}
		if !perr.IsCode(err, perr.ErrorCodeNotFound) {
			return domain.Keys{}, false, err
		}
		logger.C(ctx).Debug().Msg("publish: private id owns nothing, creating")
	}
	keys, err := s.Create(ctx, in)
	if err != nil {
		return domain.Keys{}, false, err
	}
	return keys, true, nil
}

// build maps an input onto an entry using catalog spellings where they match
// unknown regions and types are stored cleaned but otherwise as given and degrade to zero energy
func (s *Svc) build(in domain.Input) (domain.Entry, error) {
	e := domain.Entry{
		Address:    normalize.Text(in.Address),
		Region:     canonical(in.Region, s.ref.RegionCodes()),
		Appliances: make([]domain.Appliance, 0, len(in.Appliances)),
	}
	if e.Address == "" {
		return domain.Entry{}, perr.WithField(perr.New(perr.ErrorCodeValidation, "address must contain printable text"), "address")
	}
	names := s.ref.ApplianceNames()
	for i, a := range in.Appliances {
		if q := float64(a.Quantity); q != math.Trunc(q) {
			err := perr.New(perr.ErrorCodeValidation, "quantity must be a whole number")
			return domain.Entry{}, perr.WithField(err, fmt.Sprintf("appliances[%d].quantity", i))
		}
		e.Appliances = append(e.Appliances, domain.Appliance{
			Type:     canonical(a.Type, names),
			Hours:    a.Hours,
			Quantity: a.Quantity,
		})
	}
	return e, nil
}

func canonical(in string, options []string) string {
	if v, ok := normalize.Match(in, options...); ok {
		return v
	}
	return normalize.Text(in)
}
