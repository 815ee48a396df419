package usecase

import (
	"context"
	"strings"
)

// ownedRecord is implemented by every entity scoped to a single owning user.
type ownedRecord interface {
	GetID() string
	GetOwnerID() string
}

type softDeletable interface {
	IsDeleted() bool
}

type Ownership int

const (
	OwnershipNotFound Ownership = iota
	OwnershipNotOwned
	OwnershipFound
)

func (o Ownership) String() string {
	switch o {
	case OwnershipFound:
		return "found"
	case OwnershipNotOwned:
		return "not-owned"
	default:
		return "not-found"
	}
}

// Owned is the tagged result of an owned lookup. Record is only meaningful when State is OwnershipFound.
type Owned[T ownedRecord] struct {
	Record T
	State  Ownership
}

// lookupOwned fetches a record by id and classifies it against the caller.
// Soft-deleted records are reported as not found.
func lookupOwned[T ownedRecord](ctx context.Context, ownerID, id string, get func(context.Context, string) (T, error)) (Owned[T], error) {
	var zero T
	id = strings.TrimSpace(id)
	if id == "" {
		return Owned[T]{State: OwnershipNotFound}, nil
	}

	rec, err := get(ctx, id)
	if err != nil {
		return Owned[T]{}, err
	}
	if rec.GetID() == "" {
		return Owned[T]{State: OwnershipNotFound}, nil
	}
	if d, ok := any(rec).(softDeletable); ok && d.IsDeleted() {
		return Owned[T]{State: OwnershipNotFound}, nil
	}
	if rec.GetOwnerID() != ownerID {
		return Owned[T]{Record: zero, State: OwnershipNotOwned}, nil
	}
	return Owned[T]{Record: rec, State: OwnershipFound}, nil
}

// requireOwned applies the single ownership policy: an absent record and a record owned by
// someone else produce the same error, so lookups never reveal other tenants' ids.
func requireOwned[T ownedRecord](ctx context.Context, ownerID, id string, get func(context.Context, string) (T, error), missing error) (T, error) {
	var zero T
	res, err := lookupOwned(ctx, ownerID, id, get)
	if err != nil {
		return zero, err
	}
	if res.State != OwnershipFound {
		return zero, missing
	}
	return res.Record, nil
}
