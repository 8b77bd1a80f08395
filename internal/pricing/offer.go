// Package pricing resolves the price a customer pays for a catalog item given
// the promotional offers of the item's tenant.
//
// Everything in this package is pure: no I/O, no shared state. Callers fetch
// offers for the current tenant and pass them in the order they should be
// considered.
package pricing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Target is the kind of catalog item an offer (or an item) belongs to.
type Target string

const (
	TargetService Target = "service"
	TargetProduct Target = "product"
)

func ParseTarget(s string) (Target, error) {
	switch Target(s) {
	case TargetService, TargetProduct:
		return Target(s), nil
	}
	return "", fmt.Errorf("%w: unknown target %q", ErrInvalidOffer, s)
}

// Item is a service or product reduced to what pricing needs.
type Item struct {
	ID         string
	Kind       Target
	BasePrice  decimal.Decimal
	CategoryID *string
}

// Offer is a promotional rule as seen by the resolver. The administrative
// active flag is not part of it: inactive offers never reach pricing.
type Offer struct {
	ID          string
	Name        string
	Description string
	Target      Target
	Scope       Scope
	Discount    Discount
	StartDate   *time.Time
	EndDate     *time.Time
}

// DiscountType names the discount variant on the wire.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountAmount     DiscountType = "amount"
)

// Discount is either Percentage or Amount.
type Discount interface {
	Type() DiscountType
	Value() decimal.Decimal
	apply(base decimal.Decimal) decimal.Decimal
}

// Percentage takes Rate percent (0-100) off the base price.
type Percentage struct {
	Rate decimal.Decimal
}

func (p Percentage) Type() DiscountType     { return DiscountPercentage }
func (p Percentage) Value() decimal.Decimal { return p.Rate }

// Amount takes a fixed Off amount off the base price.
type Amount struct {
	Off decimal.Decimal
}

func (a Amount) Type() DiscountType     { return DiscountAmount }
func (a Amount) Value() decimal.Decimal { return a.Off }

// ParseDiscount builds a Discount from its stored representation.
// Negative values are rejected.
func ParseDiscount(kind string, value decimal.Decimal) (Discount, error) {
	if value.IsNegative() {
		return nil, fmt.Errorf("%w: negative discount value %s", ErrInvalidOffer, value)
	}
	switch DiscountType(kind) {
	case DiscountPercentage:
		return Percentage{Rate: value}, nil
	case DiscountAmount:
		return Amount{Off: value}, nil
	}
	return nil, fmt.Errorf("%w: unknown discount type %q", ErrInvalidOffer, kind)
}

// ScopeKind names the scope variant on the wire.
type ScopeKind string

const (
	ScopeAll        ScopeKind = "all"
	ScopeCategories ScopeKind = "categories"
	ScopeServices   ScopeKind = "services"
	ScopeProducts   ScopeKind = "products"
)

// Scope is AllScope, CategoryScope or ItemScope.
type Scope interface {
	Kind() ScopeKind
	covers(item Item) bool
}

// AllScope covers every item of the offer's target.
type AllScope struct{}

func (AllScope) Kind() ScopeKind    { return ScopeAll }
func (AllScope) covers(_ Item) bool { return true }

// CategoryScope covers items whose category is in the set.
type CategoryScope struct {
	ids map[string]struct{}
}

func NewCategoryScope(ids ...string) CategoryScope {
	return CategoryScope{ids: toSet(ids)}
}

func (CategoryScope) Kind() ScopeKind { return ScopeCategories }

func (s CategoryScope) covers(item Item) bool {
	if item.CategoryID == nil {
		return false
	}
	_, ok := s.ids[*item.CategoryID]
	return ok
}

// Len reports how many categories the scope names.
func (s CategoryScope) Len() int { return len(s.ids) }

// ItemScope covers an explicit set of services or products.
type ItemScope struct {
	kind Target
	ids  map[string]struct{}
}

func NewItemScope(kind Target, ids ...string) ItemScope {
	return ItemScope{kind: kind, ids: toSet(ids)}
}

func (s ItemScope) Kind() ScopeKind {
	if s.kind == TargetProduct {
		return ScopeProducts
	}
	return ScopeServices
}

func (s ItemScope) covers(item Item) bool {
	if s.kind != item.Kind {
		return false
	}
	_, ok := s.ids[item.ID]
	return ok
}

// Len reports how many items the scope names.
func (s ItemScope) Len() int { return len(s.ids) }

// ParseScope builds a Scope from its stored representation. A categories or
// items scope with an empty id set, or an items scope whose kind disagrees
// with the offer target, is rejected.
func ParseScope(kind string, target Target, categoryIDs, itemIDs []string) (Scope, error) {
	switch ScopeKind(kind) {
	case ScopeAll:
		return AllScope{}, nil
	case ScopeCategories:
		if len(categoryIDs) == 0 {
			return nil, fmt.Errorf("%w: categories scope without category ids", ErrInvalidOffer)
		}
		return NewCategoryScope(categoryIDs...), nil
	case ScopeServices, ScopeProducts:
		itemKind := TargetService
		if ScopeKind(kind) == ScopeProducts {
			itemKind = TargetProduct
		}
		if itemKind != target {
			return nil, fmt.Errorf("%w: %s scope on %s offer", ErrInvalidOffer, kind, target)
		}
		if len(itemIDs) == 0 {
			return nil, fmt.Errorf("%w: %s scope without item ids", ErrInvalidOffer, kind)
		}
		return NewItemScope(itemKind, itemIDs...), nil
	}
	return nil, fmt.Errorf("%w: unknown scope %q", ErrInvalidOffer, kind)
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
