// Package policy decides whether an actor may perform an operation on a
// resource. Decisions are pure: no storage access, no request state.
package policy

import (
	"net/http"

	"github.com/google/uuid"

	"catalog-review-backend/internal/shared"
)

// VerbClass groups HTTP methods by whether they mutate state
type VerbClass int

const (
	Safe VerbClass = iota
	Unsafe
)

func ClassOf(method string) VerbClass {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return Safe
	}
	return Unsafe
}

// Kind is the resource family a request targets.
// Catalog covers categories, genres and titles; Authored covers reviews
// and comments.
type Kind int

const (
	Catalog Kind = iota
	Authored
	UserAdmin
	SelfProfile
)

// Tier is the minimum standing an actor needs
type Tier int

const (
	Public Tier = iota
	AuthenticatedOnly
	OwnerOrStaff
	AdminOnly
)

// Action distinguishes create from modification of an existing object,
// which only matters for authored resources.
type Action int

const (
	Read Action = iota
	Create
	Modify
)

type rule struct {
	kind   Kind
	class  VerbClass
	action Action
}

var table = map[rule]Tier{
	{Catalog, Safe, Read}:         Public,
	{Catalog, Unsafe, Create}:     AdminOnly,
	{Catalog, Unsafe, Modify}:     AdminOnly,
	{Authored, Safe, Read}:        Public,
	{Authored, Unsafe, Create}:    AuthenticatedOnly,
	{Authored, Unsafe, Modify}:    OwnerOrStaff,
	{UserAdmin, Safe, Read}:       AdminOnly,
	{UserAdmin, Unsafe, Create}:   AdminOnly,
	{UserAdmin, Unsafe, Modify}:   AdminOnly,
	{SelfProfile, Safe, Read}:     AuthenticatedOnly,
	{SelfProfile, Unsafe, Modify}: AuthenticatedOnly,
}

// Request describes one authorization question
type Request struct {
	Kind   Kind
	Class  VerbClass
	Action Action
	// Owner of the target object; uuid.Nil when there is no object yet
	Owner uuid.UUID
}

// TierFor returns the required tier. Unknown combinations require admin.
func TierFor(kind Kind, class VerbClass, action Action) Tier {
	if class == Safe {
		action = Read
	}
	if tier, ok := table[rule{kind, class, action}]; ok {
		return tier
	}
	return AdminOnly
}

// Allowed answers the question without producing an error
func Allowed(actor Actor, req Request) bool {
	switch TierFor(req.Kind, req.Class, req.Action) {
	case Public:
		return true
	case AuthenticatedOnly:
		return actor.IsAuthenticated()
	case OwnerOrStaff:
		if !actor.IsAuthenticated() {
			return false
		}
		return actor.IsStaff() || (req.Owner != uuid.Nil && req.Owner == actor.UserID)
	default:
		return actor.IsAdmin()
	}
}

// Authorize returns nil when allowed, shared.ErrUnauthorized for anonymous
// actors and shared.ErrForbidden for authenticated ones.
func Authorize(actor Actor, req Request) error {
	if Allowed(actor, req) {
		return nil
	}
	if !actor.IsAuthenticated() {
		return shared.ErrUnauthorized
	}
	return shared.ErrForbidden
}

// ActionOf maps an HTTP method to the action it performs
func ActionOf(method string) Action {
	if ClassOf(method) == Safe {
		return Read
	}
	if method == http.MethodPost {
		return Create
	}
	return Modify
}

// Precheck is the route-level gate, run before the target object is
// loaded. OwnerOrStaff only needs an authenticated actor here; the owner
// comparison happens once the object is known.
func Precheck(actor Actor, req Request) error {
	if TierFor(req.Kind, req.Class, req.Action) == OwnerOrStaff {
		if actor.IsAuthenticated() {
			return nil
		}
		return shared.ErrUnauthorized
	}
	return Authorize(actor, req)
}
