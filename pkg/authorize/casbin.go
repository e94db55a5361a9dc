package authorize

import (
	"context"
	"errors"
	"fmt"

	casbin "github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

var (
	ErrForbidden   = errors.New("forbidden")
	ErrInvalidArgs = errors.New("invalid authorization arguments")
)

// Role is a policy subject (a principal's role tag).
type Role string

// Object is a policy object: a destination path, possibly with a keyMatch
// wildcard suffix.
type Object string

// modelText is the destination-gating model: a role may enter an object when
// a policy pattern matches the requested path. Policies live only in memory;
// the policy set is a compile-time table seeded at startup.
const modelText = `
[request_definition]
r = sub, obj

[policy_definition]
p = sub, obj

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && keyMatch(r.obj, p.obj)
`

// IAuthorization is the only thing middleware should depend on.
type IAuthorization interface {
	// Enforce answers: "May a principal with this role enter this destination?"
	Enforce(ctx context.Context, role Role, object Object) (bool, error)

	// MustEnforce is convenience for callers: return ErrForbidden if not allowed.
	MustEnforce(ctx context.Context, role Role, object Object) error

	// AddPolicy grants a role access to an object pattern.
	AddPolicy(ctx context.Context, role Role, object Object) (bool, error)

	Raw() *casbin.Enforcer
}

// Authorization is a thin typed wrapper around casbin.Enforcer.
type Authorization struct {
	enforcer *casbin.Enforcer
}

// NewAuthorization builds an enforcer over the in-memory model with an empty
// policy set; callers seed policies afterwards.
func NewAuthorization() (IAuthorization, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("authorize: parse model: %w", err)
	}
	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("authorize: create enforcer: %w", err)
	}
	return &Authorization{enforcer: e}, nil
}

func (a *Authorization) Raw() *casbin.Enforcer { return a.enforcer }

func (a *Authorization) Enforce(ctx context.Context, role Role, object Object) (bool, error) {
	_ = ctx // reserved for tracing later

	if role == "" {
		return false, fmt.Errorf("%w: role is empty", ErrInvalidArgs)
	}
	if object == "" {
		return false, fmt.Errorf("%w: object is empty", ErrInvalidArgs)
	}

	allowed, err := a.enforcer.Enforce(string(role), string(object))
	if err != nil {
		return false, err
	}
	return allowed, nil
}

func (a *Authorization) MustEnforce(ctx context.Context, role Role, object Object) error {
	ok, err := a.Enforce(ctx, role, object)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return nil
}

func (a *Authorization) AddPolicy(ctx context.Context, role Role, object Object) (bool, error) {
	_ = ctx
	if role == "" || object == "" {
		return false, fmt.Errorf("%w: empty role/object", ErrInvalidArgs)
	}
	return a.enforcer.AddPolicy(string(role), string(object))
}
