package rbac

import (
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// Role names carried in the JWT "role" claim.
const (
	RoleAdmin     = "admin"
	RoleContador  = "contador"
	RoleAsistente = "asistente"
)

type EnforceRequest struct {
	Role     string
	Resource string
	Action   string
}

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req EnforceRequest) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.Mutex
}

func NewService(enforcer *casbin.Enforcer) Service {
	return &service{enforcer: enforcer}
}

// NewEnforcer builds the enforcer with the static role policy. Policies are
// code-defined; roles do not change at runtime.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	// Role hierarchy: admin inherits everything contador can do, contador
	// inherits asistente.
	groupings := [][]string{
		{RoleAdmin, RoleContador},
		{RoleContador, RoleAsistente},
	}
	for _, g := range groupings {
		if _, err := enforcer.AddGroupingPolicy(g[0], g[1]); err != nil {
			return nil, err
		}
	}

	policies := [][]string{
		{RoleAsistente, "nomina", "read"},
		{RoleAsistente, "client", "read"},
		{RoleAsistente, "supplier", "read"},
		{RoleAsistente, "invoice", "read"},
		{RoleAsistente, "pqrsf", "read"},
		{RoleAsistente, "pqrsf", "create"},

		{RoleContador, "nomina", "create"},
		{RoleContador, "nomina", "update"},
		{RoleContador, "nomina", "pay"},
		{RoleContador, "nomina", "generate"},
		{RoleContador, "client", "create"},
		{RoleContador, "client", "update"},
		{RoleContador, "supplier", "create"},
		{RoleContador, "supplier", "update"},
		{RoleContador, "invoice", "create"},
		{RoleContador, "invoice", "update"},
		{RoleContador, "pqrsf", "update"},

		{RoleAdmin, "nomina", "delete"},
		{RoleAdmin, "client", "delete"},
		{RoleAdmin, "supplier", "delete"},
		{RoleAdmin, "invoice", "delete"},
		{RoleAdmin, "pqrsf", "delete"},
	}
	for _, p := range policies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	return enforcer, nil
}

func (s *service) Enforce(req EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.enforcer.Enforce(req.Role, req.Resource, req.Action)
}
