package rbac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Diana-hub4/Demo-dian-back/internal/rbac"
)

func newTestService(t *testing.T) rbac.Service {
	t.Helper()
	enforcer, err := rbac.NewEnforcer()
	assert.NoError(t, err)
	return rbac.NewService(enforcer)
}

func TestRBACService_Enforce(t *testing.T) {
	svc := newTestService(t)

	cases := []struct {
		name     string
		role     string
		resource string
		action   string
		allowed  bool
	}{
		{"asistente reads payroll", rbac.RoleAsistente, "nomina", "read", true},
		{"asistente cannot create payroll", rbac.RoleAsistente, "nomina", "create", false},
		{"asistente files pqrsf", rbac.RoleAsistente, "pqrsf", "create", true},
		{"contador inherits read", rbac.RoleContador, "invoice", "read", true},
		{"contador creates payroll", rbac.RoleContador, "nomina", "create", true},
		{"contador marks payroll paid", rbac.RoleContador, "nomina", "pay", true},
		{"contador cannot delete clients", rbac.RoleContador, "client", "delete", false},
		{"admin inherits contador", rbac.RoleAdmin, "nomina", "generate", true},
		{"admin inherits asistente through contador", rbac.RoleAdmin, "supplier", "read", true},
		{"admin deletes invoices", rbac.RoleAdmin, "invoice", "delete", true},
		{"unknown role denied", "guest", "nomina", "read", false},
		{"unknown resource denied", rbac.RoleAdmin, "audit", "read", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			allowed, err := svc.Enforce(rbac.EnforceRequest{
				Role:     tc.role,
				Resource: tc.resource,
				Action:   tc.action,
			})

			assert.NoError(t, err)
			assert.Equal(t, tc.allowed, allowed)
		})
	}
}
