package access

import (
	"context"
	"time"

	"github.com/e-dsin/maturity-sub005/pkg/metrics"
)

// Principal is an already-authenticated actor. Token verification
// happens upstream; the engine only derives the authorization decision.
type Principal struct {
	ActorID      string
	Role         Role
	EnterpriseID string
}

// DenyReason is the machine-readable cause of a denial.
type DenyReason string

const (
	// ReasonNone accompanies allowed decisions.
	ReasonNone DenyReason = ""
	// ReasonUnknownRole means the principal's role is not in the
	// hierarchy; the engine fails closed.
	ReasonUnknownRole DenyReason = "unknown_role"
	// ReasonModuleAccess means the permission table denies this
	// (role, module, action) cell.
	ReasonModuleAccess DenyReason = "insufficient_module_access"
	// ReasonHierarchyLevel means the target outranks the actor in the
	// role hierarchy.
	ReasonHierarchyLevel DenyReason = "insufficient_hierarchy_level"
	// ReasonOutOfScope means the action is allowed but the requested
	// resource falls outside the principal's data filter.
	ReasonOutOfScope DenyReason = "resource_out_of_scope"
)

// DataFilter describes which rows a query may return. It is the only
// channel through which the engine affects query construction; the
// engine never executes queries itself. Zero-value strings mean
// unrestricted on that dimension.
type DataFilter struct {
	Global       bool   `json:"global"`
	EnterpriseID string `json:"enterpriseId,omitempty"`
	ActorID      string `json:"actorId,omitempty"`
}

// Decision is the outcome of one authorization request. Deny is not an
// error: it is a normal, loggable outcome with a structured reason.
type Decision struct {
	Allowed bool       `json:"allowed"`
	Filter  DataFilter `json:"filter"`
	Reason  DenyReason `json:"reason,omitempty"`
}

// Engine computes authorization decisions. Pure function of
// (principal, request) at each call, with no cross-call state.
type Engine struct {
	audit AuditSink
}

// NewEngine creates an access decision engine emitting to the given
// audit sink.
func NewEngine(audit AuditSink) *Engine {
	return &Engine{audit: audit}
}

// Authorize decides whether the principal may perform action on module,
// and derives the data filter restricting which rows are visible.
func (e *Engine) Authorize(ctx context.Context, p Principal, module Module, action Action) Decision {
	return e.AuthorizeResource(ctx, p, module, action, "")
}

// AuthorizeResource is Authorize with a resource identifier recorded in
// the audit trail.
func (e *Engine) AuthorizeResource(ctx context.Context, p Principal, module Module, action Action, resource string) Decision {
	d := e.decide(p, module, action)
	e.audit.Record(ctx, AuditEvent{
		Timestamp: time.Now(),
		ActorID:   p.ActorID,
		Role:      string(p.Role),
		Module:    string(module),
		Action:    string(action),
		Resource:  resource,
		Allowed:   d.Allowed,
		Reason:    string(d.Reason),
	})
	metrics.AccessDecision(string(module), string(action), d.Allowed)
	return d
}

func (e *Engine) decide(p Principal, module Module, action Action) Decision {
	if RoleFromString(string(p.Role)) == RoleUnknown {
		return Decision{Allowed: false, Reason: ReasonUnknownRole}
	}

	switch PermissionFor(p.Role, module, action) {
	case Never:
		return Decision{Allowed: false, Reason: ReasonModuleAccess}
	case OwnOnly:
		return Decision{Allowed: true, Filter: DataFilter{
			EnterpriseID: p.EnterpriseID,
			ActorID:      p.ActorID,
		}}
	case EnterpriseOnly:
		return Decision{Allowed: true, Filter: DataFilter{
			EnterpriseID: p.EnterpriseID,
		}}
	}

	return Decision{Allowed: true, Filter: filterForScope(p)}
}

// filterForScope derives the default visibility filter from the role's
// scope: GLOBAL is unrestricted, ENTERPRISE restricts to the actor's
// enterprise, PERSONAL to the actor's own records within it.
func filterForScope(p Principal) DataFilter {
	switch ScopeOf(p.Role) {
	case ScopeGlobal:
		return DataFilter{Global: true}
	case ScopeEnterprise:
		return DataFilter{EnterpriseID: p.EnterpriseID}
	default:
		return DataFilter{EnterpriseID: p.EnterpriseID, ActorID: p.ActorID}
	}
}

// AuthorizeManage decides whether actor may manage a user holding
// targetRole, combining the module check with the hierarchy rule.
func (e *Engine) AuthorizeManage(ctx context.Context, p Principal, targetRole Role, targetID string) Decision {
	d := e.decide(p, ModuleUtilisateurs, ActionEditer)
	if d.Allowed && !CanManage(p.Role, targetRole) {
		d = Decision{Allowed: false, Reason: ReasonHierarchyLevel}
	}
	e.audit.Record(ctx, AuditEvent{
		Timestamp: time.Now(),
		ActorID:   p.ActorID,
		Role:      string(p.Role),
		Module:    string(ModuleUtilisateurs),
		Action:    string(ActionEditer),
		Resource:  targetID,
		Allowed:   d.Allowed,
		Reason:    string(d.Reason),
	})
	metrics.AccessDecision(string(ModuleUtilisateurs), string(ActionEditer), d.Allowed)
	return d
}
