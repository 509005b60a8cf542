package access

// Role is one of the fixed hierarchy levels. The zero value is
// RoleUnknown, which resolves to level 0 / ScopeUnknown and is treated
// as the most restricted principal.
type Role string

const (
	RoleUnknown            Role = ""
	RoleIntervenant        Role = "INTERVENANT"
	RoleManager            Role = "MANAGER"
	RoleConsultant         Role = "CONSULTANT"
	RoleAdministrator      Role = "ADMINISTRATOR"
	RoleSuperAdministrator Role = "SUPER_ADMINISTRATOR"
)

// Scope is the breadth of data a role may see.
type Scope string

const (
	ScopeUnknown    Scope = "UNKNOWN"
	ScopePersonal   Scope = "PERSONAL"
	ScopeEnterprise Scope = "ENTERPRISE"
	ScopeGlobal     Scope = "GLOBAL"
)

type hierarchyEntry struct {
	level int
	scope Scope
}

// hierarchy is process-wide static configuration, read-only at runtime.
var hierarchy = map[Role]hierarchyEntry{
	RoleIntervenant:        {level: 1, scope: ScopePersonal},
	RoleManager:            {level: 2, scope: ScopeEnterprise},
	RoleConsultant:         {level: 3, scope: ScopeGlobal},
	RoleAdministrator:      {level: 4, scope: ScopeGlobal},
	RoleSuperAdministrator: {level: 5, scope: ScopeGlobal},
}

// RoleFromString resolves a wire name to a Role. Unrecognized names map
// to RoleUnknown rather than an error so callers fail closed.
func RoleFromString(name string) Role {
	r := Role(name)
	if _, ok := hierarchy[r]; !ok {
		return RoleUnknown
	}
	return r
}

// LevelOf returns the role's hierarchy level, 0 for unknown roles.
func LevelOf(r Role) int {
	return hierarchy[r].level
}

// ScopeOf returns the role's data-visibility scope, ScopeUnknown for
// unknown roles.
func ScopeOf(r Role) Scope {
	e, ok := hierarchy[r]
	if !ok {
		return ScopeUnknown
	}
	return e.scope
}

// CanManage reports whether actor may manage target. The rule is a
// strict level comparison, except administrator-or-above targets may
// only be managed by a super administrator.
func CanManage(actor, target Role) bool {
	if LevelOf(target) >= LevelOf(RoleAdministrator) {
		return actor == RoleSuperAdministrator
	}
	return LevelOf(actor) > LevelOf(target)
}
