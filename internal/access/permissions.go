package access

// Module is a protected functional area of the API.
type Module string

const (
	ModuleEntreprises    Module = "ENTREPRISES"
	ModuleApplications   Module = "APPLICATIONS"
	ModuleQuestionnaires Module = "QUESTIONNAIRES"
	ModuleFormulaires    Module = "FORMULAIRES"
	ModuleAnalyses       Module = "ANALYSES"
	ModuleInterpretation Module = "INTERPRETATION"
	ModuleUtilisateurs   Module = "UTILISATEURS"
)

// Action is an operation on a module.
type Action string

const (
	ActionConsulter Action = "consulter"
	ActionEditer    Action = "editer"
	ActionSupprimer Action = "supprimer"
)

// Permission is the outcome class for one (role, module, action) cell.
type Permission uint8

const (
	// Never denies the action outright.
	Never Permission = iota
	// Always allows the action; data visibility still follows the
	// role's scope.
	Always
	// OwnOnly allows the action restricted to resources the actor
	// authored.
	OwnOnly
	// EnterpriseOnly allows the action restricted to the actor's
	// enterprise.
	EnterpriseOnly
)

// permissionTable is the static (role, module, action) matrix. Typed
// keys rule out the typo-driven lookups a string-keyed table invites.
// Cells absent from the table deny.
var permissionTable = map[Role]map[Module]map[Action]Permission{
	RoleIntervenant: {
		ModuleFormulaires: {
			ActionConsulter: OwnOnly,
			ActionEditer:    OwnOnly,
		},
		ModuleAnalyses: {
			ActionConsulter: OwnOnly,
		},
		ModuleInterpretation: {
			ActionConsulter: OwnOnly,
		},
		ModuleQuestionnaires: {
			ActionConsulter: Always,
		},
	},
	RoleManager: {
		ModuleEntreprises: {
			ActionConsulter: EnterpriseOnly,
			ActionEditer:    EnterpriseOnly,
		},
		ModuleApplications: {
			ActionConsulter: EnterpriseOnly,
			ActionEditer:    EnterpriseOnly,
			ActionSupprimer: EnterpriseOnly,
		},
		ModuleFormulaires: {
			ActionConsulter: EnterpriseOnly,
			ActionEditer:    EnterpriseOnly,
		},
		ModuleAnalyses: {
			ActionConsulter: EnterpriseOnly,
		},
		ModuleInterpretation: {
			ActionConsulter: EnterpriseOnly,
		},
		ModuleQuestionnaires: {
			ActionConsulter: Always,
		},
		ModuleUtilisateurs: {
			ActionConsulter: EnterpriseOnly,
			ActionEditer:    EnterpriseOnly,
		},
	},
	RoleConsultant: {
		ModuleEntreprises: {
			ActionConsulter: Always,
		},
		ModuleApplications: {
			ActionConsulter: Always,
		},
		ModuleFormulaires: {
			ActionConsulter: Always,
			ActionEditer:    Always,
		},
		ModuleAnalyses: {
			ActionConsulter: Always,
		},
		ModuleInterpretation: {
			ActionConsulter: Always,
		},
		ModuleQuestionnaires: {
			ActionConsulter: Always,
		},
	},
	RoleAdministrator: {
		ModuleEntreprises:    fullAccess(),
		ModuleApplications:   fullAccess(),
		ModuleQuestionnaires: fullAccess(),
		ModuleFormulaires:    fullAccess(),
		ModuleAnalyses: {
			ActionConsulter: Always,
			ActionSupprimer: Always,
		},
		ModuleInterpretation: {
			ActionConsulter: Always,
			ActionEditer:    Always,
		},
		ModuleUtilisateurs: fullAccess(),
	},
	RoleSuperAdministrator: {
		ModuleEntreprises:    fullAccess(),
		ModuleApplications:   fullAccess(),
		ModuleQuestionnaires: fullAccess(),
		ModuleFormulaires:    fullAccess(),
		ModuleAnalyses:       fullAccess(),
		ModuleInterpretation: fullAccess(),
		ModuleUtilisateurs:   fullAccess(),
	},
}

func fullAccess() map[Action]Permission {
	return map[Action]Permission{
		ActionConsulter: Always,
		ActionEditer:    Always,
		ActionSupprimer: Always,
	}
}

// PermissionFor looks up the matrix cell for (role, module, action).
// Missing role, module or action all resolve to Never.
func PermissionFor(role Role, module Module, action Action) Permission {
	modules, ok := permissionTable[role]
	if !ok {
		return Never
	}
	actions, ok := modules[module]
	if !ok {
		return Never
	}
	return actions[action]
}
