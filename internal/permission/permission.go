// Package permission maps roles to the actions they may perform.
package permission

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleWarehouse Role = "warehouse"
	RoleManager   Role = "manager"
)

type Action string

const (
	ActionView      Action = "view"
	ActionAdd       Action = "add"
	ActionEdit      Action = "edit"
	ActionDelete    Action = "delete"
	ActionReports   Action = "reports"
	ActionAnalytics Action = "analytics"
	ActionUsers     Action = "users"
)

var rolePermissions = map[Role][]Action{
	RoleAdmin:     {ActionView, ActionAdd, ActionEdit, ActionDelete, ActionReports, ActionAnalytics, ActionUsers},
	RoleWarehouse: {ActionView, ActionAdd, ActionEdit},
	RoleManager:   {ActionView, ActionReports, ActionAnalytics},
}

// Allowed reports whether the role may perform the action.
// Unknown roles have no permissions.
func Allowed(role Role, action Action) bool {
	for _, a := range rolePermissions[role] {
		if a == action {
			return true
		}
	}
	return false
}

func ValidRole(role Role) bool {
	_, ok := rolePermissions[role]
	return ok
}
