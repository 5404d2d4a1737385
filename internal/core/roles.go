package core

import (
	"fmt"
	"slices"
	"time"
)

type Role string

const (
	RoleOwner    Role = "owner"
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
	RoleViewer   Role = "viewer"
)

type Permission string

const (
	PermManageUsers        Permission = "manage_users"
	PermManageFinances     Permission = "manage_finances"
	PermManageInventory    Permission = "manage_inventory"
	PermViewReports        Permission = "view_reports"
	PermManageSettings     Permission = "manage_settings"
	PermDeleteData         Permission = "delete_data"
	PermExportData         Permission = "export_data"
	PermManageIntegrations Permission = "manage_integrations"
)

var rolePermissions = map[Role][]Permission{
	RoleOwner: {
		PermManageUsers, PermManageFinances, PermManageInventory, PermViewReports,
		PermManageSettings, PermDeleteData, PermExportData, PermManageIntegrations,
	},
	RoleAdmin: {
		PermManageUsers, PermManageFinances, PermManageInventory, PermViewReports,
		PermManageSettings, PermExportData,
	},
	RoleManager:  {PermManageInventory, PermViewReports, PermManageFinances, PermExportData},
	RoleEmployee: {PermManageInventory, PermViewReports},
	RoleViewer:   {PermViewReports},
}

// Roles lists every role from most to least privileged.
var Roles = []Role{RoleOwner, RoleAdmin, RoleManager, RoleEmployee, RoleViewer}

// ParseRole accepts only the five known role names.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if _, ok := rolePermissions[r]; !ok {
		return "", fmt.Errorf("%w: unknown role %q", ErrInvalidInput, s)
	}
	return r, nil
}

// Permissions returns a copy of the role's permission set.
func (r Role) Permissions() []Permission {
	return slices.Clone(rolePermissions[r])
}

func (r Role) Can(p Permission) bool {
	return slices.Contains(rolePermissions[r], p)
}

type MemberStatus string

const (
	MemberActive   MemberStatus = "active"
	MemberInactive MemberStatus = "inactive"
)

// TeamMember is a user with access to the business workspace.
type TeamMember struct {
	Name     string       `json:"name" validate:"required"`
	Email    string       `json:"email" validate:"required,email"`
	Role     Role         `json:"role" validate:"oneof=owner admin manager employee viewer"`
	Status   MemberStatus `json:"status"`
	JoinedAt time.Time    `json:"joinedAt"`
}
