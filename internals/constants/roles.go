package constants

import "fmt"

// Roles del sistema (ver Access Role Gate)
const (
	RoleGuest    = "guest"
	RoleOperator = "operator"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
)

// Template de mensajes de error por rol
const (
	ErrOnlyOperatorsCanAccess = "❌ Solo el personal de operaciones puede acceder a %s."
	ErrOnlyManagersCanAccess  = "❌ Solo gerencia o administración puede acceder a %s."
	ErrOnlyAdminsCanAccess    = "❌ Solo el administrador puede acceder a %s."
)

func RoleErrorOperator(feature string) string {
	return fmt.Sprintf(ErrOnlyOperatorsCanAccess, feature)
}

func RoleErrorManager(feature string) string {
	return fmt.Sprintf(ErrOnlyManagersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllStaffRoles = []string{
		RoleOperator,
		RoleManager,
		RoleAdmin,
	}

	OperatorOnly = []string{
		RoleOperator,
	}

	ManagerAndAbove = []string{
		RoleManager,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
