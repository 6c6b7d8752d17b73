package constants

import "fmt"

const (
	RoleOwner    = "owner"
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess = "❌ Hanya admin atau owner yang boleh mengakses fitur %s."
	ErrOnlyOwnersCanAccess = "❌ Hanya owner yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorOwner(feature string) string {
	return fmt.Sprintf(ErrOnlyOwnersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles   = []string{RoleOwner, RoleAdmin, RoleOperator}
	AdminRoles = []string{RoleOwner, RoleAdmin}
	OwnerOnly  = []string{RoleOwner}
)
