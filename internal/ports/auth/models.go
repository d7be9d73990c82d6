package auth

// Role define los roles de la app (mismo enum que app_role en la base).
type Role string

const (
	RoleStaff Role = "staff"
	RoleTutor Role = "tutor"
)

// Claims representa la información extraída del token.
type Claims struct {
	UserID string
	Email  string
	Role   Role
}

// IsStaff indica si los claims alcanzan para la zona de colaboradores.
func (c Claims) IsStaff() bool {
	return c.Role == RoleStaff
}
