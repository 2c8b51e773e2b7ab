package tenant

import "github.com/google/uuid"

const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Context identifica a empresa ativa e o usuário autenticado.
// É montado pelo middleware de auth e passado explicitamente para
// todos os usecases em vez de lido de estado ambiente.
type Context struct {
	CompanyID uuid.UUID
	UserID    uuid.UUID
	Role      string
}

func (t Context) CanManageCompany() bool {
	return t.Role == RoleOwner || t.Role == RoleAdmin
}
