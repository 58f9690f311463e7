package role

// Role — роль пользователя в системе
type Role int

const (
	Operator Role = iota // оператор: ведёт клиентов, оборудование и авторизации
	Admin                // администратор: всё то же + управление пользователями
)

func (r Role) String() string {
	switch r {
	case Operator:
		return "operator"
	case Admin:
		return "admin"
	default:
		return "unknown"
	}
}
