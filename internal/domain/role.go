package domain

type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

const (
	RoleAdmin   int64 = 1
	RoleManager int64 = 2
	RoleBarista int64 = 3
	RoleCashier int64 = 4
)
