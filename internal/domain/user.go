package domain

import "time"

type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	RoleID    int64     `json:"role_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserRepository interface {
	Authenticate(email, password string) (*User, error)
	Create(user *User) (*User, error)
	FindByID(id int64) (*User, error)
	FindByUsername(username string) (*User, error)
	FindByEmail(email string) (*User, error)
	Update(user *User) error
	Delete(id int64) (bool, error)
	FindAll() ([]*User, error)
	FindByRole(roleID int64) ([]*User, error)
}

type UserService interface {
	Authenticate(email, password string) (*User, error)
	CreateUser(user *User) (*User, error)
	DeleteUser(id int64) (bool, error)
	GetAllUsers() ([]*User, error)
	GetUserByID(id int64) (*User, error)
	UpdateUser(user *User) error
	GetUsersByRole(roleID int64) ([]*User, error)
}
