package domain

type Role string

const (
	RoleManager Role = "manager"
	RoleMaster  Role = "master"
)

func (r Role) Valid() bool {
	return r == RoleManager || r == RoleMaster
}

// User is the session identity produced by a successful login.
type User struct {
	ID    string
	Login string
	Role  Role
	Name  string
}

func (u User) IsManager() bool {
	return u.Role == RoleManager
}

// Credential is a roster record. Passwords are compared in cleartext.
type Credential struct {
	ID       string `yaml:"id"`
	Login    string `yaml:"login"`
	Password string `yaml:"password"`
	Role     Role   `yaml:"role"`
	Name     string `yaml:"name"`
}

func (c Credential) User() User {
	return User{
		ID:    c.ID,
		Login: c.Login,
		Role:  c.Role,
		Name:  c.Name,
	}
}
