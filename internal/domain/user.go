package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User é o dono de planos e execuções
type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Lastname     string     `json:"lastname"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Active       bool       `json:"active"`
	RoleID       int        `json:"role_id"`
	Deleted      bool       `json:"deleted"`
	DeletedAt    *time.Time `json:"deleted_at"`
	GroupIDs     []int      `json:"group_ids"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// DisplayName é a identidade exibida nos roll-ups
func (u *User) DisplayName() string {
	if u.Lastname == "" {
		return u.Name
	}
	return u.Name + " " + u.Lastname
}

// Group reúne donos para o roll-up somente leitura
type Group struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	MemberIDs []int     `json:"member_ids"`
	CreatedAt time.Time `json:"created_at"`
}

type Claims struct {
	UserID       int
	UserName     string
	UserLastname string
	UserEmail    string
	UserActive   bool
	UserRoleID   int
	UserGroups   []int
	jwt.RegisteredClaims
}
