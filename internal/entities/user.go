package entities

import "time"

type User struct {
	ID        string
	Email     string
	Role      UserRoleType
	CreatedAt time.Time
}

type UserRoleType string

const (
	RoleUser  UserRoleType = "user"
	RoleAdmin UserRoleType = "admin"
	RoleRider UserRoleType = "rider"
)

const DefaultUserRole = RoleUser

func (r UserRoleType) String() string {
	return string(r)
}

type UserModify struct {
	ID    *string
	Email *string
	Role  *UserRoleType
}

// UserSummary is the projection returned by the user search.
type UserSummary struct {
	Email     string
	Role      UserRoleType
	CreatedAt time.Time
}
