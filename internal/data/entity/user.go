package entity

type UserRole string

const (
	RoleMember UserRole = "member"
	RoleAdmin  UserRole = "admin"
)

type User struct {
	Base
	Email            string    `db:"email"`
	PasswordHash     string    `db:"password"`
	Verified         bool      `db:"verified"`
	VerificationCode *string   `db:"verification_code"`
	Linked           bool      `db:"linked"`
	Type             *LinkType `db:"type"`
	Role             UserRole  `db:"role"`
}

// LinkState reports the user's position in the linking lifecycle.
// A user whose linked flag is set but whose profile row does not exist
// yet is pending, not linked; callers must not assume a profile exists
// until the state is StateLinked.
func (u *User) LinkState(profileExists bool) LinkState {
	switch {
	case !u.Linked || u.Type == nil:
		return StateUnlinked
	case !profileExists:
		return StatePendingLink
	default:
		return StateLinked
	}
}
