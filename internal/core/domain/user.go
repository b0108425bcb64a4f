package domain

import "time"

const UserResource = "Usuário"

type User struct {
	ID        int64
	Name      string
	Email     string
	Age       *int
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserPatch holds the fields of a partial update. A nil pointer means the
// field was not supplied. Age is cleared when AgeSet is true and Age is nil.
type UserPatch struct {
	Name     *string
	Email    *string
	Age      *int
	AgeSet   bool
	IsActive *bool
}

type UserFilter struct {
	Active *bool
}

func (u *User) Apply(p UserPatch) {
	if p.Name != nil {
		u.Name = *p.Name
	}

	if p.Email != nil {
		u.Email = *p.Email
	}

	if p.AgeSet {
		u.Age = p.Age
	}

	if p.IsActive != nil {
		u.IsActive = *p.IsActive
	}
}

func (u *User) Stamp(now time.Time) {
	now = now.UTC().Truncate(TimestampPrecision)
	u.CreatedAt = now
	u.UpdatedAt = now
}

func (u *User) Touch(now time.Time) {
	u.UpdatedAt = NextTimestamp(u.UpdatedAt, now)
}
