package domain

// User is a person known to the system. ID is assigned by the store that
// owns the user and never changes afterwards.
type User struct {
	ID    int64
	Name  string
	Email string
}

// UserParams carries the caller-supplied fields of a new user.
type UserParams struct {
	Name  string
	Email string
}

// UserPatch is a partial update of a user.
type UserPatch struct {
	Name  Optional[string]
	Email Optional[string]
}

// NewUser builds the user a store persists for params under the given ID.
func NewUser(id int64, params UserParams) User {
	return User{
		ID:    id,
		Name:  params.Name,
		Email: params.Email,
	}
}

// Apply returns a copy of u with every present attribute of patch overwritten.
func (u User) Apply(patch UserPatch) User {
	u.Name = patch.Name.OrElse(u.Name)
	u.Email = patch.Email.OrElse(u.Email)
	return u
}

// IsEmpty reports whether the patch would leave a user unchanged.
func (p UserPatch) IsEmpty() bool {
	return !p.Name.IsPresent() && !p.Email.IsPresent()
}
