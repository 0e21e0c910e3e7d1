package entity

// UserRole is the closed set of roles the clinic knows. Role strings match
// the catalog's wire values.
type UserRole string

const (
	RoleHeadVet      UserRole = "headVet"
	RoleAssistantVet UserRole = "assistantVet"
	RoleCaretakerA   UserRole = "caretakerA"
	RoleCaretakerB   UserRole = "caretakerB"
	RoleCaretakerC   UserRole = "caretakerC"
	RoleAdmin        UserRole = "admin"
)

func (r UserRole) IsValid() bool {
	switch r {
	case RoleHeadVet, RoleAssistantVet, RoleCaretakerA, RoleCaretakerB, RoleCaretakerC, RoleAdmin:
		return true
	}
	return false
}

// CanApprove is the single authorization rule for appointment and case
// workflows: approving roles may confirm, reject and cancel, and their
// created appointments start out Confirmed. Every other role only requests.
func (r UserRole) CanApprove() bool {
	return r == RoleHeadVet || r == RoleAdmin
}

// IsCaretaker reports whether the role is one of the caretaker variants.
func (r UserRole) IsCaretaker() bool {
	return r == RoleCaretakerA || r == RoleCaretakerB || r == RoleCaretakerC
}

// ParseRole validates a role string coming off a token or request.
func ParseRole(s string) (UserRole, bool) {
	r := UserRole(s)
	return r, r.IsValid()
}

// User is a catalog member. IDs are the catalog's own short identifiers, not
// generated ones; the seed dataset is the source of truth.
type User struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Role           UserRole `json:"role"`
	ProfilePicture string   `json:"profile_picture,omitempty"`
	PasswordHash   []byte   `json:"-"`
}
