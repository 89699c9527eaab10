package domain

import (
	"encoding/json"
	"time"
)

// UserProfile is the account record shown on the profile screen.
type UserProfile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city,omitempty"`
	State     string    `json:"state,omitempty"`
	ZipCode   string    `json:"zipCode,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

func (u *UserProfile) UnmarshalJSON(b []byte) error {
	type plain UserProfile
	var aux struct {
		plain
		legacyID
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*u = UserProfile(aux.plain)
	u.ID = pickID(u.ID, aux.MongoID)
	return nil
}

// ProfileUpdate is a partial profile update; nil fields are not sent.
type ProfileUpdate struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
	ZipCode *string `json:"zipCode,omitempty"`
	Avatar  *string `json:"avatar,omitempty"`
}

// Apply copies the set fields of u onto p.
func (u ProfileUpdate) Apply(p *UserProfile) {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&p.Name, u.Name)
	set(&p.Email, u.Email)
	set(&p.Phone, u.Phone)
	set(&p.Address, u.Address)
	set(&p.City, u.City)
	set(&p.State, u.State)
	set(&p.ZipCode, u.ZipCode)
	set(&p.Avatar, u.Avatar)
}

// Account is a stored user including its password hash.
type Account struct {
	Profile      UserProfile
	PasswordHash string
}

// UserSummary is the user block returned with a session.
type UserSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (u *UserSummary) UnmarshalJSON(b []byte) error {
	type plain UserSummary
	var aux struct {
		plain
		legacyID
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*u = UserSummary(aux.plain)
	u.ID = pickID(u.ID, aux.MongoID)
	return nil
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the register payload.
type Registration struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
}

// AuthResponse is returned by the login and register endpoints.
type AuthResponse struct {
	Token   string      `json:"token"`
	User    UserSummary `json:"user"`
	Message string      `json:"message,omitempty"`
}

// Session is the authenticated state held on the device.
type Session struct {
	Token  string
	UserID string
	User   *UserSummary
}

// Authenticated reports whether the session carries a token.
func (s Session) Authenticated() bool {
	return s.Token != ""
}
