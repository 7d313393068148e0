package user

import (
	"fmt"
	"time"
)

// User is a dispatcher or executor account. Every user belongs to a
// customer organization, an implementing organization, or both; an
// account attached to neither is rejected at write time. Both-set is
// permitted, matching the upstream schema.
type User struct {
	id                         uint
	username                   string
	passwordHash               string
	position                   string
	organizationID             *uint
	implementingOrganizationID *uint
	createdAt                  time.Time
	updatedAt                  time.Time
}

func NewUser(username, passwordHash, position string, organizationID, implementingOrganizationID *uint) (*User, error) {
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	if len(username) > 20 {
		return nil, fmt.Errorf("username exceeds maximum length of 20 characters")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}
	if organizationID == nil && implementingOrganizationID == nil {
		return nil, fmt.Errorf("user must belong to an organization or an implementing organization")
	}

	now := time.Now()
	return &User{
		username:                   username,
		passwordHash:               passwordHash,
		position:                   position,
		organizationID:             organizationID,
		implementingOrganizationID: implementingOrganizationID,
		createdAt:                  now,
		updatedAt:                  now,
	}, nil
}

func ReconstructUser(
	id uint,
	username string,
	passwordHash string,
	position string,
	organizationID *uint,
	implementingOrganizationID *uint,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}

	return &User{
		id:                         id,
		username:                   username,
		passwordHash:               passwordHash,
		position:                   position,
		organizationID:             organizationID,
		implementingOrganizationID: implementingOrganizationID,
		createdAt:                  createdAt,
		updatedAt:                  updatedAt,
	}, nil
}

func (u *User) ID() uint                           { return u.id }
func (u *User) Username() string                   { return u.username }
func (u *User) PasswordHash() string               { return u.passwordHash }
func (u *User) Position() string                   { return u.position }
func (u *User) OrganizationID() *uint              { return u.organizationID }
func (u *User) ImplementingOrganizationID() *uint  { return u.implementingOrganizationID }
func (u *User) CreatedAt() time.Time               { return u.createdAt }
func (u *User) UpdatedAt() time.Time               { return u.updatedAt }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}
