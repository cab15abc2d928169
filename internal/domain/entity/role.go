// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/google/uuid"
)

// RoleName is the unique name of a capability bucket.
type RoleName string

const (
	// RoleRegular can read everything and edit or delete only their own data.
	RoleRegular RoleName = "regular"
	// RoleAdmin has full access to every operation.
	RoleAdmin RoleName = "admin"
	// RoleBanned can read data but cannot mutate anything.
	RoleBanned RoleName = "banned"
)

// String returns the string representation of the RoleName.
func (r RoleName) String() string {
	return string(r)
}

// Role is a stored, named capability bucket. Every user references exactly one.
type Role struct {
	ID          uuid.UUID
	Name        RoleName
	Description string
}

// DefaultRoles returns the roles every deployment is seeded with.
func DefaultRoles() []*Role {
	return []*Role{
		{
			Name:        RoleRegular,
			Description: "A regular user can view, create and read data. They can edit and delete only their own data.",
		},
		{
			Name:        RoleAdmin,
			Description: "An admin user has full access and permissions to do anything and everything within this API.",
		},
		{
			Name:        RoleBanned,
			Description: "A banned user can read data, but cannot do anything else.",
		},
	}
}
