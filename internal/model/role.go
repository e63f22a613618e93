package model

import "time"

// SuperAdminRoleName is the reserved role seeded at bootstrap. It holds
// every permission in the catalog and is never deleted.
const SuperAdminRoleName = "SUPER_ADMIN"

// Role is a named authorization grouping. CreatedByID is attribution, not
// ownership: it becomes null when the creating user is deleted.
type Role struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedByID *string   `json:"created_by_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RolePermission grants a Permission to a Role and records who granted it.
// The (RoleID, PermissionID) pair is unique.
type RolePermission struct {
	ID           string    `json:"id"`
	RoleID       string    `json:"role_id"`
	PermissionID string    `json:"permission_id"`
	CreatedByID  *string   `json:"created_by_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateRoleRequest is the payload for role creation.
type CreateRoleRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=255"`
	Description *string `json:"description" binding:"omitempty,max=1024"`
}

// GrantPermissionRequest attaches an existing permission to a role.
type GrantPermissionRequest struct {
	PermissionID string `json:"permission_id" binding:"required,uuid"`
}

// RoleFilters narrows role listings. Name and Description match partially
// and case-insensitively; CreatedByID matches exactly.
type RoleFilters struct {
	Name        string
	Description string
	CreatedByID string
}
