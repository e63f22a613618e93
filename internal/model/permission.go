package model

import "time"

// Permission is an atomic capability row. Names are drawn from the
// code-defined catalog below and synchronized at boot.
type Permission struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Catalog permission names.
const (
	PermissionArtistsRead     = "artists:read"
	PermissionArtistsWrite    = "artists:write"
	PermissionLabelsRead      = "labels:read"
	PermissionLabelsWrite     = "labels:write"
	PermissionReleasesRead    = "releases:read"
	PermissionReleasesWrite   = "releases:write"
	PermissionReleasesPublish = "releases:publish"
	PermissionLyricsRead      = "lyrics:read"
	PermissionLyricsWrite     = "lyrics:write"
	PermissionUsersRead       = "users:read"
	PermissionUsersDelete     = "users:delete"
	PermissionRolesRead       = "roles:read"
	PermissionRolesWrite      = "roles:write"
)

// PermissionCatalog is the fixed set synchronized at bootstrap:
// insert-if-absent, never duplicated, never auto-removed.
var PermissionCatalog = []string{
	PermissionArtistsRead,
	PermissionArtistsWrite,
	PermissionLabelsRead,
	PermissionLabelsWrite,
	PermissionReleasesRead,
	PermissionReleasesWrite,
	PermissionReleasesPublish,
	PermissionLyricsRead,
	PermissionLyricsWrite,
	PermissionUsersRead,
	PermissionUsersDelete,
	PermissionRolesRead,
	PermissionRolesWrite,
}
