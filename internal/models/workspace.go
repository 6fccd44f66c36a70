package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Workspace is the top level of organization. Every other resource
// references a workspace directly or transitively. Workspace membership
// and roles are managed outside of this backend.
type Workspace struct {
	DefaultModel
	Name string
	Note string
}

func (w *Workspace) BeforeSave(_ *gorm.DB) error {
	w.Name = strings.TrimSpace(w.Name)
	w.Note = strings.TrimSpace(w.Note)

	return nil
}

// User represents a member of a workspace.
type User struct {
	DefaultModel
	Name        string
	Workspace   Workspace `json:"-"`
	WorkspaceID uuid.UUID
}
