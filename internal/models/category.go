package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups budgets and transactions. Categories form a two level
// hierarchy, reporting always rolls up to the top level parent.
type Category struct {
	DefaultModel
	Name        string
	Workspace   Workspace `json:"-"`
	WorkspaceID uuid.UUID
	ParentID    *uuid.UUID
	Parent      *Category `json:"-"`
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	return nil
}

// TopLevel returns the category itself when it has no parent and the
// parent category otherwise.
func (c Category) TopLevel(db *gorm.DB) (Category, error) {
	if c.ParentID == nil {
		return c, nil
	}

	var parent Category
	err := db.First(&parent, *c.ParentID).Error
	return parent, err
}
