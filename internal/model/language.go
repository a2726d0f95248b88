package model

import "github.com/google/uuid"

// Language is a moderated catalog entry for a programming language.
// AuthorID is nullable: deleting the authoring user keeps the language
// but severs ownership.
type Language struct {
	BaseModel
	Name        string        `gorm:"type:varchar(100);uniqueIndex;not null" json:"name" validate:"required"`
	Description string        `gorm:"type:text" json:"description"`
	State       ResourceState `gorm:"type:varchar(10);not null;index" json:"state"`
	AuthorID    *uuid.UUID    `gorm:"type:uuid;index" json:"author_id,omitempty"`
	Author      *User         `gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL" json:"author,omitempty" validate:"-"`
}
