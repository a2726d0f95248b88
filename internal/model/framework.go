package model

import "github.com/google/uuid"

// Framework is a moderated catalog entry tied to a language
type Framework struct {
	BaseModel
	Name        string        `gorm:"type:varchar(100);not null;uniqueIndex:idx_framework_lang_name" json:"name" validate:"required"`
	Description string        `gorm:"type:text" json:"description"`
	LanguageID  uuid.UUID     `gorm:"type:uuid;not null;index;uniqueIndex:idx_framework_lang_name" json:"language_id" validate:"uuid_required"`
	Language    *Language     `gorm:"foreignKey:LanguageID" json:"language,omitempty" validate:"-"`
	State       ResourceState `gorm:"type:varchar(10);not null;index" json:"state"`
	AuthorID    *uuid.UUID    `gorm:"type:uuid;index" json:"author_id,omitempty"`
	Author      *User         `gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL" json:"author,omitempty" validate:"-"`
}
