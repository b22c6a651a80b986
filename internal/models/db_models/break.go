package db_models

import (
	"surflog/internal/models/enums"
)

type Break struct {
	BaseModel
	PublicID    string           `gorm:"type:uuid;uniqueIndex;not null"`
	Name        string           `gorm:"not null;uniqueIndex"`
	Region      string           `gorm:"not null"`
	Country     string
	Latitude    float64          `gorm:"not null"`
	Longitude   float64          `gorm:"not null"`
	BreakType   enums.BreakType  `gorm:"type:text;not null"`
	BestSeason  enums.YearSeason `gorm:"type:text;not null"`
	Rating      int              `gorm:"not null"`
	Description string
	CreatedBy   uint `gorm:"not null"`
}
