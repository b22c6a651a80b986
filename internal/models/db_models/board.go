package db_models

type Board struct {
	BaseModel
	OwnerID uint   `gorm:"not null;index"`
	Label   string `gorm:"not null"`
	// e.g. `6'2" x 19 1/4 x 2 5/8`
	Dimensions string
}
