package db_models

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Role         string

	JournalEntries []JournalEntry `gorm:"foreignKey:AuthorID"`
	Boards         []Board        `gorm:"foreignKey:OwnerID"`
}
