package models

type TicketModel struct {
	ID               uint    `gorm:"primaryKey"`
	Number           *int    `gorm:"index"`
	Title            string  `gorm:"size:200;not null"`
	Description      string  `gorm:"type:text"`
	Type             string  `gorm:"size:50;not null;index"`
	Priority         string  `gorm:"size:20;not null;index"`
	Status           string  `gorm:"size:20;not null;index"`
	Stage            string  `gorm:"size:30;not null;index"`
	Position         *int
	URL              string  `gorm:"size:500"`
	RegistrationDate *int64
	CreatorID        *uint   `gorm:"index"`
	CreatorName      string  `gorm:"size:120"`
	CreatorEmail     string  `gorm:"size:254"`
	CreatorAvatar    string  `gorm:"size:500"`
	AssigneeID       *uint   `gorm:"index"`
	AssigneeName     string  `gorm:"size:120"`
	AssigneeEmail    string  `gorm:"size:254"`
	AssigneeAvatar   string  `gorm:"size:500"`
	CreatedAt        int64   `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt        int64   `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations. User references
	// are denormalized; relationships are managed by application logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}
