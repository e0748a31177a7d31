package domain

import "time"

type ContactStatus string

const (
	ContactNew     ContactStatus = "new"
	ContactRead    ContactStatus = "read"
	ContactReplied ContactStatus = "replied"
)

func (s ContactStatus) Valid() bool {
	return s == ContactNew || s == ContactRead || s == ContactReplied
}

type Contact struct {
	ID        int64         `json:"id" gorm:"column:id;primaryKey"`
	Name      string        `json:"name" gorm:"column:name"`
	Email     string        `json:"email" gorm:"column:email"`
	Subject   string        `json:"subject" gorm:"column:subject"`
	Message   string        `json:"message" gorm:"column:message"`
	Status    ContactStatus `json:"status" gorm:"column:status;default:new"`
	CreatedAt time.Time     `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt time.Time     `json:"updatedAt" gorm:"column:updated_at"`
}

func (Contact) TableName() string { return "contacts" }
