// Package models defines the JSON records making up the persisted
// application state. Field names are part of the storage format; do
// not rename the tags.
package models

import "time"

type UserRecord struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type AttachmentRecord struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}

type CommentRecord struct {
	UserID    uint      `json:"userId"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Role      string    `json:"role"`
}

type TicketRecord struct {
	ID           uint               `json:"id"`
	UserID       uint               `json:"userId"`
	Subject      string             `json:"subject"`
	Description  string             `json:"description"`
	Category     string             `json:"category"`
	Status       string             `json:"status"`
	Attachments  []AttachmentRecord `json:"attachments"`
	CreatedAt    time.Time          `json:"createdAt"`
	LastModified time.Time          `json:"lastModified"`
	AssignedTo   *uint              `json:"assignedTo"`
	Upvotes      int                `json:"upvotes"`
	Downvotes    int                `json:"downvotes"`
	Comments     []CommentRecord    `json:"comments"`
}
