package models

import "time"

// Membership roles, matching the role ENUM in GroupMembers.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// User represents a registered chat user
type User struct {
	ID           int        `json:"user_id" db:"user_id"`
	Username     string     `json:"username" db:"username"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	LastSeen     *time.Time `json:"last_seen,omitempty" db:"last_seen"`
	IsOnline     bool       `json:"is_online" db:"is_online"`
}

// DirectMessage represents a one-to-one message between two users
type DirectMessage struct {
	ID         int       `json:"message_id" db:"message_id"`
	SenderID   int       `json:"sender_id" db:"sender_id"`
	ReceiverID int       `json:"receiver_id" db:"receiver_id"`
	Text       string    `json:"message_text" db:"message_text"`
	SentAt     time.Time `json:"sent_at" db:"sent_at"`
	IsRead     bool      `json:"is_read" db:"is_read"`
}

// Group represents a chat group
type Group struct {
	ID          int       `json:"group_id" db:"group_id"`
	Name        string    `json:"group_name" db:"group_name"`
	CreatedBy   int       `json:"created_by" db:"created_by"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	Description string    `json:"description,omitempty" db:"description"`

	// Relationships
	Members []GroupMember `json:"members,omitempty" db:"-"`
}

// GroupMember represents a user's membership in a group. The (group, user)
// pair is unique in the store.
type GroupMember struct {
	ID       int       `json:"membership_id" db:"membership_id"`
	GroupID  int       `json:"group_id" db:"group_id"`
	UserID   int       `json:"user_id" db:"user_id"`
	JoinedAt time.Time `json:"joined_at" db:"joined_at"`
	Role     string    `json:"role" db:"role"`
}

// GroupMessage represents a message posted to a group
type GroupMessage struct {
	ID       int       `json:"message_id" db:"message_id"`
	GroupID  int       `json:"group_id" db:"group_id"`
	SenderID int       `json:"sender_id" db:"sender_id"`
	Text     string    `json:"message_text" db:"message_text"`
	SentAt   time.Time `json:"sent_at" db:"sent_at"`
}
