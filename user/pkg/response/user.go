package response

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type Settings struct {
	UserID   uuid.UUID `json:"user_id"`
	FullName string    `json:"full_name"`
	DarkMode bool      `json:"dark_mode"`
}
