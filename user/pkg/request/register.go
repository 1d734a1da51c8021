package request

import (
	"encoding/json"

	"github.com/rs/zerolog"
)

type RegisterRequest struct {
	Username string `validate:"required"        json:"username"`
	FullName string `json:"full_name"`
	Email    string `validate:"required,email"  json:"email"`
	Password string `validate:"required,min=8"  json:"password"`
}

func (r RegisterRequest) MarshalZerologObject(e *zerolog.Event) {
	e.Str("username", r.Username).Str("email", r.Email).Str("password", "***")
}

func (r RegisterRequest) MarshalJSON() ([]byte, error) {
	r.Password = "***"
	type R RegisterRequest
	return json.Marshal(R(r))
}

type UpdateSettings struct {
	DarkMode bool `json:"dark_mode"`
}
