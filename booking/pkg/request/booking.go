package request

type Booking struct {
	Name     string `validate:"required"                 json:"name"`
	Email    string `validate:"omitempty,email"          json:"email"`
	Contact  string `validate:"required"                 json:"contact"`
	Location string `validate:"required"                 json:"location"`
	Service  string `validate:"required"                 json:"service"`
	Date     string `validate:"required,datetime=2006-01-02" json:"date"`
	Message  string `json:"message"`
}
