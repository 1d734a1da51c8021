package request

type Review struct {
	Rating  int32  `validate:"required,gte=1,lte=5" json:"rating"`
	Comment string `validate:"required"             json:"comment"`
}
