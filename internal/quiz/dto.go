package quiz

import "github.com/go-playground/validator/v10"

var validate = validator.New()

type CreateQuizRequest struct {
	URL string `json:"url" validate:"required,url"`
}

func (r *CreateQuizRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateQuizRequest carries a partial update; nil fields are left untouched.
type UpdateQuizRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}
