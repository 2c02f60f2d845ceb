package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/activities-api/internal/domain"
)

type AwardPointsRequest struct {
	Delta       int    `json:"delta"`
	Description string `json:"description"`
	SourceType  string `json:"source_type"`
}

func (req *AwardPointsRequest) Validate() error {
	err := validation.ValidateStruct(req,
		validation.Field(&req.Description, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.SourceType, validation.Required),
	)
	return domain.NewValidationError(err)
}

type PreferencesRequest struct {
	Categories []string `json:"categories"`
}
