package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/activities-api/internal/domain"
)

type CreateActivityRequest struct {
	Type        string    `json:"type"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	BeginAt     time.Time `json:"begin_at"`
	EndAt       time.Time `json:"end_at"`
	Location    string    `json:"location"`
	IsOnline    bool      `json:"is_online"`
	OnlineLink  string    `json:"online_link"`
	Points      int       `json:"points"`
	IsPaid      bool      `json:"is_paid"`
	Price       *float64  `json:"price"`
	IsPublic    *bool     `json:"is_public"`
	Media       []string  `json:"media"`
	Categories  []string  `json:"categories"`

	Meeting         *domain.MeetingDetails         `json:"meeting"`
	Formation       *domain.FormationDetails       `json:"formation"`
	GeneralAssembly *domain.GeneralAssemblyDetails `json:"general_assembly"`
}

// Validate only checks the shape of the request; activity invariants are
// enforced when the activity is created.
func (req *CreateActivityRequest) Validate() error {
	err := validation.ValidateStruct(req,
		validation.Field(&req.Type, validation.Required),
		validation.Field(&req.Name, validation.Required),
		validation.Field(&req.BeginAt, validation.Required),
		validation.Field(&req.EndAt, validation.Required),
	)
	return domain.NewValidationError(err)
}

func (req *CreateActivityRequest) ToActivity() domain.Activity {
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	return domain.Activity{
		Type:            domain.ActivityType(req.Type),
		Name:            req.Name,
		Description:     req.Description,
		BeginAt:         req.BeginAt.UTC(),
		EndAt:           req.EndAt.UTC(),
		Location:        req.Location,
		IsOnline:        req.IsOnline,
		OnlineLink:      req.OnlineLink,
		Points:          req.Points,
		IsPaid:          req.IsPaid,
		Price:           req.Price,
		IsPublic:        isPublic,
		Media:           req.Media,
		Categories:      req.Categories,
		Meeting:         req.Meeting,
		Formation:       req.Formation,
		GeneralAssembly: req.GeneralAssembly,
	}
}

// UpdateActivityRequest carries base and extension fields side by side. The
// owner of the extension fields is resolved by the service.
type UpdateActivityRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	BeginAt     *time.Time `json:"begin_at"`
	EndAt       *time.Time `json:"end_at"`
	Location    *string    `json:"location"`
	IsOnline    *bool      `json:"is_online"`
	OnlineLink  *string    `json:"online_link"`
	Points      *int       `json:"points"`
	IsPaid      *bool      `json:"is_paid"`
	Price       *float64   `json:"price"`
	IsPublic    *bool      `json:"is_public"`
	Media       *[]string  `json:"media"`
	Categories  *[]string  `json:"categories"`

	AgendaPlan        *string `json:"agenda_plan"`
	MinutesAttachment *string `json:"minutes_attachment"`
	MeetingCategory   *string `json:"meeting_category"`
	TrainerName       *string `json:"trainer_name"`
	CourseAttachment  *string `json:"course_attachment"`
	TrainingCategory  *string `json:"training_category"`
	AssemblyScope     *string `json:"assembly_scope"`
}

func (req *UpdateActivityRequest) ToPatch() domain.ActivityPatch {
	patch := domain.ActivityPatch{
		Name:              req.Name,
		Description:       req.Description,
		Location:          req.Location,
		IsOnline:          req.IsOnline,
		OnlineLink:        req.OnlineLink,
		Points:            req.Points,
		IsPaid:            req.IsPaid,
		Price:             req.Price,
		IsPublic:          req.IsPublic,
		Media:             req.Media,
		Categories:        req.Categories,
		AgendaPlan:        req.AgendaPlan,
		MinutesAttachment: req.MinutesAttachment,
		MeetingCategory:   req.MeetingCategory,
		TrainerName:       req.TrainerName,
		CourseAttachment:  req.CourseAttachment,
		TrainingCategory:  req.TrainingCategory,
		AssemblyScope:     req.AssemblyScope,
	}
	if req.BeginAt != nil {
		begin := req.BeginAt.UTC()
		patch.BeginAt = &begin
	}
	if req.EndAt != nil {
		end := req.EndAt.UTC()
		patch.EndAt = &end
	}
	return patch
}

type ListActivitiesQuery struct {
	Type     string     `form:"type"`
	IsOnline *bool      `form:"is_online"`
	IsPaid   *bool      `form:"is_paid"`
	IsPublic *bool      `form:"is_public"`
	From     *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To       *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
}

func (q *ListActivitiesQuery) ToFilter() domain.ActivityFilter {
	return domain.ActivityFilter{
		Type:     domain.ActivityType(q.Type),
		IsOnline: q.IsOnline,
		IsPaid:   q.IsPaid,
		IsPublic: q.IsPublic,
		From:     q.From,
		To:       q.To,
	}
}
