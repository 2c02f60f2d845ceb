package domain

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type ActivityType string

const (
	ActivityEvent           ActivityType = "event"
	ActivityMeeting         ActivityType = "meeting"
	ActivityFormation       ActivityType = "formation"
	ActivityGeneralAssembly ActivityType = "general_assembly"
)

var ActivityTypes = []ActivityType{ActivityEvent, ActivityMeeting, ActivityFormation, ActivityGeneralAssembly}

func (t ActivityType) Valid() bool {
	for _, known := range ActivityTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Activity is the merged view of a base record and its single extension
// record. Exactly one of the *Details pointers is set on a fully read activity;
// list results carry none.
type Activity struct {
	ID          uint         `json:"id"`
	Type        ActivityType `json:"type"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	BeginAt     time.Time    `json:"begin_at"`
	EndAt       time.Time    `json:"end_at"`
	Location    string       `json:"location,omitempty"`
	IsOnline    bool         `json:"is_online"`
	OnlineLink  string       `json:"online_link,omitempty"`
	Points      int          `json:"points"`
	IsPaid      bool         `json:"is_paid"`
	Price       *float64     `json:"price,omitempty"`
	IsPublic    bool         `json:"is_public"`
	Media       []string     `json:"media,omitempty"`
	Categories  []string     `json:"categories,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`

	Event           *EventDetails           `json:"event,omitempty"`
	Meeting         *MeetingDetails         `json:"meeting,omitempty"`
	Formation       *FormationDetails       `json:"formation,omitempty"`
	GeneralAssembly *GeneralAssemblyDetails `json:"general_assembly,omitempty"`
}

type EventDetails struct{}

type MeetingDetails struct {
	AgendaPlan        string `json:"agenda_plan,omitempty"`
	MinutesAttachment string `json:"minutes_attachment,omitempty"`
	MeetingCategory   string `json:"meeting_category,omitempty"`
}

type FormationDetails struct {
	TrainerName      string `json:"trainer_name,omitempty"`
	CourseAttachment string `json:"course_attachment,omitempty"`
	TrainingCategory string `json:"training_category,omitempty"`
}

type GeneralAssemblyDetails struct {
	AssemblyScope string `json:"assembly_scope,omitempty"`
}

// HasDetails reports whether the extension record has been merged in.
func (a Activity) HasDetails() bool {
	return a.Event != nil || a.Meeting != nil || a.Formation != nil || a.GeneralAssembly != nil
}

// EnsureDetails fills in an empty extension matching the type and clears any
// extension belonging to another type.
func (a *Activity) EnsureDetails() {
	event, meeting, formation, assembly := a.Event, a.Meeting, a.Formation, a.GeneralAssembly
	a.Event, a.Meeting, a.Formation, a.GeneralAssembly = nil, nil, nil, nil
	switch a.Type {
	case ActivityEvent:
		a.Event = orNew(event)
	case ActivityMeeting:
		a.Meeting = orNew(meeting)
	case ActivityFormation:
		a.Formation = orNew(formation)
	case ActivityGeneralAssembly:
		a.GeneralAssembly = orNew(assembly)
	}
}

func orNew[T any](v *T) *T {
	if v != nil {
		return v
	}
	return new(T)
}

// CategorySet is the union of base categories and the type specific category.
func (a Activity) CategorySet() []string {
	out := make([]string, 0, len(a.Categories)+1)
	seen := map[string]bool{}
	add := func(c string) {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" || seen[c] {
			return
		}
		seen[c] = true
		out = append(out, c)
	}
	for _, c := range a.Categories {
		add(c)
	}
	if a.Meeting != nil {
		add(a.Meeting.MeetingCategory)
	}
	if a.Formation != nil {
		add(a.Formation.TrainingCategory)
	}
	return out
}

// Validate checks the invariants of a complete activity.
func (a Activity) Validate() error {
	linkRules := []validation.Rule{is.URL}
	if a.IsOnline {
		linkRules = append(linkRules, validation.Required)
	}
	priceRules := []validation.Rule{validation.Min(0.0)}
	if a.IsPaid {
		priceRules = []validation.Rule{validation.Required, validation.Min(0.01)}
	}
	err := validation.ValidateStruct(&a,
		validation.Field(&a.Type, validation.Required, validation.By(validateActivityType)),
		validation.Field(&a.Name, validation.Required, validation.Length(2, 120)),
		validation.Field(&a.Description, validation.Length(0, 5000)),
		validation.Field(&a.BeginAt, validation.Required),
		validation.Field(&a.EndAt, validation.Required),
		validation.Field(&a.Points, validation.Min(0)),
		validation.Field(&a.OnlineLink, linkRules...),
		validation.Field(&a.Price, priceRules...),
	)
	if err != nil {
		return NewValidationError(err)
	}
	if !a.EndAt.After(a.BeginAt) {
		return ErrEndBeforeStart
	}
	return a.validateDetails()
}

func (a Activity) validateDetails() error {
	count := 0
	var owner ActivityType
	if a.Event != nil {
		count++
		owner = ActivityEvent
	}
	if a.Meeting != nil {
		count++
		owner = ActivityMeeting
	}
	if a.Formation != nil {
		count++
		owner = ActivityFormation
	}
	if a.GeneralAssembly != nil {
		count++
		owner = ActivityGeneralAssembly
	}
	if count > 1 || (count == 1 && owner != a.Type) {
		return NewKindError(ErrValidation, "extension fields do not match activity type "+string(a.Type))
	}
	return nil
}

func validateActivityType(value interface{}) error {
	t, _ := value.(ActivityType)
	if !t.Valid() {
		return ErrInvalidActivityType
	}
	return nil
}

// ActivityFilter narrows List. Nil pointers do not filter.
type ActivityFilter struct {
	Type     ActivityType
	IsOnline *bool
	IsPaid   *bool
	IsPublic *bool
	From     *time.Time
	To       *time.Time
}

// ActivityPatch is a partial update. Base fields and extension fields are
// told apart by ownership, not by the caller.
type ActivityPatch struct {
	Name        *string
	Description *string
	BeginAt     *time.Time
	EndAt       *time.Time
	Location    *string
	IsOnline    *bool
	OnlineLink  *string
	Points      *int
	IsPaid      *bool
	Price       *float64
	IsPublic    *bool
	Media       *[]string
	Categories  *[]string

	AgendaPlan        *string
	MinutesAttachment *string
	MeetingCategory   *string
	TrainerName       *string
	CourseAttachment  *string
	TrainingCategory  *string
	AssemblyScope     *string
}

// ExtensionOwner returns the activity type owning the extension fields set on
// the patch, or "" when it touches none. More than one owner is reported as ok=false.
func (p ActivityPatch) ExtensionOwner() (owner ActivityType, ok bool) {
	owners := map[ActivityType]bool{}
	if p.AgendaPlan != nil || p.MinutesAttachment != nil || p.MeetingCategory != nil {
		owners[ActivityMeeting] = true
		owner = ActivityMeeting
	}
	if p.TrainerName != nil || p.CourseAttachment != nil || p.TrainingCategory != nil {
		owners[ActivityFormation] = true
		owner = ActivityFormation
	}
	if p.AssemblyScope != nil {
		owners[ActivityGeneralAssembly] = true
		owner = ActivityGeneralAssembly
	}
	if len(owners) > 1 {
		return "", false
	}
	return owner, true
}

// Apply returns a copy of a with the patch merged in, used to validate the
// result before anything is written.
func (p ActivityPatch) Apply(a Activity) Activity {
	set(&a.Name, p.Name)
	set(&a.Description, p.Description)
	set(&a.BeginAt, p.BeginAt)
	set(&a.EndAt, p.EndAt)
	set(&a.Location, p.Location)
	set(&a.IsOnline, p.IsOnline)
	set(&a.OnlineLink, p.OnlineLink)
	set(&a.Points, p.Points)
	set(&a.IsPaid, p.IsPaid)
	set(&a.IsPublic, p.IsPublic)
	set(&a.Media, p.Media)
	set(&a.Categories, p.Categories)
	if p.Price != nil {
		price := *p.Price
		a.Price = &price
	}
	if a.Meeting != nil {
		m := *a.Meeting
		set(&m.AgendaPlan, p.AgendaPlan)
		set(&m.MinutesAttachment, p.MinutesAttachment)
		set(&m.MeetingCategory, p.MeetingCategory)
		a.Meeting = &m
	}
	if a.Formation != nil {
		f := *a.Formation
		set(&f.TrainerName, p.TrainerName)
		set(&f.CourseAttachment, p.CourseAttachment)
		set(&f.TrainingCategory, p.TrainingCategory)
		a.Formation = &f
	}
	if a.GeneralAssembly != nil {
		g := *a.GeneralAssembly
		set(&g.AssemblyScope, p.AssemblyScope)
		a.GeneralAssembly = &g
	}
	return a
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
