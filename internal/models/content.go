package models

// Built-in values used while the about singleton has no row yet
const (
	DefaultAboutDescription = "Ahudio hakkında açıklama"
	DefaultAboutVision      = "Vizyonumuz"
	DefaultAboutMission     = "Misyonumuz"
)

// Public-facing fallbacks; these are shown without creating a row
const (
	PublicAboutDescription = "Ahudio - AI destekli sesli asistan çözümleri"
	PublicAboutVision      = "İşletmelerin müşteri iletişimini yapay zeka ile dönüştürmek"
	PublicAboutMission     = "Her işletmeye erişilebilir, akıllı sesli asistan teknolojisi sunmak"
)

// Built-in tuning defaults used while the property singleton has no row
const (
	DefaultHumor       = 30
	DefaultFlexibility = 50
	DefaultGoalFocus   = 50
)

// AboutContent is the singleton "about" text block
type AboutContent struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Vision      string `json:"vision"`
	Mission     string `json:"mission"`
}

// AboutUpdateRequest replaces all three about fields
type AboutUpdateRequest struct {
	Description string `json:"description" binding:"required"`
	Vision      string `json:"vision" binding:"required"`
	Mission     string `json:"mission" binding:"required"`
}

// PublicAbout is the unauthenticated view of the about text
type PublicAbout struct {
	Description string `json:"description"`
	Vision      string `json:"vision"`
	Mission     string `json:"mission"`
}

// ContactStatus reports whether any contact channel is configured, without exposing it
type ContactStatus struct {
	HasEmail         bool `json:"has_email"`
	HasPhone         bool `json:"has_phone"`
	ContactAvailable bool `json:"contact_available"`
}

// EmailAddress is a free-text email entry shown on the site
type EmailAddress struct {
	ID    int64  `json:"id"`
	Value string `json:"value"`
}

// PhoneContact is a free-text phone entry shown on the site.
// It is unrelated to the phone numbers mirrored from the voice platform.
type PhoneContact struct {
	ID    int64  `json:"id"`
	Value string `json:"value"`
}

// ValueRequest is the create/update payload shared by emails and phone contacts
type ValueRequest struct {
	Value string `json:"value" binding:"required,max=200"`
}

// TuningProperty holds the default assistant tuning values (0-100 each)
type TuningProperty struct {
	ID          int64 `json:"id"`
	Humor       int   `json:"humor"`
	Flexibility int   `json:"flexibility"`
	GoalFocus   int   `json:"goal_focus"`
}

// DefaultTuningProperty returns the built-in values used when no row exists
func DefaultTuningProperty() *TuningProperty {
	return &TuningProperty{
		Humor:       DefaultHumor,
		Flexibility: DefaultFlexibility,
		GoalFocus:   DefaultGoalFocus,
	}
}

// TuningPropertyRequest replaces the default tuning values
type TuningPropertyRequest struct {
	Humor       *int `json:"humor" binding:"required,min=0,max=100"`
	Flexibility *int `json:"flexibility" binding:"required,min=0,max=100"`
	GoalFocus   *int `json:"goal_focus" binding:"required,min=0,max=100"`
}
