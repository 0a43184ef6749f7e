package services

import (
	"errors"
)

var (
	// ErrInvalidCredentials indicates an unknown user or a wrong password
	ErrInvalidCredentials = errors.New("Incorrect username or password")

	// ErrEmailNotFound indicates the email address does not exist
	ErrEmailNotFound = errors.New("Email address not found")

	// ErrPhoneContactNotFound indicates the phone contact does not exist
	ErrPhoneContactNotFound = errors.New("Phone contact not found")

	// ErrAssistantNotFound indicates no mirrored assistant has the given id
	ErrAssistantNotFound = errors.New("Assistant not found")

	// ErrPhoneNumberNotFound indicates no mirrored phone number has the given id
	ErrPhoneNumberNotFound = errors.New("Phone number not found")

	// ErrCallNotFound indicates the remote call list has no call with the given id
	ErrCallNotFound = errors.New("Call not found")

	// ErrNoUpdatableField indicates a phone number update without provider or credential id
	ErrNoUpdatableField = errors.New("No updatable field provided")

	// ErrInvalidPagination indicates a page number or size out of range
	ErrInvalidPagination = errors.New("invalid pagination parameters")

	// ErrInvalidTuningValue indicates a tuning value outside 0-100
	ErrInvalidTuningValue = errors.New("tuning values must be between 0 and 100")

	// ErrInvalidVoice indicates a voice id missing from the voice catalog
	ErrInvalidVoice = errors.New("voice id is not in the voice catalog")

	// ErrUnsupportedFileType indicates an upload that is not a .txt file
	ErrUnsupportedFileType = errors.New("only .txt files are supported")

	// ErrFileTooLarge indicates an upload above the configured ceiling
	ErrFileTooLarge = errors.New("file is too large")

	// ErrInvalidAboutField indicates an upload target other than description, vision or mission
	ErrInvalidAboutField = errors.New("field must be one of description, vision, mission")

	// ErrInvalidMessage indicates a contact-form submission that fails validation
	ErrInvalidMessage = errors.New("invalid message")
)

// UpstreamError is a failed call to the voice-assistant platform together with what was being done
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func upstream(op string, err error) error {
	return &UpstreamError{Op: op, Err: err}
}

// Upstream operation contexts
const (
	opFetch             = "Failed to fetch data from VAPI"
	opFetchCalls        = "Failed to fetch calls from VAPI"
	opCreateAssistant   = "Failed to create assistant in VAPI"
	opUpdateAssistant   = "Failed to update assistant in VAPI"
	opDeleteAssistant   = "Failed to delete assistant from VAPI"
	opCreatePhoneNumber = "Failed to create phone number in VAPI"
	opUpdatePhoneNumber = "Failed to update phone number in VAPI"
	opDeletePhoneNumber = "Failed to delete phone number from VAPI"
	opUpdateSettings    = "Failed to update assistant settings in VAPI"
)
