package util

// Collection names
const (
	UserCollection         = "USERS"
	MedicationCollection   = "MEDICATIONS"
	NotificationCollection = "NOTIFICATIONS"
	IntakeCollection       = "INTAKE_SESSIONS"
)

// Cache keys
const (
	MedicationsKey = "MEDICATIONS:"
)

// Intake session states
const (
	IntakeStateUploading  = "uploading"
	IntakeStateUploaded   = "uploaded"
	IntakeStateExtracting = "extracting"
	IntakeStateDraftReady = "draft_ready"
	IntakeStateFailed     = "failed"
)

// Error messages
const (
	EMAIL_NOT_PROVIDED          = "email is required"
	PASSWORD_NOT_PROVIDED       = "password is required"
	INVALID_EMAIL               = "invalid email address"
	EMAIL_ALREADY_REGISTERED    = "email is already registered"
	USER_NOT_FOUND              = "no account found for this email"
	PASSWORD_MISMATCH           = "incorrect email or password"
	INVALID_TOKEN               = "invalid or expired token"
	TOKEN_NOT_PROVIDED          = "authorization token is required"
	NAME_NOT_PROVIDED           = "medication name is required"
	DOSAGE_NOT_PROVIDED         = "dosage is required"
	QUANTITY_NOT_PROVIDED       = "quantity is required"
	QUANTITY_MUST_BE_POSITIVE   = "quantity must be a non-negative number"
	REMINDER_TIMES_REQUIRED     = "at least one reminder time is required"
	INVALID_REMINDER_TIME       = "invalid reminder time"
	MEDICATION_NOT_FOUND        = "medication not found"
	FAILED_TO_LOAD_MEDICATIONS  = "failed to load medications"
	FAILED_TO_ADD_MEDICATION    = "failed to add medication"
	FAILED_TO_UPDATE_MEDICATION = "failed to update medication"
	FAILED_TO_DELETE_MEDICATION = "failed to delete medication"
	NO_PILLS_LEFT               = "no pills left for this medication"
	NO_VIDEO_FILE               = "video file is required"
	UPLOAD_FAILED               = "failed to upload video"
	INTAKE_NOT_FOUND            = "intake session not found"
	VIDEO_NOT_UPLOADED          = "video has not been uploaded for this session"
	EXTRACTION_FAILED           = "failed to process video"
	MESSAGE_NOT_PROVIDED        = "message is required"
	CHAT_FAILED                 = "failed to get a chat response"
	VANGUARD_FAILED             = "failed to get a compatibility overview"
	NO_MEDICATIONS_TO_CHECK     = "no medications to check"
	NOTIFICATION_NOT_FOUND      = "notification not found"
	FAILED_TO_LOAD_NOTIFICATIONS = "failed to load notifications"
)
