package v1

const (
	ClanNotFoundMessage   = "Clan not found"
	InternalErrorMessage  = "internal server error"
	ValidationFailMessage = "validation error"

	ClanDeletedMessage = "Clan deleted successfully."
	CSVUploadedMessage = "CSV uploaded successfully."
	CSVExportedMessage = "Clans exported to CSV successfully."
)

type ErrorStruct struct {
	Detail string `json:"detail"`
} // @name ErrorStruct

type ValidationErrorStruct struct {
	Detail string            `json:"detail"`
	Errors []ValidationError `json:"errors"`
} // @name ValidationErrorStruct

type ValidationError struct {
	FieldKey     string `json:"field_key"`
	ErrorMessage string `json:"error_message"`
}

type MessageStruct struct {
	Message string `json:"message"`
} // @name MessageStruct
