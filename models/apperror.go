package models

// AppErrorKind classifies a failure for user-facing presentation.
type AppErrorKind string

const (
	AppErrorNetwork AppErrorKind = "networkError"
	AppErrorParsing AppErrorKind = "parsingError"
	AppErrorAPI     AppErrorKind = "apiError"
	AppErrorUnknown AppErrorKind = "unknownError"
)

// AppError is the user-facing error payload returned by the API layer.
type AppError struct {
	Kind    AppErrorKind `json:"kind"`
	Message string       `json:"message"`
}

func (e AppError) Error() string {
	return string(e.Kind) + ": " + e.Message
}
