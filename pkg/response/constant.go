package response

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	TooManyRequestsMessage  = "Too many requests"
	BadRequestErrorCode     = 1
	InternalServerErrorCode = 500
	TooManyRequestsCode     = 429
)
