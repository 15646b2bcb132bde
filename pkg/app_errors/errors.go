package apperrors

import "errors"

// 錯誤種類：每個 domain 錯誤都包裝其中一種，handler 依種類決定 HTTP status
var (
	ErrNotFound        = errors.New("not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrConflict        = errors.New("conflict")
)

var (
	ErrTicketNotFound     = newError(ErrNotFound, "Ticket not found")
	ErrInvalidTicket      = newError(ErrNotFound, "Invalid ticket. Please check your ticket and try again.")
	ErrCandidateNotFound  = newError(ErrNotFound, "Candidate not found")
	ErrCategoryNotFound   = newError(ErrNotFound, "Category not found")
	ErrVoteNotFound       = newError(ErrNotFound, "No vote found in this category")
	ErrAdminNotFound      = newError(ErrNotFound, "Admin not found")
	ErrPromoVideoNotFound = newError(ErrNotFound, "No promo video to delete")
	ErrImageNotFound      = newError(ErrNotFound, "No image to remove")

	ErrMissingCredential = newError(ErrUnauthorized, "No token provided")
	ErrInvalidCredential = newError(ErrUnauthorized, "Invalid or expired token")
	ErrTicketRevoked     = newError(ErrUnauthorized, "Invalid ticket. Please scan your ticket again.")
	ErrInvalidLogin      = newError(ErrUnauthorized, "Invalid credentials")

	ErrVotingDisabled = newError(ErrForbidden, "Voting is not currently enabled. Please wait for the event to start.")

	ErrInvalidInput              = newError(ErrInvalidArgument, "Invalid input")
	ErrCandidateCategoryMismatch = newError(ErrInvalidArgument, "Candidate does not belong to this category")
	ErrInvalidQuantity           = newError(ErrInvalidArgument, "Quantity must be between 1 and 100")
	ErrInvalidSerial             = newError(ErrInvalidArgument, "Invalid ticket serial format")
	ErrUnsupportedFile           = newError(ErrInvalidArgument, "Unsupported file type")
	ErrFileTooLarge              = newError(ErrInvalidArgument, "File is too large")

	ErrAlreadyVoted      = newError(ErrConflict, "You have already voted in this category")
	ErrDuplicateSerial   = newError(ErrConflict, "Ticket serial already exists")
	ErrDuplicateNominee  = newError(ErrConflict, "Nominee ID already exists in this category")
	ErrDuplicateCategory = newError(ErrConflict, "Category name already exists")
	ErrDuplicateAdmin    = newError(ErrConflict, "Admin username already exists")
)

// Error 是帶有種類的 domain 錯誤，Error() 回傳可直接顯示給使用者的訊息
type Error struct {
	kind    error
	message string
}

func newError(kind error, message string) *Error {
	return &Error{kind: kind, message: message}
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) Unwrap() error {
	return e.kind
}

// Kind 回傳錯誤所屬的種類；非 domain 錯誤回傳 nil
func Kind(err error) error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.kind
	}
	return nil
}

// Message 回傳最外層 domain 錯誤的訊息
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.message
	}
	return ""
}
