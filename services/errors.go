package services

import "errors"

// ValidationError = input ไม่ผ่าน → HTTP 400
type ValidationError struct {
	msg string
}

func (e ValidationError) Error() string { return e.msg }

func validation(msg string) error { return ValidationError{msg: msg} }

// sentinel errors ให้ controller map เป็น HTTP status ได้ด้วย errors.Is
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPendingApproval    = errors.New("account is pending admin approval")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidStatus      = errors.New("invalid status: must be Pending, Identified, Reviewed, or Resolved")
	ErrRoleNotAllowed     = errors.New("only farmers can register, contact admin for other roles")
)
