package user

// DuplicateEmailError signals that the email is already registered.
type DuplicateEmailError struct {
	Email string
}

func (e DuplicateEmailError) Error() string {
	return "an account with email " + e.Email + " already exists"
}

// InvalidCredentialsError deliberately carries no detail about which part of
// the credentials was wrong.
type InvalidCredentialsError struct{}

func (e InvalidCredentialsError) Error() string {
	return "invalid email or password"
}

// UserNotFoundError signals that no user matches the given id.
type UserNotFoundError struct {
	UserID string
}

func (e UserNotFoundError) Error() string {
	return "user " + e.UserID + " not found"
}
