package mocks

import "errors"

// ErrPasswordMismatch is returned by MockPasswordVerifier.Compare on failure.
var ErrPasswordMismatch = errors.New("password mismatch")

// MockPasswordVerifier implements auth.PasswordVerifier. Hash prefixes the
// password with "hashed:" unless HashErr is set.
type MockPasswordVerifier struct {
	ShouldSucceed bool
	CompareFn     func(hashedPassword, password string) error
	HashErr       error

	CompareCalledWith struct {
		HashedPassword string
		Password       string
	}
	CompareCallCount int
	Hashed           []string
}

func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	m.CompareCalledWith.HashedPassword = hashedPassword
	m.CompareCalledWith.Password = password
	m.CompareCallCount++

	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if m.ShouldSucceed {
		return nil
	}
	return ErrPasswordMismatch
}

func (m *MockPasswordVerifier) Hash(password string) (string, error) {
	if m.HashErr != nil {
		return "", m.HashErr
	}
	m.Hashed = append(m.Hashed, password)
	return "hashed:" + password, nil
}
