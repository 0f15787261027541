package api

import "github.com/phrazzld/nani-api/internal/domain"

// GenerateBody is the JSON body of every generation route. Difficulty is
// required for assessments only; GenerateAudio is read for podcasts only.
type GenerateBody struct {
	DocumentRef   string `json:"documentRef" validate:"required"`
	StartPage     int    `json:"startPage" validate:"required,gte=1"`
	EndPage       int    `json:"endPage" validate:"required,gtefield=StartPage"`
	Difficulty    string `json:"difficulty,omitempty"`
	GenerateAudio bool   `json:"generateAudio,omitempty"`
}

type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=4"`
}

type CreateSubjectRequest struct {
	Name string `json:"name" validate:"required"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type APIKeyResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

type BookResponse struct {
	Book *domain.Book `json:"book"`
}

type BooksResponse struct {
	Books []*domain.Book `json:"books"`
}

type SubjectResponse struct {
	Subject *domain.Subject `json:"subject"`
}

type SubjectsResponse struct {
	Subjects []domain.Subject `json:"subjects"`
}

type ProvidersResponse struct {
	Providers []domain.ProviderInfo `json:"providers"`
}
