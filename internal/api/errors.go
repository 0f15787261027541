package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/nani-api/internal/api/shared"
	"github.com/phrazzld/nani-api/internal/domain"
	"github.com/phrazzld/nani-api/internal/service"
	"github.com/phrazzld/nani-api/internal/service/auth"
	"github.com/phrazzld/nani-api/internal/store"
)

// User-facing messages.
const (
	msgMissingParams       = "缺少必要參數"
	msgBadRequestBody      = "請求格式錯誤"
	msgMissingAPIKey       = "請先設定 API Key"
	msgNoContent           = "無法從選取頁面擷取文字，請確認 PDF 包含文字內容"
	msgDocumentNotFound    = "找不到指定的文件"
	msgExtraction          = "無法讀取 PDF 文件"
	msgUnsupportedProvider = "不支援的 AI 供應商"
	msgFormat              = "AI 回應格式異常，請重試"
	msgProviderAuth        = "API Key 無效或權限不足"
	msgProviderFailed      = "AI 服務呼叫失敗，請稍後再試"
	msgInvalidAPIKey       = "API Key 無效"
	msgInvalidPDF          = "請上傳有效的 PDF 檔案"
	msgWrongPassword       = "密碼錯誤"
	msgUnauthorized        = "無效的登入憑證"
	msgBookNotFound        = "找不到此書籍"
	msgSubjectNotFound     = "找不到此科目"
	msgNotFound            = "找不到資源"
	msgSubjectExists       = "此科目已存在"
	msgDuplicate           = "資料已存在"
	msgInvalidEntity       = "資料格式錯誤"
	msgInternal            = "伺服器發生錯誤，請稍後再試"
)

// MapErrorToStatusCode maps service and domain errors to HTTP statuses.
func MapErrorToStatusCode(err error) int {
	var pce *domain.ProviderCallError
	if errors.As(err, &pce) {
		if pce.IsAuthFailure() {
			return http.StatusUnauthorized
		}
		return http.StatusInternalServerError
	}

	switch {
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrWrongRole):
		return http.StatusUnauthorized

	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrDuplicate):
		return http.StatusConflict

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrNoContent),
		errors.Is(err, domain.ErrExtraction),
		errors.Is(err, domain.ErrUnsupportedProvider),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a localized message that never contains
// vendor payloads or internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return msgInternal
	}

	var pce *domain.ProviderCallError
	if errors.As(err, &pce) {
		if pce.IsAuthFailure() {
			return msgProviderAuth
		}
		return msgProviderFailed
	}

	switch {
	case errors.Is(err, domain.ErrMissingAPIKey):
		return msgMissingAPIKey
	case errors.Is(err, service.ErrInvalidPDF):
		return msgInvalidPDF
	case errors.Is(err, domain.ErrValidation):
		return SanitizeValidationError(err)

	case errors.Is(err, domain.ErrNoContent):
		return msgNoContent
	case errors.Is(err, domain.ErrDocumentNotFound):
		return msgDocumentNotFound
	case errors.Is(err, domain.ErrExtraction):
		return msgExtraction
	case errors.Is(err, domain.ErrUnsupportedProvider):
		return msgUnsupportedProvider
	case errors.Is(err, domain.ErrFormat):
		return msgFormat

	case errors.Is(err, service.ErrWrongPassword):
		return msgWrongPassword
	case errors.Is(err, service.ErrInvalidAPIKey):
		return msgInvalidAPIKey
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return msgUnauthorized

	case errors.Is(err, store.ErrBookNotFound):
		return msgBookNotFound
	case errors.Is(err, store.ErrSubjectNotFound):
		return msgSubjectNotFound
	case errors.Is(err, domain.ErrNotFound):
		return msgNotFound

	case errors.Is(err, store.ErrSubjectExists):
		return msgSubjectExists
	case errors.Is(err, domain.ErrDuplicate):
		return msgDuplicate

	case errors.Is(err, store.ErrInvalidEntity):
		return msgInvalidEntity

	default:
		return msgInternal
	}
}

// SanitizeValidationError names the offending field without echoing values.
func SanitizeValidationError(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		if fe.Tag() == "required" {
			return msgMissingParams + "：" + fe.Field()
		}
		return "參數錯誤：" + fe.Field()
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return "參數錯誤：" + ve.Field
	}
	return msgMissingParams
}

// HandleAPIError writes the mapped status and safe message and logs err.
// 401 replies are logged at WARN.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	var opts []shared.ResponseOption
	if status == http.StatusUnauthorized {
		opts = append(opts, shared.WithElevatedLogLevel())
	}
	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err, opts...)
}

// decodeAndValidate reads a JSON body into v and runs its validation tags.
// It writes the error reply itself and reports whether to continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, msgBadRequestBody, err)
		return false
	}
	if err := shared.ValidateRequest(v); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return false
	}
	return true
}
