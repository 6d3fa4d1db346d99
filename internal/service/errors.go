package service

import (
	"errors"
	"net/http"
)

var (
	ErrParamInvalid       = errors.New("invalid request parameters")
	ErrArticleNotFound    = errors.New("article not found")
	ErrFatwaNotFound      = errors.New("fatwa not found")
	ErrBookNotFound       = errors.New("book not found")
	ErrWriterNotFound     = errors.New("writer not found")
	ErrScholarNotFound    = errors.New("scholar not found")
	ErrTagNotFound        = errors.New("tag not found")
	ErrTopicNotFound      = errors.New("topic not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrFileNotFound       = errors.New("file not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrSlugExists         = errors.New("slug already in use")
	ErrTagExists          = errors.New("tag already exists")
	ErrCredentialsInvalid = errors.New("invalid email or password")
	UnauthorizedError     = errors.New("not authorized")
	UnExpectedError       = errors.New("unexpected error, please retry later")
)

// ErrorMap binds every sentinel to the HTTP status the envelope
// carries. Anything not listed here is reported as a 500 with a
// generic message; raw storage errors never reach clients.
var ErrorMap = map[error]int{
	ErrParamInvalid:       http.StatusBadRequest,
	ErrArticleNotFound:    http.StatusNotFound,
	ErrFatwaNotFound:      http.StatusNotFound,
	ErrBookNotFound:       http.StatusNotFound,
	ErrWriterNotFound:     http.StatusNotFound,
	ErrScholarNotFound:    http.StatusNotFound,
	ErrTagNotFound:        http.StatusNotFound,
	ErrTopicNotFound:      http.StatusNotFound,
	ErrUserNotFound:       http.StatusNotFound,
	ErrQuestionNotFound:   http.StatusNotFound,
	ErrFileNotFound:       http.StatusNotFound,
	ErrEmailExists:        http.StatusConflict,
	ErrSlugExists:         http.StatusConflict,
	ErrTagExists:          http.StatusConflict,
	ErrCredentialsInvalid: http.StatusUnauthorized,
	UnauthorizedError:     http.StatusUnauthorized,
	UnExpectedError:       http.StatusInternalServerError,
}
