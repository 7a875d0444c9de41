// Package http exposes the tour catalog and pricing calculator over gin.
package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/tour-service/internal/domain/dto"
	"github.com/guttosm/tour-service/internal/middleware"
)

var successResponsePool = sync.Pool{
	New: func() interface{} {
		return &dto.SuccessResponse{}
	},
}

// ResponseBuilder writes the success and error envelopes.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a builder for c.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success writes data inside a SuccessResponse.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	resp, _ := successResponsePool.Get().(*dto.SuccessResponse)
	if resp == nil {
		resp = &dto.SuccessResponse{}
	}
	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	// gin serialises synchronously, so the value can go back right after.
	b.c.JSON(statusCode, resp)

	*resp = dto.SuccessResponse{}
	successResponsePool.Put(resp)
}

// SuccessOK writes a 200.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data)
}

// Error aborts with an ErrorResponse carrying code and message. A non-nil
// err is attached to the context for ErrorHandler to log.
func (b *ResponseBuilder) Error(statusCode int, code, message string, err error) {
	if err != nil {
		_ = b.c.Error(err)
	}
	b.c.AbortWithStatusJSON(statusCode,
		dto.NewError(code, message).WithRequestID(middleware.GetRequestID(b.c)))
}

// ErrorFromStatus is Error with the code derived from the status.
func (b *ResponseBuilder) ErrorFromStatus(statusCode int, message string, err error) {
	b.Error(statusCode, dto.ErrCodeFromStatus(statusCode), message, err)
}

// Validator is implemented by request bodies that check themselves.
type Validator interface {
	Validate() error
}

// BuildRequestAndValidate binds the JSON body into a T and runs Validate
// when T implements Validator.
func BuildRequestAndValidate[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	if v, ok := any(&req).(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return &req, nil
}
