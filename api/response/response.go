/*
Package response - unified API response handling.

HTTP status mapping lives here only; the application and domain layers
never see HTTP codes. Internal errors return a generic message to the
client while the real cause goes to the log, and every response carries
the request id for tracing.

Format:

	success: { success: true, data: {...}, message: "...", code: 200, request_id: "..." }
	failure: { success: false, error: "ERROR_CODE", message: "...", code: 4xx/5xx, request_id: "..." }
*/
package response

import (
	"net/http"

	"farmshop/pkg/errors"
	"farmshop/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestIDKey gin context key for request id propagation.
const RequestIDKey = "request_id"

// Response Unified response structure.
type Response struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	Code      int         `json:"code"`
	Message   string      `json:"message"`
	RequestID string      `json:"request_id,omitempty"`
}

var httpStatusMap = map[errors.ErrorCode]int{
	errors.CodeInternal:     http.StatusInternalServerError,
	errors.CodeBadRequest:   http.StatusBadRequest,
	errors.CodeUnauthorized: http.StatusUnauthorized,
	errors.CodeForbidden:    http.StatusForbidden,
	errors.CodeNotFound:     http.StatusNotFound,
	errors.CodeConflict:     http.StatusConflict,
	errors.CodeValidation:   http.StatusBadRequest,

	errors.CodeOrderNotFound:     http.StatusNotFound,
	errors.CodeInvalidOrderState: http.StatusUnprocessableEntity,
	errors.CodeProductNotFound:   http.StatusNotFound,
	errors.CodeShippingNotFound:  http.StatusNotFound,
	errors.CodeAddressNotFound:   http.StatusNotFound,

	errors.CodeUserNotFound: http.StatusNotFound,
	errors.CodeEmailExists:  http.StatusConflict,
}

func mapErrorCodeToHTTPStatus(code errors.ErrorCode) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func getRequestID(c *gin.Context) string {
	if requestID, exists := c.Get(RequestIDKey); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return ""
}

// GetRequestID returns the request id set by the middleware.
func GetRequestID(c *gin.Context) string {
	return getRequestID(c)
}

// HandleError handles framework-level errors such as binding failures.
func HandleError(c *gin.Context, err error, message string, code int) {
	requestID := getRequestID(c)

	logger.Error(message,
		zap.String("request_id", requestID),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Int("status", code),
		zap.Error(err))

	c.JSON(code, &Response{
		Success:   false,
		Error:     "BAD_REQUEST",
		Message:   message,
		Code:      code,
		RequestID: requestID,
	})
}

// HandleAppError maps an application error to its HTTP status, logs the
// full cause and returns a client-safe message.
func HandleAppError(c *gin.Context, err error) {
	requestID := getRequestID(c)
	appErr := errors.AsAppError(err)
	httpStatus := mapErrorCodeToHTTPStatus(appErr.Code)

	fields := []zap.Field{
		zap.String("request_id", requestID),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("error_code", string(appErr.Code)),
		zap.Int("http_status", httpStatus),
	}
	if appErr.Err != nil {
		fields = append(fields, zap.Error(appErr.Err))
	}
	logger.Error(appErr.Message, fields...)

	userMessage := appErr.Message
	if appErr.Code == errors.CodeInternal {
		userMessage = "internal server error"
	}

	c.JSON(httpStatus, &Response{
		Success:   false,
		Error:     string(appErr.Code),
		Message:   userMessage,
		Code:      httpStatus,
		RequestID: requestID,
	})
}

// HandleSuccess writes a 200 response.
func HandleSuccess(c *gin.Context, data interface{}, message string) {
	requestID := getRequestID(c)
	c.JSON(http.StatusOK, &Response{
		Success:   true,
		Data:      data,
		Message:   message,
		Code:      http.StatusOK,
		RequestID: requestID,
	})
}

// HandleCreated writes a 201 response.
func HandleCreated(c *gin.Context, data interface{}, message string) {
	requestID := getRequestID(c)
	c.JSON(http.StatusCreated, &Response{
		Success:   true,
		Data:      data,
		Message:   message,
		Code:      http.StatusCreated,
		RequestID: requestID,
	})
}

// HandleNoContent writes a 204 response.
func HandleNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
