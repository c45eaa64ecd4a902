package serializer

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var log = zap.NewNop()

// SetLogger sets the logger used to record server-side errors.
func SetLogger(l *zap.Logger) {
	if l != nil {
		log = l
	}
}

// Response is the envelope of every JSON reply.
type Response struct {
	Code  int         `json:"code"`
	Data  interface{} `json:"data,omitempty"`
	Msg   string      `json:"msg"`
	Error string      `json:"error,omitempty"`
}

// Err
func Err(errCode int, msg string, err error) Response {
	res := Response{
		Code: errCode,
		Msg:  msg,
	}
	// development mode, show error detail
	if err != nil && gin.Mode() != gin.ReleaseMode {
		res.Error = fmt.Sprintf("%+v", err)
	}
	return res
}

// DBErr is a 500. The cause is always logged, since release mode hides it
// from the caller.
func DBErr(msg string, err error) Response {
	if msg == "" {
		msg = "database error"
	}
	log.Sugar().Errorw(msg, "err", err)
	return Err(http.StatusInternalServerError, msg, err)
}

// ParamErr
func ParamErr(msg string, err error) Response {
	if msg == "" {
		msg = "parameter error"
	}
	return Err(http.StatusBadRequest, msg, err)
}

// ValidationErr carries the rejected fields as data.
func ValidationErr(fields interface{}, err error) Response {
	res := Err(http.StatusBadRequest, "validation error", err)
	res.Data = fields
	return res
}

func NotFoundErr(msg string) Response {
	if msg == "" {
		msg = "not found"
	}
	return Err(http.StatusNotFound, msg, nil)
}

func ConflictErr(msg string, err error) Response {
	if msg == "" {
		msg = "duplicate key"
	}
	return Err(http.StatusConflict, msg, err)
}
