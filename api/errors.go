package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Domenick1991/oneservice/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type handlerFunc func(c *gin.Context) error

// badRequestError marks errors caused by an unusable request body.
type badRequestError struct {
	err error
}

func (e *badRequestError) Error() string { return e.err.Error() }
func (e *badRequestError) Unwrap() error { return e.err }

// handle is the single place where handler errors become responses. Body
// errors are answered with 400; everything else, malformed ids included,
// is logged and answered with 500 and the route's fixed message.
func handle(message string, fn handlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := fn(c)
		if err == nil {
			return
		}
		_ = c.Error(err)

		var bodyErr *badRequestError
		if errors.As(err, &bodyErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": bodyErr.Error()})
			return
		}

		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": message})
	}
}

// bindDocument decodes a JSON object body. Bodies without an application/json
// content type are not parsed and, like an empty body, yield an empty document.
func bindDocument(c *gin.Context) (domain.Document, error) {
	doc := domain.Document{}
	if c.ContentType() != binding.MIMEJSON {
		return doc, nil
	}

	data, err := c.GetRawData()
	if err != nil {
		return nil, &badRequestError{err: err}
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return doc, nil
	}
	if data[0] != '{' {
		return nil, &badRequestError{err: errors.New("request body must be a JSON object")}
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &badRequestError{err: err}
	}
	return doc, nil
}
