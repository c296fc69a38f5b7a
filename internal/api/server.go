// Package api serves the toksum tokenization operations over HTTP.
package api

import (
	"fmt"
	"io"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/labstack/echo/v5"

	"github.com/samcharles93/toksum/pkg/toksum"
)

// EncoderResolver turns a selector into an encoder. It is a seam so tests
// can serve fake encoders without loading BPE tables.
type EncoderResolver func(sel toksum.Selector) (toksum.Encoder, error)

type Server struct {
	resolve EncoderResolver
}

func NewServer(resolve EncoderResolver) *Server {
	if resolve == nil {
		resolve = toksum.ResolveEncoder
	}
	return &Server{resolve: resolve}
}

func (s *Server) Register(e *echo.Echo) {
	e.POST("/v1/tokenize", s.handleTokenize)
	e.POST("/v1/count", s.handleCount)
	e.GET("/v1/models", s.handleModels)
	e.GET("/v1/encodings", s.handleEncodings)
}

func (s *Server) handleTokenize(c *echo.Context) error {
	req, enc, err := s.decodeAndResolve(c)
	if err != nil {
		return writeResolveError(c, err)
	}

	tokens := toksum.TokenizeStr(req.Text, enc)
	return c.JSON(http.StatusOK, TokenizeResponse{
		ID:       "tok_" + uuid.NewString(),
		Encoding: enc.Name(),
		Tokens:   tokens,
		Count:    len(tokens),
	})
}

func (s *Server) handleCount(c *echo.Context) error {
	req, enc, err := s.decodeAndResolve(c)
	if err != nil {
		return writeResolveError(c, err)
	}

	return c.JSON(http.StatusOK, CountResponse{
		ID:       "cnt_" + uuid.NewString(),
		Encoding: enc.Name(),
		Count:    toksum.CountStr(req.Text, enc),
	})
}

func (s *Server) handleModels(c *echo.Context) error {
	return c.JSON(http.StatusOK, ModelsResponse{Models: toksum.ModelMappings()})
}

func (s *Server) handleEncodings(c *echo.Context) error {
	return c.JSON(http.StatusOK, EncodingsResponse{Encodings: toksum.ValidEncodings()})
}

func (s *Server) decodeAndResolve(c *echo.Context) (TokenizeRequest, toksum.Encoder, error) {
	req, err := decodeJSON[TokenizeRequest](c.Request().Body)
	if err != nil {
		return TokenizeRequest{}, nil, fmt.Errorf("%w: %v", errBadJSON, err)
	}
	enc, err := s.resolve(toksum.Selector{Model: req.Model, Encoding: req.Encoding})
	if err != nil {
		return TokenizeRequest{}, nil, err
	}
	return req, enc, nil
}

func decodeJSON[T any](r io.Reader) (T, error) {
	var v T
	if err := json.NewDecoder(r).Decode(&v); err != nil {
		return v, err
	}
	return v, nil
}

func writeResolveError(c *echo.Context, err error) error {
	if isRequestError(err) {
		return writeError(c, http.StatusBadRequest, "invalid_request_error", err.Error())
	}
	return writeError(c, http.StatusInternalServerError, "server_error", err.Error())
}

func writeError(c *echo.Context, status int, errType, msg string) error {
	return c.JSON(status, map[string]any{
		"error": ResponseError{
			Message: msg,
			Type:    errType,
		},
	})
}
