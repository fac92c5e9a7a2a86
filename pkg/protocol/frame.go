package protocol

import (
	"encoding/json"
	stderrors "errors"

	"github.com/cineverse/cineverse/internal/errors"
)

// Frame types sent by the server.
const (
	FrameRender = "render"
	FrameError  = "error"
)

// Frame is a server to client message.
type Frame struct {
	Type    string `json:"type"`
	HTML    string `json:"html,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// RenderFrame carries re-rendered header HTML.
func RenderFrame(html string) Frame {
	return Frame{Type: FrameRender, HTML: html}
}

// ErrorFrame reports err to the client. Errors without a code are reported
// as E304 with a generic message so internals do not leak.
func ErrorFrame(err error) Frame {
	var e *errors.Error
	if stderrors.As(err, &e) && e.Code != "" {
		msg := e.Message
		if e.Detail != "" {
			msg += ": " + e.Detail
		}
		return Frame{Type: FrameError, Code: e.Code, Message: msg}
	}
	return Frame{Type: FrameError, Code: "E304", Message: "internal error"}
}

// Encode returns the JSON encoding of f.
func (f Frame) Encode() ([]byte, error) {
	return json.Marshal(f)
}

// DecodeFrame parses a server frame.
func DecodeFrame(data []byte) (Frame, error) {
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return Frame{}, errors.New("E201").Wrap(err)
	}
	return f, nil
}
