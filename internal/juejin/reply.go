package juejin

import (
	"encoding/json"
	"fmt"
)

// UnknownUser is reported when a valid profile response carries no
// user name.
const UnknownUser = "unknown"

// Reply is the raw result of an API call that reached the server:
// interpretation of the body is left to the caller so that malformed
// payloads can still be logged verbatim.
type Reply struct {
	StatusCode int
	Body       []byte
}

// Envelope is the common wrapper of every platform API response.
// err_no 0 means success; data carries the endpoint-specific payload.
type Envelope struct {
	ErrNo  int             `json:"err_no"`
	ErrMsg string          `json:"err_msg"`
	Data   json.RawMessage `json:"data"`
}

// Decode parses the reply body into the shared envelope.
func (r *Reply) Decode() (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(r.Body, &env); err != nil {
		return nil, fmt.Errorf("decode api response: %w", err)
	}
	return &env, nil
}

type User struct {
	UserName string `json:"user_name"`
}

// User extracts the profile payload, falling back to UnknownUser when
// the name is absent or the payload cannot be parsed.
func (e *Envelope) User() User {
	u := User{UserName: UnknownUser}
	if len(e.Data) == 0 {
		return u
	}

	var data User
	if err := json.Unmarshal(e.Data, &data); err == nil && data.UserName != "" {
		u.UserName = data.UserName
	}
	return u
}

type CheckInData struct {
	IncrPoint int64 `json:"incr_point"`
	SumPoint  int64 `json:"sum_point"`
}

// CheckInData extracts the points payload; missing fields stay zero.
func (e *Envelope) CheckInData() CheckInData {
	var d CheckInData
	if len(e.Data) == 0 {
		return d
	}

	_ = json.Unmarshal(e.Data, &d)
	return d
}
