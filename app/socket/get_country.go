package socket

import (
	"context"
	"encoding/json"
)

// GetCountryPayload is the request body for the get-country task. The
// response echoes the payload back to the requesting client, correlated
// by rid.
type GetCountryPayload struct {
	RID  string `json:"rid" validate:"required"`
	Code string `json:"code" validate:"required"`
}

func (m *Manager) runGetCountry(ctx context.Context, sess *session, data json.RawMessage) {
	var payload GetCountryPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		m.send(ctx, sess, EventGetCountryResponse, ErrorPayload{
			ErrorType: "wrong format",
			Error:     err.Error(),
		})
		return
	}

	if err := m.validate.Struct(&payload); err != nil {
		m.send(ctx, sess, EventGetCountryResponse, ErrorPayload{
			ErrorType: "wrong format",
			Error:     err.Error(),
		})
		return
	}

	m.send(ctx, sess, EventGetCountryResponse, payload)
}
