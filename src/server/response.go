package server

import (
	"encoding/json"
	"fmt"

	"github.com/obraunsdorf/playbook-creator/src/helpers"
	"github.com/obraunsdorf/playbook-creator/src/pbcerrors"
	"github.com/obraunsdorf/playbook-creator/src/settings"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response is the envelope written for every command.
type Response struct {
	Status  string `json:"status" bson:"status"`
	Code    string `json:"code,omitempty" bson:"code,omitempty"`
	Message string `json:"message,omitempty" bson:"message,omitempty"`
	Result  any    `json:"result,omitempty" bson:"result,omitempty"`
}

func successResponse(message string, result any) Response {
	return Response{Status: StatusSuccess, Message: message, Result: result}
}

func errorResponse(err error) Response {
	return Response{
		Status:  StatusError,
		Code:    string(pbcerrors.CodeOf(err)),
		Message: err.Error(),
	}
}

// encodeResponse renders resp as one JSON line or one BSON document.
func encodeResponse(format string, resp Response) ([]byte, error) {
	switch format {
	case settings.FormatBSON:
		data, err := helpers.EncodeBSON(resp)
		if err != nil {
			return nil, fmt.Errorf("failed to encode bson response: %w", err)
		}
		return data, nil
	default:
		data, err := json.Marshal(resp)
		if err != nil {
			return nil, fmt.Errorf("failed to encode json response: %w", err)
		}
		return append(data, '\n'), nil
	}
}
