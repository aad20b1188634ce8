package handler

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/osse101/RuneStatus_Go/internal/logger"
	"github.com/osse101/RuneStatus_Go/internal/validation"
)

//go:embed schemas/*.json
var schemaFS embed.FS

var updateSchemas = validation.NewSchemaValidator(schemaFS)

// UpdateSchemaName names the embedded schema an update body of kind is
// checked against.
func UpdateSchemaName(kind string) string {
	return "schemas/" + kind + "_update.schema.json"
}

// DecodeAndValidateRequest decodes a JSON request body into req and
// validates it. On failure the error response has already been written and
// the handler should return.
//
//	var evt domain.LootUpdate
//	if err := DecodeAndValidateRequest(r, w, &evt, "loot"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	return decodeRequest(r, w, req, actionName, "")
}

// decodeRequest is DecodeAndValidateRequest with an optional schema the raw
// body must match before struct validation runs. Schemas catch absent
// fields that would otherwise decode as zero values.
func decodeRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName, schemaName string) error {
	log := logger.FromContext(r.Context())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Warn(fmt.Sprintf(LogMsgDecodeFailed, actionName), "error", err)

		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, ErrMsgRequestTooLarge)
			return err
		}
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := json.Unmarshal(body, req); err != nil {
		log.Warn(fmt.Sprintf(LogMsgDecodeFailed, actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf(LogMsgDecoded, actionName))

	if schemaName != "" {
		if err := updateSchemas.ValidateBytes(body, schemaName); err != nil {
			log.Warn(fmt.Sprintf(LogMsgValidationFailed, actionName), "error", err)
			respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
				Error:  ErrMsgInvalidRequestSummary,
				Fields: FormatSchemaError(err),
			})
			return err
		}
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn(fmt.Sprintf(LogMsgValidationFailed, actionName), "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// FormatSchemaError turns schema violations into a field -> message map.
// Nested fields are joined with dots, e.g. "position.plane".
func FormatSchemaError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var violations *validation.ViolationError
	if !errors.As(err, &violations) {
		errs["error"] = ErrMsgInvalidRequestFormat
		return errs
	}

	for _, v := range violations.Violations {
		if v.Keyword == "required" {
			for _, name := range v.Missing {
				errs[fieldPath(append(v.Location[:len(v.Location):len(v.Location)], name))] = ErrMsgFieldRequired
			}
			continue
		}
		errs[fieldPath(v.Location)] = ErrMsgFieldInvalid
	}

	return errs
}

func fieldPath(location []string) string {
	if len(location) == 0 {
		return "body"
	}
	return strings.Join(location, ".")
}
