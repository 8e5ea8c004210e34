package responses

import (
	"bytes"
	"errors"
	"strconv"

	"github.com/goccy/go-json"
)

type GenerateSchedules struct {
	Schedules []ScheduleResult `json:"schedules"`
}

type ScheduleResult struct {
	Name string              `json:"name,omitempty"`
	Days map[string][]string `json:"days"`
	CRNs map[string]CRN      `json:"crns"`
}

// ScheduleGeneratorError is the body the generator sends with a non-2xx status.
type ScheduleGeneratorError struct {
	Error string `json:"error"`
}

// CRN is a course-section identifier that may arrive as a JSON string or number.
type CRN string

func (c *CRN) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return errors.New("crn must be a string or a number")
	}

	if data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
		*c = CRN(value)
		return nil
	}

	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*c = CRN(strconv.FormatFloat(value, 'f', -1, 64))
	return nil
}
