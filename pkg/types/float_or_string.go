package types

import (
	"encoding/json"
	"errors"
	"strconv"
)

// FloatOrString accepts both 12.9063 and "12.9063" in JSON. Some clients
// serialise platform coordinates as strings.
type FloatOrString float64

func (f *FloatOrString) UnmarshalJSON(b []byte) error {
	var asFloat float64
	if err := json.Unmarshal(b, &asFloat); err == nil {
		*f = FloatOrString(asFloat)
		return nil
	}

	var asStr string
	if err := json.Unmarshal(b, &asStr); err == nil {
		parsed, err := strconv.ParseFloat(asStr, 64)
		if err != nil {
			return err
		}
		*f = FloatOrString(parsed)
		return nil
	}

	return errors.New("invalid float or string")
}
