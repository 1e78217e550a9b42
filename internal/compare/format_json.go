package compare

import (
	"encoding/json"
)

// JSONFormatter renders a comparison set as JSON.
type JSONFormatter struct {
	Pretty bool
}

// Format generates JSON output for the comparison set.
func (jf *JSONFormatter) Format(set *Set) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(set, "", "  ")
	} else {
		data, err = json.Marshal(set)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
