package str

import "github.com/fisharebest/str/json"

// MarshalJSON encodes s as a JSON string.
func (s Str) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.s)
}

// UnmarshalJSON decodes a JSON string into s. null leaves s empty.
func (s *Str) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	s.s = v
	return nil
}
