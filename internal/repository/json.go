package repository

import (
	"encoding/json"

	"gorm.io/datatypes"
)

func stringsToJSON(values []string) datatypes.JSON {
	if len(values) == 0 {
		return nil
	}
	raw, _ := json.Marshal(values)
	return datatypes.JSON(raw)
}

func jsonToStrings(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil
	}
	return values
}
