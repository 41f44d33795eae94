package utils

import (
	"bytes"
	"encoding/json"
)

// PrettyJson devolve a representação identada de um valor (ou de um JSON bruto
// em []byte), para logs de depuração
func PrettyJson(in any) string {
	raw, ok := in.([]byte)
	if !ok {
		var err error
		raw, err = json.Marshal(in)
		if err != nil {
			return ""
		}
	}

	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "\t"); err != nil {
		return string(raw)
	}

	return out.String()
}
