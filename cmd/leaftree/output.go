package main

import (
	"encoding/json"
	"fmt"
	"io"
)

func printJSONToWriter(w io.Writer, response any) error {
	prettyJSON, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot format JSON: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", prettyJSON)
	return err
}
