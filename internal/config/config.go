package config

import "os"

const DefaultSource = "http://purl.obolibrary.org/obo/hp.obo"

// Source returns the .obo source from the OBOTAB_SOURCE env var,
// falling back to DefaultSource.
func Source() string {
	if env := os.Getenv("OBOTAB_SOURCE"); env != "" {
		return env
	}
	return DefaultSource
}
