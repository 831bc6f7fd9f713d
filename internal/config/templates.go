package config

import (
	"fmt"
	"os"
)

func Template() string {
	return dumpTemplate
}

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(dumpTemplate), 0o644)
}

const dumpTemplate = `# poddump configuration
strict = true
show_names = false
fixed_point = false
digest = false
annotate = false
stats = false
indent = "\t"
max_depth = 1024
max_payload_bytes = 268435456
compression = "none"
`
