package options

import (
	"fmt"
	"strings"
)

// ParseOnOff resolves an on/off style argument to a boolean.
func ParseOnOff(arg string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", arg)
}
