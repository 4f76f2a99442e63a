package cli

import (
	"strings"
	"testing"
)

func TestConfigHelpNamesEnvVars(t *testing.T) {
	for _, want := range []string{
		"package_manager",
		"skip_install",
		"STACKFORGE_PACKAGE_MANAGER",
		"STACKFORGE_SKIP_INSTALL",
	} {
		if !strings.Contains(configCmd.Long, want) {
			t.Errorf("config help should mention %s", want)
		}
	}
}
