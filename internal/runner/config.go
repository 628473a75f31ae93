package runner

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/synalter"
	fileutil "github.com/projectdiscovery/utils/file"
	"gopkg.in/yaml.v3"
)

func getUserHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return homeDir
}

// defaultConfigPath is where the default synalter config lives
func defaultConfigPath() string {
	return filepath.Join(getUserHomeDir(), fmt.Sprintf(".config/synalter/config_%v.yaml", version))
}

func init() {
	defaultCfg := defaultConfigPath()
	// create default config if does not exist
	if fileutil.FileExists(defaultCfg) {
		// if it exists use that data as default
		if bin, err := os.ReadFile(defaultCfg); err == nil {
			var cfg synalter.Config
			if errx := yaml.Unmarshal(bin, &cfg); errx == nil {
				cfg.Merge(&synalter.DefaultConfig)
				synalter.DefaultConfig = cfg
				return
			}
		}
	}
	if err := os.MkdirAll(filepath.Dir(defaultCfg), 0o755); err != nil {
		gologger.Error().Msgf("failed to create config dir got: %v", err)
		return
	}
	if err := os.WriteFile(defaultCfg, synalter.DefaultConfigBin, 0600); err != nil {
		gologger.Error().Msgf("failed to save default config to %v got: %v", defaultCfg, err)
	}
}
