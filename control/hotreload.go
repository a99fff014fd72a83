// control/hotreload.go
// Author: momentics <momentics@gmail.com>
//
// Re-reads the environment into a ConfigStore so listeners can apply the
// settings that are safe to change at runtime (the log level).

package control

import "log"

// Reload loads a fresh Config via lookup and publishes it to store.
// On error the store is left unchanged.
func Reload(store *ConfigStore, lookup func(string) (string, bool)) (*Config, error) {
	cfg, err := LoadConfig(lookup)
	if err != nil {
		log.Printf("[control] reload rejected: %v", err)
		return nil, err
	}
	store.SetConfig(cfg.Map())
	return cfg, nil
}
