package env

import "os"

// TrySetFromEnv overrides val with the named environment variable when it is
// set, keeping the caller's default otherwise. The vending binary uses it to
// layer env config over its built-in defaults.
func TrySetFromEnv(envName string, val *string) {
	if envVal, found := os.LookupEnv(envName); found {
		*val = envVal
	}
}
