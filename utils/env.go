package utils

import "servana/config"

// IsProduction reports whether the service is running with ENV=production.
func IsProduction() bool {
	return config.IsProduction()
}
