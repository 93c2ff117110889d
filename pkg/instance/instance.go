package instance

import "github.com/angelmondragon/salesdash-backend/pkg/env"

// GetID names the running replica for log correlation. It prefers the
// platform dyno name, then the container hostname.
func GetID() string {
	if id := env.First("DYNO", "HOSTNAME"); id != "" {
		return id
	}
	return "local"
}
