// Package config manages user-level settings stored at ~/.hono-artisan/config.yaml.
// Values can be overridden with ARTISAN_* environment variables, which may
// themselves come from a .env file in the working directory.
package config
