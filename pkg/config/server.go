package config

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Port the API listens on.
	Port int `yaml:"port"`

	// AllowedWSOrigins lists extra origin patterns accepted for the event
	// stream websocket, in addition to same-origin.
	AllowedWSOrigins []string `yaml:"allowedWsOrigins"`
}

// DefaultServerConfig returns the built-in server defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Port: 8080,
	}
}
