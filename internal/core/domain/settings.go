package domain

import (
	"net"
	"strconv"
)

// Settings are project-level defaults read from kiln.yaml. Command line flags win.
type Settings struct {
	EmsdkVersion string
	Generator    string
	Variables    map[string]string
	Server       ServerSettings
	PublishDir   string
}

// ServerSettings configures the local web server used by `build --web --run`.
type ServerSettings struct {
	Address string
	Port    int
}

// Addr returns the listen address in host:port form.
func (s ServerSettings) Addr() string {
	return net.JoinHostPort(s.Address, strconv.Itoa(s.Port))
}

// DefaultSettings returns the settings used when kiln.yaml is absent.
func DefaultSettings() Settings {
	return Settings{
		EmsdkVersion: DefaultEmsdkVersion,
		Variables:    map[string]string{},
		Server: ServerSettings{
			Address: DefaultServerAddress,
			Port:    DefaultServerPort,
		},
		PublishDir: DefaultPublishDir,
	}
}

// ServerURL returns the address users open to play a web build. Windows
// hosts cannot browse to 0.0.0.0, so localhost is used there.
func ServerURL(hostOS, address string, port int, page string) string {
	if hostOS == OSWindows || address == "" {
		address = "localhost"
	}
	return "http://" + net.JoinHostPort(address, strconv.Itoa(port)) + "/" + page
}
