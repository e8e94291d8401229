package protocol

import "fmt"

// UnsupportedProtocolError is returned when a service declares no protocol
// trait the registry recognizes, or when settings force a protocol no
// generator exists for. There is no silent fallback.
type UnsupportedProtocolError struct {
	Service  string
	Protocol string
}

func (e *UnsupportedProtocolError) Error() string {
	if e.Protocol != "" {
		return fmt.Sprintf("protocol: no generator for %s requested by service %s", e.Protocol, e.Service)
	}
	return fmt.Sprintf("protocol: service %s declares no supported protocol trait", e.Service)
}
