// Package lan resolves the address by which this host is reachable from
// other devices on its local network.
package lan

import (
	"fmt"
	"net"
)

// Fallback is returned by LocalIP whenever the lookup fails.
const Fallback = "localhost"

// DefaultProbeAddr is the public address used to select the outbound route.
// Dialing it over UDP sends no packets.
const DefaultProbeAddr = "8.8.8.8:80"

// Resolver finds the preferred outbound IP of this machine by binding a
// throwaway UDP socket toward ProbeAddr.
type Resolver struct {
	ProbeAddr string
	Dial      func(network, address string) (net.Conn, error)
}

// NewResolver returns a Resolver probing probeAddr, or DefaultProbeAddr when
// probeAddr is empty.
func NewResolver(probeAddr string) *Resolver {
	if probeAddr == "" {
		probeAddr = DefaultProbeAddr
	}
	return &Resolver{ProbeAddr: probeAddr, Dial: net.Dial}
}

// Lookup returns the local IP the OS bound for the route to ProbeAddr.
func (r *Resolver) Lookup() (string, error) {
	dial := r.Dial
	if dial == nil {
		dial = net.Dial
	}
	probe := r.ProbeAddr
	if probe == "" {
		probe = DefaultProbeAddr
	}

	conn, err := dial("udp", probe)
	if err != nil {
		return "", fmt.Errorf("dial %s: %w", probe, err)
	}
	defer conn.Close()

	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok || addr == nil || addr.IP == nil {
		return "", fmt.Errorf("unexpected local address %v", conn.LocalAddr())
	}
	return addr.IP.String(), nil
}

// LocalIP is Lookup with every failure collapsed to Fallback.
func (r *Resolver) LocalIP() string {
	ip, err := r.Lookup()
	if err != nil {
		return Fallback
	}
	return ip
}
