package models

import (
	"fmt"
	"strings"
)

// Network is a Bitcoin network the wallet can operate on.
type Network string

const (
	NetworkMainnet Network = "mainnet"
	NetworkTestnet Network = "testnet"
	NetworkSignet  Network = "signet"
)

// AllNetworks lists networks in display order.
func AllNetworks() []Network {
	return []Network{NetworkMainnet, NetworkTestnet, NetworkSignet}
}

// DisplayName is the label shown to the user.
func (n Network) DisplayName() string {
	switch n {
	case NetworkMainnet:
		return "Mainnet"
	case NetworkTestnet:
		return "Testnet"
	case NetworkSignet:
		return "Signet"
	default:
		return string(n)
	}
}

func (n Network) String() string { return n.DisplayName() }

// ParseNetwork accepts a stored value or a display name, case-insensitively.
// "bitcoin" is accepted as an alias for mainnet.
func ParseNetwork(s string) (Network, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mainnet", "bitcoin", "main":
		return NetworkMainnet, nil
	case "testnet", "test":
		return NetworkTestnet, nil
	case "signet":
		return NetworkSignet, nil
	default:
		return "", fmt.Errorf("unknown network %q", s)
	}
}

// ColorScheme is the appearance preference.
type ColorScheme string

const (
	ColorSchemeAuto  ColorScheme = "auto"
	ColorSchemeLight ColorScheme = "light"
	ColorSchemeDark  ColorScheme = "dark"
)

// AllColorSchemes lists schemes in display order.
func AllColorSchemes() []ColorScheme {
	return []ColorScheme{ColorSchemeAuto, ColorSchemeLight, ColorSchemeDark}
}

// ParseColorScheme converts user input or a stored value into a ColorScheme.
func ParseColorScheme(s string) (ColorScheme, error) {
	switch cs := ColorScheme(strings.ToLower(strings.TrimSpace(s))); cs {
	case ColorSchemeAuto, ColorSchemeLight, ColorSchemeDark:
		return cs, nil
	default:
		return "", fmt.Errorf("unknown color scheme %q", s)
	}
}
