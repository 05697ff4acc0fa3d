package models

import "fmt"

// RouteKind names a screen of the CLI.
type RouteKind string

const (
	RouteListWallets     RouteKind = "wallets"
	RouteSettings        RouteKind = "settings"
	RouteNewWalletSelect RouteKind = "new-wallet"
	RouteHotWalletCreate RouteKind = "hot-wallet"
	RouteColdWallet      RouteKind = "cold-wallet"
	RouteWallet          RouteKind = "wallet"
)

// Route is a screen plus the arguments it was opened with.
type Route struct {
	Kind     RouteKind
	Words    NumberOfWords
	WalletID string
}

func (r Route) String() string {
	switch r.Kind {
	case RouteHotWalletCreate:
		return fmt.Sprintf("%s/%d", r.Kind, r.Words)
	case RouteWallet:
		return fmt.Sprintf("%s/%s", r.Kind, r.WalletID)
	default:
		return string(r.Kind)
	}
}

func ListWalletsRoute() Route { return Route{Kind: RouteListWallets} }
func SettingsRoute() Route { return Route{Kind: RouteSettings} }
func NewWalletSelectRoute() Route { return Route{Kind: RouteNewWalletSelect} }
func ColdWalletRoute() Route { return Route{Kind: RouteColdWallet} }
func WalletRoute(id string) Route { return Route{Kind: RouteWallet, WalletID: id} }
func HotWalletCreateRoute(n NumberOfWords) Route {
	return Route{Kind: RouteHotWalletCreate, Words: n}
}
