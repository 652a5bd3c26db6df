package components

import "github.com/yohamta/donburi"

type CoinData struct {
	Collected bool
}

var Coin = donburi.NewComponentType[CoinData]()
