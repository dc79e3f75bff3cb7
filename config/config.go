package config

import "time"

const DEFAULT_TIMEOUT = 2 * time.Minute

var (
	Network     string
	ProjectFile string
	BuildDir    string
	Timeout     time.Duration
	Verbose     bool

	GasPrice      float64
	TipGas        float64
	GasLimit      uint64
	ExtraGasLimit uint64

	AccountIndex int
	AccountID    string

	MockDecimals      uint8
	MockStartingPrice int64

	MinEntranceFee float64
	MaxEntranceFee float64
)
