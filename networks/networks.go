package networks

import (
	"fmt"
	"sync"
)

var (
	cachedNetwork Network
	mu            sync.Mutex
)

var NetworkString string = "development"

func CurrentNetwork() Network {
	mu.Lock()
	n := cachedNetwork
	mu.Unlock()
	if n != nil {
		return n
	}

	if err := SetNetwork(NetworkString); err != nil {
		fmt.Printf("%s. Falling back to %s.\n", err, Development.GetName())
		mu.Lock()
		cachedNetwork = Development
		mu.Unlock()
	}

	mu.Lock()
	defer mu.Unlock()
	return cachedNetwork
}

// SetNetwork switches the active network. Unlike CurrentNetwork it never
// falls back silently: scripts must not sign for a network they didn't ask for.
func SetNetwork(networkStr string) error {
	n, err := GetNetwork(networkStr)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()

	if cachedNetwork != nil && cachedNetwork.GetName() != n.GetName() {
		fmt.Printf("Switched to network: %s\n", n.GetName())
	}
	cachedNetwork = n
	NetworkString = n.GetName()
	return nil
}
