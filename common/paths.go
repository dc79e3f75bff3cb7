package common

import (
	"log"
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

const DATA_DIR_VAR string = "LOTTERY_HOME"

func getHomeDir() string {
	usr, err := user.Current()
	if err != nil {
		log.Fatal(err)
	}
	return usr.HomeDir
}

// DataDir is where keystores and custom networks live, ~/.lottery unless
// LOTTERY_HOME is set.
func DataDir() string {
	if dir := strings.Trim(os.Getenv(DATA_DIR_VAR), " "); dir != "" {
		return dir
	}
	return filepath.Join(getHomeDir(), ".lottery")
}
