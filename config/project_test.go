package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranvictor/lottery/config"
)

const projectYAML = `
dotenv: .env
networks:
  default: development
  development:
    verify: False
  ganache-local:
  mainnet-fork:
    eth_usd_price_feed: '0x5f4eC3Df9cbd43714FE2740f5E3616155c5b8419'
    verify: False
  rinkeby:
    eth_usd_price_feed: '0x8A753747A1Fa494EC906cE90E9f37563A8AF630e'
    verify: True
    host: https://rinkeby.example/${LOTTERY_TEST_PROJECT_ID}
wallets:
  from_key: ${LOTTERY_TEST_PRIVATE_KEY}
`

func writeProject(t *testing.T, dotenv string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "brownie-config.yaml"), []byte(projectYAML), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(dotenv), 0644))
	t.Cleanup(func() {
		os.Unsetenv("LOTTERY_TEST_PRIVATE_KEY")
		os.Unsetenv("LOTTERY_TEST_PROJECT_ID")
	})
	return filepath.Join(dir, "brownie-config.yaml")
}

func TestLoadProjectExpandsDotenv(t *testing.T) {
	path := writeProject(t, "export LOTTERY_TEST_PRIVATE_KEY=0xabc\nLOTTERY_TEST_PROJECT_ID=p1\n")

	p, err := config.LoadProject(path)
	require.NoError(t, err)

	key, err := p.FromKey()
	require.NoError(t, err)
	assert.Equal(t, "0xabc", key)
	assert.Equal(t, "https://rinkeby.example/p1", p.Host("rinkeby"))
	assert.Equal(t, "development", p.Networks.Default)
}

func TestFromKeyMissing(t *testing.T) {
	path := writeProject(t, "")

	p, err := config.LoadProject(path)
	require.NoError(t, err)

	_, err = p.FromKey()
	assert.True(t, errors.Is(err, config.ErrMissingConfig))
}

func TestContractAddress(t *testing.T) {
	path := writeProject(t, "")
	p, err := config.LoadProject(path)
	require.NoError(t, err)

	addr, err := p.ContractAddress("mainnet-fork", "eth_usd_price_feed")
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0x5f4eC3Df9cbd43714FE2740f5E3616155c5b8419"), addr)

	settings, err := p.Network("rinkeby")
	require.NoError(t, err)
	assert.True(t, settings.Verify)

	_, err = p.ContractAddress("development", "eth_usd_price_feed")
	assert.True(t, errors.Is(err, config.ErrMissingConfig))

	_, err = p.ContractAddress("ganache-local", "eth_usd_price_feed")
	assert.True(t, errors.Is(err, config.ErrMissingConfig))

	_, err = p.ContractAddress("kovan", "eth_usd_price_feed")
	assert.True(t, errors.Is(err, config.ErrMissingConfig))
}

func TestContractAddressMalformed(t *testing.T) {
	p, err := config.ParseProject([]byte("networks:\n  rinkeby:\n    eth_usd_price_feed: nope\n"), t.TempDir())
	require.NoError(t, err)

	_, err = p.ContractAddress("rinkeby", "eth_usd_price_feed")
	require.Error(t, err)
	assert.False(t, errors.Is(err, config.ErrMissingConfig))
}

func TestMissingDotenvFails(t *testing.T) {
	_, err := config.ParseProject([]byte("dotenv: .env\n"), t.TempDir())
	assert.Error(t, err)
}

func TestMnemonicDefault(t *testing.T) {
	p, err := config.ParseProject([]byte("networks:\n  development:\n    mnemonic: test junk\n"), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "test junk", p.Mnemonic("development"))
	assert.Equal(t, config.DEFAULT_MNEMONIC, p.Mnemonic("ganache-local"))
}

func TestEmptyProject(t *testing.T) {
	dir := t.TempDir()
	p, err := config.ParseProject([]byte(""), dir)
	require.NoError(t, err)
	assert.Equal(t, dir, p.Dir())
	_, err = p.ContractAddress("mainnet", "eth_usd_price_feed")
	assert.True(t, errors.Is(err, config.ErrMissingConfig))
}
