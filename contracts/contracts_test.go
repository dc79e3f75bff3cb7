package contracts_test

import (
	"context"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranvictor/lottery/chain"
	"github.com/tranvictor/lottery/chain/chaintest"
	"github.com/tranvictor/lottery/contracts"
	"github.com/tranvictor/lottery/contracts/contractstest"
	"github.com/tranvictor/lottery/util/account"
)

const testKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

type env struct {
	chain *chaintest.Chain
	tx    *chain.Transactor
	acc   *account.Account
	build string
}

func newEnv(t *testing.T) *env {
	t.Helper()
	c := chaintest.New(1337)
	contractstest.Register(c)
	acc, err := account.NewPrivateKeyAccount(testKey)
	require.NoError(t, err)
	build := t.TempDir()
	contractstest.WriteArtifacts(t, build)
	return &env{
		chain: c,
		tx:    chain.NewTransactor(c, chain.Config{ReceiptQueryInterval: time.Millisecond}, nil),
		acc:   acc,
		build: build,
	}
}

func TestLoadBrownieArtifact(t *testing.T) {
	e := newEnv(t)
	artifact, err := contracts.LoadArtifact(e.build, contracts.MOCK_V3_AGGREGATOR)
	require.NoError(t, err)
	assert.Equal(t, contractstest.MockV3AggregatorBytecode, artifact.Bytecode)
	assert.Contains(t, artifact.ABI.Methods, "latestRoundData")
}

func TestLoadFoundryArtifact(t *testing.T) {
	build := t.TempDir()
	dir := filepath.Join(build, "Lottery.sol")
	require.NoError(t, os.MkdirAll(dir, 0755))
	content := `{"abi": [], "bytecode": {"object": "0x6080604052"}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Lottery.json"), []byte(content), 0644))

	artifact, err := contracts.LoadArtifact(build, contracts.LOTTERY)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x60, 0x80, 0x60, 0x40, 0x52}, artifact.Bytecode)
	assert.Contains(t, artifact.ABI.Methods, "getEntranceFee")
}

func TestParseArtifactRejectsUnlinkedBytecode(t *testing.T) {
	_, err := contracts.ParseArtifact("Lottery", []byte(`{"bytecode": "6080__$abc$__"}`))
	assert.Error(t, err)
}

func TestLoadContractTypeWithoutArtifact(t *testing.T) {
	ct, err := contracts.LoadContractType(t.TempDir(), contracts.MOCK_V3_AGGREGATOR)
	require.NoError(t, err)
	assert.Empty(t, ct.Bytecode())
	assert.Nil(t, ct.Last())

	_, err = contracts.LoadContractType(t.TempDir(), "VRFCoordinatorMock")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDeployWithoutBytecode(t *testing.T) {
	e := newEnv(t)
	ct := contracts.NewContractType(contracts.MOCK_V3_AGGREGATOR, contracts.MustEmbeddedABI(contracts.MOCK_V3_AGGREGATOR), nil)
	_, err := ct.Deploy(context.Background(), e.tx, e.acc, uint8(8), big.NewInt(1))
	assert.Error(t, err)
	assert.Empty(t, e.chain.Transactions())
}

func TestDeployAndReadPriceFeed(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	ct, err := contracts.LoadContractType(e.build, contracts.MOCK_V3_AGGREGATOR)
	require.NoError(t, err)

	mock, err := ct.Deploy(ctx, e.tx, e.acc, uint8(8), big.NewInt(200000000000))
	require.NoError(t, err)
	assert.Equal(t, 1, ct.Len())
	assert.Equal(t, mock, ct.Last())

	feed := contracts.NewPriceFeed(mock)
	decimals, err := feed.Decimals(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint8(8), decimals)

	round, err := feed.LatestRoundData(ctx)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(200000000000), round.Answer)
	assert.Equal(t, big.NewInt(1), round.RoundID)
	description, err := feed.Description(ctx)
	require.NoError(t, err)
	assert.Equal(t, "v0.6/tests/MockV3Aggregator.sol", description)
	version, err := feed.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), version.Int64())

	_, err = mock.Transact(ctx, e.acc, nil, "updateAnswer", big.NewInt(240000000000))
	require.NoError(t, err)
	round, err = feed.LatestRoundData(ctx)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(240000000000), round.Answer)

	second, err := ct.Deploy(ctx, e.tx, e.acc, uint8(8), big.NewInt(1))
	require.NoError(t, err)
	assert.Equal(t, 2, ct.Len())
	assert.Equal(t, second.Address(), ct.Last().Address())
	assert.Equal(t, []*contracts.Contract{mock, second}, ct.Deployed())
}

func TestCallWithoutCode(t *testing.T) {
	e := newEnv(t)
	c := contracts.FromABI(
		contracts.MOCK_V3_AGGREGATOR,
		common.HexToAddress("0x5f4eC3Df9cbd43714FE2740f5E3616155c5b8419"),
		contracts.MustEmbeddedABI(contracts.MOCK_V3_AGGREGATOR),
		e.tx,
	)
	_, err := contracts.NewPriceFeed(c).Decimals(context.Background())
	assert.Error(t, err)
}

func TestLotteryEntranceFee(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	feedType, err := contracts.LoadContractType(e.build, contracts.MOCK_V3_AGGREGATOR)
	require.NoError(t, err)
	feed, err := feedType.Deploy(ctx, e.tx, e.acc, uint8(8), big.NewInt(200000000000))
	require.NoError(t, err)

	lotteryType, err := contracts.LoadContractType(e.build, contracts.LOTTERY)
	require.NoError(t, err)
	c, err := lotteryType.Deploy(ctx, e.tx, e.acc, feed.Address())
	require.NoError(t, err)
	lottery := contracts.NewLottery(c)

	fee, err := lottery.EntranceFee(ctx)
	require.NoError(t, err)
	// 50 usd at 2000 usd per eth
	expected, _ := new(big.Int).SetString("25000000000000000", 10)
	assert.Equal(t, expected, fee)
	usd, err := lottery.UsdEntryFee(ctx)
	require.NoError(t, err)
	assert.Equal(t, contractstest.USD_ENTRY_FEE, usd)

	_, err = lottery.Enter(ctx, e.acc, fee)
	assert.ErrorIs(t, err, chain.ErrTxReverted)

	_, err = lottery.StartLottery(ctx, e.acc)
	require.NoError(t, err)
	_, err = lottery.Enter(ctx, e.acc, fee)
	require.NoError(t, err)
	player, err := lottery.Player(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, e.acc.Address(), player)
}

func TestDeploymentsPersist(t *testing.T) {
	build := t.TempDir()
	d := contracts.LoadDeployments(build)
	first := common.HexToAddress("0x01")
	second := common.HexToAddress("0x02")
	require.NoError(t, d.Add(1, contracts.MOCK_V3_AGGREGATOR, first))
	require.NoError(t, d.Add(1, contracts.MOCK_V3_AGGREGATOR, second))

	loaded := contracts.LoadDeployments(build)
	assert.Equal(t, []common.Address{second, first}, loaded.Get(1, contracts.MOCK_V3_AGGREGATOR))
	assert.Empty(t, loaded.Get(5, contracts.MOCK_V3_AGGREGATOR))
}

func TestTrackRestoresDeploymentsWithCode(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	d := contracts.LoadDeployments(e.build)

	ct, err := contracts.LoadContractType(e.build, contracts.MOCK_V3_AGGREGATOR)
	require.NoError(t, err)
	require.NoError(t, ct.Track(ctx, e.tx, d))
	mock, err := ct.Deploy(ctx, e.tx, e.acc, uint8(8), big.NewInt(1))
	require.NoError(t, err)
	require.NoError(t, d.Add(1337, contracts.MOCK_V3_AGGREGATOR, common.HexToAddress("0xdead")))

	again, err := contracts.LoadContractType(e.build, contracts.MOCK_V3_AGGREGATOR)
	require.NoError(t, err)
	require.NoError(t, again.Track(ctx, e.tx, contracts.LoadDeployments(e.build)))
	assert.Equal(t, 1, again.Len())
	assert.Equal(t, mock.Address(), again.Last().Address())
}
