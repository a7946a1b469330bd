package chains

import (
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// The classification functions below are total over the declared variant set
// and never panic. Every variant must appear in every function, including the
// buckets that answer "unknown"; TestMetadataTotality sweeps All() against
// each function so that a new constant cannot land unclassified.

// IsEthereum reports whether the chain is Ethereum mainnet or one of its
// historical testnets.
func (c NamedChain) IsEthereum() bool {
	switch c {
	case Mainnet, Morden, Ropsten, Rinkeby, Goerli, Kovan, Holesky, Sepolia:
		return true
	}
	return false
}

// IsOptimism reports whether the chain runs the OP Stack.
func (c NamedChain) IsOptimism() bool {
	switch c {
	case Optimism, OptimismGoerli, OptimismKovan, OptimismSepolia,
		Base, BaseGoerli, BaseSepolia,
		Fraxtal, FraxtalTestnet,
		Ink, InkSepolia,
		Mode, ModeSepolia,
		Pgn, PgnSepolia,
		Zora, ZoraSepolia,
		BlastSepolia,
		OpBNBMainnet, OpBNBTestnet,
		Soneium, SoneiumMinatoTestnet,
		Odyssey,
		World, WorldSepolia,
		Unichain, UnichainSepolia,
		HappychainTestnet,
		Lisk,
		Celo,
		Katana:
		return true
	}
	return false
}

// IsGnosis reports whether the chain carries Gnosis configuration.
func (c NamedChain) IsGnosis() bool {
	switch c {
	case Gnosis, Chiado:
		return true
	}
	return false
}

// IsPolygon reports whether the chain carries Polygon configuration.
func (c NamedChain) IsPolygon() bool {
	switch c {
	case Polygon, PolygonAmoy:
		return true
	}
	return false
}

// IsArbitrum reports whether the chain carries Arbitrum configuration.
func (c NamedChain) IsArbitrum() bool {
	switch c {
	case Arbitrum, ArbitrumTestnet, ArbitrumGoerli, ArbitrumSepolia, ArbitrumNova:
		return true
	}
	return false
}

// IsElastic reports whether the chain is part of the Elastic Network
// (ZKsync-based chains).
func (c NamedChain) IsElastic() bool {
	switch c {
	case ZkSync, ZkSyncTestnet, Abstract, AbstractTestnet, Sophon, SophonTestnet, Lens, LensTestnet:
		return true
	}
	return false
}

// AverageBlocktime returns the chain's approximate average block time.
//
// The values are sensible defaults taken from public blocktime charts, not
// live measurements; they are useful for sizing polling intervals. Chains
// with no stable estimate report ok == false.
func (c NamedChain) AverageBlocktime() (time.Duration, bool) {
	var ms int64
	switch c {
	case Mainnet, Taiko, TaikoHekla, SignetPecorino:
		ms = 12_000

	case Arbitrum, ArbitrumTestnet, ArbitrumGoerli, ArbitrumSepolia,
		GravityAlphaMainnet, GravityAlphaTestnetSepolia,
		Xai, XaiSepolia,
		Syndr, SyndrSepolia,
		ArbitrumNova,
		ApeChain, Curtis,
		SuperpositionTestnet, Superposition:
		ms = 260

	case Optimism, OptimismGoerli, OptimismSepolia,
		Base, BaseGoerli, BaseSepolia,
		Blast, BlastSepolia,
		Fraxtal, FraxtalTestnet,
		Zora, ZoraSepolia,
		Mantle, MantleSepolia,
		Mode, ModeSepolia,
		Pgn, PgnSepolia,
		HappychainTestnet,
		Soneium, SoneiumMinatoTestnet,
		Bob, BobSepolia:
		ms = 2_000

	case Ink, InkSepolia, Odyssey, Plasma:
		ms = 1_000

	case Viction:
		ms = 2_000

	case Polygon, PolygonAmoy:
		ms = 2_100

	case Acala, AcalaMandalaTestnet, AcalaTestnet, Karura, KaruraTestnet:
		ms = 12_500

	case Moonbeam, Moonriver:
		ms = 6_500

	case BinanceSmartChain, BinanceSmartChainTestnet:
		ms = 750

	case Avalanche, AvalancheFuji:
		ms = 2_000

	case Fantom, FantomTestnet:
		ms = 1_200

	case Cronos, CronosTestnet, Canto, CantoTestnet:
		ms = 5_700

	case Evmos, EvmosTestnet:
		ms = 1_900

	case Aurora, AuroraTestnet:
		ms = 1_100

	case Oasis:
		ms = 5_500

	case Emerald, Darwinia, Crab, Koi:
		ms = 6_000

	case Dev, AnvilHardhat:
		ms = 200

	case Celo, CeloSepolia:
		ms = 1_000

	case FilecoinCalibrationTestnet, FilecoinMainnet:
		ms = 30_000

	case Scroll, ScrollSepolia:
		ms = 3_000

	case Shimmer:
		ms = 5_000

	case Gnosis, Chiado:
		ms = 5_000

	case Elastos:
		ms = 5_000

	case Etherlink, EtherlinkTestnet:
		ms = 5_000

	case Degen:
		ms = 600

	case Cfx, CfxTestnet:
		ms = 500

	case OpBNBMainnet, OpBNBTestnet, AutonomysNovaTestnet:
		ms = 1_000

	case Ronin, RoninTestnet:
		ms = 3_000

	case Flare:
		ms = 1_800

	case FlareCoston2:
		ms = 2_500

	case Pulsechain:
		ms = 10_000
	case PulsechainTestnet:
		ms = 10_101

	case Immutable, ImmutableTestnet:
		ms = 2_000

	case World, WorldSepolia:
		ms = 2_000

	case Iotex:
		ms = 5_000
	case Core:
		ms = 3_000
	case Merlin:
		ms = 3_000
	case Bitlayer:
		ms = 3_000
	case Vana:
		ms = 6_000
	case Zeta:
		ms = 6_000
	case Kaia:
		ms = 1_000
	case Story:
		ms = 2_500
	case Sei, SeiTestnet:
		ms = 500
	case StableMainnet, StableTestnet:
		ms = 700

	case Sonic, SonicTestnet:
		ms = 1_000

	case TelosEvm, TelosEvmTestnet:
		ms = 500

	case UnichainSepolia, Unichain:
		ms = 1_000

	case BerachainBepolia, Berachain:
		ms = 2_000

	case Monad, MonadTestnet:
		ms = 400

	case Hyperliquid:
		ms = 2_000

	case Abstract, AbstractTestnet:
		ms = 1_000
	case ZkSync, ZkSyncTestnet:
		ms = 1_000
	case Sophon, SophonTestnet:
		ms = 1_000
	case Lens, LensTestnet:
		ms = 1_000
	case Rsk, RskTestnet:
		ms = 25_000
	case Injective, InjectiveTestnet:
		ms = 700
	case Katana:
		ms = 1_000
	case Lisk:
		ms = 2_000
	case Fuse:
		ms = 5_000
	case FluentDevnet:
		ms = 3_000
	case FluentTestnet:
		ms = 1_000
	case MemeCore, Formicarium, Insectarium:
		ms = 7_000

	case SkaleBase, SkaleBaseTestnet:
		ms = 10_000

	// No stable estimate.
	case Morden, Ropsten, Rinkeby, Goerli, Kovan, Sepolia, Holesky, Hoodi,
		Moonbase, MoonbeamDev, OptimismKovan, Poa, Sokol, EmeraldTestnet,
		Boba, Metis, Linea, LineaGoerli, LineaSepolia, Treasure,
		TreasureTopaz, Corn, CornTestnet, Cannon, PolkadotTestnet:
		return 0, false
	}
	if ms == 0 {
		return 0, false
	}
	return time.Duration(ms) * time.Millisecond, true
}

// IsLegacy reports whether the chain does not implement EIP-1559 (the type-2
// EIP-2718 transaction format). Chains without a known classification report
// false, matching the upstream bias toward assuming fee-market support.
func (c NamedChain) IsLegacy() bool {
	switch c {
	// Known legacy chains, non EIP-1559 compliant.
	case Elastos, Emerald, EmeraldTestnet, Fantom, FantomTestnet,
		OptimismKovan, Ronin, RoninTestnet, Rsk, RskTestnet, Shimmer,
		Treasure, TreasureTopaz, Viction, Sophon, SophonTestnet:
		return true

	// Known EIP-1559 chains.
	case Mainnet, Goerli, Sepolia, Holesky, Hoodi, Odyssey,
		Acala, AcalaMandalaTestnet, AcalaTestnet,
		ArbitrumTestnet,
		Base, BaseGoerli, BaseSepolia,
		Boba, Metis, Oasis,
		Blast, BlastSepolia,
		Celo, CeloSepolia,
		Fraxtal, FraxtalTestnet,
		Optimism, OptimismGoerli, OptimismSepolia,
		Bob, BobSepolia,
		Polygon, PolygonAmoy,
		Avalanche, AvalancheFuji,
		Arbitrum, ArbitrumGoerli, ArbitrumSepolia, ArbitrumNova,
		GravityAlphaMainnet, GravityAlphaTestnetSepolia,
		Xai, XaiSepolia,
		HappychainTestnet,
		Syndr, SyndrSepolia,
		FilecoinMainnet, FilecoinCalibrationTestnet,
		Linea, LineaGoerli, LineaSepolia,
		Gnosis, Chiado,
		Zora, ZoraSepolia,
		Ink, InkSepolia,
		Mantle, MantleSepolia,
		Mode, ModeSepolia,
		Pgn, PgnSepolia,
		Etherlink, EtherlinkTestnet,
		Degen,
		OpBNBMainnet, OpBNBTestnet,
		Taiko, TaikoHekla,
		AutonomysNovaTestnet,
		Flare, FlareCoston2,
		Scroll, ScrollSepolia,
		Darwinia, Crab, Koi,
		Cfx, CfxTestnet,
		Pulsechain, PulsechainTestnet,
		Immutable, ImmutableTestnet,
		Soneium, SoneiumMinatoTestnet,
		Sonic, SonicTestnet,
		World, WorldSepolia,
		Unichain, UnichainSepolia,
		SignetPecorino,
		ApeChain, Curtis,
		BerachainBepolia, Berachain,
		SuperpositionTestnet, Superposition,
		Monad, MonadTestnet,
		Hyperliquid,
		Corn, CornTestnet,
		ZkSync, ZkSyncTestnet,
		Abstract, AbstractTestnet,
		Lens, LensTestnet,
		BinanceSmartChain, BinanceSmartChainTestnet,
		Karura, KaruraTestnet,
		TelosEvm, TelosEvmTestnet,
		FluentDevnet, FluentTestnet,
		Plasma,
		MemeCore, Formicarium, Insectarium:
		return false

	// Unknown or not applicable; false for backwards compatibility.
	case Dev, AnvilHardhat, Morden, Ropsten, Rinkeby, Cronos, CronosTestnet,
		Kovan, Sokol, Poa, Moonbeam, MoonbeamDev, Moonriver, Moonbase,
		Evmos, EvmosTestnet, Aurora, AuroraTestnet, Canto, CantoTestnet,
		Iotex, Core, Merlin, Bitlayer, Vana, Zeta, Kaia, Story,
		Sei, SeiTestnet, StableMainnet, StableTestnet,
		Injective, InjectiveTestnet, Katana, Lisk, Fuse, Cannon,
		SkaleBase, SkaleBaseTestnet, PolkadotTestnet:
		return false
	}
	return false
}

// SupportsShanghai reports whether the chain has adopted the Shanghai
// hardfork opcode set (PUSH0 and friends). This is a closed allow-list;
// anything not confirmed reports false.
func (c NamedChain) SupportsShanghai() bool {
	switch c {
	case Mainnet, Goerli, Sepolia, Holesky, Hoodi,
		AnvilHardhat,
		Optimism, OptimismGoerli, OptimismSepolia,
		Bob, BobSepolia,
		Odyssey,
		Base, BaseGoerli, BaseSepolia,
		Blast, BlastSepolia,
		Celo, CeloSepolia,
		Fraxtal, FraxtalTestnet,
		Ink, InkSepolia,
		Gnosis, Chiado,
		ZoraSepolia,
		Mantle, MantleSepolia,
		Mode, ModeSepolia,
		Polygon,
		Arbitrum, ArbitrumNova, ArbitrumSepolia,
		GravityAlphaMainnet, GravityAlphaTestnetSepolia,
		Xai, XaiSepolia,
		Syndr, SyndrSepolia,
		Etherlink, EtherlinkTestnet,
		Scroll, ScrollSepolia,
		HappychainTestnet,
		Shimmer,
		BinanceSmartChain, BinanceSmartChainTestnet,
		OpBNBMainnet, OpBNBTestnet,
		Taiko, TaikoHekla,
		Avalanche, AvalancheFuji,
		AutonomysNovaTestnet,
		Acala, AcalaMandalaTestnet, AcalaTestnet,
		Karura, KaruraTestnet,
		Darwinia, Crab,
		Cfx, CfxTestnet,
		Pulsechain, PulsechainTestnet,
		Koi,
		Immutable, ImmutableTestnet,
		Soneium, SoneiumMinatoTestnet,
		World, WorldSepolia,
		Iotex,
		Unichain, UnichainSepolia,
		SignetPecorino,
		StableMainnet, StableTestnet,
		ApeChain, Curtis,
		SuperpositionTestnet, Superposition,
		Monad, MonadTestnet,
		Corn, CornTestnet,
		Rsk, RskTestnet,
		Berachain, BerachainBepolia,
		Injective, InjectiveTestnet,
		FluentDevnet, FluentTestnet,
		Cannon,
		MemeCore, Formicarium, Insectarium:
		return true
	}
	return false
}

// IsTestnet reports whether the chain is a test or development network.
// Every variant is classified as a historical Ethereum testnet, another
// testnet, a dev chain, or a mainnet; the first three answer true.
func (c NamedChain) IsTestnet() bool {
	switch c {
	// Ethereum testnets.
	case Goerli, Holesky, Kovan, Sepolia, Morden, Ropsten, Rinkeby, Hoodi:
		return true

	// Other testnets.
	case ArbitrumGoerli, ArbitrumSepolia, ArbitrumTestnet,
		SyndrSepolia,
		AuroraTestnet,
		AvalancheFuji,
		Odyssey,
		BaseGoerli, BaseSepolia,
		BlastSepolia,
		BinanceSmartChainTestnet,
		CantoTestnet, CronosTestnet,
		CeloSepolia,
		EmeraldTestnet, EvmosTestnet, FantomTestnet,
		FilecoinCalibrationTestnet,
		FraxtalTestnet,
		HappychainTestnet,
		LineaGoerli, LineaSepolia,
		InkSepolia,
		MantleSepolia,
		MoonbeamDev,
		OptimismGoerli, OptimismKovan, OptimismSepolia,
		BobSepolia,
		PolygonAmoy,
		ScrollSepolia,
		Shimmer,
		ZkSyncTestnet, ZoraSepolia, ModeSepolia, PgnSepolia,
		EtherlinkTestnet,
		OpBNBTestnet,
		RoninTestnet,
		TaikoHekla,
		AutonomysNovaTestnet,
		FlareCoston2,
		AcalaMandalaTestnet, AcalaTestnet, KaruraTestnet,
		CfxTestnet,
		PulsechainTestnet,
		GravityAlphaTestnetSepolia,
		XaiSepolia,
		Koi,
		ImmutableTestnet,
		SoneiumMinatoTestnet,
		WorldSepolia,
		UnichainSepolia,
		SignetPecorino,
		Curtis,
		TreasureTopaz,
		SonicTestnet,
		BerachainBepolia,
		SuperpositionTestnet,
		MonadTestnet,
		RskTestnet,
		TelosEvmTestnet,
		AbstractTestnet,
		LensTestnet,
		SophonTestnet,
		PolkadotTestnet,
		InjectiveTestnet,
		FluentDevnet, FluentTestnet,
		SeiTestnet,
		StableTestnet,
		CornTestnet,
		Formicarium, Insectarium,
		SkaleBaseTestnet:
		return true

	// Dev chains.
	case Dev, AnvilHardhat, Cannon:
		return true

	// Mainnets.
	case Mainnet, Optimism, Arbitrum, ArbitrumNova, Blast, Syndr, Cronos,
		Rsk, BinanceSmartChain, Poa, Sokol, Scroll, Metis, Gnosis, Polygon,
		Fantom, Moonbeam, Moonriver, Moonbase, Evmos, Chiado, Oasis,
		Emerald, Plasma, FilecoinMainnet, Avalanche, Celo, Aurora, Canto,
		Boba, Base, Fraxtal, Ink, Linea, ZkSync, Mantle,
		GravityAlphaMainnet, Xai, Zora, Pgn, Mode, Viction, Elastos, Degen,
		OpBNBMainnet, Ronin, Taiko, Flare, Acala, Karura, Darwinia, Cfx,
		Crab, Pulsechain, Etherlink, Immutable, World, Iotex, Core, Merlin,
		Bitlayer, ApeChain, Vana, Zeta, Kaia, Treasure, Bob, Soneium,
		Sonic, Superposition, Berachain, Monad, Unichain, TelosEvm, Story,
		Sei, StableMainnet, Hyperliquid, Abstract, Sophon, Lens, Corn,
		Katana, Lisk, Fuse, Injective, MemeCore, SkaleBase:
		return false
	}
	return false
}

// NativeCurrencySymbol returns the ticker symbol of the chain's native
// currency, where curated.
func (c NamedChain) NativeCurrencySymbol() (string, bool) {
	switch c {
	case Mainnet, Goerli, Holesky, Kovan, Sepolia, Morden, Ropsten, Rinkeby,
		Scroll, ScrollSepolia, Taiko, TaikoHekla, Unichain, UnichainSepolia,
		SuperpositionTestnet, Superposition, Abstract, ZkSync, ZkSyncTestnet,
		Katana, Lisk, Base, BaseGoerli, BaseSepolia, Optimism, OptimismSepolia:
		return "ETH", true

	case Mantle, MantleSepolia:
		return "MNT", true

	case GravityAlphaMainnet, GravityAlphaTestnetSepolia:
		return "G", true

	case Celo, CeloSepolia:
		return "CELO", true

	case Xai, XaiSepolia:
		return "XAI", true

	case HappychainTestnet:
		return "HAPPY", true

	case BinanceSmartChain, BinanceSmartChainTestnet, OpBNBMainnet, OpBNBTestnet:
		return "BNB", true

	case Etherlink, EtherlinkTestnet:
		return "XTZ", true

	case Degen:
		return "DEGEN", true

	case Ronin, RoninTestnet:
		return "RON", true

	case Shimmer:
		return "SMR", true

	case Flare:
		return "FLR", true

	case FlareCoston2:
		return "C2FLR", true

	case Darwinia:
		return "RING", true

	case Crab:
		return "CRAB", true

	case Koi:
		return "KRING", true

	case Cfx, CfxTestnet:
		return "CFX", true

	case Pulsechain, PulsechainTestnet:
		return "PLS", true

	case Immutable:
		return "IMX", true
	case ImmutableTestnet:
		return "tIMX", true

	case World, WorldSepolia:
		return "WRLD", true

	case Iotex:
		return "IOTX", true
	case Core:
		return "CORE", true
	case Merlin:
		return "BTC", true
	case Bitlayer:
		return "BTC", true
	case Vana:
		return "VANA", true
	case Zeta:
		return "ZETA", true
	case Kaia:
		return "KAIA", true
	case Story:
		return "IP", true
	case Sei, SeiTestnet:
		return "SEI", true
	case StableMainnet, StableTestnet:
		return "gUSDT", true
	case ApeChain, Curtis:
		return "APE", true

	case Treasure, TreasureTopaz:
		return "MAGIC", true

	case BerachainBepolia, Berachain:
		return "BERA", true

	case Monad, MonadTestnet:
		return "MON", true

	case Sonic, SonicTestnet:
		return "S", true

	case TelosEvm, TelosEvmTestnet:
		return "TLOS", true

	case Hyperliquid:
		return "HYPE", true

	case SignetPecorino:
		return "USDS", true

	case Polygon, PolygonAmoy:
		return "POL", true

	case Corn, CornTestnet:
		return "BTCN", true

	case Sophon, SophonTestnet:
		return "SOPH", true

	case LensTestnet:
		return "GRASS", true
	case Lens:
		return "GHO", true

	case Rsk:
		return "RBTC", true
	case RskTestnet:
		return "tRBTC", true

	case Injective, InjectiveTestnet:
		return "INJ", true

	case Plasma:
		return "XPL", true

	case MemeCore:
		return "M", true
	case Formicarium, Insectarium:
		return "tM", true
	}
	return "", false
}

// EtherscanURLs returns the chain's Etherscan-compatible explorer API URL and
// browser URL. Neither URL carries a trailing slash. Chains with no known
// compatible explorer report ok == false.
func (c NamedChain) EtherscanURLs() (apiURL, browserURL string, ok bool) {
	switch c {
	case Mainnet:
		return "https://api.etherscan.io/v2/api?chainid=1", "https://etherscan.io", true
	case Sepolia:
		return "https://api.etherscan.io/v2/api?chainid=11155111", "https://sepolia.etherscan.io", true
	case Holesky:
		return "https://api.etherscan.io/v2/api?chainid=17000", "https://holesky.etherscan.io", true
	case Hoodi:
		return "https://api.etherscan.io/v2/api?chainid=560048", "https://hoodi.etherscan.io", true
	case Polygon:
		return "https://api.etherscan.io/v2/api?chainid=137", "https://polygonscan.com", true
	case PolygonAmoy:
		return "https://api.etherscan.io/v2/api?chainid=80002", "https://amoy.polygonscan.com", true
	case Avalanche:
		return "https://api.etherscan.io/v2/api?chainid=43114", "https://snowscan.xyz", true
	case AvalancheFuji:
		return "https://api.etherscan.io/v2/api?chainid=43113", "https://testnet.snowscan.xyz", true
	case Optimism:
		return "https://api.etherscan.io/v2/api?chainid=10", "https://optimistic.etherscan.io", true
	case OptimismSepolia:
		return "https://api.etherscan.io/v2/api?chainid=11155420", "https://sepolia-optimism.etherscan.io", true
	case Bob:
		return "https://explorer.gobob.xyz/api", "https://explorer.gobob.xyz", true
	case BobSepolia:
		return "https://bob-sepolia.explorer.gobob.xyz/api", "https://bob-sepolia.explorer.gobob.xyz", true
	case BinanceSmartChain:
		return "https://api.etherscan.io/v2/api?chainid=56", "https://bscscan.com", true
	case BinanceSmartChainTestnet:
		return "https://api.etherscan.io/v2/api?chainid=97", "https://testnet.bscscan.com", true
	case OpBNBMainnet:
		return "https://api.etherscan.io/v2/api?chainid=204", "https://opbnb.bscscan.com", true
	case OpBNBTestnet:
		return "https://api.etherscan.io/v2/api?chainid=5611", "https://opbnb-testnet.bscscan.com", true
	case Arbitrum:
		return "https://api.etherscan.io/v2/api?chainid=42161", "https://arbiscan.io", true
	case ArbitrumSepolia:
		return "https://api.etherscan.io/v2/api?chainid=421614", "https://sepolia.arbiscan.io", true
	case ArbitrumNova:
		return "https://api.etherscan.io/v2/api?chainid=42170", "https://nova.arbiscan.io", true
	case GravityAlphaMainnet:
		return "https://explorer.gravity.xyz/api", "https://explorer.gravity.xyz", true
	case GravityAlphaTestnetSepolia:
		return "https://explorer-sepolia.gravity.xyz/api", "https://explorer-sepolia.gravity.xyz", true
	case HappychainTestnet:
		return "https://explorer.testnet.happy.tech/api", "https://explorer.testnet.happy.tech", true
	case XaiSepolia:
		return "https://api.etherscan.io/v2/api?chainid=37714555429", "https://sepolia.xaiscan.io", true
	case Xai:
		return "https://api.etherscan.io/v2/api?chainid=660279", "https://xaiscan.io", true
	case Syndr:
		return "https://explorer.syndr.com/api", "https://explorer.syndr.com", true
	case SyndrSepolia:
		return "https://sepolia-explorer.syndr.com/api", "https://sepolia-explorer.syndr.com", true
	case Cronos:
		return "https://api.etherscan.io/v2/api?chainid=25", "https://cronoscan.com", true
	case Moonbeam:
		return "https://api.etherscan.io/v2/api?chainid=1284", "https://moonbeam.moonscan.io", true
	case Moonbase:
		return "https://api.etherscan.io/v2/api?chainid=1287", "https://moonbase.moonscan.io", true
	case Moonriver:
		return "https://api.etherscan.io/v2/api?chainid=1285", "https://moonriver.moonscan.io", true
	case Gnosis:
		return "https://api.etherscan.io/v2/api?chainid=100", "https://gnosisscan.io", true
	case Scroll:
		return "https://api.etherscan.io/v2/api?chainid=534352", "https://scrollscan.com", true
	case ScrollSepolia:
		return "https://api.etherscan.io/v2/api?chainid=534351", "https://sepolia.scrollscan.com", true
	case Ink:
		return "https://explorer.inkonchain.com/api/v2", "https://explorer.inkonchain.com", true
	case InkSepolia:
		return "https://explorer-sepolia.inkonchain.com/api/v2", "https://explorer-sepolia.inkonchain.com", true
	case Shimmer:
		return "https://explorer.evm.shimmer.network/api", "https://explorer.evm.shimmer.network", true
	case Metis:
		return "https://api.routescan.io/v2/network/mainnet/evm/1088/etherscan", "https://explorer.metis.io", true
	case Chiado:
		return "https://gnosis-chiado.blockscout.com/api", "https://gnosis-chiado.blockscout.com", true
	case Plasma:
		return "https://api.routescan.io/v2/network/mainnet/evm/9745/etherscan/api", "https://plasmascan.to", true
	case FilecoinCalibrationTestnet:
		return "https://api.calibration.node.glif.io/rpc/v1", "https://calibration.filfox.info/en", true
	case Rsk:
		return "https://blockscout.com/rsk/mainnet/api", "https://blockscout.com/rsk/mainnet", true
	case RskTestnet:
		return "https://rootstock-testnet.blockscout.com/api", "https://rootstock-testnet.blockscout.com", true
	case Emerald:
		return "https://explorer.emerald.oasis.dev/api", "https://explorer.emerald.oasis.dev", true
	case EmeraldTestnet:
		return "https://testnet.explorer.emerald.oasis.dev/api", "https://testnet.explorer.emerald.oasis.dev", true
	case Aurora:
		return "https://api.aurorascan.dev/api", "https://aurorascan.dev", true
	case AuroraTestnet:
		return "https://testnet.aurorascan.dev/api", "https://testnet.aurorascan.dev", true
	case Celo:
		return "https://api.etherscan.io/v2/api?chainid=42220", "https://celoscan.io", true
	case CeloSepolia:
		return "https://api.etherscan.io/v2/api?chainid=11142220", "https://sepolia.celoscan.io", true
	case Boba:
		return "https://api.bobascan.com/api", "https://bobascan.com", true
	case Base:
		return "https://api.etherscan.io/v2/api?chainid=8453", "https://basescan.org", true
	case BaseSepolia:
		return "https://api.etherscan.io/v2/api?chainid=84532", "https://sepolia.basescan.org", true
	case Fraxtal:
		return "https://api.etherscan.io/v2/api?chainid=252", "https://fraxscan.com", true
	case FraxtalTestnet:
		return "https://api.etherscan.io/v2/api?chainid=2522", "https://holesky.fraxscan.com", true
	case Blast:
		return "https://api.etherscan.io/v2/api?chainid=81457", "https://blastscan.io", true
	case BlastSepolia:
		return "https://api.etherscan.io/v2/api?chainid=168587773", "https://sepolia.blastscan.io", true
	case ZkSync:
		return "https://api.etherscan.io/v2/api?chainid=324", "https://era.zksync.network", true
	case ZkSyncTestnet:
		return "https://api.etherscan.io/v2/api?chainid=300", "https://sepolia-era.zksync.network", true
	case Linea:
		return "https://api.etherscan.io/v2/api?chainid=59144", "https://lineascan.build", true
	case LineaSepolia:
		return "https://api.etherscan.io/v2/api?chainid=59141", "https://sepolia.lineascan.build", true
	case Mantle:
		return "https://api.etherscan.io/v2/api?chainid=5000", "https://mantlescan.xyz", true
	case MantleSepolia:
		return "https://api.etherscan.io/v2/api?chainid=5003", "https://sepolia.mantlescan.xyz", true
	case Viction:
		return "https://www.vicscan.xyz/api", "https://www.vicscan.xyz", true
	case Zora:
		return "https://explorer.zora.energy/api", "https://explorer.zora.energy", true
	case ZoraSepolia:
		return "https://sepolia.explorer.zora.energy/api", "https://sepolia.explorer.zora.energy", true
	case Mode:
		return "https://explorer.mode.network/api", "https://explorer.mode.network", true
	case ModeSepolia:
		return "https://sepolia.explorer.mode.network/api", "https://sepolia.explorer.mode.network", true
	case Elastos:
		return "https://esc.elastos.io/api", "https://esc.elastos.io", true
	case Etherlink:
		return "https://explorer.etherlink.com/api", "https://explorer.etherlink.com", true
	case EtherlinkTestnet:
		return "https://testnet.explorer.etherlink.com/api", "https://testnet.explorer.etherlink.com", true
	case Degen:
		return "https://explorer.degen.tips/api", "https://explorer.degen.tips", true
	case Ronin:
		return "https://skynet-api.roninchain.com/ronin", "https://app.roninchain.com", true
	case RoninTestnet:
		return "https://api-gateway.skymavis.com/rpc/testnet", "https://saigon-app.roninchain.com", true
	case Taiko:
		return "https://api.etherscan.io/v2/api?chainid=167000", "https://taikoscan.io", true
	case TaikoHekla:
		return "https://api.etherscan.io/v2/api?chainid=167009", "https://hekla.taikoscan.io", true
	case Flare:
		return "https://flare-explorer.flare.network/api", "https://flare-explorer.flare.network", true
	case FlareCoston2:
		return "https://coston2-explorer.flare.network/api", "https://coston2-explorer.flare.network", true
	case Acala:
		return "https://blockscout.acala.network/api", "https://blockscout.acala.network", true
	case AcalaMandalaTestnet:
		return "https://blockscout.mandala.aca-staging.network/api", "https://blockscout.mandala.aca-staging.network", true
	case Karura:
		return "https://blockscout.karura.network/api", "https://blockscout.karura.network", true
	case Darwinia:
		return "https://explorer.darwinia.network/api", "https://explorer.darwinia.network", true
	case Crab:
		return "https://crab-scan.darwinia.network/api", "https://crab-scan.darwinia.network", true
	case Cfx:
		return "https://evmapi.confluxscan.net/api", "https://evm.confluxscan.io", true
	case CfxTestnet:
		return "https://evmapi-testnet.confluxscan.net/api", "https://evmtestnet.confluxscan.io", true
	case Pulsechain:
		return "https://api.scan.pulsechain.com", "https://scan.pulsechain.com", true
	case PulsechainTestnet:
		return "https://api.scan.v4.testnet.pulsechain.com", "https://scan.v4.testnet.pulsechain.com", true
	case Immutable:
		return "https://explorer.immutable.com/api", "https://explorer.immutable.com", true
	case ImmutableTestnet:
		return "https://explorer.testnet.immutable.com/api", "https://explorer.testnet.immutable.com", true
	case Soneium:
		return "https://soneium.blockscout.com/api", "https://soneium.blockscout.com", true
	case SoneiumMinatoTestnet:
		return "https://soneium-minato.blockscout.com/api", "https://soneium-minato.blockscout.com", true
	case Odyssey:
		return "https://odyssey-explorer.ithaca.xyz/api", "https://odyssey-explorer.ithaca.xyz", true
	case World:
		return "https://api.etherscan.io/v2/api?chainid=480", "https://worldscan.org", true
	case WorldSepolia:
		return "https://api.etherscan.io/v2/api?chainid=4801", "https://sepolia.worldscan.org", true
	case Unichain:
		return "https://api.etherscan.io/v2/api?chainid=130", "https://uniscan.xyz", true
	case UnichainSepolia:
		return "https://api.etherscan.io/v2/api?chainid=1301", "https://sepolia.uniscan.xyz", true
	case SignetPecorino:
		return "https://explorer.pecorino.signet.sh/api", "https://explorer.pecorino.signet.sh", true
	case Core:
		return "https://openapi.coredao.org/api", "https://scan.coredao.org", true
	case Merlin:
		return "https://scan.merlinchain.io/api", "https://scan.merlinchain.io", true
	case Bitlayer:
		return "https://api.btrscan.com/scan/api", "https://www.btrscan.com", true
	case Vana:
		return "https://api.vanascan.io/api", "https://vanascan.io", true
	case Zeta:
		return "https://zetachain.blockscout.com/api", "https://zetachain.blockscout.com", true
	case Kaia:
		return "https://mainnet-oapi.kaiascan.io/api", "https://kaiascan.io", true
	case Story:
		return "https://www.storyscan.xyz/api/v2", "https://www.storyscan.xyz", true
	case Sei:
		return "https://api.etherscan.io/v2/api?chainid=1329", "https://seiscan.io", true
	case SeiTestnet:
		return "https://api.etherscan.io/v2/api?chainid=1328", "https://testnet.seiscan.io", true
	case StableMainnet:
		return "https://api.etherscan.io/v2/api?chainid=988", "https://stablescan.xyz", true
	case StableTestnet:
		return "https://api.etherscan.io/v2/api?chainid=2201", "https://testnet.stablescan.xyz", true
	case ApeChain:
		return "https://api.etherscan.io/v2/api?chainid=33139", "https://apescan.io", true
	case Curtis:
		return "https://api.etherscan.io/v2/api?chainid=33111", "https://curtis.apescan.io", true
	case Sonic:
		return "https://api.etherscan.io/v2/api?chainid=146", "https://sonicscan.org", true
	case SonicTestnet:
		return "https://api.etherscan.io/v2/api?chainid=14601", "https://testnet.sonicscan.org", true
	case BerachainBepolia:
		return "https://api.etherscan.io/v2/api?chainid=80069", "https://testnet.berascan.com", true
	case Berachain:
		return "https://api.etherscan.io/v2/api?chainid=80094", "https://berascan.com", true
	case SuperpositionTestnet:
		return "https://testnet-explorer.superposition.so/api", "https://testnet-explorer.superposition.so", true
	case Superposition:
		return "https://explorer.superposition.so/api", "https://explorer.superposition.so", true
	case Monad:
		return "https://api.etherscan.io/v2/api?chainid=143", "https://monadscan.com", true
	case MonadTestnet:
		return "https://api.etherscan.io/v2/api?chainid=10143", "https://testnet.monadscan.com", true
	case TelosEvm:
		return "https://api.teloscan.io/api", "https://teloscan.io", true
	case TelosEvmTestnet:
		return "https://api.testnet.teloscan.io/api", "https://testnet.teloscan.io", true
	case Hyperliquid:
		return "https://api.etherscan.io/v2/api?chainid=999", "https://hyperevmscan.io", true
	case Abstract:
		return "https://api.etherscan.io/v2/api?chainid=2741", "https://abscan.org", true
	case AbstractTestnet:
		return "https://api.etherscan.io/v2/api?chainid=11124", "https://sepolia.abscan.org", true
	case Corn:
		return "https://api.routescan.io/v2/network/mainnet/evm/21000000/etherscan/api", "https://cornscan.io", true
	case CornTestnet:
		return "https://api.routescan.io/v2/network/testnet/evm/21000001/etherscan/api", "https://testnet.cornscan.io", true
	case Sophon:
		return "https://api.etherscan.io/v2/api?chainid=50104", "https://sophscan.xyz", true
	case SophonTestnet:
		return "https://api.etherscan.io/v2/api?chainid=531050104", "https://testnet.sophscan.xyz", true
	case Lens:
		return "https://explorer-api.lens.xyz", "https://explorer.lens.xyz", true
	case LensTestnet:
		return "https://block-explorer-api.staging.lens.zksync.dev", "https://explorer.testnet.lens.xyz", true
	case Katana:
		return "https://api.etherscan.io/v2/api?chainid=747474", "https://katanascan.com", true
	case Lisk:
		return "https://blockscout.lisk.com/api", "https://blockscout.lisk.com", true
	case Fuse:
		return "https://explorer.fuse.io/api", "https://explorer.fuse.io", true
	case Injective:
		return "https://blockscout-api.injective.network/api", "https://blockscout.injective.network", true
	case InjectiveTestnet:
		return "https://testnet.blockscout-api.injective.network/api", "https://testnet.blockscout.injective.network", true
	case FluentDevnet:
		return "https://blockscout.dev.gblend.xyz/api", "https://blockscout.dev.gblend.xyz", true
	case FluentTestnet:
		return "https://testnet.fluentscan.xyz/api", "https://testnet.fluentscan.xyz", true
	case MemeCore:
		return "https://api.etherscan.io/v2/api?chainid=4352", "https://memecorescan.io", true
	case Formicarium:
		return "https://api.etherscan.io/v2/api?chainid=43521", "https://formicarium.memecorescan.io", true
	case Insectarium:
		return "https://insectarium.blockscout.memecore.com/api", "https://insectarium.blockscout.memecore.com", true
	case SkaleBase:
		return "https://skale-base-explorer.skalenodes.com/api", "https://skale-base-explorer.skalenodes.com", true
	case SkaleBaseTestnet:
		return "https://base-sepolia-testnet-explorer.skalenodes.com/api", "https://base-sepolia-testnet-explorer.skalenodes.com", true

	// No known Etherscan-compatible explorer.
	case AcalaTestnet, AnvilHardhat, ArbitrumGoerli, ArbitrumTestnet,
		AutonomysNovaTestnet, BaseGoerli, Canto, CantoTestnet, CronosTestnet,
		Dev, Evmos, EvmosTestnet, Fantom, FantomTestnet, FilecoinMainnet,
		Goerli, Iotex, KaruraTestnet, Koi, Kovan, LineaGoerli, MoonbeamDev,
		Morden, Oasis, OptimismGoerli, OptimismKovan, Pgn, PgnSepolia, Poa,
		Rinkeby, Ropsten, Sokol, Treasure, TreasureTopaz, Cannon,
		PolkadotTestnet:
		return "", "", false
	}
	return "", "", false
}

// EtherscanAPIKeyName returns the conventional environment variable holding
// the API key for the chain's explorer. Keys are grouped by explorer vendor
// family, so every Etherscan-family fork shares ETHERSCAN_API_KEY.
func (c NamedChain) EtherscanAPIKeyName() (string, bool) {
	switch c {
	case Abstract, AbstractTestnet, ApeChain,
		Arbitrum, ArbitrumGoerli, ArbitrumNova, ArbitrumSepolia, ArbitrumTestnet,
		Aurora, AuroraTestnet,
		Avalanche, AvalancheFuji,
		Base, BaseGoerli, BaseSepolia,
		BinanceSmartChain, BinanceSmartChainTestnet,
		Blast, BlastSepolia,
		Celo,
		Cronos, CronosTestnet,
		Fraxtal, FraxtalTestnet,
		Gnosis, Goerli, Holesky, Hoodi,
		Hyperliquid, Katana, Kovan,
		Linea, LineaSepolia,
		Mainnet,
		Mantle, MantleSepolia,
		Monad, MonadTestnet,
		Morden,
		OpBNBMainnet, OpBNBTestnet,
		Optimism, OptimismGoerli, OptimismKovan, OptimismSepolia,
		Polygon, PolygonAmoy,
		Rinkeby, Ropsten,
		Scroll, ScrollSepolia,
		Sei, SeiTestnet,
		StableMainnet, StableTestnet,
		Sonic, SonicTestnet,
		Sophon, SophonTestnet,
		Syndr, SyndrSepolia,
		Taiko, TaikoHekla,
		Unichain, UnichainSepolia,
		Xai, XaiSepolia,
		ZkSync, ZkSyncTestnet,
		MemeCore, Formicarium,
		SkaleBase, SkaleBaseTestnet:
		return "ETHERSCAN_API_KEY", true

	case Fantom, FantomTestnet:
		return "FTMSCAN_API_KEY", true

	case Moonbeam, Moonbase, MoonbeamDev, Moonriver:
		return "MOONSCAN_API_KEY", true

	case Acala, AcalaMandalaTestnet, AcalaTestnet,
		Canto, CantoTestnet,
		CeloSepolia,
		Etherlink, EtherlinkTestnet,
		Flare, FlareCoston2,
		Karura, KaruraTestnet,
		Mode, ModeSepolia,
		Pgn, PgnSepolia,
		Shimmer,
		Zora, ZoraSepolia,
		Darwinia, Crab, Koi,
		Immutable, ImmutableTestnet,
		Soneium, SoneiumMinatoTestnet,
		World, WorldSepolia,
		Curtis,
		Ink, InkSepolia,
		SuperpositionTestnet, Superposition,
		Vana, Story, Lisk, Fuse,
		Injective, InjectiveTestnet,
		SignetPecorino:
		return "BLOCKSCOUT_API_KEY", true

	case Boba:
		return "BOBASCAN_API_KEY", true

	case Core:
		return "CORESCAN_API_KEY", true
	case Merlin:
		return "MERLINSCAN_API_KEY", true
	case Bitlayer:
		return "BITLAYERSCAN_API_KEY", true
	case Zeta:
		return "ZETASCAN_API_KEY", true
	case Kaia:
		return "KAIASCAN_API_KEY", true
	case Berachain, BerachainBepolia:
		return "BERASCAN_API_KEY", true
	case Corn, CornTestnet, Plasma:
		return "ROUTESCAN_API_KEY", true

	// No conventional key variable.
	case Metis, Chiado, Odyssey, Sepolia, Rsk, RskTestnet, Sokol, Poa,
		Oasis, Emerald, EmeraldTestnet, Evmos, EvmosTestnet, AnvilHardhat,
		Dev, GravityAlphaMainnet, GravityAlphaTestnetSepolia, Bob,
		BobSepolia, FilecoinMainnet, LineaGoerli,
		FilecoinCalibrationTestnet, Viction, Elastos, Degen, Ronin,
		RoninTestnet, Cfx, CfxTestnet, Pulsechain, PulsechainTestnet,
		AutonomysNovaTestnet, Iotex, HappychainTestnet, Treasure,
		TreasureTopaz, TelosEvm, TelosEvmTestnet, Lens, LensTestnet,
		FluentDevnet, FluentTestnet, Cannon, Insectarium, PolkadotTestnet:
		return "", false
	}
	return "", false
}

// EtherscanAPIKey reads the explorer API key from the process environment,
// using the variable named by EtherscanAPIKeyName. This is the only function
// in the catalog with a side effect; everything else stays pure so the
// tables can be queried from tests and init code freely.
func (c NamedChain) EtherscanAPIKey() (string, bool) {
	name, ok := c.EtherscanAPIKeyName()
	if !ok {
		return "", false
	}
	return os.LookupEnv(name)
}

// dnsPrefix is the enrtree public key prefix shared by the DNS discovery
// lists at https://github.com/ethereum/discv4-dns-lists.
const dnsPrefix = "enrtree://AKA3AM6LPBYEUDMVNU3BSVQJ5AD45Y7YPOHJLEF6W26QOE4VTUDPE@"

// PublicDNSNetworkProtocol returns the chain's public DNS node-discovery
// list address. Only the historical Ethereum networks publish one.
func (c NamedChain) PublicDNSNetworkProtocol() (string, bool) {
	switch c {
	case Mainnet, Goerli, Sepolia, Ropsten, Rinkeby, Holesky, Hoodi:
		return dnsPrefix + "all." + c.String() + ".ethdisco.net", true
	}
	return "", false
}

// WrappedNativeToken returns the contract address of the canonical wrapped
// native token (WETH and equivalents), where one is established.
func (c NamedChain) WrappedNativeToken() (common.Address, bool) {
	var hex string
	switch c {
	case Mainnet:
		hex = "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"
	case Optimism:
		hex = "0x4200000000000000000000000000000000000006"
	case BinanceSmartChain:
		hex = "0xbb4cdb9cbd36b01bd1cbaebf2de08d9173bc095c"
	case OpBNBMainnet:
		hex = "0x4200000000000000000000000000000000000006"
	case Arbitrum:
		hex = "0x82af49447d8a07e3bd95bd0d56f35241523fbab1"
	case Base:
		hex = "0x4200000000000000000000000000000000000006"
	case Linea:
		hex = "0xe5d7c2a44ffddf6b295a15c148167daaaf5cf34f"
	case Mantle:
		hex = "0xdeaddeaddeaddeaddeaddeaddeaddeaddead1111"
	case Blast:
		hex = "0x4300000000000000000000000000000000000004"
	case Gnosis:
		hex = "0xe91d153e0b41518a2ce8dd3d7944fa863463a97d"
	case Scroll:
		hex = "0x5300000000000000000000000000000000000004"
	case Taiko:
		hex = "0xa51894664a773981c6c112c43ce576f315d5b1b6"
	case Avalanche:
		hex = "0xb31f66aa3c1e785363f0875a1b74e27b85fd66c7"
	case Polygon:
		hex = "0x0d500b1d8e8ef31e21c99d1db9a6444d3adf1270"
	case Fantom:
		hex = "0x21be370d5312f44cb42ce377bc9b8a0cef1a4c83"
	case Iotex:
		hex = "0xa00744882684c3e4747faefd68d283ea44099d03"
	case Core:
		hex = "0x40375C92d9FAf44d2f9db9Bd9ba41a3317a2404f"
	case Merlin:
		hex = "0xF6D226f9Dc15d9bB51182815b320D3fBE324e1bA"
	case Bitlayer:
		hex = "0xff204e2681a6fa0e2c3fade68a1b28fb90e4fc5f"
	case ApeChain:
		hex = "0x48b62137EdfA95a428D35C09E44256a739F6B557"
	case Vana:
		hex = "0x00EDdD9621Fb08436d0331c149D1690909a5906d"
	case Zeta:
		hex = "0x5F0b1a82749cb4E2278EC87F8BF6B618dC71a8bf"
	case Kaia:
		hex = "0x19aac5f612f524b754ca7e7c41cbfa2e981a4432"
	case Story:
		hex = "0x1514000000000000000000000000000000000000"
	case Treasure:
		hex = "0x263d8f36bb8d0d9526255e205868c26690b04b88"
	case Superposition:
		hex = "0x1fB719f10b56d7a85DCD32f27f897375fB21cfdd"
	case Sonic:
		hex = "0x039e2fB66102314Ce7b64Ce5Ce3E5183bc94aD38"
	case Berachain:
		hex = "0x6969696969696969696969696969696969696969"
	case Hyperliquid:
		hex = "0x5555555555555555555555555555555555555555"
	case Abstract:
		hex = "0x3439153EB7AF838Ad19d56E1571FBD09333C2809"
	case Sei:
		hex = "0xE30feDd158A2e3b13e9badaeABaFc5516e95e8C7"
	case ZkSync:
		hex = "0x5aea5775959fbc2557cc8789bc1bf90a239d9a91"
	case Sophon:
		hex = "0xf1f9e08a0818594fde4713ae0db1e46672ca960e"
	case Rsk:
		hex = "0x967f8799af07df1534d48a95a5c9febe92c53ae0"
	case MemeCore, Formicarium, Insectarium:
		hex = "0x653e645e3d81a72e71328Bc01A04002945E3ef7A"
	default:
		return common.Address{}, false
	}
	return common.HexToAddress(hex), true
}
