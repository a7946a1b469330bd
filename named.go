package chains

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// NamedChain identifies a well-known EIP-155 chain. The numeric value of
// each constant is the chain's canonical chain ID, so a NamedChain converts
// to its chain ID with a plain uint64 conversion. Constants are load-bearing:
// changing one is a breaking change.
//
// When adding a chain:
//  1. add the constant below;
//  2. add its canonical name (and any aliases) to the tables in this file;
//  3. classify it in every table function in metadata.go;
//  4. run the exhaustiveness tests, which sweep All() and fail on anything
//     left unclassified.
type NamedChain uint64

const (
	Mainnet NamedChain = 1
	Morden  NamedChain = 2
	Ropsten NamedChain = 3
	Rinkeby NamedChain = 4
	Goerli  NamedChain = 5
	Kovan   NamedChain = 42
	Holesky NamedChain = 17000
	Hoodi   NamedChain = 560048
	Sepolia NamedChain = 11155111

	Odyssey NamedChain = 911867

	Optimism        NamedChain = 10
	OptimismKovan   NamedChain = 69
	OptimismGoerli  NamedChain = 420
	OptimismSepolia NamedChain = 11155420

	Bob        NamedChain = 60808
	BobSepolia NamedChain = 808813

	Arbitrum        NamedChain = 42161
	ArbitrumTestnet NamedChain = 421611
	ArbitrumGoerli  NamedChain = 421613
	ArbitrumSepolia NamedChain = 421614
	ArbitrumNova    NamedChain = 42170

	Cronos        NamedChain = 25
	CronosTestnet NamedChain = 338

	Rsk        NamedChain = 30
	RskTestnet NamedChain = 31

	TelosEvm        NamedChain = 40
	TelosEvmTestnet NamedChain = 41

	Crab     NamedChain = 44
	Darwinia NamedChain = 46
	Koi      NamedChain = 701

	// BinanceSmartChain kept its pre-rebranding name; the canonical string
	// is "bsc" and both "bnb-smart-chain" and "binance-smart-chain" parse.
	BinanceSmartChain        NamedChain = 56
	BinanceSmartChainTestnet NamedChain = 97

	Poa   NamedChain = 99
	Sokol NamedChain = 77

	Scroll        NamedChain = 534352
	ScrollSepolia NamedChain = 534351

	Metis NamedChain = 1088

	CfxTestnet NamedChain = 71
	Cfx        NamedChain = 1030

	Gnosis NamedChain = 100

	Polygon     NamedChain = 137
	PolygonAmoy NamedChain = 80002

	Fantom        NamedChain = 250
	FantomTestnet NamedChain = 4002

	Moonbeam    NamedChain = 1284
	MoonbeamDev NamedChain = 1281
	Moonriver   NamedChain = 1285
	Moonbase    NamedChain = 1287

	Dev          NamedChain = 1337
	AnvilHardhat NamedChain = 31337

	GravityAlphaMainnet        NamedChain = 1625
	GravityAlphaTestnetSepolia NamedChain = 13505

	Evmos        NamedChain = 9001
	EvmosTestnet NamedChain = 9000

	Plasma NamedChain = 9745

	Chiado NamedChain = 10200

	Oasis NamedChain = 26863

	Emerald        NamedChain = 42262
	EmeraldTestnet NamedChain = 42261

	FilecoinMainnet            NamedChain = 314
	FilecoinCalibrationTestnet NamedChain = 314159

	Avalanche     NamedChain = 43114
	AvalancheFuji NamedChain = 43113

	Celo        NamedChain = 42220
	CeloSepolia NamedChain = 11142220

	Aurora        NamedChain = 1313161554
	AuroraTestnet NamedChain = 1313161555

	Canto        NamedChain = 7700
	CantoTestnet NamedChain = 740

	Boba NamedChain = 288

	Base        NamedChain = 8453
	BaseGoerli  NamedChain = 84531
	BaseSepolia NamedChain = 84532

	Syndr        NamedChain = 404
	SyndrSepolia NamedChain = 444444

	Shimmer NamedChain = 148

	Ink        NamedChain = 57073
	InkSepolia NamedChain = 763373

	Fraxtal        NamedChain = 252
	FraxtalTestnet NamedChain = 2522

	Blast        NamedChain = 81457
	BlastSepolia NamedChain = 168587773

	Linea        NamedChain = 59144
	LineaGoerli  NamedChain = 59140
	LineaSepolia NamedChain = 59141

	ZkSync        NamedChain = 324
	ZkSyncTestnet NamedChain = 300

	Mantle        NamedChain = 5000
	MantleSepolia NamedChain = 5003

	Xai        NamedChain = 660279
	XaiSepolia NamedChain = 37714555429

	HappychainTestnet NamedChain = 216

	Viction NamedChain = 88

	Zora        NamedChain = 7777777
	ZoraSepolia NamedChain = 999999999

	Pgn        NamedChain = 424
	PgnSepolia NamedChain = 58008

	Mode        NamedChain = 34443
	ModeSepolia NamedChain = 919

	Elastos NamedChain = 20

	Etherlink        NamedChain = 42793
	EtherlinkTestnet NamedChain = 128123

	Degen NamedChain = 666666666

	OpBNBMainnet NamedChain = 204
	OpBNBTestnet NamedChain = 5611

	Ronin        NamedChain = 2020
	RoninTestnet NamedChain = 2021

	Taiko      NamedChain = 167000
	TaikoHekla NamedChain = 167009

	AutonomysNovaTestnet NamedChain = 490000

	Flare        NamedChain = 14
	FlareCoston2 NamedChain = 114

	Acala               NamedChain = 787
	AcalaMandalaTestnet NamedChain = 595
	AcalaTestnet        NamedChain = 597

	Karura        NamedChain = 686
	KaruraTestnet NamedChain = 596

	Pulsechain        NamedChain = 369
	PulsechainTestnet NamedChain = 943

	Cannon NamedChain = 13370

	Immutable        NamedChain = 13371
	ImmutableTestnet NamedChain = 13473

	Soneium              NamedChain = 1868
	SoneiumMinatoTestnet NamedChain = 1946

	World        NamedChain = 480
	WorldSepolia NamedChain = 4801

	Iotex    NamedChain = 4689
	Core     NamedChain = 1116
	Merlin   NamedChain = 4200
	Bitlayer NamedChain = 200901
	Vana     NamedChain = 1480
	Zeta     NamedChain = 7000
	Kaia     NamedChain = 8217
	Story    NamedChain = 1514

	Sei        NamedChain = 1329
	SeiTestnet NamedChain = 1328

	StableMainnet NamedChain = 988
	StableTestnet NamedChain = 2201

	Unichain        NamedChain = 130
	UnichainSepolia NamedChain = 1301

	SignetPecorino NamedChain = 14174

	ApeChain NamedChain = 33139
	Curtis   NamedChain = 33111

	Sonic        NamedChain = 146
	SonicTestnet NamedChain = 14601

	Treasure      NamedChain = 61166
	TreasureTopaz NamedChain = 978658

	BerachainBepolia NamedChain = 80069
	Berachain        NamedChain = 80094

	SuperpositionTestnet NamedChain = 98985
	Superposition        NamedChain = 55244

	Monad        NamedChain = 143
	MonadTestnet NamedChain = 10143

	Hyperliquid NamedChain = 999

	Abstract        NamedChain = 2741
	AbstractTestnet NamedChain = 11124

	Corn        NamedChain = 21000000
	CornTestnet NamedChain = 21000001

	Sophon        NamedChain = 50104
	SophonTestnet NamedChain = 531050104

	PolkadotTestnet NamedChain = 420420417

	Lens        NamedChain = 232
	LensTestnet NamedChain = 37111

	Injective        NamedChain = 1776
	InjectiveTestnet NamedChain = 1439

	Katana NamedChain = 747474

	Lisk NamedChain = 1135

	Fuse NamedChain = 122

	FluentDevnet  NamedChain = 20993
	FluentTestnet NamedChain = 20994

	SkaleBase        NamedChain = 1562508942
	SkaleBaseTestnet NamedChain = 324705682

	MemeCore    NamedChain = 4352
	Formicarium NamedChain = 43521
	Insectarium NamedChain = 43522
)

// namedChainStrings maps every NamedChain to its canonical lowercase-kebab
// display string. This table is the source of truth for Display, parsing and
// All(); the exhaustiveness tests fail if a constant is missing here.
var namedChainStrings = map[NamedChain]string{
	Mainnet: "mainnet",
	Morden:  "morden",
	Ropsten: "ropsten",
	Rinkeby: "rinkeby",
	Goerli:  "goerli",
	Kovan:   "kovan",
	Holesky: "holesky",
	Hoodi:   "hoodi",
	Sepolia: "sepolia",

	Odyssey: "odyssey",

	Optimism:        "optimism",
	OptimismKovan:   "optimism-kovan",
	OptimismGoerli:  "optimism-goerli",
	OptimismSepolia: "optimism-sepolia",

	Bob:        "bob",
	BobSepolia: "bob-sepolia",

	Arbitrum:        "arbitrum",
	ArbitrumTestnet: "arbitrum-testnet",
	ArbitrumGoerli:  "arbitrum-goerli",
	ArbitrumSepolia: "arbitrum-sepolia",
	ArbitrumNova:    "arbitrum-nova",

	Cronos:        "cronos",
	CronosTestnet: "cronos-testnet",

	Rsk:        "rsk",
	RskTestnet: "rsk-testnet",

	TelosEvm:        "telos",
	TelosEvmTestnet: "telos-testnet",

	Crab:     "crab",
	Darwinia: "darwinia",
	Koi:      "koi",

	BinanceSmartChain:        "bsc",
	BinanceSmartChainTestnet: "bsc-testnet",

	Poa:   "poa",
	Sokol: "sokol",

	Scroll:        "scroll",
	ScrollSepolia: "scroll-sepolia",

	Metis: "metis",

	CfxTestnet: "cfx-testnet",
	Cfx:        "cfx",

	Gnosis: "xdai",

	Polygon:     "polygon",
	PolygonAmoy: "amoy",

	Fantom:        "fantom",
	FantomTestnet: "fantom-testnet",

	Moonbeam:    "moonbeam",
	MoonbeamDev: "moonbeam-dev",
	Moonriver:   "moonriver",
	Moonbase:    "moonbase",

	Dev:          "dev",
	AnvilHardhat: "anvil-hardhat",

	GravityAlphaMainnet:        "gravity-alpha-mainnet",
	GravityAlphaTestnetSepolia: "gravity-alpha-testnet-sepolia",

	Evmos:        "evmos",
	EvmosTestnet: "evmos-testnet",

	Plasma: "plasma",

	Chiado: "chiado",

	Oasis: "oasis",

	Emerald:        "emerald",
	EmeraldTestnet: "emerald-testnet",

	FilecoinMainnet:            "filecoin-mainnet",
	FilecoinCalibrationTestnet: "filecoin-calibration-testnet",

	Avalanche:     "avalanche",
	AvalancheFuji: "fuji",

	Celo:        "celo",
	CeloSepolia: "celo-sepolia",

	Aurora:        "aurora",
	AuroraTestnet: "aurora-testnet",

	Canto:        "canto",
	CantoTestnet: "canto-testnet",

	Boba: "boba",

	Base:        "base",
	BaseGoerli:  "base-goerli",
	BaseSepolia: "base-sepolia",

	Syndr:        "syndr",
	SyndrSepolia: "syndr-sepolia",

	Shimmer: "shimmer",

	Ink:        "ink",
	InkSepolia: "ink-sepolia",

	Fraxtal:        "fraxtal",
	FraxtalTestnet: "fraxtal-testnet",

	Blast:        "blast",
	BlastSepolia: "blast-sepolia",

	Linea:        "linea",
	LineaGoerli:  "linea-goerli",
	LineaSepolia: "linea-sepolia",

	ZkSync:        "zksync",
	ZkSyncTestnet: "zksync-testnet",

	Mantle:        "mantle",
	MantleSepolia: "mantle-sepolia",

	Xai:        "xai",
	XaiSepolia: "xai-sepolia",

	HappychainTestnet: "happychain-testnet",

	Viction: "viction",

	Zora:        "zora",
	ZoraSepolia: "zora-sepolia",

	Pgn:        "pgn",
	PgnSepolia: "pgn-sepolia",

	Mode:        "mode",
	ModeSepolia: "mode-sepolia",

	Elastos: "elastos",

	Etherlink:        "etherlink",
	EtherlinkTestnet: "etherlink-testnet",

	Degen: "degen",

	OpBNBMainnet: "opbnb-mainnet",
	OpBNBTestnet: "opbnb-testnet",

	Ronin:        "ronin",
	RoninTestnet: "ronin-testnet",

	Taiko:      "taiko",
	TaikoHekla: "taiko-hekla",

	AutonomysNovaTestnet: "autonomys-nova-testnet",

	Flare:        "flare",
	FlareCoston2: "flare-coston2",

	Acala:               "acala",
	AcalaMandalaTestnet: "acala-mandala-testnet",
	AcalaTestnet:        "acala-testnet",

	Karura:        "karura",
	KaruraTestnet: "karura-testnet",

	Pulsechain:        "pulsechain",
	PulsechainTestnet: "pulsechain-testnet",

	Cannon: "cannon",

	Immutable:        "immutable",
	ImmutableTestnet: "immutable-testnet",

	Soneium:              "soneium",
	SoneiumMinatoTestnet: "soneium-minato-testnet",

	World:        "world",
	WorldSepolia: "world-sepolia",

	Iotex:    "iotex",
	Core:     "core",
	Merlin:   "merlin",
	Bitlayer: "bitlayer",
	Vana:     "vana",
	Zeta:     "zeta",
	Kaia:     "kaia",
	Story:    "story",

	Sei:        "sei",
	SeiTestnet: "sei-testnet",

	StableMainnet: "stable-mainnet",
	StableTestnet: "stable-testnet",

	Unichain:        "unichain",
	UnichainSepolia: "unichain-sepolia",

	SignetPecorino: "signet-pecorino",

	ApeChain: "apechain",
	Curtis:   "curtis",

	Sonic:        "sonic",
	SonicTestnet: "sonic-testnet",

	Treasure:      "treasure",
	TreasureTopaz: "treasure-topaz",

	BerachainBepolia: "berachain-bepolia",
	Berachain:        "berachain",

	SuperpositionTestnet: "superposition-testnet",
	Superposition:        "superposition",

	Monad:        "monad",
	MonadTestnet: "monad-testnet",

	Hyperliquid: "hyperliquid",

	Abstract:        "abstract",
	AbstractTestnet: "abstract-testnet",

	Corn:        "corn",
	CornTestnet: "corn-testnet",

	Sophon:        "sophon",
	SophonTestnet: "sophon-testnet",

	PolkadotTestnet: "polkadot-testnet",

	Lens:        "lens",
	LensTestnet: "lens-testnet",

	Injective:        "injective",
	InjectiveTestnet: "injective-testnet",

	Katana: "katana",

	Lisk: "lisk",

	Fuse: "fuse",

	FluentDevnet:  "fluent-devnet",
	FluentTestnet: "fluent-testnet",

	SkaleBase:        "skale-base",
	SkaleBaseTestnet: "skale-base-testnet",

	MemeCore:    "memecore",
	Formicarium: "formicarium",
	Insectarium: "insectarium",
}

// namedChainAliases maps accepted non-canonical spellings to their chain.
// Keys are kebab-case; UnmarshalText additionally folds '_' to '-' so the
// snake_case forms resolve too.
var namedChainAliases = map[string]NamedChain{
	"ethlive": Mainnet,

	"arbitrum-one": Arbitrum,

	"binance-smart-chain":         BinanceSmartChain,
	"bnb-smart-chain":             BinanceSmartChain,
	"binance-smart-chain-testnet": BinanceSmartChainTestnet,
	"bnb-smart-chain-testnet":     BinanceSmartChainTestnet,

	"gnosis":       Gnosis,
	"gnosis-chain": Gnosis,

	"polygon-amoy": PolygonAmoy,

	"anvil":   AnvilHardhat,
	"hardhat": AnvilHardhat,

	"avalanche-fuji": AvalancheFuji,

	"telos-evm":         TelosEvm,
	"telos-evm-testnet": TelosEvmTestnet,

	"conflux-espace":         Cfx,
	"conflux-espace-testnet": CfxTestnet,

	"scroll-sepolia-testnet": ScrollSepolia,
	"ink-sepolia-testnet":    InkSepolia,

	"worldchain":         World,
	"worldchain-sepolia": WorldSepolia,

	"op-bnb-mainnet": OpBNBMainnet,
	"op-bnb-testnet": OpBNBTestnet,

	"apechain-testnet": Curtis,

	"treasure-topaz-testnet": TreasureTopaz,

	"berachain-bepolia-testnet": BerachainBepolia,

	"memecore-formicarium": Formicarium,
	// Widely-circulated misspelling, kept for decode compatibility.
	"formicairum":          Formicarium,
	"memecore-insectarium": Insectarium,
}

// namedChainsByString resolves canonical names and aliases; allNamed holds
// every variant in ascending chain-ID order. Both are derived from the
// tables above once at init.
var (
	namedChainsByString map[string]NamedChain
	allNamed            []NamedChain
)

func init() {
	namedChainsByString = make(map[string]NamedChain, len(namedChainStrings)+len(namedChainAliases))
	allNamed = make([]NamedChain, 0, len(namedChainStrings))
	for c, s := range namedChainStrings {
		namedChainsByString[s] = c
		allNamed = append(allNamed, c)
	}
	for s, c := range namedChainAliases {
		namedChainsByString[s] = c
	}
	sort.Slice(allNamed, func(i, j int) bool { return allNamed[i] < allNamed[j] })
}

// All returns every named chain in ascending chain-ID order.
// The returned slice is freshly allocated and safe to modify.
func All() []NamedChain {
	out := make([]NamedChain, len(allNamed))
	copy(out, allNamed)
	return out
}

// Count returns the number of named chain variants.
func Count() int {
	return len(allNamed)
}

// IsValid reports whether c is one of the declared variants.
func (c NamedChain) IsValid() bool {
	_, ok := namedChainStrings[c]
	return ok
}

// String returns the canonical lowercase-kebab name, or the empty string for
// values that are not declared variants.
func (c NamedChain) String() string {
	return namedChainStrings[c]
}

// ID returns the chain ID of the named chain.
func (c NamedChain) ID() uint64 {
	return uint64(c)
}

// ParseNamed resolves a canonical chain name or declared alias.
// Matching is case-sensitive; use Parse to also accept decimal chain IDs.
func ParseNamed(s string) (NamedChain, error) {
	if c, ok := namedChainsByString[s]; ok {
		return c, nil
	}
	return 0, errors.Wrapf(ErrInvalidChainIdentifier, "unknown chain name %q", s)
}

// namedFromID resolves a chain ID to its named chain, if any.
func namedFromID(id uint64) (NamedChain, bool) {
	c := NamedChain(id)
	_, ok := namedChainStrings[c]
	return c, ok
}

// MarshalText encodes the canonical name.
func (c NamedChain) MarshalText() ([]byte, error) {
	s := c.String()
	if s == "" {
		return nil, errors.Wrapf(ErrInvalidChainIdentifier, "chain id %d has no name", uint64(c))
	}
	return []byte(s), nil
}

// UnmarshalText accepts the canonical name and every alias; underscores are
// folded to hyphens first, so snake_case spellings decode even though
// encoding always emits kebab-case.
func (c *NamedChain) UnmarshalText(text []byte) error {
	parsed, err := ParseNamed(strings.ReplaceAll(string(text), "_", "-"))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
