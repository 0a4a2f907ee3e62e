// Package gostparams holds the standardized GOST R 34.10-2012 curve
// parameter sets from R 1323565.1.024-2019: a static, immutable registry
// consumed by clients constructing a gost3410.Curve.
package gostparams

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/tc26/gogost/gost3410"
)

func hexInt(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic(fmt.Sprintf("gostparams: invalid hex literal %q", s))
	}
	return n
}

// registry maps a standardized curve identifier to its parameter set,
// transcribed from the R 1323565.1.024-2019 test-vector source.
var registry = map[string]gost3410.Params{
	"id-tc26-gost-3410-2012-256-paramSetA": {
		P: hexInt("fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffd97"),
		A: hexInt("c2173f1513981673af4892c23035a27ce25e2013bf95aa33b22c656f277e7335"),
		B: hexInt("295f9bae7428ed9ccc20e7c359a9d41a22fccd9108e17bf7ba9337a6f8ae9513"),
		M: hexInt("1000000000000000000000000000000003f63377f21ed98d70456bd55b0d8319c"),
		Q: hexInt("400000000000000000000000000000000fd8cddfc87b6635c115af556c360c67"),
		X: hexInt("91e38443a5e82c0d880923425712b2bb658b9196932e02c78b2582fe742daa28"),
		Y: hexInt("32879423ab1a0375895786c4bb46e9565fde0b5344766740af268adb32322e5c"),
		E: big.NewInt(1),
		D: hexInt("605f6b7c183fa81578bc39cfad518132b9df62897009af7e522c32d6dc7bffb"),
		U: big.NewInt(0x0d),
		V: hexInt("60ca1e32aa475b348488c38fab07649ce7ef8dbe87f22e81f92b2592dba300e7"),
	},
	"id-tc26-gost-3410-2012-256-paramSetB": {
		P: hexInt("fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffd97"),
		A: hexInt("fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffd94"),
		B: hexInt("a6"),
		M: hexInt("ffffffffffffffffffffffffffffffff6c611070995ad10045841b09b761b893"),
		Q: hexInt("ffffffffffffffffffffffffffffffff6c611070995ad10045841b09b761b893"),
		X: big.NewInt(1),
		Y: hexInt("8d91e471e0989cda27df505a453f2b7635294f2ddf23e3b122acc99c9e9f1e14"),
	},
	"id-tc26-gost-3410-2012-256-paramSetC": {
		P: hexInt("8000000000000000000000000000000000000000000000000000000000000c99"),
		A: hexInt("8000000000000000000000000000000000000000000000000000000000000c96"),
		B: hexInt("3e1af419a269a5f866a7d3c25c3df80ae979259373ff2b182f49d4ce7e1bbc8b"),
		M: hexInt("800000000000000000000000000000015f700cfff1a624e5e497161bcc8a198f"),
		Q: hexInt("800000000000000000000000000000015f700cfff1a624e5e497161bcc8a198f"),
		X: big.NewInt(1),
		Y: hexInt("3fa8124359f96680b83d1c3eb2c070e5c545c9858d03ecfb744bf8d717717efc"),
	},
	"id-tc26-gost-3410-2012-256-paramSetD": {
		P: hexInt("9b9f605f5a858107ab1ec85e6b41c8aacf846e86789051d37998f7b9022d759b"),
		A: hexInt("9b9f605f5a858107ab1ec85e6b41c8aacf846e86789051d37998f7b9022d7598"),
		B: hexInt("805a"),
		M: hexInt("9b9f605f5a858107ab1ec85e6b41c8aa582ca3511eddfb74f02f3a6598980bb9"),
		Q: hexInt("9b9f605f5a858107ab1ec85e6b41c8aa582ca3511eddfb74f02f3a6598980bb9"),
		X: big.NewInt(0),
		Y: hexInt("41ece55743711a8c3cbf3783cd08c0ee4d4dc440d4641a8f366e550dfdb3bb67"),
	},
	"id-tc26-gost-3410-12-512-paramSetA": {
		P: hexInt("fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffdc7"),
		A: hexInt("fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffdc4"),
		B: hexInt("e8c2505dedfc86ddc1bd0b2b6667f1da34b82574761cb0e879bd081cfd0b6265ee3cb090f30d27614cb4574010da90dd862ef9d4ebee4761503190785a71c760"),
		M: hexInt("ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff27e69532f48d89116ff22b8d4e0560609b4b38abfad2b85dcacdb1411f10b275"),
		Q: hexInt("ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff27e69532f48d89116ff22b8d4e0560609b4b38abfad2b85dcacdb1411f10b275"),
		X: big.NewInt(3),
		Y: hexInt("7503cfe87a836ae3a61b8816e25450e6ce5e1c93acf1abc1778064fdcbefa921df1626be4fd036e93d75e6a50e3a41e98028fe5fc235f5b889a589cb5215f2a4"),
	},
	"id-tc26-gost-3410-12-512-paramSetB": {
		P: hexInt("8000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000006f"),
		A: hexInt("8000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000006c"),
		B: hexInt("687d1b459dc841457e3e06cf6f5e2517b97c7d614af138bcbf85dc806c4b289f3e965d2db1416d217f8b276fad1ab69c50f78bee1fa3106efb8ccbc7c5140116"),
		M: hexInt("800000000000000000000000000000000000000000000000000000000000000149a1ec142565a545acfdb77bd9d40cfa8b996712101bea0ec6346c54374f25bd"),
		Q: hexInt("800000000000000000000000000000000000000000000000000000000000000149a1ec142565a545acfdb77bd9d40cfa8b996712101bea0ec6346c54374f25bd"),
		X: big.NewInt(2),
		Y: hexInt("1a8f7eda389b094c2c071e3647a8940f3c123b697578c213be6dd9e6c8ec7335dcb228fd1edf4a39152cbcaaf8c0398828041055f94ceeec7e21340780fe41bd"),
	},
	"id-tc26-gost-3410-2012-512-paramSetC": {
		P: hexInt("fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffdc7"),
		A: hexInt("dc9203e514a721875485a529d2c722fb187bc8980eb866644de41c68e143064546e861c0e2c9edd92ade71f46fcf50ff2ad97f951fda9f2a2eb6546f39689bd3"),
		B: hexInt("b4c4ee28cebc6c2c8ac12952cf37f16ac7efb6a9f69f4b57ffda2e4f0de5ade038cbc2fff719d2c18de0284b8bfef3b52b8cc7a5f5bf0a3c8d2319a5312557e1"),
		M: hexInt("ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff26336e91941aac0130cea7fd451d40b323b6a79e9da6849a5188f3bd1fc08fb4"),
		Q: hexInt("3fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffc98cdba46506ab004c33a9ff5147502cc8eda9e7a769a12694623cef47f023ed"),
		X: hexInt("e2e31edfc23de7bdebe241ce593ef5de2295b7a9cbaef021d385f7074cea043aa27272a7ae602bf2a7b9033db9ed3610c6fb85487eae97aac5bc7928c1950148"),
		Y: hexInt("f5ce40d95b5eb899abbccff5911cb8577939804d6527378b8c108c3d2090ff9be18e2d33e3021ed2ef32d85822423b6304f726aa854bae07d0396e9a9addc40f"),
		E: big.NewInt(1),
		D: hexInt("9e4f5d8c017d8d9f13a5cf3cdf5bfe4dab402d54198e31ebde28a0621050439ca6b39e0a515c06b304e2ce43e79e369e91a0cfc2bc2a22b4ca302dbb33ee7550"),
		U: hexInt("12"),
		V: hexInt("469af79d1fb1f5e16b99592b77a01e2a0fdfb0d01794368d9a56117f7b38669522dd4b650cf789eebf068c5d139732f0905622c04b2baae7600303ee73001a3d"),
	},
}

func init() {
	for name, params := range registry {
		for _, v := range []*big.Int{params.P, params.A, params.B, params.M, params.Q, params.X, params.Y} {
			if v == nil {
				panic(fmt.Sprintf("gostparams: incomplete entry %q", name))
			}
		}
	}
}

// Lookup returns the parameter set for a standardized curve identifier,
// and reports whether it was found.
func Lookup(name string) (gost3410.Params, bool) {
	p, ok := registry[name]
	return p, ok
}

// Names returns the sorted list of registered curve identifiers.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
