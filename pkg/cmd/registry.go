package cmd

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/c2quant/taflow/pkg/batch"
	"github.com/c2quant/taflow/pkg/floats"
	"github.com/c2quant/taflow/pkg/ohlc"
)

// Params holds the per-indicator settings decoded from the pipeline
// config. Window-like settings are stored as float64 by the decoder and
// truncated on access.
type Params map[string]float64

func (p Params) Window(key string, def int) int {
	if v, ok := p[key]; ok {
		return int(v)
	}
	return def
}

func (p Params) Value(key string, def float64) float64 {
	if v, ok := p[key]; ok {
		return v
	}
	return def
}

// Column is one named output series of an indicator run.
type Column struct {
	Name   string
	Values floats.Slice
}

type computeFunc func(s *ohlc.Series, p Params) []Column

type registryEntry struct {
	usage   string
	compute computeFunc
}

var registry = map[string]registryEntry{
	"sma": {"window=20", func(s *ohlc.Series, p Params) []Column {
		w := p.Window("window", 20)
		return []Column{{"sma", batch.SMA(s.Close, w)}}
	}},
	"ema": {"window=20", func(s *ohlc.Series, p Params) []Column {
		w := p.Window("window", 20)
		return []Column{{"ema", batch.EMA(s.Close, w, false)}}
	}},
	"wma": {"window=20", func(s *ohlc.Series, p Params) []Column {
		w := p.Window("window", 20)
		return []Column{{"wma", batch.WMA(s.Close, w)}}
	}},
	"macd": {"fast=12 slow=26 signal=9", func(s *ohlc.Series, p Params) []Column {
		line, signal, hist := batch.MACD(s.Close, p.Window("fast", 12), p.Window("slow", 26), p.Window("signal", 9), true)
		return []Column{{"macd", line}, {"macd_signal", signal}, {"macd_hist", hist}}
	}},
	"adx": {"window=14", func(s *ohlc.Series, p Params) []Column {
		adx, plusDI, minusDI := batch.ADX(s.High, s.Low, s.Close, p.Window("window", 14))
		return []Column{{"adx", adx}, {"plus_di", plusDI}, {"minus_di", minusDI}}
	}},
	"cci": {"window=20 constant=0.015", func(s *ohlc.Series, p Params) []Column {
		out := batch.CCI(s.High, s.Low, s.Close, p.Window("window", 20), p.Value("constant", 0.015))
		return []Column{{"cci", out}}
	}},
	"dpo": {"window=20", func(s *ohlc.Series, p Params) []Column {
		return []Column{{"dpo", batch.DPO(s.Close, p.Window("window", 20))}}
	}},
	"vortex": {"window=14", func(s *ohlc.Series, p Params) []Column {
		viPlus, viMinus := batch.Vortex(s.High, s.Low, s.Close, p.Window("window", 14))
		return []Column{{"vi_plus", viPlus}, {"vi_minus", viMinus}}
	}},
	"psar": {"af_start=0.02 af_inc=0.02 af_max=0.2", func(s *ohlc.Series, p Params) []Column {
		out := batch.PSAR(s.High, s.Low, s.Close, p.Value("af_start", 0.02), p.Value("af_inc", 0.02), p.Value("af_max", 0.2))
		return []Column{{"psar", out}}
	}},
	"trix": {"window=15", func(s *ohlc.Series, p Params) []Column {
		return []Column{{"trix", batch.TRIX(s.Close, p.Window("window", 15))}}
	}},
	"aroon": {"window=25", func(s *ohlc.Series, p Params) []Column {
		up, down := batch.Aroon(s.High, s.Low, p.Window("window", 25))
		return []Column{{"aroon_up", up}, {"aroon_down", down}}
	}},
	"kst": {"r1=10 r2=15 r3=20 r4=30 s1=10 s2=10 s3=10 s4=15 signal=9", func(s *ohlc.Series, p Params) []Column {
		kst, signal := batch.KST(s.Close,
			p.Window("r1", 10), p.Window("r2", 15), p.Window("r3", 20), p.Window("r4", 30),
			p.Window("s1", 10), p.Window("s2", 10), p.Window("s3", 10), p.Window("s4", 15),
			p.Window("signal", 9))
		return []Column{{"kst", kst}, {"kst_signal", signal}}
	}},
	"mass_index": {"ema=9 sum=25", func(s *ohlc.Series, p Params) []Column {
		return []Column{{"mass_index", batch.MassIndex(s.High, s.Low, p.Window("ema", 9), p.Window("sum", 25))}}
	}},
	"ichimoku": {"tenkan=9 kijun=26 senkou_b=52", func(s *ohlc.Series, p Params) []Column {
		tenkan, kijun, senkouA, senkouB, chikou := batch.Ichimoku(s.High, s.Low, s.Close,
			p.Window("tenkan", 9), p.Window("kijun", 26), p.Window("senkou_b", 52))
		return []Column{
			{"tenkan", tenkan}, {"kijun", kijun},
			{"senkou_a", senkouA}, {"senkou_b", senkouB}, {"chikou", chikou},
		}
	}},
	"stc": {"fast=23 slow=50 stoch=10 smooth=3", func(s *ohlc.Series, p Params) []Column {
		out := batch.SchaffTrendCycle(s.Close, p.Window("fast", 23), p.Window("slow", 50), p.Window("stoch", 10), p.Window("smooth", 3))
		return []Column{{"stc", out}}
	}},
	"rsi": {"window=14", func(s *ohlc.Series, p Params) []Column {
		return []Column{{"rsi", batch.RSI(s.Close, p.Window("window", 14))}}
	}},
	"stoch": {"k=14 d=3", func(s *ohlc.Series, p Params) []Column {
		percentK, percentD := batch.Stoch(s.High, s.Low, s.Close, p.Window("k", 14), p.Window("d", 3))
		return []Column{{"stoch_k", percentK}, {"stoch_d", percentD}}
	}},
	"williams_r": {"window=14", func(s *ohlc.Series, p Params) []Column {
		return []Column{{"williams_r", batch.WilliamsR(s.High, s.Low, s.Close, p.Window("window", 14))}}
	}},
	"ppo": {"fast=12 slow=26 signal=9", func(s *ohlc.Series, p Params) []Column {
		line, signal, hist := batch.PPO(s.Close, p.Window("fast", 12), p.Window("slow", 26), p.Window("signal", 9))
		return []Column{{"ppo", line}, {"ppo_signal", signal}, {"ppo_hist", hist}}
	}},
	"pvo": {"fast=12 slow=26 signal=9", func(s *ohlc.Series, p Params) []Column {
		line, signal, hist := batch.PVO(s.Volume, p.Window("fast", 12), p.Window("slow", 26), p.Window("signal", 9))
		return []Column{{"pvo", line}, {"pvo_signal", signal}, {"pvo_hist", hist}}
	}},
	"uo": {"period1=7 period2=14 period3=28", func(s *ohlc.Series, p Params) []Column {
		out := batch.UO(s.High, s.Low, s.Close, p.Window("period1", 7), p.Window("period2", 14), p.Window("period3", 28))
		return []Column{{"uo", out}}
	}},
	"stochrsi": {"window=14 k=3 d=3", func(s *ohlc.Series, p Params) []Column {
		stochRSI, percentK, percentD := batch.StochRSI(s.Close, p.Window("window", 14), p.Window("k", 3), p.Window("d", 3))
		return []Column{{"stochrsi", stochRSI}, {"stochrsi_k", percentK}, {"stochrsi_d", percentD}}
	}},
	"tsi": {"long=25 short=13", func(s *ohlc.Series, p Params) []Column {
		return []Column{{"tsi", batch.TSI(s.Close, p.Window("long", 25), p.Window("short", 13))}}
	}},
	"ao": {"fast=5 slow=34", func(s *ohlc.Series, p Params) []Column {
		return []Column{{"ao", batch.AO(s.High, s.Low, p.Window("fast", 5), p.Window("slow", 34))}}
	}},
	"kama": {"window=10 fast=2 slow=30", func(s *ohlc.Series, p Params) []Column {
		out := batch.KAMA(s.Close, p.Window("window", 10), p.Window("fast", 2), p.Window("slow", 30))
		return []Column{{"kama", out}}
	}},
	"roc": {"window=12", func(s *ohlc.Series, p Params) []Column {
		return []Column{{"roc", batch.ROC(s.Close, p.Window("window", 12))}}
	}},
	"momentum": {"window=10", func(s *ohlc.Series, p Params) []Column {
		return []Column{{"momentum", batch.Momentum(s.Close, p.Window("window", 10))}}
	}},
	"atr": {"window=14", func(s *ohlc.Series, p Params) []Column {
		return []Column{{"atr", batch.ATR(s.High, s.Low, s.Close, p.Window("window", 14))}}
	}},
	"boll": {"window=20 k=2.0", func(s *ohlc.Series, p Params) []Column {
		upper, middle, lower := batch.BollingerBands(s.Close, p.Window("window", 20), p.Value("k", 2.0))
		return []Column{{"boll_upper", upper}, {"boll_middle", middle}, {"boll_lower", lower}}
	}},
	"keltner": {"window=20", func(s *ohlc.Series, p Params) []Column {
		upper, middle, lower := batch.KeltnerChannel(s.High, s.Low, s.Close, p.Window("window", 20))
		return []Column{{"keltner_upper", upper}, {"keltner_middle", middle}, {"keltner_lower", lower}}
	}},
	"donchian": {"window=20", func(s *ohlc.Series, p Params) []Column {
		upper, middle, lower := batch.DonchianChannel(s.High, s.Low, p.Window("window", 20))
		return []Column{{"donchian_upper", upper}, {"donchian_middle", middle}, {"donchian_lower", lower}}
	}},
	"ulcer": {"window=14", func(s *ohlc.Series, p Params) []Column {
		return []Column{{"ulcer", batch.UlcerIndex(s.Close, p.Window("window", 14))}}
	}},
	"mfi": {"window=14", func(s *ohlc.Series, p Params) []Column {
		return []Column{{"mfi", batch.MFI(s.High, s.Low, s.Close, s.Volume, p.Window("window", 14))}}
	}},
	"ad": {"", func(s *ohlc.Series, p Params) []Column {
		return []Column{{"ad", batch.AD(s.High, s.Low, s.Close, s.Volume)}}
	}},
	"obv": {"", func(s *ohlc.Series, p Params) []Column {
		return []Column{{"obv", batch.OBV(s.Close, s.Volume)}}
	}},
	"cmf": {"window=20", func(s *ohlc.Series, p Params) []Column {
		return []Column{{"cmf", batch.CMF(s.High, s.Low, s.Close, s.Volume, p.Window("window", 20))}}
	}},
	"force_index": {"window=13", func(s *ohlc.Series, p Params) []Column {
		return []Column{{"force_index", batch.ForceIndex(s.Close, s.Volume, p.Window("window", 13))}}
	}},
	"eom": {"", func(s *ohlc.Series, p Params) []Column {
		return []Column{{"eom", batch.EOM(s.High, s.Low, s.Volume)}}
	}},
	"vpt": {"", func(s *ohlc.Series, p Params) []Column {
		return []Column{{"vpt", batch.VPT(s.Close, s.Volume)}}
	}},
	"nvi": {"", func(s *ohlc.Series, p Params) []Column {
		return []Column{{"nvi", batch.NVI(s.Close, s.Volume)}}
	}},
	"vwap": {"window=14", func(s *ohlc.Series, p Params) []Column {
		return []Column{{"vwap", batch.VWAP(s.High, s.Low, s.Close, s.Volume, p.Window("window", 14))}}
	}},
	"vwema": {"vwap=14 ema=20", func(s *ohlc.Series, p Params) []Column {
		return []Column{{"vwema", batch.VWEMA(s.High, s.Low, s.Close, s.Volume, p.Window("vwap", 14), p.Window("ema", 20))}}
	}},
	"volume_ratio": {"window=20", func(s *ohlc.Series, p Params) []Column {
		return []Column{{"volume_ratio", batch.VolumeRatio(s.Volume, p.Window("window", 20))}}
	}},
	"daily_return": {"", func(s *ohlc.Series, p Params) []Column {
		return []Column{{"daily_return", batch.DailyReturn(s.Close)}}
	}},
	"daily_log_return": {"", func(s *ohlc.Series, p Params) []Column {
		return []Column{{"daily_log_return", batch.DailyLogReturn(s.Close)}}
	}},
	"cumulative_return": {"", func(s *ohlc.Series, p Params) []Column {
		return []Column{{"cumulative_return", batch.CumulativeReturn(s.Close)}}
	}},
	"compound_log_return": {"", func(s *ohlc.Series, p Params) []Column {
		return []Column{{"compound_log_return", batch.CompoundLogReturn(s.Close)}}
	}},
	"zscore": {"window=20", func(s *ohlc.Series, p Params) []Column {
		return []Column{{"zscore", batch.RollingZScore(s.Close, p.Window("window", 20))}}
	}},
	"linreg_slope": {"window=14", func(s *ohlc.Series, p Params) []Column {
		return []Column{{"linreg_slope", batch.LinRegSlope(s.Close, p.Window("window", 14))}}
	}},
	"percentile": {"window=20", func(s *ohlc.Series, p Params) []Column {
		return []Column{{"percentile", batch.RollingPercentile(s.Close, p.Window("window", 20))}}
	}},
}

func lookup(name string) (registryEntry, error) {
	entry, ok := registry[name]
	if !ok {
		return registryEntry{}, errors.Errorf("unknown indicator %q", name)
	}
	return entry, nil
}

func indicatorNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
