package assets

import (
	"encoding/binary"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// DefaultSampleRate 合成音效的采样率
const DefaultSampleRate = beep.SampleRate(48000)

// WaveType 振荡器波形
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

func parseWave(s string) (WaveType, bool) {
	switch s {
	case "sine", "":
		return WaveSine, true
	case "square":
		return WaveSquare, true
	case "saw":
		return WaveSaw, true
	case "noise":
		return WaveNoise, true
	}
	return 0, false
}

// oscillator 线性滑音振荡器
type oscillator struct {
	startFreq float64
	endFreq   float64
	phase     float64
	total     int
	position  int
	wave      WaveType
	rate      beep.SampleRate
	noise     *rand.Rand
}

func newOscillator(res SoundResource, rate beep.SampleRate) *oscillator {
	wave, _ := parseWave(res.Wave)
	end := res.EndFrequency
	if end == 0 {
		end = res.Frequency
	}
	return &oscillator{
		startFreq: res.Frequency,
		endFreq:   end,
		total:     rate.N(time.Duration(res.DurationMs) * time.Millisecond),
		wave:      wave,
		rate:      rate,
		noise:     rand.New(rand.NewSource(int64(res.Frequency) + int64(res.DurationMs))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.total)
		freq := o.startFreq + (o.endFreq-o.startFreq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope 线性起音/释音
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Max(0, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// NewSoundStreamer 根据定义创建音效流
// volume 是全局音量（0.0 ~ 1.0），与定义中的音量相乘
func NewSoundStreamer(res SoundResource, rate beep.SampleRate, volume float64) beep.Streamer {
	osc := newOscillator(res, rate)
	shaped := &envelope{
		streamer: osc,
		attack:   rate.N(time.Duration(res.AttackMs) * time.Millisecond),
		release:  rate.N(time.Duration(res.ReleaseMs) * time.Millisecond),
		total:    osc.total,
	}

	if res.Volume > 0 {
		volume *= res.Volume
	}
	return withVolume(beep.Take(osc.total, shaped), volume)
}

// withVolume 线性音量转换为 effects.Volume 的对数音量
// 音量为 0 时静音（log2(0) 为 -Inf）
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// RenderPCM 把音效流渲染为 16 位小端双声道 PCM（ebiten audio 的输入格式）
func RenderPCM(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	frame := make([]byte, 4)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint16(frame[0:], uint16(toInt16(buf[i][0])))
			binary.LittleEndian.PutUint16(frame[2:], uint16(toInt16(buf[i][1])))
			out = append(out, frame...)
		}
		if !ok || n == 0 {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}
