package ebiten

import (
	"encoding/binary"
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// tone is a synthesized cue: a sine sweep from From to To hertz
type tone struct {
	From, To float64
	Seconds  float64
}

// tones maps the cue names the cavern systems play
var tones = map[string]tone{
	"cancel":     {From: 220, To: 160, Seconds: 0.12},
	"coin":       {From: 990, To: 1320, Seconds: 0.15},
	"stoneStep":  {From: 140, To: 110, Seconds: 0.10},
	"secret1":    {From: 440, To: 880, Seconds: 0.60},
	"wand":       {From: 660, To: 1760, Seconds: 0.45},
	"stoneCrack": {From: 300, To: 90, Seconds: 0.20},
}

var defaultTone = tone{From: 440, To: 440, Seconds: 0.1}

// soundBank plays cues through the Ebiten audio context, caching the
// rendered samples per name
type soundBank struct {
	ctx     *audio.Context
	log     *slog.Logger
	samples map[string][]byte
	playing []*audio.Player
}

func newSoundBank(log *slog.Logger) *soundBank {
	return &soundBank{
		ctx:     audio.NewContext(sampleRate),
		log:     log,
		samples: make(map[string][]byte),
	}
}

// Play starts every named cue
func (b *soundBank) Play(names []string) {
	kept := b.playing[:0]
	for _, p := range b.playing {
		if p.IsPlaying() {
			kept = append(kept, p)
		} else {
			p.Close()
		}
	}
	b.playing = kept

	for _, name := range names {
		pcm, ok := b.samples[name]
		if !ok {
			t, known := tones[name]
			if !known {
				b.log.Debug("no tone for sound, using default", "sound", name)
				t = defaultTone
			}
			pcm = synthesize(t, sampleRate)
			b.samples[name] = pcm
		}
		p := b.ctx.NewPlayerFromBytes(pcm)
		p.Play()
		b.playing = append(b.playing, p)
	}
}

// synthesize renders t as 16-bit little-endian stereo PCM with a linear
// fade-out
func synthesize(t tone, rate int) []byte {
	n := int(t.Seconds * float64(rate))
	out := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := t.From + (t.To-t.From)*progress
		phase += 2 * math.Pi * freq / float64(rate)
		v := int16(math.Sin(phase) * (1 - progress) * 0.3 * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(v))
	}
	return out
}
