package audio

import "math"

const sampleRate = 44100

// Tone is a synthesized sound effect
type Tone struct {
	Freq     float64 // start frequency in Hz
	EndFreq  float64 // frequency reached at the end, zero keeps Freq
	Duration float64 // seconds
	Volume   float64 // peak amplitude in [0, 1]
	Decay    float64 // exponential envelope rate, zero holds the volume
}

// PCM renders the tone as 16-bit little-endian stereo samples
func (t Tone) PCM() []byte {
	n := int(float64(sampleRate) * t.Duration)
	buf := make([]byte, n*4)
	end := t.EndFreq
	if end == 0 {
		end = t.Freq
	}

	phase := 0.0
	for i := 0; i < n; i++ {
		secs := float64(i) / sampleRate
		progress := float64(i) / float64(max(n, 1))
		freq := t.Freq + (end-t.Freq)*progress
		phase += 2 * math.Pi * freq / sampleRate

		envelope := math.Exp(-t.Decay * secs)
		v := int16(math.Sin(phase) * t.Volume * envelope * math.MaxInt16)
		for ch := 0; ch < 2; ch++ {
			idx := i*4 + ch*2
			buf[idx] = byte(v)
			buf[idx+1] = byte(v >> 8)
		}
	}
	return buf
}
