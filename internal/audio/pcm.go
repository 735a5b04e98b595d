package audio

import (
	"encoding/binary"
	"time"

	"github.com/gopxl/beep"
)

// musicLoopLength is one full pass over the bass line (8 notes of 250ms)
const musicLoopLength = 2 * time.Second

// RenderPCM16 drains s into signed 16-bit little-endian stereo PCM.
// At most maxSamples frames are rendered, so endless streams need a limit.
func RenderPCM16(s beep.Streamer, maxSamples int) []byte {
	buf := make([][2]float64, 512)
	out := make([]byte, 0, 4*min(maxSamples, 1<<16))

	remaining := maxSamples
	for remaining > 0 {
		n, ok := s.Stream(buf[:min(len(buf), remaining)])
		for _, frame := range buf[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[1])))
		}
		remaining -= n
		if !ok || n == 0 {
			break
		}
	}
	return out
}

func toInt16(v float64) int16 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int16(v * 32767)
}

// GunshotPCM renders the synthesized gunshot at full volume
func GunshotPCM(rate int) []byte {
	sr := beep.SampleRate(rate)
	return RenderPCM16(CreateGunshotSound(sr, 1.0), sr.N(time.Second))
}

// MusicLoopPCM renders exactly one pass of the background track.
// Playing the result in a loop is seamless since every note fades at its edges.
func MusicLoopPCM(rate int) []byte {
	sr := beep.SampleRate(rate)
	return RenderPCM16(NewMusicGenerator(sr), sr.N(musicLoopLength))
}
