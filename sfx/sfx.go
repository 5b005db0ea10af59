// This file is part of Hakka.
//
// Hakka is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Hakka is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Hakka.  If not, see <https://www.gnu.org/licenses/>.

// Package sfx loads short sound effects from WAV or MP3 files. Samples are
// reduced to a single channel of signed 16bit values, suitable for queueing
// to an audio device.
package sfx

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/hakka/hakka/curated"
	"github.com/hakka/hakka/logger"
)

// Sentinal error patterns.
const (
	LoadError       = "sfx: %v"
	UnsupportedFile = "sfx: unsupported file type (%s)"
	InvalidWAV      = "sfx: wav: not a valid wav file"
)

// PCM is single channel sound data.
type PCM struct {
	SampleRate int
	Data       []int16
}

// Duration of the sound.
func (p PCM) Duration() time.Duration {
	if p.SampleRate == 0 {
		return 0
	}
	return time.Duration(len(p.Data)) * time.Second / time.Duration(p.SampleRate)
}

// S16LE returns the sample data as little-endian bytes.
func (p PCM) S16LE() []byte {
	b := make([]byte, len(p.Data)*2)
	for i, s := range p.Data {
		binary.LittleEndian.PutUint16(b[i*2:], uint16(s))
	}
	return b
}

// Load sound data from a file. The file type is decided by the extension.
func Load(filename string) (PCM, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return PCM{}, curated.Errorf(LoadError, err)
	}

	var p PCM

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".wav":
		p, err = decodeWAV(bytes.NewReader(data))
	case ".mp3":
		p, err = decodeMP3(bytes.NewReader(data))
	default:
		return PCM{}, curated.Errorf(UnsupportedFile, ext)
	}

	if err != nil {
		return PCM{}, err
	}

	logger.Logf("sfx", "%s: %dHz %v", filepath.Base(filename), p.SampleRate, p.Duration())

	return p, nil
}

// scale a sample of any bit depth to 16 bits. 8bit WAV samples are unsigned
func to16(v int, bitDepth int) int16 {
	switch {
	case bitDepth == 8:
		return int16((v - 128) << 8)
	case bitDepth > 16:
		return int16(v >> (bitDepth - 16))
	case bitDepth < 16:
		return int16(v << (16 - bitDepth))
	}
	return int16(v)
}

func decodeWAV(r io.ReadSeeker) (PCM, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return PCM{}, curated.Errorf(InvalidWAV)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return PCM{}, curated.Errorf(LoadError, err)
	}

	chans := int(dec.NumChans)
	if chans < 1 {
		chans = 1
	}
	depth := int(dec.BitDepth)

	// first channel only
	p := PCM{
		SampleRate: int(dec.SampleRate),
		Data:       make([]int16, 0, len(buf.Data)/chans),
	}
	for i := 0; i < len(buf.Data); i += chans {
		p.Data = append(p.Data, to16(buf.Data[i], depth))
	}

	return p, nil
}

func decodeMP3(r io.Reader) (PCM, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return PCM{}, curated.Errorf(LoadError, err)
	}

	// the decoded stream is always 16bit little-endian stereo, four bytes
	// per sample. the left channel is kept
	raw, err := io.ReadAll(dec)
	if err != nil {
		return PCM{}, curated.Errorf(LoadError, err)
	}

	p := PCM{
		SampleRate: dec.SampleRate(),
		Data:       make([]int16, 0, len(raw)/4),
	}
	for i := 0; i+1 < len(raw); i += 4 {
		p.Data = append(p.Data, int16(binary.LittleEndian.Uint16(raw[i:])))
	}

	return p, nil
}
