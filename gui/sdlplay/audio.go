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

package sdlplay

import (
	"github.com/hakka/hakka/sfx"
	"github.com/veandco/go-sdl2/sdl"
)

// number of samples in the audio device buffer
const bufferLength = 1024

// audio plays short sound effects through an SDL audio queue.
type audio struct {
	id     sdl.AudioDeviceID
	commit []byte
}

func newAudio(commit sfx.PCM) (*audio, error) {
	spec := &sdl.AudioSpec{
		Freq:     int32(commit.SampleRate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  bufferLength,
	}

	id, err := sdl.OpenAudioDevice("", false, spec, nil, 0)
	if err != nil {
		return nil, err
	}
	sdl.PauseAudioDevice(id, false)

	return &audio{
		id:     id,
		commit: commit.S16LE(),
	}, nil
}

// playCommit replaces any queued sound with the commit sound.
func (aud *audio) playCommit() error {
	sdl.ClearQueuedAudio(aud.id)
	return sdl.QueueAudio(aud.id, aud.commit)
}

func (aud *audio) destroy() {
	sdl.CloseAudioDevice(aud.id)
}
