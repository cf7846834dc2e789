// Package sound loads alert sounds and plays them through the system speaker
package sound

import (
	"context"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
	"github.com/maruel/natural"

	"github.com/ayoisaiah/countdown/internal/pathutil"
	"github.com/ayoisaiah/countdown/internal/static"
)

// Off disables the alert sound.
const Off = "off"

// Default is the bundled alert sound.
const Default = "beep"

const (
	bundledExt = ".wav"
	bufferSize = 10
)

var supportedExts = []string{".mp3", ".ogg", ".flac", ".wav"}

// Supported reports whether the file extension of name can be decoded. Names
// without an extension refer to bundled sounds and are always supported.
func Supported(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))

	return ext == "" || slices.Contains(supportedExts, ext)
}

// open resolves a sound name. Names without an extension refer to bundled
// sounds; anything else is treated as a path on disk.
func open(name string) (io.ReadCloser, string, error) {
	ext := strings.ToLower(filepath.Ext(name))

	if ext == "" {
		f, err := static.Files.Open(static.FilePath(name + bundledExt))
		if err != nil {
			return nil, "", errUnknownSound.Fmt(name)
		}

		return f, bundledExt, nil
	}

	if !slices.Contains(supportedExts, ext) {
		return nil, "", errInvalidSoundFormat.Fmt(name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, "", errUnknownSound.Fmt(name).Wrap(err)
	}

	return f, ext, nil
}

func decode(
	rc io.ReadCloser,
	ext string,
) (beep.StreamSeekCloser, beep.Format, error) {
	switch ext {
	case ".ogg":
		return vorbis.Decode(rc)
	case ".mp3":
		return mp3.Decode(rc)
	case ".flac":
		return flac.Decode(rc)
	default:
		return wav.Decode(rc)
	}
}

// Load decodes the named sound fully into memory.
func Load(name string) (*beep.Buffer, error) {
	rc, ext, err := open(name)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = rc.Close()
	}()

	stream, format, err := decode(rc, ext)
	if err != nil {
		return nil, errDecodeSound.Fmt(name).Wrap(err)
	}

	defer stream.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(stream)

	if err := stream.Err(); err != nil {
		return nil, errDecodeSound.Fmt(name).Wrap(err)
	}

	return buffer, nil
}

// gain converts a linear volume in [0, 1] to the exponent expected by
// effects.Volume with base 2.
func gain(volume float64) (exp float64, silent bool) {
	if volume <= 0 {
		return 0, true
	}

	if volume > 1 {
		volume = 1
	}

	return math.Log2(volume), false
}

// Player plays the alert sound. It satisfies countdown.Alerter.
type Player struct {
	buffer  *beep.Buffer
	done    chan struct{}
	initErr error
	name    string
	volume  float64
	mu      sync.Mutex
	once    sync.Once
}

// NewPlayer loads the named sound. An empty name or Off yields a silent
// player.
func NewPlayer(name string, volume float64) (*Player, error) {
	p := &Player{
		name:   name,
		volume: volume,
	}

	if name == "" || name == Off {
		return p, nil
	}

	buffer, err := Load(name)
	if err != nil {
		return nil, err
	}

	p.buffer = buffer

	return p, nil
}

// SetVolume changes the playback volume for subsequent alerts.
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.volume = v
}

func (p *Player) initSpeaker() error {
	p.once.Do(func() {
		sr := p.buffer.Format().SampleRate
		p.initErr = speaker.Init(sr, sr.N(time.Second/bufferSize))
	})

	return p.initErr
}

// Alert starts playing the sound and returns immediately. Playback errors are
// logged; the alert path has no failure mode for callers.
func (p *Player) Alert() {
	if p.buffer == nil {
		return
	}

	if err := p.initSpeaker(); err != nil {
		slog.Error("unable to initialise speaker", slog.Any("error", err))
		return
	}

	p.mu.Lock()
	volume := p.volume
	exp, silent := gain(volume)
	done := make(chan struct{})
	p.done = done
	p.mu.Unlock()

	stream := &effects.Volume{
		Streamer: p.buffer.Streamer(0, p.buffer.Len()),
		Base:     2,
		Volume:   exp,
		Silent:   silent,
	}

	speaker.Play(beep.Seq(stream, beep.Callback(func() {
		close(done)
	})))

	slog.Debug("alert sound started",
		slog.String("sound", p.name),
		slog.Float64("volume", volume),
	)
}

// Wait blocks until the most recent alert has finished playing or ctx is done.
func (p *Player) Wait(ctx context.Context) error {
	p.mu.Lock()
	done := p.done
	p.mu.Unlock()

	if done == nil {
		return nil
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close releases the speaker if it was initialised.
func (p *Player) Close() {
	if p.buffer == nil || p.initErr != nil {
		return
	}

	p.mu.Lock()
	started := p.done != nil
	p.mu.Unlock()

	if started {
		speaker.Clear()
		speaker.Close()
	}
}

// Available lists the bundled sounds plus any playable files in dir, without
// extensions and in natural order.
func Available(dir string) ([]string, error) {
	bundled, err := static.Names()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)

	var names []string

	add := func(file string) {
		if !Supported(file) || filepath.Ext(file) == "" {
			return
		}

		name := pathutil.StripExtension(file)
		if seen[name] {
			return
		}

		seen[name] = true
		names = append(names, name)
	}

	for _, b := range bundled {
		add(b)
	}

	if dir != "" {
		entries, err := os.ReadDir(dir)
		if err != nil && !os.IsNotExist(err) {
			return nil, err
		}

		for _, e := range entries {
			if !e.IsDir() {
				add(e.Name())
			}
		}
	}

	slices.SortFunc(names, func(a, b string) int {
		switch {
		case natural.Less(a, b):
			return -1
		case natural.Less(b, a):
			return 1
		default:
			return 0
		}
	})

	return names, nil
}
