package game

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"golang.org/x/time/rate"

	"github.com/iburimskiy/wheel-view/internal/config"
)

const (
	clickLength    = 8 * time.Millisecond
	clickFrequency = 2200.0
	clickDecay     = 600.0 // 1/s
	clickAmplitude = 0.6
)

var clickFormat = beep.Format{
	SampleRate:  beep.SampleRate(config.ClickSampleRate),
	NumChannels: 2,
	Precision:   2,
}

// clickPlayer plays a short tick each time the wheel passes a mark, like
// the detent sound of a picker.
type clickPlayer struct {
	enabled bool
	ready   bool
	clip    *beep.Buffer
	volume  float64
	limiter *rate.Limiter
	log     *slog.Logger
}

func newClickPlayer(cfg config.FeedbackConfig, log *slog.Logger) *clickPlayer {
	p := &clickPlayer{
		enabled: cfg.Sound,
		volume:  cfg.Volume,
		limiter: rate.NewLimiter(rate.Limit(cfg.MaxClicksPerSec), 1),
		log:     log,
	}
	clip, err := buildClip(cfg.ClickFile)
	if err != nil {
		log.Warn("click sound unavailable, using synthesized click", "file", cfg.ClickFile, "err", err)
		clip, _ = buildClip("")
	}
	p.clip = clip
	return p
}

// init opens the audio device. Without one the player stays silent.
func (p *clickPlayer) init() error {
	if p.ready {
		return nil
	}
	sr := clickFormat.SampleRate
	if err := speaker.Init(sr, sr.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	p.ready = true
	return nil
}

func (p *clickPlayer) setEnabled(on bool) {
	p.enabled = on
	if on && !p.ready {
		if err := p.init(); err != nil {
			p.log.Warn("sound feedback disabled", "err", err)
			p.enabled = false
		}
	}
}

// setClip replaces the click with the decoded file at path.
func (p *clickPlayer) setClip(path string) error {
	clip, err := buildClip(path)
	if err != nil {
		return err
	}
	p.clip = clip
	p.log.Info("click sound loaded", "file", path, "samples", clip.Len())
	return nil
}

func (p *clickPlayer) play() {
	if !p.enabled || !p.ready || !p.limiter.Allow() {
		return
	}
	s := p.clip.Streamer(0, p.clip.Len())
	speaker.Play(&effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   p.volume,
	})
}

// buildClip buffers the click, decoding path when it is set.
func buildClip(path string) (*beep.Buffer, error) {
	buf := beep.NewBuffer(clickFormat)
	if path == "" {
		buf.Append(synthClick(clickFormat.SampleRate))
		return buf, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	// the decoded streamer owns f once decoding succeeds
	streamer, format, err := decodeAudio(f, filepath.Ext(path))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != clickFormat.SampleRate {
		s = beep.Resample(4, format.SampleRate, clickFormat.SampleRate, streamer)
	}
	buf.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return buf, nil
}

func decodeAudio(f *os.File, ext string) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(ext) {
	case ".wav":
		return wav.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".flac":
		return flac.Decode(f)
	default:
		return nil, beep.Format{}, errors.New("unsupported file type: " + ext)
	}
}

// synthClick is a short exponentially decaying sine burst.
func synthClick(sr beep.SampleRate) beep.Streamer {
	n := sr.N(clickLength)
	i := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if i >= n {
			return 0, false
		}
		k := 0
		for ; k < len(samples) && i < n; k++ {
			t := float64(i) / float64(sr)
			v := clickAmplitude * math.Exp(-t*clickDecay) * math.Sin(2*math.Pi*clickFrequency*t)
			samples[k][0] = v
			samples[k][1] = v
			i++
		}
		return k, true
	})
}
