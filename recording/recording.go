package recording

import (
	"bufio"
	"io"
	"os"

	"github.com/disgoorg/json"
	"github.com/jerry930829/ML-pingpong/entity"
	"github.com/jerry930829/ML-pingpong/game"
	"github.com/jerry930829/ML-pingpong/internal"
	"github.com/jerry930829/ML-pingpong/oerror"
)

// CurrentVersion is written on the first line of every recording so that
// readers can reject recordings they do not understand.
const CurrentVersion = "1"

// Header describes the match a recording was taken from.
type Header struct {
	Match         int             `json:"match"`
	Seed          string          `json:"seed"`
	Difficulty    game.Difficulty `json:"difficulty"`
	GameOverScore int             `json:"game_over_score"`
	InitVel       int             `json:"init_vel"`
	Player1P      string          `json:"player_1P"`
	Player2P      string          `json:"player_2P"`
}

// Frame is one recorded frame: the actions applied, the result of the update
// and the scene it produced.
type Frame struct {
	Action1P entity.Action `json:"command_1P"`
	Action2P entity.Action `json:"command_2P"`
	Result   game.Result   `json:"result"`
	Scene    game.Scene    `json:"scene"`
}

// Recording is a decoded recording.
type Recording struct {
	Version string
	Header  Header
	Frames  []Frame
}

// Recorder writes a recording as JSON lines: the version, the header, then one
// line per frame. It is not safe for concurrent use.
type Recorder struct {
	w      *bufio.Writer
	closer io.Closer
	frames int
}

// NewRecorder writes the recording header to w and returns a Recorder for the
// frames that follow. If w is an io.Closer it is closed by Close.
func NewRecorder(w io.Writer, h Header) (*Recorder, error) {
	r := &Recorder{w: bufio.NewWriter(w)}
	if c, ok := w.(io.Closer); ok {
		r.closer = c
	}
	if _, err := r.w.WriteString(CurrentVersion + "\n"); err != nil {
		return nil, oerror.New("unable to write recording version: %v", err)
	}
	if err := r.writeLine(h); err != nil {
		return nil, oerror.New("unable to write recording header: %v", err)
	}
	return r, nil
}

// Create creates the file at path, replacing any existing one, and starts a
// recording in it.
func Create(path string, h Header) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, oerror.New("unable to open recording file: %v", err)
	}
	r, err := NewRecorder(f, h)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return r, nil
}

// Record appends a frame.
func (r *Recorder) Record(f Frame) error {
	if err := r.writeLine(f); err != nil {
		return oerror.New("unable to record frame %d: %v", f.Scene.Frame, err)
	}
	r.frames++
	return nil
}

// Frames returns the number of frames recorded so far.
func (r *Recorder) Frames() int {
	return r.frames
}

// Close flushes buffered frames and closes the underlying writer if it can be
// closed.
func (r *Recorder) Close() error {
	if err := r.w.Flush(); err != nil {
		return oerror.New("unable to flush recording: %v", err)
	}
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}

func (r *Recorder) writeLine(v any) error {
	enc, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf := internal.GetBuffer()
	defer internal.PutBuffer(buf)
	buf.Write(enc)
	buf.WriteByte('\n')
	_, err = r.w.Write(buf.Bytes())
	return err
}

// Decode reads a recording written by a Recorder. It returns an error if the
// recording cannot be parsed or was written by an unsupported version.
func Decode(src io.Reader) (*Recording, error) {
	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 0, 4096), 1024*1024)

	if !sc.Scan() {
		return nil, oerror.New("recording is empty")
	}
	rec := &Recording{Version: sc.Text()}
	if rec.Version != CurrentVersion {
		return nil, oerror.New("unsupported recording version: %s", rec.Version)
	}

	if !sc.Scan() {
		return nil, oerror.New("recording has no header")
	}
	if err := json.Unmarshal(sc.Bytes(), &rec.Header); err != nil {
		return nil, oerror.New("unable to decode recording header: %v", err)
	}

	for line := 3; sc.Scan(); line++ {
		if len(sc.Bytes()) == 0 {
			continue
		}
		var f Frame
		if err := json.Unmarshal(sc.Bytes(), &f); err != nil {
			return nil, oerror.New("unable to decode frame on line %d: %v", line, err)
		}
		rec.Frames = append(rec.Frames, f)
	}
	if err := sc.Err(); err != nil {
		return nil, oerror.New("unable to read recording: %v", err)
	}
	return rec, nil
}

// DecodeFile decodes the recording stored at path.
func DecodeFile(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, oerror.New("unable to open recording file: %v", err)
	}
	defer f.Close()
	return Decode(f)
}
